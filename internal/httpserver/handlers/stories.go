package handlers

import (
	"net/http"

	"github.com/arcanum-obscurum/arcanum/internal/domain"
	"github.com/arcanum-obscurum/arcanum/internal/httpserver/deps"
)

// Stories returns the recent-discoveries strip: the newest entries that
// carry an image, capped at the story limit.
func Stories(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, domain.Stories(d.Catalog.All()))
	}
}
