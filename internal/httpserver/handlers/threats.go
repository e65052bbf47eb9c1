package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/arcanum-obscurum/arcanum/internal/domain"
	"github.com/arcanum-obscurum/arcanum/internal/httpserver/deps"
)

// ThreatGroup returns the entries of one threat grade ranked by power
// level, strongest first. Unranked entries sort last; ties keep catalog
// order.
func ThreatGroup(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		grade, err := domain.ParseThreatGrade(chi.URLParam(r, "grade"))
		if err != nil || grade == "" {
			writeError(w, http.StatusNotFound, "unknown threat grade")
			return
		}

		writeJSON(w, http.StatusOK, domain.GroupAndRank(d.Catalog.All(), grade))
	}
}
