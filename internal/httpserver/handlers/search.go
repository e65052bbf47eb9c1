package handlers

import (
	"net/http"
	"strings"

	"github.com/arcanum-obscurum/arcanum/internal/domain"
	"github.com/arcanum-obscurum/arcanum/internal/httpserver/deps"
	"github.com/arcanum-obscurum/arcanum/internal/logger"
)

type searchResponse struct {
	Query   string          `json:"query"`
	Results []*domain.Entry `json:"results"`
}

// Search runs a substring query over the catalog. A blank query is the
// idle state and returns an empty result set, not the full catalog.
func Search(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := strings.TrimSpace(r.URL.Query().Get("q"))

		results := domain.Search(d.Catalog.All(), query)

		if query != "" {
			d.Logger.Debug("search request",
				logger.String("query", query),
				logger.Int("results", len(results)))
		}

		writeJSON(w, http.StatusOK, searchResponse{
			Query:   query,
			Results: results,
		})
	}
}
