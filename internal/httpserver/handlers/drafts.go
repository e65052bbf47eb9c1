package handlers

import (
	"io"
	"net/http"

	"github.com/arcanum-obscurum/arcanum/internal/httpserver/deps"
	"github.com/arcanum-obscurum/arcanum/internal/sources/insight"
)

const maxDraftBytes = 64 << 10

// Draft turns a free-form insight blob into a pre-filled entry draft.
// The parser is lenient; unusable input degrades to a description-only
// draft rather than an error.
func Draft(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, err := io.ReadAll(io.LimitReader(r.Body, maxDraftBytes))
		if err != nil {
			writeError(w, http.StatusBadRequest, "failed to read body")
			return
		}

		writeJSON(w, http.StatusOK, insight.ParseDraft(string(raw)))
	}
}
