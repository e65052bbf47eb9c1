package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/arcanum-obscurum/arcanum/internal/domain"
	"github.com/arcanum-obscurum/arcanum/internal/httpserver/deps"
	"github.com/arcanum-obscurum/arcanum/internal/logger"
)

// GetPreferences returns the current watch policy.
func GetPreferences(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, d.Notifier.Preferences())
	}
}

// PutPreferences replaces the watch policy wholesale and persists it.
func PutPreferences(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var prefs domain.Preferences
		if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		for _, grade := range prefs.WatchedGrades {
			if !domain.ThreatGrade(grade).Valid() {
				writeError(w, http.StatusUnprocessableEntity, "unknown threat grade: "+grade)
				return
			}
		}

		if err := d.Notifier.SetPreferences(r.Context(), prefs); err != nil {
			d.Logger.Error("failed to persist watch preferences", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to persist preferences")
			return
		}

		writeJSON(w, http.StatusOK, d.Notifier.Preferences())
	}
}
