package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/arcanum-obscurum/arcanum/internal/domain"
	"github.com/arcanum-obscurum/arcanum/internal/httpserver/deps"
	"github.com/arcanum-obscurum/arcanum/internal/logger"
)

type createEntryResponse struct {
	Entry      *domain.Entry     `json:"entry"`
	Evaluation domain.Evaluation `json:"evaluation"`
	Message    string            `json:"message,omitempty"`
}

// CreateEntry validates a candidate entry, evaluates it against the
// watch policy, then makes it visible in the catalog. The watch
// evaluation happens before insertion so the alert reflects the entry
// being added, not a later catalog state.
func CreateEntry(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in domain.EntryInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		entry, err := domain.NewEntry(in)
		if err != nil {
			var verr *domain.ValidationError
			if errors.As(err, &verr) {
				writeError(w, http.StatusUnprocessableEntity, verr.Error())
				return
			}
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		ev, message := d.Notifier.Record(r.Context(), entry)
		d.Catalog.Add(entry)

		d.Logger.Info("entry created",
			logger.String("id", entry.ID),
			logger.String("title", entry.Title),
			logger.String("grade", string(entry.ThreatGrade)),
			logger.Bool("alert", ev.Alert))

		writeJSON(w, http.StatusCreated, createEntryResponse{
			Entry:      entry,
			Evaluation: ev,
			Message:    message,
		})
	}
}

// ListEntries returns the catalog newest first. Opening the catalog is
// the acknowledgement gesture, so the pending notification flag is
// cleared as a side effect.
func ListEntries(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d.Notifier.Clear(r.Context())
		writeJSON(w, http.StatusOK, d.Catalog.All())
	}
}

func GetEntry(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		entry, ok := d.Catalog.Get(id)
		if !ok {
			writeError(w, http.StatusNotFound, "entry not found")
			return
		}
		writeJSON(w, http.StatusOK, entry)
	}
}

func DeleteEntry(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if !d.Catalog.Delete(id) {
			writeError(w, http.StatusNotFound, "entry not found")
			return
		}
		d.Logger.Info("entry deleted", logger.String("id", id))
		w.WriteHeader(http.StatusNoContent)
	}
}
