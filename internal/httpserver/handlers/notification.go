package handlers

import (
	"net/http"

	"github.com/arcanum-obscurum/arcanum/internal/httpserver/deps"
)

type notificationResponse struct {
	Pending bool `json:"pending"`
}

// Notification reports whether an unacknowledged alert is pending.
func Notification(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, notificationResponse{
			Pending: d.Notifier.HasNotification(r.Context()),
		})
	}
}

// ClearNotification acknowledges the pending alert, if any.
func ClearNotification(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d.Notifier.Clear(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}
}
