package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/arcanum-obscurum/arcanum/internal/httpserver/deps"
	"github.com/arcanum-obscurum/arcanum/internal/httpserver/handlers"
)

func init() { Register(registerNotify) }

func registerNotify(r chi.Router, d deps.Deps) {
	r.Get("/api/prefs", handlers.GetPreferences(d))
	r.Put("/api/prefs", handlers.PutPreferences(d))
	r.Get("/api/notification", handlers.Notification(d))
	r.Delete("/api/notification", handlers.ClearNotification(d))
}
