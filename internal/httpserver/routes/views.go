package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/arcanum-obscurum/arcanum/internal/httpserver/deps"
	"github.com/arcanum-obscurum/arcanum/internal/httpserver/handlers"
)

func init() { Register(registerViews) }

func registerViews(r chi.Router, d deps.Deps) {
	r.Get("/api/map", handlers.MapPins(d))
	r.Get("/api/stories", handlers.Stories(d))
}
