package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/arcanum-obscurum/arcanum/internal/httpserver/deps"
	"github.com/arcanum-obscurum/arcanum/internal/httpserver/handlers"
)

func init() { Register(registerFeed) }

func registerFeed(r chi.Router, d deps.Deps) {
	r.Get("/api/feed", handlers.Feed(d))
	r.Post("/api/feed/refresh", handlers.RefreshFeed(d))
}
