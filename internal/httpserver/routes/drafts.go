package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/arcanum-obscurum/arcanum/internal/httpserver/deps"
	"github.com/arcanum-obscurum/arcanum/internal/httpserver/handlers"
)

func init() { Register(registerDrafts) }

func registerDrafts(r chi.Router, d deps.Deps) {
	r.Post("/api/drafts", handlers.Draft(d))
}
