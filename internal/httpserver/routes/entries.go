package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/arcanum-obscurum/arcanum/internal/httpserver/deps"
	"github.com/arcanum-obscurum/arcanum/internal/httpserver/handlers"
	"github.com/arcanum-obscurum/arcanum/internal/httpserver/mw"
)

func init() { Register(registerEntries) }

func registerEntries(r chi.Router, d deps.Deps) {
	create := mw.RateLimit(mw.RateLimitConfig{
		Burst:        d.CreateBurst,
		RefillPerMin: d.CreateRefill,
		TrustProxy:   d.TrustProxy,
	})

	r.Get("/api/entries", handlers.ListEntries(d))
	r.With(create).Post("/api/entries", handlers.CreateEntry(d))
	r.Get("/api/entries/{id}", handlers.GetEntry(d))
	r.Delete("/api/entries/{id}", handlers.DeleteEntry(d))
}
