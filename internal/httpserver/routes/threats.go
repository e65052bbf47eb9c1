package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/arcanum-obscurum/arcanum/internal/httpserver/deps"
	"github.com/arcanum-obscurum/arcanum/internal/httpserver/handlers"
)

func init() { Register(registerThreats) }

func registerThreats(r chi.Router, d deps.Deps) {
	r.Get("/api/threats/{grade}", handlers.ThreatGroup(d))
	r.Get("/api/threat-levels", handlers.ListThreatLevels(d))
	r.Put("/api/threat-levels/{id}", handlers.UpdateThreatLevel(d))
}
