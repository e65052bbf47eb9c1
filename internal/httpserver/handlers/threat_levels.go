package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/arcanum-obscurum/arcanum/internal/domain"
	"github.com/arcanum-obscurum/arcanum/internal/httpserver/deps"
	"github.com/arcanum-obscurum/arcanum/internal/logger"
)

type threatLevelView struct {
	domain.ThreatLevelDefinition
	MaxContainment bool `json:"maxContainment"`
}

type updateThreatLevelRequest struct {
	Grade       string `json:"grade"`
	Description string `json:"description"`
}

// ListThreatLevels returns the grade registry in its fixed danger-first
// order, annotating each row with its containment banner state.
func ListThreatLevels(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defs := d.ThreatLevels.All()
		views := make([]threatLevelView, 0, len(defs))
		for _, def := range defs {
			views = append(views, threatLevelView{
				ThreatLevelDefinition: def,
				MaxContainment:        def.MaxContainment(),
			})
		}
		writeJSON(w, http.StatusOK, views)
	}
}

// UpdateThreatLevel edits the grade and description of one registry
// row. Clearance levels and registry size are fixed at startup.
func UpdateThreatLevel(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var req updateThreatLevelRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		grade, err := domain.ParseThreatGrade(req.Grade)
		if err != nil || grade == "" {
			writeError(w, http.StatusUnprocessableEntity, "unknown threat grade")
			return
		}

		def, err := d.ThreatLevels.Update(id, grade, strings.TrimSpace(req.Description))
		if err != nil {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}

		d.Logger.Info("threat level updated",
			logger.String("id", id),
			logger.String("grade", string(grade)))

		writeJSON(w, http.StatusOK, threatLevelView{
			ThreatLevelDefinition: def,
			MaxContainment:        def.MaxContainment(),
		})
	}
}
