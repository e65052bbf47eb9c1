package handlers

import (
	"net/http"

	"github.com/arcanum-obscurum/arcanum/internal/domain"
	"github.com/arcanum-obscurum/arcanum/internal/httpserver/deps"
)

type mapPin struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	ThreatGrade domain.ThreatGrade `json:"threatGrade,omitempty"`
	Lat         float64            `json:"lat"`
	Lng         float64            `json:"lng"`
	X           float64            `json:"x"`
	Y           float64            `json:"y"`
	Approximate bool               `json:"approximate"`
}

type mapResponse struct {
	Width  float64  `json:"width"`
	Height float64  `json:"height"`
	Pins   []mapPin `json:"pins"`
}

// MapPins projects every catalog entry onto the world map. Entries
// without explicit coordinates get a deterministic pseudo-position and
// are flagged approximate.
func MapPins(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		catalog := d.Catalog.All()
		pins := make([]mapPin, 0, len(catalog))

		for _, entry := range catalog {
			coords, explicit := domain.Position(entry)
			x, y := domain.Project(coords)
			pins = append(pins, mapPin{
				ID:          entry.ID,
				Title:       entry.Title,
				ThreatGrade: entry.ThreatGrade,
				Lat:         coords.Lat,
				Lng:         coords.Lng,
				X:           x,
				Y:           y,
				Approximate: !explicit,
			})
		}

		writeJSON(w, http.StatusOK, mapResponse{
			Width:  domain.MapWidth,
			Height: domain.MapHeight,
			Pins:   pins,
		})
	}
}
