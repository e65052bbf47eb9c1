package domain

// Display plane dimensions for the equirectangular projection.
const (
	MapWidth  = 1000.0
	MapHeight = 500.0
)

// PseudoCoordinates derives a stable, visually plausible position for an
// entry that lacks explicit coordinates. Pure and deterministic: the same
// ID always yields the same position. The result is visualization-only
// and must never be persisted as the entry's real coordinates.
func PseudoCoordinates(id string) Coordinates {
	h := 0
	for _, r := range id {
		h += int(r)
	}
	return Coordinates{
		Lat: float64(h%140 - 70),        // [-70, 69]
		Lng: float64((h*13)%360 - 180),  // [-180, 179]
	}
}

// Project maps geographic coordinates onto the display plane using an
// equirectangular projection. Input lat in [-90, 90], lng in [-180, 180];
// output x in [0, MapWidth], y in [0, MapHeight]. y grows southward:
// north is y ~= 0.
func Project(c Coordinates) (x, y float64) {
	x = (c.Lng + 180) * (MapWidth / 360)
	y = (-c.Lat + 90) * (MapHeight / 180)
	return x, y
}

// Position resolves the display position of an entry: its explicit
// coordinates when present, otherwise the pseudo-position derived from
// its ID. The second return reports whether the position is explicit.
func Position(e *Entry) (Coordinates, bool) {
	if e.Coordinates != nil {
		return *e.Coordinates, true
	}
	return PseudoCoordinates(e.ID), false
}
