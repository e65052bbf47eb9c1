package domain

// Entry represents a single cataloged artifact record.
//
// The catalog list is owned by the application session; everything else
// (search, ranking, map placement) operates on borrowed read references.
type Entry struct {
	// ─────────────────────────────
	// Identity (immutable)
	// ─────────────────────────────

	// ID is the canonical unique identifier, assigned at creation
	// time and never reused.
	ID string `json:"id"`

	// DateAdded is the creation timestamp in milliseconds since epoch.
	// Assigned once, never mutated. No ordering invariant beyond that.
	DateAdded int64 `json:"dateAdded"`

	// ─────────────────────────────
	// Display
	// ─────────────────────────────

	// Title is the non-empty display name.
	Title string `json:"title"`

	// Description is free text, may be empty.
	Description string `json:"description"`

	// ImageURL optionally references a displayable image
	// (data URI or remote URL). Absence is a valid state.
	ImageURL string `json:"imageUrl,omitempty"`

	// ─────────────────────────────
	// Annotation
	// ─────────────────────────────

	// Tags is an ordered list of labels. Duplicates are permitted;
	// matching is case-insensitive. Never contains empty strings.
	Tags []string `json:"tags"`

	// Notes is private free text. It is searchable but must never be
	// surfaced in public-facing card summaries.
	Notes string `json:"notes,omitempty"`

	// CustomFields is an ordered list of key/value pairs.
	// Pairs with an empty key are dropped at creation.
	CustomFields []CustomField `json:"customFields,omitempty"`

	// ─────────────────────────────
	// Placement
	// ─────────────────────────────

	// Coordinates is the explicit geographic position, when known.
	// When nil, views fall back to the deterministic pseudo-position
	// derived from ID. The fallback is visualization-only and is
	// never written back here.
	Coordinates *Coordinates `json:"coordinates,omitempty"`

	// ─────────────────────────────
	// Classification
	// ─────────────────────────────

	// Bearer is the optional custodian association.
	Bearer *Bearer `json:"bearer,omitempty"`

	// ThreatGrade is the categorical danger classification, drawn from
	// the closed vocabulary. Empty means unclassified.
	ThreatGrade ThreatGrade `json:"threatGrade,omitempty"`

	// PowerLevel ranks entries within a threat grade, 0 to 10000 in
	// steps of 50. Zero means unranked and sorts last.
	PowerLevel int `json:"powerLevel,omitempty"`
}

// CustomField is a single user-defined key/value annotation.
// The key is never empty; the value may be.
type CustomField struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Coordinates is an explicit geographic position in degrees.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// BearerRank is the closed custodian classification.
type BearerRank string

const (
	// RankConcept denotes a materially more dangerous classification
	// than RankObject and drives distinct visual/sorting treatment.
	RankConcept BearerRank = "Concept"
	RankObject  BearerRank = "Object"
)

// Valid reports whether the rank is one of the known values.
func (r BearerRank) Valid() bool {
	return r == RankConcept || r == RankObject
}

// LocalizedLabel returns the display label used by the public UI.
func (r BearerRank) LocalizedLabel() string {
	switch r {
	case RankConcept:
		return "conceito"
	case RankObject:
		return "objeto"
	default:
		return ""
	}
}

// Bearer is the optional custodian association of an entry.
type Bearer struct {
	Name string     `json:"name"`
	Rank BearerRank `json:"rank"`
}
