package domain

// Severity grades a feed event.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Valid reports whether the severity is one of the known values.
func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	default:
		return false
	}
}

// FeedEvent is one item of the synthetic disaster news feed. Events are
// held in memory only and rotate out as newer ones arrive.
type FeedEvent struct {
	ID          string       `json:"id"`
	Location    string       `json:"location"`
	Type        string       `json:"type"`
	Severity    Severity     `json:"severity"`
	Description string       `json:"description"`
	Timestamp   string       `json:"timestamp"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}
