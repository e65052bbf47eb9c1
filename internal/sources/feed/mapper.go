package feed

import (
	"github.com/arcanum-obscurum/arcanum/internal/domain"
)

// Mapper converts wire events to domain events, dropping the ones the
// feed served malformed.
type Mapper struct{}

// NewMapper creates a new mapper instance.
func NewMapper() *Mapper {
	return &Mapper{}
}

// MapEvents converts wire events to domain.FeedEvent. Events without an
// ID or with an unknown severity are skipped rather than failing the
// whole batch.
func (m *Mapper) MapEvents(wire []wireEvent) []domain.FeedEvent {
	events := make([]domain.FeedEvent, 0, len(wire))
	for _, w := range wire {
		if w.ID == "" {
			continue
		}
		severity := domain.Severity(w.Severity)
		if !severity.Valid() {
			continue
		}

		event := domain.FeedEvent{
			ID:          w.ID,
			Location:    w.Location,
			Type:        w.Type,
			Severity:    severity,
			Description: w.Description,
			Timestamp:   w.Timestamp,
		}
		if w.Coordinates != nil {
			event.Coordinates = &domain.Coordinates{
				Lat: w.Coordinates.Lat,
				Lng: w.Coordinates.Lng,
			}
		}
		events = append(events, event)
	}
	return events
}
