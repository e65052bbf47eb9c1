package index

import (
	"sync"
	"time"

	"github.com/arcanum-obscurum/arcanum/internal/domain"
)

// Events holds the latest batch of disaster feed events. Each poll
// replaces the whole batch; nothing here survives a restart.
type Events struct {
	mu        sync.RWMutex
	events    []domain.FeedEvent
	lastFetch time.Time
}

// NewEvents creates an empty event buffer.
func NewEvents() *Events {
	return &Events{}
}

// Update replaces all events with the latest batch.
func (e *Events) Update(events []domain.FeedEvent) {
	e.mu.Lock()
	defer e.mu.Unlock()

	replaced := make([]domain.FeedEvent, len(events))
	copy(replaced, events)
	e.events = replaced
	e.lastFetch = time.Now()
}

// All returns a snapshot of the current batch.
func (e *Events) All() []domain.FeedEvent {
	e.mu.RLock()
	defer e.mu.RUnlock()

	snapshot := make([]domain.FeedEvent, len(e.events))
	copy(snapshot, e.events)
	return snapshot
}

// LastFetch returns the timestamp of the last successful update.
func (e *Events) LastFetch() time.Time {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.lastFetch
}
