package index

import (
	"sync"

	"github.com/arcanum-obscurum/arcanum/internal/domain"
)

// Catalog is the in-memory, insertion-ordered catalog list. Newest
// entries sit at the head, matching how the listing presents them.
// The creation and deletion paths are the only writers; readers get
// snapshot slices and never mutate entries in place.
type Catalog struct {
	mu      sync.RWMutex
	entries []*domain.Entry
	byID    map[string]*domain.Entry
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		byID: make(map[string]*domain.Entry),
	}
}

// Add prepends a new entry. The ID is assumed unique; creation is the
// only producer of IDs.
func (c *Catalog) Add(entry *domain.Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = append([]*domain.Entry{entry}, c.entries...)
	c.byID[entry.ID] = entry
}

// Get retrieves an entry by ID.
func (c *Catalog) Get(id string) (*domain.Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.byID[id]
	return entry, ok
}

// Delete removes an entry by ID. Reports whether it existed.
func (c *Catalog) Delete(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.byID[id]; !ok {
		return false
	}
	delete(c.byID, id)

	kept := make([]*domain.Entry, 0, len(c.entries)-1)
	for _, entry := range c.entries {
		if entry.ID != id {
			kept = append(kept, entry)
		}
	}
	c.entries = kept
	return true
}

// All returns a snapshot of the catalog, newest first.
func (c *Catalog) All() []*domain.Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snapshot := make([]*domain.Entry, len(c.entries))
	copy(snapshot, c.entries)
	return snapshot
}

// Count returns the number of entries.
func (c *Catalog) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}
