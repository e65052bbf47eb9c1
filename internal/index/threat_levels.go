package index

import (
	"fmt"
	"sync"

	"github.com/arcanum-obscurum/arcanum/internal/domain"
)

// ThreatLevels is the small admin-editable grade registry. It is seeded
// once at startup and its size never changes at runtime; only grade and
// description are mutable.
type ThreatLevels struct {
	mu   sync.RWMutex
	defs []domain.ThreatLevelDefinition
}

// NewThreatLevels creates the registry from its seed definitions.
func NewThreatLevels(defs []domain.ThreatLevelDefinition) *ThreatLevels {
	seeded := make([]domain.ThreatLevelDefinition, len(defs))
	copy(seeded, defs)
	return &ThreatLevels{defs: seeded}
}

// All returns a snapshot of the definitions in registry order.
func (t *ThreatLevels) All() []domain.ThreatLevelDefinition {
	t.mu.RLock()
	defer t.mu.RUnlock()

	snapshot := make([]domain.ThreatLevelDefinition, len(t.defs))
	copy(snapshot, t.defs)
	return snapshot
}

// Update edits the grade and description of one definition. Definitions
// are never created or deleted at runtime.
func (t *ThreatLevels) Update(id string, grade domain.ThreatGrade, description string) (domain.ThreatLevelDefinition, error) {
	if !grade.Valid() {
		return domain.ThreatLevelDefinition{}, fmt.Errorf("unknown threat grade: %q", grade)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.defs {
		if t.defs[i].ID == id {
			t.defs[i].Grade = grade
			t.defs[i].Description = description
			return t.defs[i], nil
		}
	}
	return domain.ThreatLevelDefinition{}, fmt.Errorf("threat level not found: %s", id)
}
