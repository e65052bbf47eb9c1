// Package threatfile loads threat-level definitions from an optional
// YAML file, overriding the built-in seed at startup.
package threatfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/arcanum-obscurum/arcanum/internal/domain"
)

// definitionSchema is the YAML shape of one definition.
type definitionSchema struct {
	ID             string `yaml:"id"`
	Grade          string `yaml:"grade"`
	Description    string `yaml:"description"`
	ClearanceLevel int    `yaml:"clearance_level"`
}

// Loader reads a threat-level definitions file.
type Loader struct {
	filePath string
}

// NewLoader creates a loader for the given file path.
func NewLoader(filePath string) *Loader {
	return &Loader{filePath: filePath}
}

// Load reads and validates the definitions file. The registry is fixed
// at five rows, one per vocabulary grade.
func (l *Loader) Load() ([]domain.ThreatLevelDefinition, error) {
	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read threat level file: %w", err)
	}

	var rows []definitionSchema
	if err := yaml.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse threat level yaml: %w", err)
	}

	if len(rows) != len(domain.Grades()) {
		return nil, fmt.Errorf("threat level file must define exactly %d grades, got %d",
			len(domain.Grades()), len(rows))
	}

	defs := make([]domain.ThreatLevelDefinition, 0, len(rows))
	seen := make(map[domain.ThreatGrade]bool, len(rows))
	for i, row := range rows {
		grade, err := domain.ParseThreatGrade(row.Grade)
		if err != nil || grade == "" {
			return nil, fmt.Errorf("definition %d: unknown threat grade %q", i, row.Grade)
		}
		if seen[grade] {
			return nil, fmt.Errorf("definition %d: duplicate threat grade %q", i, row.Grade)
		}
		seen[grade] = true

		if row.ClearanceLevel < 1 || row.ClearanceLevel > 5 {
			return nil, fmt.Errorf("definition %d: clearance level %d out of range 1-5", i, row.ClearanceLevel)
		}
		if row.ID == "" {
			return nil, fmt.Errorf("definition %d: missing id", i)
		}

		defs = append(defs, domain.ThreatLevelDefinition{
			ID:             row.ID,
			Grade:          grade,
			Description:    row.Description,
			ClearanceLevel: row.ClearanceLevel,
		})
	}

	return defs, nil
}
