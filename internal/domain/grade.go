package domain

import "fmt"

// ThreatGrade is the closed danger vocabulary, highest danger first.
// Entries carry at most one grade; the registry of definitions below
// describes each grade for display.
type ThreatGrade string

const (
	GradeSpecial ThreatGrade = "Classe Especial"
	Grade1       ThreatGrade = "Classe 1"
	Grade2       ThreatGrade = "Classe 2"
	Grade3       ThreatGrade = "Classe 3"
	Grade4       ThreatGrade = "Classe 4"
)

// Grades returns the full vocabulary in danger order.
func Grades() []ThreatGrade {
	return []ThreatGrade{GradeSpecial, Grade1, Grade2, Grade3, Grade4}
}

// Valid reports whether the grade is one of the five known values.
func (g ThreatGrade) Valid() bool {
	switch g {
	case GradeSpecial, Grade1, Grade2, Grade3, Grade4:
		return true
	default:
		return false
	}
}

// ParseThreatGrade validates a raw grade string against the vocabulary.
// The empty string parses to the zero grade (unclassified).
func ParseThreatGrade(raw string) (ThreatGrade, error) {
	if raw == "" {
		return "", nil
	}
	g := ThreatGrade(raw)
	if !g.Valid() {
		return "", fmt.Errorf("unknown threat grade: %q", raw)
	}
	return g, nil
}

// MaxContainmentClearance is the clearance level at and above which a
// definition carries the maximum containment banner.
const MaxContainmentClearance = 4

// ThreatLevelDefinition is one row of the admin-editable grade registry.
// The registry is seeded once at startup and never grows or shrinks at
// runtime; only Grade and Description are mutable, via admin edit.
type ThreatLevelDefinition struct {
	ID             string      `json:"id"`
	Grade          ThreatGrade `json:"grade"`
	Description    string      `json:"description"`
	ClearanceLevel int         `json:"clearanceLevel"`
}

// MaxContainment reports whether the definition warrants the maximum
// containment banner.
func (d ThreatLevelDefinition) MaxContainment() bool {
	return d.ClearanceLevel >= MaxContainmentClearance
}

// SeedThreatLevels returns the five built-in definitions, danger first.
func SeedThreatLevels() []ThreatLevelDefinition {
	return []ThreatLevelDefinition{
		{ID: "1", Grade: GradeSpecial, Description: "Anomalias capazes de destruir cidades inteiras. O contato deve ser evitado a todo custo.", ClearanceLevel: 5},
		{ID: "2", Grade: Grade1, Description: "Ameaças de alto nível. Requer feiticeiros de elite para contenção.", ClearanceLevel: 4},
		{ID: "3", Grade: Grade2, Description: "Perigo significativo para civis. Habitualmente letais.", ClearanceLevel: 3},
		{ID: "4", Grade: Grade3, Description: "Ameaças convencionais. Podem causar ferimentos graves.", ClearanceLevel: 2},
		{ID: "5", Grade: Grade4, Description: "Baixo risco. Geralmente travessuras ou maldições menores.", ClearanceLevel: 1},
	}
}
