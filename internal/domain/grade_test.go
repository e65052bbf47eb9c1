package domain

import "testing"

func TestParseThreatGrade(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    ThreatGrade
		wantErr bool
	}{
		{name: "special", raw: "Classe Especial", want: GradeSpecial},
		{name: "class four", raw: "Classe 4", want: Grade4},
		{name: "empty means unclassified", raw: "", want: ""},
		{name: "unknown rejected", raw: "Classe 9", wantErr: true},
		{name: "case sensitive vocabulary", raw: "classe 1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseThreatGrade(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseThreatGrade(%q) should fail", tt.raw)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseThreatGrade(%q) error = %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("ParseThreatGrade(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestGradesDangerOrder(t *testing.T) {
	grades := Grades()
	want := []ThreatGrade{GradeSpecial, Grade1, Grade2, Grade3, Grade4}
	if len(grades) != len(want) {
		t.Fatalf("Grades() = %d values, want %d", len(grades), len(want))
	}
	for i := range want {
		if grades[i] != want[i] {
			t.Errorf("Grades()[%d] = %q, want %q", i, grades[i], want[i])
		}
	}
}

func TestSeedThreatLevels(t *testing.T) {
	defs := SeedThreatLevels()
	if len(defs) != 5 {
		t.Fatalf("SeedThreatLevels() = %d definitions, want 5", len(defs))
	}

	for i, def := range defs {
		if def.Grade != Grades()[i] {
			t.Errorf("definition %d grade = %q, want %q", i, def.Grade, Grades()[i])
		}
	}

	// Clearance 4 and above flags maximum containment.
	if !defs[0].MaxContainment() || !defs[1].MaxContainment() {
		t.Error("clearance >= 4 should flag maximum containment")
	}
	if defs[2].MaxContainment() {
		t.Error("clearance 3 should not flag maximum containment")
	}
}
