package domain

import (
	"strings"
	"testing"
)

func TestEvaluateWatchDisabled(t *testing.T) {
	entry := &Entry{Title: "X", Tags: []string{"maldição"}, ThreatGrade: GradeSpecial}
	prefs := Preferences{
		Enabled:       false,
		WatchedTags:   []string{"maldição"},
		WatchedGrades: []string{string(GradeSpecial)},
	}

	ev := EvaluateWatch(entry, prefs)
	if ev.Alert || ev.TagMatch || ev.GradeMatch {
		t.Errorf("EvaluateWatch() with disabled prefs = %+v, want no alert", ev)
	}
}

func TestEvaluateWatchTagMatching(t *testing.T) {
	tests := []struct {
		name    string
		tags    []string
		watched []string
		want    bool
	}{
		{
			name:    "case insensitive exact match",
			tags:    []string{"Maldição"},
			watched: []string{"maldição"},
			want:    true,
		},
		{
			name:    "no substring matching",
			tags:    []string{"amaldiçoado"},
			watched: []string{"maldição"},
			want:    false,
		},
		{
			name:    "any tag against any watched tag",
			tags:    []string{"arma", "selo"},
			watched: []string{"vidência", "SELO"},
			want:    true,
		},
		{
			name:    "no tags",
			tags:    nil,
			watched: []string{"maldição"},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := &Entry{Title: "X", Tags: tt.tags}
			prefs := Preferences{Enabled: true, WatchedTags: tt.watched}

			ev := EvaluateWatch(entry, prefs)
			if ev.TagMatch != tt.want {
				t.Errorf("TagMatch = %v, want %v", ev.TagMatch, tt.want)
			}
			if ev.Alert != tt.want {
				t.Errorf("Alert = %v, want %v", ev.Alert, tt.want)
			}
		})
	}
}

func TestEvaluateWatchGradeMatching(t *testing.T) {
	entry := &Entry{Title: "X", ThreatGrade: GradeSpecial}
	prefs := Preferences{Enabled: true, WatchedGrades: []string{string(GradeSpecial)}}

	ev := EvaluateWatch(entry, prefs)
	if !ev.GradeMatch || !ev.Alert {
		t.Errorf("EvaluateWatch() = %+v, want grade match alert", ev)
	}

	unclassified := &Entry{Title: "X"}
	ev = EvaluateWatch(unclassified, prefs)
	if ev.GradeMatch || ev.Alert {
		t.Errorf("EvaluateWatch() unclassified = %+v, want no alert", ev)
	}
}

func TestAlertMessage(t *testing.T) {
	entry := &Entry{Title: "Espada", Tags: []string{"maldição"}, ThreatGrade: GradeSpecial}
	prefs := Preferences{
		Enabled:       true,
		WatchedTags:   []string{"maldição"},
		WatchedGrades: []string{string(GradeSpecial)},
	}

	ev := EvaluateWatch(entry, prefs)
	msg := ev.AlertMessage(entry)

	if !strings.Contains(msg, "ALERTA DE VIGILÂNCIA") {
		t.Error("AlertMessage() missing warning header")
	}
	if !strings.Contains(msg, `"Espada"`) {
		t.Error("AlertMessage() missing entry title")
	}
	if !strings.Contains(msg, "Nível de Ameaça: Classe Especial") {
		t.Error("AlertMessage() grade line should name the grade")
	}
	if !strings.Contains(msg, "Tags Suspeitas Detectadas") {
		t.Error("AlertMessage() missing tag notice")
	}
	// The tag line never names the matching tag.
	if strings.Contains(msg, "maldição") {
		t.Error("AlertMessage() must not name the matching tag")
	}
}

func TestAlertMessageEmptyWithoutAlert(t *testing.T) {
	ev := Evaluation{}
	if msg := ev.AlertMessage(&Entry{Title: "X"}); msg != "" {
		t.Errorf("AlertMessage() without alert = %q, want empty", msg)
	}
}

func TestDefaultPreferences(t *testing.T) {
	prefs := DefaultPreferences()
	if prefs.Enabled {
		t.Error("DefaultPreferences() should be disabled")
	}
	if len(prefs.WatchedTags) != 0 {
		t.Errorf("WatchedTags = %v, want empty", prefs.WatchedTags)
	}
	if !slicesEqual(prefs.WatchedGrades, []string{string(GradeSpecial)}) {
		t.Errorf("WatchedGrades = %v, want [%s]", prefs.WatchedGrades, GradeSpecial)
	}
}
