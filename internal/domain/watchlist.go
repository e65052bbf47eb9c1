package domain

import (
	"fmt"
	"strings"
)

// Preferences is the user-configured watch policy. Persisted as a whole
// on every mutation; defaults apply when nothing is persisted yet.
type Preferences struct {
	Enabled       bool     `json:"enabled"`
	WatchedTags   []string `json:"watchedTags"`
	WatchedGrades []string `json:"watchedGrades"`
}

// DefaultPreferences returns the policy used when none is persisted:
// disabled, no watched tags, the special grade pre-watched.
func DefaultPreferences() Preferences {
	return Preferences{
		Enabled:       false,
		WatchedTags:   []string{},
		WatchedGrades: []string{string(GradeSpecial)},
	}
}

// Evaluation is the outcome of matching a new entry against the policy.
type Evaluation struct {
	Alert      bool `json:"alert"`
	TagMatch   bool `json:"tagMatch"`
	GradeMatch bool `json:"gradeMatch"`
}

// EvaluateWatch decides whether a newly added entry should raise an
// alert. With the policy disabled it never alerts. A tag matches only by
// case-folded exact equality against a watched tag, never by substring.
// A grade matches by exact membership in the watched grade set.
func EvaluateWatch(entry *Entry, prefs Preferences) Evaluation {
	if !prefs.Enabled {
		return Evaluation{}
	}

	ev := Evaluation{}
	for _, tag := range entry.Tags {
		for _, watched := range prefs.WatchedTags {
			if strings.EqualFold(tag, watched) {
				ev.TagMatch = true
				break
			}
		}
		if ev.TagMatch {
			break
		}
	}

	if entry.ThreatGrade != "" {
		for _, watched := range prefs.WatchedGrades {
			if string(entry.ThreatGrade) == watched {
				ev.GradeMatch = true
				break
			}
		}
	}

	ev.Alert = ev.TagMatch || ev.GradeMatch
	return ev
}

// AlertMessage composes the human-readable alert for a matched entry:
// a fixed warning header, the entry title, and one line per true reason.
// The grade line names the grade; the tag line is a static notice that
// does not name the matching tag.
func (ev Evaluation) AlertMessage(entry *Entry) string {
	if !ev.Alert {
		return ""
	}

	var b strings.Builder
	b.WriteString("⚠️ ALERTA DE VIGILÂNCIA ⚠️\n\n")
	fmt.Fprintf(&b, "O objeto %q corresponde aos seus protocolos de monitoramento!\n", entry.Title)
	if ev.GradeMatch {
		fmt.Fprintf(&b, "• Nível de Ameaça: %s\n", entry.ThreatGrade)
	}
	if ev.TagMatch {
		b.WriteString("• Tags Suspeitas Detectadas")
	}
	return b.String()
}
