package domain

import "strings"

// Search filters the catalog by case-insensitive substring match against
// title, description, tags, private notes, bearer name and bearer rank
// (including the rank's localized label). An entry matches if any field
// matches. The result preserves input order (stable filter, no ranking).
//
// A trimmed-empty query returns an empty result regardless of catalog
// contents: the UI treats this as a neutral idle state, distinct from
// "no matches". Pure function of its two inputs.
func Search(catalog []*Entry, query string) []*Entry {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []*Entry{}
	}

	results := make([]*Entry, 0)
	for _, entry := range catalog {
		if matches(entry, q) {
			results = append(results, entry)
		}
	}
	return results
}

func matches(e *Entry, q string) bool {
	if contains(e.Title, q) || contains(e.Description, q) || contains(e.Notes, q) {
		return true
	}
	for _, tag := range e.Tags {
		if contains(tag, q) {
			return true
		}
	}
	if e.Bearer != nil {
		if contains(e.Bearer.Name, q) ||
			contains(string(e.Bearer.Rank), q) ||
			contains(e.Bearer.Rank.LocalizedLabel(), q) {
			return true
		}
	}
	return false
}

// contains is a case-insensitive substring check. The query is already
// lowercased by Search.
func contains(field, q string) bool {
	if field == "" {
		return false
	}
	return strings.Contains(strings.ToLower(field), q)
}
