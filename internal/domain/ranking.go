package domain

import "sort"

// GroupAndRank returns the entries of a single threat grade ordered by
// power level, strongest first. Entries without a power level rank as 0
// and sort last. The sort is stable: ties keep their original relative
// order. Entries of other grades (or no grade) are excluded; they remain
// visible in the unfiltered catalog.
func GroupAndRank(catalog []*Entry, grade ThreatGrade) []*Entry {
	group := make([]*Entry, 0)
	for _, entry := range catalog {
		if entry.ThreatGrade == grade && grade.Valid() {
			group = append(group, entry)
		}
	}

	sort.SliceStable(group, func(i, j int) bool {
		return group[i].PowerLevel > group[j].PowerLevel
	})

	return group
}
