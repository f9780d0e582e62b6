package scoring

import (
	"sort"

	"github.com/abhisek/verdict/internal/casebook"
)

// Reform is a policy lever selected for the juror's top reforms.
type Reform struct {
	Text      string
	CaseTitle string
	Priority  int
}

// Weight returns the ranking priority a verdict gives its case's levers.
// A case without a verdict gets the lowest weight.
func Weight(v casebook.VerdictType, ok bool) int {
	if !ok {
		return 1
	}
	switch v {
	case casebook.Guilty:
		return 3
	case casebook.Mixed:
		return 2
	default:
		return 1
	}
}

// RankReforms expands every case's policy levers into candidates weighted
// by the case verdict, sorts them by priority (catalog order breaks ties)
// and keeps the first MaxReforms. Fewer candidates yield fewer reforms.
func RankReforms(cases []casebook.Case, verdicts map[int]casebook.VerdictType) []Reform {
	var candidates []Reform
	for _, c := range cases {
		v, ok := verdicts[c.ID]
		priority := Weight(v, ok)
		for _, lever := range c.PolicyLevers {
			candidates = append(candidates, Reform{
				Text:      lever.Text,
				CaseTitle: c.Title,
				Priority:  priority,
			})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Priority > candidates[j].Priority
	})

	if len(candidates) > MaxReforms {
		candidates = candidates[:MaxReforms]
	}
	return candidates
}
