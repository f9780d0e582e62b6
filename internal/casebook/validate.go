package casebook

import (
	"fmt"
	"strings"
)

// ValidationError lists every problem found in a catalog.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("case catalog validation failed:\n  %s", strings.Join(e.Problems, "\n  "))
}

// validateCases performs the structural checks on a case list.
// Returns a *ValidationError describing all problems found, or nil if valid.
func validateCases(cases []Case) error {
	var errs []string

	if len(cases) == 0 {
		errs = append(errs, "catalog has no cases")
	}

	ids := make(map[int]bool, len(cases))
	for i, c := range cases {
		prefix := fmt.Sprintf("case %d (id %d)", i, c.ID)

		if c.ID <= 0 {
			errs = append(errs, fmt.Sprintf("%s: id must be positive", prefix))
		}
		if ids[c.ID] {
			errs = append(errs, fmt.Sprintf("duplicate case ID: %d", c.ID))
		}
		ids[c.ID] = true

		if strings.TrimSpace(c.Title) == "" {
			errs = append(errs, fmt.Sprintf("%s: title is empty", prefix))
		}

		// Each verdict type must be offered exactly once.
		seen := make(map[VerdictType]int, len(c.VerdictOptions))
		for _, o := range c.VerdictOptions {
			if !o.Type.Valid() {
				errs = append(errs, fmt.Sprintf("%s: unknown verdict option %q", prefix, o.Type))
				continue
			}
			seen[o.Type]++
		}
		for _, v := range AllVerdicts() {
			switch n := seen[v]; {
			case n == 0:
				errs = append(errs, fmt.Sprintf("%s: missing verdict option %q", prefix, v))
			case n > 1:
				errs = append(errs, fmt.Sprintf("%s: verdict option %q appears %d times", prefix, v, n))
			}
		}

		if !c.CorrectVerdict.Valid() {
			errs = append(errs, fmt.Sprintf("%s: correct verdict %q is not a known verdict", prefix, c.CorrectVerdict))
		}
		if c.IsLocal && c.LocalTag == "" {
			errs = append(errs, fmt.Sprintf("%s: local case has no local tag", prefix))
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Problems: errs}
	}
	return nil
}
