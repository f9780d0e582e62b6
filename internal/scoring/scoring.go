// Package scoring derives the jury summary from the case list and the
// verdicts a juror delivered: the correctness score, the ranked reforms
// and the shareable text recap. Everything here is a pure function of its
// inputs and is recomputed on demand.
package scoring

import (
	"github.com/abhisek/verdict/internal/casebook"
)

// MaxReforms is how many reforms the ranking keeps.
const MaxReforms = 3

// CaseResult is one row of the jury summary.
type CaseResult struct {
	Case         casebook.Case
	Verdict      casebook.VerdictType
	HasVerdict   bool
	Correct      bool
	Label        string // label for the juror's verdict
	CorrectLabel string // label for the actual outcome
}

// Result holds everything the results screen displays.
type Result struct {
	Score   int
	Total   int
	Cases   []CaseResult
	Reforms []Reform
	Share   string
}

// Perfect reports whether every case was judged correctly.
func (r Result) Perfect() bool {
	return r.Total > 0 && r.Score == r.Total
}

// Evaluate builds the full jury summary.
func Evaluate(cases []casebook.Case, verdicts map[int]casebook.VerdictType) Result {
	reforms := RankReforms(cases, verdicts)
	score := Score(cases, verdicts)
	return Result{
		Score:   score,
		Total:   len(cases),
		Cases:   CaseResults(cases, verdicts),
		Reforms: reforms,
		Share:   shareText(cases, verdicts, score, reforms),
	}
}

// Score counts the cases whose recorded verdict equals the correct one.
// Cases without a verdict never match.
func Score(cases []casebook.Case, verdicts map[int]casebook.VerdictType) int {
	var n int
	for _, c := range cases {
		if v, ok := verdicts[c.ID]; ok && v == c.CorrectVerdict {
			n++
		}
	}
	return n
}

// CaseResults returns a per-case breakdown in catalog order.
func CaseResults(cases []casebook.Case, verdicts map[int]casebook.VerdictType) []CaseResult {
	out := make([]CaseResult, 0, len(cases))
	for _, c := range cases {
		v, ok := verdicts[c.ID]
		out = append(out, CaseResult{
			Case:         c,
			Verdict:      v,
			HasVerdict:   ok,
			Correct:      ok && v == c.CorrectVerdict,
			Label:        verdictLabel(c, v, ok),
			CorrectLabel: c.CorrectLabel(),
		})
	}
	return out
}

// noVerdictLabel stands in for the label of a case the juror never judged.
const noVerdictLabel = "no verdict"

func verdictLabel(c casebook.Case, v casebook.VerdictType, ok bool) string {
	if !ok {
		return noVerdictLabel
	}
	return c.LabelFor(v)
}
