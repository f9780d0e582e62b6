package scoring

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/abhisek/verdict/internal/casebook"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type verdicts = map[int]casebook.VerdictType

var (
	allCorrect = verdicts{1: casebook.Mixed, 2: casebook.Guilty, 3: casebook.Guilty, 4: casebook.Guilty}
	allGuilty  = verdicts{1: casebook.Guilty, 2: casebook.Guilty, 3: casebook.Guilty, 4: casebook.Guilty}
)

func cases() []casebook.Case {
	return casebook.Default().All()
}

// assertText fails with a character-level diff when got differs from want.
func assertText(t *testing.T, want, got string) {
	t.Helper()
	if want == got {
		return
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(want, got, false)
	t.Errorf("text mismatch (-want +got):\n%s", dmp.DiffPrettyText(diffs))
}

func TestScore_Scenarios(t *testing.T) {
	tests := []struct {
		name     string
		verdicts verdicts
		want     int
	}{
		{"documented correct answers", allCorrect, 4},
		{"all guilty", allGuilty, 3},
		{"no verdicts", verdicts{}, 0},
		{"nil store", nil, 0},
		{"partial", verdicts{2: casebook.Guilty}, 1},
		{"all wrong", verdicts{1: casebook.NotGuilty, 2: casebook.Mixed, 3: casebook.NotGuilty, 4: casebook.Mixed}, 0},
		{"unknown ids ignored", verdicts{99: casebook.Guilty}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(cases(), tt.verdicts)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, len(cases()))
		})
	}
}

func TestEvaluate_PerfectOnlyWhenAllCorrect(t *testing.T) {
	assert.True(t, Evaluate(cases(), allCorrect).Perfect())
	assert.False(t, Evaluate(cases(), allGuilty).Perfect())
	assert.False(t, Evaluate(nil, nil).Perfect())
}

func TestEvaluate_Idempotent(t *testing.T) {
	v := verdicts{1: casebook.Guilty, 3: casebook.NotGuilty}
	first := Evaluate(cases(), v)
	second := Evaluate(cases(), v)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Evaluate not idempotent (-first +second):\n%s", diff)
	}
}

func TestWeight(t *testing.T) {
	assert.Equal(t, 3, Weight(casebook.Guilty, true))
	assert.Equal(t, 2, Weight(casebook.Mixed, true))
	assert.Equal(t, 1, Weight(casebook.NotGuilty, true))
	assert.Equal(t, 1, Weight("", false))
	assert.Equal(t, 1, Weight("bogus", true))
}

func TestRankReforms_AllCorrect(t *testing.T) {
	got := RankReforms(cases(), allCorrect)
	want := []Reform{
		{Text: "Create fast-track authorization pathways for time-sensitive symptoms and suspected cancer diagnoses.", CaseTitle: "Red Tape and the MRI", Priority: 3},
		{Text: "Require insurers to meet binding turnaround times (e.g., 48 hours) for urgent imaging requests.", CaseTitle: "Red Tape and the MRI", Priority: 3},
		{Text: "Strengthen enforcement of anti-discrimination protections for employees undergoing cancer treatment.", CaseTitle: "Fired After Diagnosis", Priority: 3},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("RankReforms mismatch (-want +got):\n%s", diff)
	}
}

func TestRankReforms_NoVerdictsFallsBackToCatalogOrder(t *testing.T) {
	got := RankReforms(cases(), verdicts{})
	require.Len(t, got, 3)
	want := []Reform{
		{Text: "Require clear, plain-language disclosure when tissue may be used for research or commercial purposes.", CaseTitle: "The UCLA Consent Problem", Priority: 1},
		{Text: "Give patients meaningful consent rights over downstream use of their biological materials.", CaseTitle: "The UCLA Consent Problem", Priority: 1},
		{Text: "Create fast-track authorization pathways for time-sensitive symptoms and suspected cancer diagnoses.", CaseTitle: "Red Tape and the MRI", Priority: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("RankReforms mismatch (-want +got):\n%s", diff)
	}
}

func TestRankReforms_MixedOutranksNotGuilty(t *testing.T) {
	v := verdicts{1: casebook.NotGuilty, 2: casebook.NotGuilty, 3: casebook.Mixed, 4: casebook.NotGuilty}
	got := RankReforms(cases(), v)
	require.Len(t, got, 3)
	assert.Equal(t, "Fired After Diagnosis", got[0].CaseTitle)
	assert.Equal(t, "Fired After Diagnosis", got[1].CaseTitle)
	assert.Equal(t, 2, got[0].Priority)
	assert.Equal(t, "The UCLA Consent Problem", got[2].CaseTitle)
	assert.Equal(t, 1, got[2].Priority)
}

func TestRankReforms_SortedAndWeighted(t *testing.T) {
	v := verdicts{1: casebook.Mixed, 4: casebook.Guilty}
	got := RankReforms(cases(), v)
	require.LessOrEqual(t, len(got), MaxReforms)

	byTitle := make(map[string]int)
	for _, c := range cases() {
		cv, ok := v[c.ID]
		byTitle[c.Title] = Weight(cv, ok)
	}
	for i, r := range got {
		assert.Equal(t, byTitle[r.CaseTitle], r.Priority, "reform %d priority", i)
		if i > 0 {
			assert.GreaterOrEqual(t, got[i-1].Priority, r.Priority, "reforms must be sorted by priority")
		}
	}
	assert.Equal(t, "Punished for Treatment Time", got[0].CaseTitle)
	assert.Equal(t, "The UCLA Consent Problem", got[2].CaseTitle)
}

func TestRankReforms_FewerCandidatesNotPadded(t *testing.T) {
	one := []casebook.Case{{
		ID:             7,
		Title:          "Solo",
		CorrectVerdict: casebook.Guilty,
		PolicyLevers:   []casebook.PolicyLever{{Text: "Only reform"}},
	}}
	got := RankReforms(one, verdicts{7: casebook.Guilty})
	require.Len(t, got, 1)
	assert.Equal(t, Reform{Text: "Only reform", CaseTitle: "Solo", Priority: 3}, got[0])

	assert.Empty(t, RankReforms(nil, nil))
}

func TestShareSummary_AllCorrect(t *testing.T) {
	want := `🔨 My Jury Summary: Cancer? Illegal! (4/4 correct)

✅ Case: "The UCLA Consent Problem" → Allowed only with full disclosure + consent
✅ Case: "Red Tape and the MRI" → Negligent delay caused harm
✅ Case: "Fired After Diagnosis" → Cancer discrimination
✅ Case: "Punished for Treatment Time" → Terminated due to cancer

Top reforms I support:
1. Create fast-track authorization pathways for time-sensitive symptoms and suspected cancer diagnoses.
2. Require insurers to meet binding turnaround times (e.g., 48 hours) for urgent imaging requests.
3. Strengthen enforcement of anti-discrimination protections for employees undergoing cancer treatment.

Played at: Cancer? Illegal! An interactive courtroom simulation about cancer justice in LA.`

	assertText(t, want, ShareSummary(cases(), allCorrect))
	assertText(t, want, Evaluate(cases(), allCorrect).Share)
}

func TestShareSummary_NoVerdicts(t *testing.T) {
	want := `🔨 My Jury Summary: Cancer? Illegal! (0/4 correct)

❌ Case: "The UCLA Consent Problem" → no verdict
❌ Case: "Red Tape and the MRI" → no verdict
❌ Case: "Fired After Diagnosis" → no verdict
❌ Case: "Punished for Treatment Time" → no verdict

Top reforms I support:
1. Require clear, plain-language disclosure when tissue may be used for research or commercial purposes.
2. Give patients meaningful consent rights over downstream use of their biological materials.
3. Create fast-track authorization pathways for time-sensitive symptoms and suspected cancer diagnoses.

Played at: Cancer? Illegal! An interactive courtroom simulation about cancer justice in LA.`

	assertText(t, want, ShareSummary(cases(), nil))
}

func TestShareSummary_LabelFallsBackToRawValue(t *testing.T) {
	c := casebook.Case{
		ID:             1,
		Title:          "Bare",
		CorrectVerdict: casebook.Guilty,
		VerdictOptions: []casebook.VerdictOption{{Type: casebook.Guilty, Label: "Yes"}},
	}
	got := ShareSummary([]casebook.Case{c}, verdicts{1: casebook.Mixed})
	assert.Contains(t, got, `❌ Case: "Bare" → mixed`)
	assert.Contains(t, got, "(0/1 correct)")
}

func TestCaseResults(t *testing.T) {
	rows := CaseResults(cases(), allGuilty)
	require.Len(t, rows, 4)

	assert.False(t, rows[0].Correct)
	assert.True(t, rows[0].HasVerdict)
	assert.Equal(t, "Patient rights violated", rows[0].Label)
	assert.Equal(t, "Allowed only with full disclosure + consent", rows[0].CorrectLabel)

	for _, r := range rows[1:] {
		assert.True(t, r.Correct, "case %d", r.Case.ID)
	}
}
