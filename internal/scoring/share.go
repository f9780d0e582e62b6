package scoring

import (
	"fmt"
	"strings"

	"github.com/abhisek/verdict/internal/casebook"
)

const (
	// GameTitle is the name used in the share summary.
	GameTitle = "Cancer? Illegal!"

	shareFooter = "Played at: Cancer? Illegal! An interactive courtroom simulation about cancer justice in LA."

	glyphCorrect   = "✅"
	glyphIncorrect = "❌"
)

// ShareSummary returns the text recap a juror can copy and share.
func ShareSummary(cases []casebook.Case, verdicts map[int]casebook.VerdictType) string {
	reforms := RankReforms(cases, verdicts)
	return shareText(cases, verdicts, Score(cases, verdicts), reforms)
}

func shareText(cases []casebook.Case, verdicts map[int]casebook.VerdictType, score int, reforms []Reform) string {
	lines := make([]string, 0, len(cases)+len(reforms)+3)

	lines = append(lines, fmt.Sprintf("🔨 My Jury Summary: %s (%d/%d correct)\n", GameTitle, score, len(cases)))

	for _, c := range cases {
		v, ok := verdicts[c.ID]
		glyph := glyphIncorrect
		if ok && v == c.CorrectVerdict {
			glyph = glyphCorrect
		}
		lines = append(lines, fmt.Sprintf("%s Case: \"%s\" → %s", glyph, c.Title, verdictLabel(c, v, ok)))
	}

	lines = append(lines, "\nTop reforms I support:")
	for i, r := range reforms {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, r.Text))
	}
	lines = append(lines, "\n"+shareFooter)

	return strings.Join(lines, "\n")
}
