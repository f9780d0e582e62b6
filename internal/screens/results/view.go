package results

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/verdict/internal/scoring"
	"github.com/abhisek/verdict/internal/ui/components"
	"github.com/abhisek/verdict/internal/ui/theme"
)

const (
	medicalDisclaimer = "Medical Disclaimer: This is an educational and advocacy tool. It is not medical advice. For personal medical questions, consult a qualified healthcare provider."
	linksDisclaimer   = "External Links: Links are provided for convenience and informational purposes. Their inclusion does not imply endorsement."
)

func (s *ResultsScreen) render(r scoring.Result, width int) string {
	var b strings.Builder
	center := func(str string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, str)
	}

	b.WriteString(center(theme.Title.Render("🔨 Jury Summary")))
	b.WriteString("\n")
	b.WriteString(center(theme.Hint.Render(fmt.Sprintf("Your verdicts across all %d cases", r.Total))))
	b.WriteString("\n")
	score := theme.Section.Render(fmt.Sprintf("Score: %d / %d correct", r.Score, r.Total))
	b.WriteString(center(score))
	b.WriteString("\n\n")

	for _, cr := range r.Cases {
		b.WriteString(caseCard(cr, width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(theme.Section.Render(fmt.Sprintf("⚖️ Top %d Reforms (Based on Your Verdicts)", scoring.MaxReforms)))
	b.WriteString("\n")
	for i, ref := range r.Reforms {
		num := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(fmt.Sprintf("%d.", i+1))
		text := theme.Body.Width(max(width-6, 10)).Render(ref.Text)
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, "  ", num, " ", text))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(theme.Section.Render("📋 Share Your Results") + "  " + s.copyLabel())
	b.WriteString("\n")
	b.WriteString(theme.ShareBox.Width(width).Render(r.Share))
	b.WriteString("\n\n")

	b.WriteString(theme.Section.Render("Sources & Disclaimer"))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Width(width).Render(medicalDisclaimer))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Width(width).Render(linksDisclaimer))
	b.WriteString("\n")
	for _, c := range s.cases {
		for _, src := range c.Sources {
			b.WriteString("  " + components.SourceLink(src) + "\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(center(theme.ButtonInactive.Render("↺ [r] Reset & Play Again")))
	return b.String()
}

func (s *ResultsScreen) copyLabel() string {
	switch s.flash {
	case flashCopied:
		return theme.Correct.Render("✓ Copied!")
	case flashFailed:
		return theme.Incorrect.Render("✗ Copy failed")
	default:
		return theme.Link.Render("[c] Copy")
	}
}

func caseCard(cr scoring.CaseResult, width int) string {
	mark := theme.Incorrect.Render("✗")
	border := theme.Error
	if cr.Correct {
		mark = theme.Correct.Render("✓")
		border = theme.Success
	}

	lines := []string{
		theme.Hint.Render(cr.Case.Subtitle),
		theme.Body.Bold(true).Render(cr.Case.Title),
		mark + " " + verdictStyle(cr).Render(strings.ToUpper(cr.Label)),
	}
	if !cr.Correct {
		lines = append(lines, theme.Hint.Render("Actual outcome: "+cr.CorrectLabel))
	}
	return theme.Card.Width(width).BorderForeground(border).Render(strings.Join(lines, "\n"))
}

func verdictStyle(cr scoring.CaseResult) lipgloss.Style {
	if !cr.HasVerdict {
		return theme.Hint
	}
	return lipgloss.NewStyle().Bold(true).Foreground(theme.VerdictColor(cr.Verdict))
}
