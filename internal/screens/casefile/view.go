package casefile

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/verdict/internal/ui/components"
	"github.com/abhisek/verdict/internal/ui/theme"
)

func (s *CaseScreen) progressView(width int) string {
	line := components.NewDocketProgress(s.index, s.total, width).View()
	if s.c.IsLocal && s.c.LocalTag != "" {
		line = theme.Tag.Render(s.c.LocalTag) + "\n" + line
	}
	return line
}

func (s *CaseScreen) deliberationView(width int) string {
	var b strings.Builder

	b.WriteString(s.progressView(width))
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render(s.c.Subtitle))
	b.WriteString("\n")
	b.WriteString(theme.Selected.Render(s.c.Title))
	b.WriteString("\n\n")
	b.WriteString(theme.Card.Width(width).Render(s.c.Story))
	b.WriteString("\n\n")

	b.WriteString(theme.Section.Render(fmt.Sprintf("📋 Evidence: Press 1-%d to Examine", len(s.cards))))
	b.WriteString("\n")
	for _, c := range s.cards {
		b.WriteString(c.View(width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(theme.Section.Render("🔨 Your Verdict"))
	b.WriteString("\n")
	b.WriteString(s.picker.View())
	return b.String()
}

func (s *CaseScreen) slipView(width int) string {
	var b strings.Builder
	yourLabel := s.c.LabelFor(s.verdict)
	emoji := ""
	if o, ok := s.c.OptionFor(s.verdict); ok {
		emoji = o.Emoji + " "
	}

	b.WriteString(s.progressView(width))
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("Verdict Slip: " + s.c.Subtitle))
	b.WriteString("\n")
	b.WriteString(theme.Selected.Render(s.c.Title))
	b.WriteString("\n\n")
	b.WriteString(theme.Stamp(s.verdict).Render(emoji + strings.ToUpper(yourLabel)))
	b.WriteString("\n\n")

	if s.verdict == s.c.CorrectVerdict {
		b.WriteString(theme.Correct.Render("✓ Correct! This matches the actual legal outcome."))
	} else {
		b.WriteString(theme.Incorrect.Render("✗ Not quite. See what actually happened below."))
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("Actual outcome: ") + theme.Body.Bold(true).Render(s.c.CorrectLabel()))
	}
	b.WriteString("\n\n")

	body := theme.Body.Width(width)
	b.WriteString(body.Render(theme.Section.Render("What happened: ") + s.c.WhatHappened))
	b.WriteString("\n\n")

	b.WriteString(theme.Section.Render("Community impact:"))
	b.WriteString("\n")
	for _, impact := range s.c.NegativeImpact {
		b.WriteString(bullet(theme.Incorrect.Render("•"), impact, width))
	}
	b.WriteString("\n")

	b.WriteString(theme.Section.Render("Policy / system lever:"))
	b.WriteString("\n")
	for _, lever := range s.c.PolicyLevers {
		b.WriteString(bullet(theme.Correct.Render("✓"), lever.Text, width))
	}
	b.WriteString("\n")

	b.WriteString(body.Render(theme.Section.Render("🗳️ What you can do: ") + s.c.WhatYouCanDo))
	b.WriteString("\n\n")

	b.WriteString(theme.Hint.Render("SOURCES"))
	b.WriteString("\n")
	for _, src := range s.c.Sources {
		b.WriteString("  " + components.SourceLink(src) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(s.next.View())
	return b.String()
}

func bullet(mark, text string, width int) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		"  "+mark+" ",
		theme.Body.Width(max(width-4, 10)).Render(text),
	) + "\n"
}
