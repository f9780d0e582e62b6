package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/verdict/internal/casebook"
	"github.com/abhisek/verdict/internal/ui/theme"
)

var evidenceIcons = []string{"🔍", "📍", "⚖️"}

// EvidenceCard is a flippable exhibit: the label faces up until the juror
// examines it, then the content is shown.
type EvidenceCard struct {
	Number   int // 1-based, also the key that flips it
	Evidence casebook.Evidence
	Revealed bool
	Focused  bool
}

// NewEvidenceCards builds one face-down card per exhibit.
func NewEvidenceCards(evidence []casebook.Evidence) []EvidenceCard {
	cards := make([]EvidenceCard, len(evidence))
	for i, e := range evidence {
		cards[i] = EvidenceCard{Number: i + 1, Evidence: e}
	}
	return cards
}

// Flip turns the card over.
func (c EvidenceCard) Flip() EvidenceCard {
	c.Revealed = !c.Revealed
	return c
}

// View renders the card at the given outer width.
func (c EvidenceCard) View(width int) string {
	icon := evidenceIcons[(c.Number-1)%len(evidenceIcons)]
	style := theme.Card
	if c.Focused {
		style = theme.FocusedCard
	}
	style = style.Width(max(width, 20))

	header := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
		Render(fmt.Sprintf("%d  %s %s", c.Number, icon, c.Evidence.Label))

	if !c.Revealed {
		hint := theme.Hint.Render(fmt.Sprintf("press %d to examine", c.Number))
		return style.Render(header + "\n" + hint)
	}
	return style.Render(header + "\n" + theme.Body.Render(c.Evidence.Content))
}
