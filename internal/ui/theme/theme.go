package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/verdict/internal/casebook"
)

// Color palette: oxblood, brass and chalk on walnut
var (
	Primary   = lipgloss.Color("#B91C1C") // Oxblood
	Secondary = lipgloss.Color("#D4A017") // Brass
	Accent    = lipgloss.Color("#38BDF8") // Sky (links, focus)
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Text      = lipgloss.Color("#F8FAFC") // Chalk
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#1C1917") // Walnut
	BgCard    = lipgloss.Color("#292524") // Stone
	Border    = lipgloss.Color("#44403C") // Stone edge
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Section = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	Link = lipgloss.NewStyle().
		Foreground(Accent).
		Underline(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 2)

	FocusedCard = Card.
			BorderForeground(Accent)

	ShareBox = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(Secondary).
			Padding(0, 1)

	Tag = lipgloss.NewStyle().
		Foreground(BgDark).
		Background(Secondary).
		Bold(true).
		Padding(0, 1)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Components
var (
	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)

// VerdictColor is red for illegal, green for legal and amber for the
// reform-with-conditions middle ground.
func VerdictColor(v casebook.VerdictType) color.Color {
	switch v {
	case casebook.Guilty:
		return Error
	case casebook.NotGuilty:
		return Success
	case casebook.Mixed:
		return Warning
	default:
		return TextDim
	}
}

// Stamp returns the rubber-stamp style for a verdict.
func Stamp(v casebook.VerdictType) lipgloss.Style {
	c := VerdictColor(v)
	return lipgloss.NewStyle().
		Foreground(c).
		Bold(true).
		Border(lipgloss.ThickBorder()).
		BorderForeground(c).
		Padding(0, 2)
}
