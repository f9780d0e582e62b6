package components

import (
	"github.com/charmbracelet/x/ansi"

	"github.com/abhisek/verdict/internal/casebook"
	"github.com/abhisek/verdict/internal/ui/theme"
)

// SourceLink renders a source as an OSC 8 hyperlink followed by its URL in
// plain text for terminals that ignore the escape sequence.
func SourceLink(s casebook.Source) string {
	return ansi.SetHyperlink(s.URL) + theme.Link.Render(s.Label) + ansi.ResetHyperlink() +
		" " + theme.Hint.Render(s.URL)
}
