// Package keys defines the key bindings shared by every screen and turns
// them into footer hints.
package keys

import (
	"charm.land/bubbles/v2/key"

	"github.com/abhisek/verdict/internal/casebook"
	"github.com/abhisek/verdict/internal/ui/layout"
)

var (
	Up     = key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "Up"))
	Down   = key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "Down"))
	Select = key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "Select"))
	Flip   = key.NewBinding(key.WithKeys("space", "enter"), key.WithHelp("Space", "Flip card"))
	Focus  = key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("Tab", "Focus"))
	Back   = key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("Esc", "Back"))
	Home   = key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "Home"))
	Copy   = key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "Copy summary"))
	Reset  = key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "Play again"))
	Scroll = key.NewBinding(key.WithKeys("pgup", "pgdown"), key.WithHelp("PgUp/PgDn", "Scroll"))
	Quit   = key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("Ctrl+C", "Quit"))

	// Evidence flips the numbered evidence card.
	Evidence = key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("1-9", "Examine"),
	)
)

// ForVerdict returns the shortcut binding that delivers v directly.
func ForVerdict(v casebook.VerdictType) key.Binding {
	return key.NewBinding(key.WithKeys(v.Shortcut()), key.WithHelp(v.Shortcut(), v.DisplayName()))
}

// Hints converts bindings into footer hints, skipping disabled ones.
func Hints(bindings ...key.Binding) []layout.KeyHint {
	hints := make([]layout.KeyHint, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		hints = append(hints, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return hints
}
