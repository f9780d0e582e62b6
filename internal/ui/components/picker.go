package components

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/verdict/internal/casebook"
	"github.com/abhisek/verdict/internal/ui/keys"
	"github.com/abhisek/verdict/internal/ui/theme"
)

// VerdictPicker lists a case's verdict options. Enter delivers the
// highlighted one; the g/n/m shortcuts deliver a verdict directly.
type VerdictPicker struct {
	Options  []casebook.VerdictOption
	Selected int
	Focused  bool
	OnChoose func(casebook.VerdictType) tea.Cmd
}

// NewVerdictPicker creates a picker over options.
func NewVerdictPicker(options []casebook.VerdictOption, onChoose func(casebook.VerdictType) tea.Cmd) VerdictPicker {
	return VerdictPicker{
		Options:  options,
		Focused:  true,
		OnChoose: onChoose,
	}
}

// Update handles keyboard navigation and selection.
func (p VerdictPicker) Update(msg tea.Msg) (VerdictPicker, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return p, nil
	}

	for _, o := range p.Options {
		if key.Matches(kmsg, keys.ForVerdict(o.Type)) {
			return p, p.choose(o.Type)
		}
	}

	if !p.Focused {
		return p, nil
	}

	switch {
	case key.Matches(kmsg, keys.Up):
		if p.Selected > 0 {
			p.Selected--
		}
	case key.Matches(kmsg, keys.Down):
		if p.Selected < len(p.Options)-1 {
			p.Selected++
		}
	case key.Matches(kmsg, keys.Select):
		if p.Selected < len(p.Options) {
			return p, p.choose(p.Options[p.Selected].Type)
		}
	}

	return p, nil
}

func (p VerdictPicker) choose(v casebook.VerdictType) tea.Cmd {
	if p.OnChoose == nil {
		return nil
	}
	return p.OnChoose(v)
}

// View renders the options, one per line, with their shortcut.
func (p VerdictPicker) View() string {
	var s string
	for i, o := range p.Options {
		line := "[" + o.Type.Shortcut() + "] " + o.Emoji + "  " + o.Label
		switch {
		case p.Focused && i == p.Selected:
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("▸ "+line) + "\n"
		default:
			s += theme.Unselected.Render("  "+line) + "\n"
		}
	}
	return s
}
