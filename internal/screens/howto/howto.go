// Package howto explains the four steps of a trial before the first case.
package howto

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/verdict/internal/flow"
	"github.com/abhisek/verdict/internal/router"
	"github.com/abhisek/verdict/internal/screen"
	"github.com/abhisek/verdict/internal/ui/components"
	"github.com/abhisek/verdict/internal/ui/keys"
	"github.com/abhisek/verdict/internal/ui/layout"
	"github.com/abhisek/verdict/internal/ui/theme"
)

// Steps are the instructions shown in order.
var Steps = []string{
	"Read each case, a real LA courtroom story about cancer justice.",
	"Examine the evidence. Flip cards to understand who's harmed and why.",
	"Deliver your verdict: Guilty, Not Guilty, or Mixed.",
	"See what actually happened and whether you got it right.",
}

// HowToScreen lists the steps and a button into the first case.
type HowToScreen struct {
	button components.Button
}

var _ screen.Screen = (*HowToScreen)(nil)
var _ screen.KeyHintProvider = (*HowToScreen)(nil)

// New creates a HowToScreen.
func New() *HowToScreen {
	return &HowToScreen{
		button: components.NewButton("First Case", true, func() tea.Cmd {
			return router.Dispatch(flow.Event{Kind: flow.EventContinue})
		}),
	}
}

func (h *HowToScreen) Init() tea.Cmd {
	return nil
}

func (h *HowToScreen) Title() string {
	return "How to Play"
}

func (h *HowToScreen) KeyHints() []layout.KeyHint {
	return keys.Hints(
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "First Case")),
		keys.Quit,
	)
}

func (h *HowToScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.button, cmd = h.button.Update(msg)
	return h, cmd
}

func (h *HowToScreen) View(width, height int) string {
	badge := lipgloss.NewStyle().
		Foreground(theme.BgDark).
		Background(theme.Secondary).
		Bold(true).
		Padding(0, 1)

	cw := min(width-8, 72)
	var lines []string
	lines = append(lines, theme.Title.Render("📖 How to Play"), "")
	for i, step := range Steps {
		text := theme.Body.Width(cw - 6).Render(step)
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, badge.Render(fmt.Sprint(i+1)), "  ", text), "")
	}
	lines = append(lines, h.button.View())

	content := strings.Join(lines, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
