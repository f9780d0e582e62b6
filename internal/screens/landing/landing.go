// Package landing is the title screen: banner, menu and the safety note.
package landing

import (
	"strings"
	"time"

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

const (
	tickInterval = 100 * time.Millisecond
	strikeAt     = 300 * time.Millisecond
	revealDur    = 900 * time.Millisecond
)

const (
	Tagline     = "Put cancer barriers on trial. You're the jury."
	SafetyNote  = "Safety Note: This is an educational and advocacy tool only. It is not medical advice. For personal medical questions, please consult a qualified healthcare provider. Content discusses cancer-related topics in a policy context."
	Attribution = "An interactive simulation for education & advocacy"
	Credits     = "Created by Pranav A. & Suryaa R."
)

type tickMsg time.Time

type toggleSafetyMsg struct{}

// LandingScreen plays a short gavel strike, then offers the main menu.
type LandingScreen struct {
	menu       components.Menu
	elapsed    time.Duration
	showSafety bool
}

var _ screen.Screen = (*LandingScreen)(nil)
var _ screen.KeyHintProvider = (*LandingScreen)(nil)

// New creates a LandingScreen.
func New() *LandingScreen {
	l := &LandingScreen{}
	l.menu = components.NewMenu([]components.MenuItem{
		{Label: "Begin Trial", Action: func() tea.Cmd {
			return router.Dispatch(flow.Event{Kind: flow.EventStart})
		}},
		{Label: "About", Action: func() tea.Cmd {
			return router.Dispatch(flow.Event{Kind: flow.EventAbout})
		}},
		{Label: "Safety Note", Action: func() tea.Cmd {
			return func() tea.Msg { return toggleSafetyMsg{} }
		}},
		{Label: "Quit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	})
	return l
}

func (l *LandingScreen) Title() string {
	return "The People vs. Barriers"
}

func (l *LandingScreen) KeyHints() []layout.KeyHint {
	return keys.Hints(keys.Up, keys.Down, keys.Select, keys.Quit)
}

func (l *LandingScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Revealed reports whether the intro animation has finished.
func (l *LandingScreen) Revealed() bool {
	return l.elapsed >= revealDur
}

func (l *LandingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if l.Revealed() {
			return l, nil
		}
		l.elapsed += tickInterval
		return l, tick()

	case toggleSafetyMsg:
		l.showSafety = !l.showSafety
		return l, nil

	case tea.KeyPressMsg:
		// The first key during the intro only skips it.
		if !l.Revealed() {
			l.elapsed = revealDur
			return l, nil
		}
		var cmd tea.Cmd
		l.menu, cmd = l.menu.Update(msg)
		return l, cmd
	}
	return l, nil
}

func (l *LandingScreen) View(width, height int) string {
	cw := min(width-4, 76)
	center := func(s string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
	}

	var sections []string
	if !layout.IsCompactHeight(height + layout.HeaderHeight + layout.FooterHeight) {
		sections = append(sections, center(RenderGavel(l.elapsed >= strikeAt)))
	}
	sections = append(sections, center(RenderBanner(width)))

	if l.Revealed() {
		sections = append(sections,
			center(theme.Subtitle.Render(Tagline)),
			center(l.menu.View()),
		)
		if l.showSafety {
			sections = append(sections, center(theme.Card.Width(cw).
				Foreground(theme.TextDim).Render(SafetyNote)))
		}
		sections = append(sections,
			center(theme.Hint.Render(Attribution))+"\n"+center(theme.Hint.Render(Credits)))
	}

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
