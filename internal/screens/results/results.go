// Package results is the jury summary: score, per-case outcomes, the
// ranked reforms and the shareable recap.
package results

import (
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/verdict/internal/casebook"
	"github.com/abhisek/verdict/internal/clipboard"
	"github.com/abhisek/verdict/internal/flow"
	"github.com/abhisek/verdict/internal/router"
	"github.com/abhisek/verdict/internal/scoring"
	"github.com/abhisek/verdict/internal/screen"
	"github.com/abhisek/verdict/internal/ui/components"
	"github.com/abhisek/verdict/internal/ui/keys"
	"github.com/abhisek/verdict/internal/ui/layout"
)

// DefaultFlash is how long the copy notice stays up when no duration is configured.
const DefaultFlash = 2 * time.Second

// Copier writes the share summary somewhere the juror can paste it.
type Copier interface {
	Copy(text string) clipboard.Outcome
}

// Deps are the collaborators of the results screen.
type Deps struct {
	Copier Copier
	Flash  time.Duration
	Logger *zap.Logger
}

type flashKind int

const (
	flashNone flashKind = iota
	flashCopied
	flashFailed
)

type copiedMsg struct {
	outcome clipboard.Outcome
	text    string
}

type flashExpiredMsg struct {
	gen int
}

// ResultsScreen renders the summary for a snapshot of the verdicts.
type ResultsScreen struct {
	cases    []casebook.Case
	verdicts flow.Verdicts
	deps     Deps

	flash    flashKind
	flashGen int

	scroll components.Scroller
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen.
func New(cases []casebook.Case, verdicts flow.Verdicts, deps Deps) *ResultsScreen {
	if deps.Flash <= 0 {
		deps.Flash = DefaultFlash
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return &ResultsScreen{
		cases:    cases,
		verdicts: verdicts.Clone(),
		deps:     deps,
		scroll:   components.NewScroller(),
	}
}

// Result recomputes the summary from the case list and verdicts.
func (s *ResultsScreen) Result() scoring.Result {
	return scoring.Evaluate(s.cases, s.verdicts)
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Jury Summary"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return keys.Hints(keys.Copy, keys.Reset, keys.Up, keys.Down, keys.Quit)
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case copiedMsg:
		return s, s.handleCopied(msg)

	case flashExpiredMsg:
		if msg.gen == s.flashGen {
			s.flash = flashNone
		}
		return s, nil

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, keys.Copy):
			return s, s.copy()
		case key.Matches(msg, keys.Reset):
			return s, router.Dispatch(flow.Event{Kind: flow.EventReset})
		}
	}
	return s, s.scroll.Update(msg)
}

func (s *ResultsScreen) copy() tea.Cmd {
	text := s.Result().Share
	copier := s.deps.Copier
	if copier == nil {
		return func() tea.Msg {
			return copiedMsg{outcome: clipboard.Outcome{Method: clipboard.MethodNone, Err: clipboard.ErrUnsupported}, text: text}
		}
	}
	return func() tea.Msg {
		return copiedMsg{outcome: copier.Copy(text), text: text}
	}
}

func (s *ResultsScreen) handleCopied(msg copiedMsg) tea.Cmd {
	out := msg.outcome
	s.deps.Logger.Info("share summary copied",
		zap.String("method", string(out.Method)),
		zap.Bool("ok", out.OK()),
		zap.Error(out.Err))

	s.flashGen++
	gen := s.flashGen
	expire := tea.Tick(s.deps.Flash, func(time.Time) tea.Msg {
		return flashExpiredMsg{gen: gen}
	})

	switch out.Method {
	case clipboard.MethodSystem:
		s.flash = flashCopied
		return expire
	case clipboard.MethodOSC52:
		s.flash = flashCopied
		return tea.Batch(tea.SetClipboard(msg.text), expire)
	default:
		s.flash = flashFailed
		return expire
	}
}

func (s *ResultsScreen) View(width, height int) string {
	cw := min(width-4, 96)
	return s.scroll.View(s.render(s.Result(), cw), width, height)
}
