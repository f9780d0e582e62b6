// Package casefile presents one case: the story, the evidence cards and
// the verdict picker, then the verdict slip once a verdict is recorded.
package casefile

import (
	"strconv"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/verdict/internal/casebook"
	"github.com/abhisek/verdict/internal/flow"
	"github.com/abhisek/verdict/internal/router"
	"github.com/abhisek/verdict/internal/screen"
	"github.com/abhisek/verdict/internal/ui/components"
	"github.com/abhisek/verdict/internal/ui/keys"
	"github.com/abhisek/verdict/internal/ui/layout"
)

// CaseScreen is the case view. It has two phases: deliberation (evidence
// and picker) and the verdict slip. The slip appears only after the
// router confirms the verdict was recorded.
type CaseScreen struct {
	c     casebook.Case
	index int
	total int

	cards  []components.EvidenceCard
	focus  int // card index, or len(cards) for the picker
	picker components.VerdictPicker

	verdict casebook.VerdictType
	decided bool
	next    components.Button

	scroll components.Scroller
}

var _ screen.Screen = (*CaseScreen)(nil)
var _ screen.KeyHintProvider = (*CaseScreen)(nil)

// New creates the screen for case c at position index of total.
func New(c casebook.Case, index, total int) *CaseScreen {
	s := &CaseScreen{
		c:      c,
		index:  index,
		total:  total,
		cards:  components.NewEvidenceCards(c.Evidence),
		scroll: components.NewScroller(),
	}
	s.focus = len(s.cards)
	s.picker = components.NewVerdictPicker(c.VerdictOptions, func(v casebook.VerdictType) tea.Cmd {
		return router.Dispatch(flow.Submit(v))
	})

	label := "Next Case"
	if s.IsLast() {
		label = "See Jury Summary"
	}
	s.next = components.NewButton(label, true, func() tea.Cmd {
		return router.Dispatch(flow.Event{Kind: flow.EventNext})
	})
	return s
}

// IsLast reports whether this is the final case of the docket.
func (s *CaseScreen) IsLast() bool {
	return s.index == s.total-1
}

// Decided reports whether the verdict slip is showing.
func (s *CaseScreen) Decided() bool {
	return s.decided
}

func (s *CaseScreen) Init() tea.Cmd {
	return nil
}

func (s *CaseScreen) Title() string {
	if s.decided {
		return "Verdict Slip"
	}
	return "The Docket"
}

func (s *CaseScreen) KeyHints() []layout.KeyHint {
	if s.decided {
		return keys.Hints(
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", s.next.Label)),
			keys.Up, keys.Down, keys.Home, keys.Quit,
		)
	}
	return keys.Hints(keys.Evidence, keys.Focus, keys.Up, keys.Down, keys.Select,
		keys.ForVerdict(casebook.Guilty), keys.ForVerdict(casebook.NotGuilty), keys.ForVerdict(casebook.Mixed),
		keys.Home)
}

func (s *CaseScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case router.AppliedMsg:
		if msg.Event.Kind == flow.EventSubmitVerdict {
			s.verdict = msg.Event.Verdict
			s.decided = true
			s.scroll.GotoTop()
		}
		return s, nil

	case tea.KeyPressMsg:
		if key.Matches(msg, keys.Home) {
			return s, router.Dispatch(flow.Event{Kind: flow.EventBack})
		}
		if s.decided {
			return s, s.updateSlip(msg)
		}
		return s, s.updateDeliberation(msg)
	}
	return s, nil
}

func (s *CaseScreen) updateSlip(msg tea.KeyPressMsg) tea.Cmd {
	if key.Matches(msg, keys.Select) {
		var cmd tea.Cmd
		s.next, cmd = s.next.Update(msg)
		return cmd
	}
	return s.scroll.Update(msg)
}

func (s *CaseScreen) updateDeliberation(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Evidence):
		n, err := strconv.Atoi(msg.String())
		if err != nil || n > len(s.cards) {
			return nil
		}
		s.cards[n-1] = s.cards[n-1].Flip()
		s.setFocus(n - 1)
		return nil

	case key.Matches(msg, keys.Focus):
		step := 1
		if msg.String() == "shift+tab" {
			step = len(s.cards)
		}
		s.setFocus((s.focus + step) % (len(s.cards) + 1))
		return nil

	case s.focus < len(s.cards) && key.Matches(msg, keys.Flip):
		s.cards[s.focus] = s.cards[s.focus].Flip()
		return nil

	case key.Matches(msg, keys.Scroll):
		return s.scroll.Update(msg)
	}

	var cmd tea.Cmd
	s.picker, cmd = s.picker.Update(msg)
	return cmd
}

func (s *CaseScreen) setFocus(i int) {
	s.focus = i
	for j := range s.cards {
		s.cards[j].Focused = j == i
	}
	s.picker.Focused = i == len(s.cards)
}

func (s *CaseScreen) View(width, height int) string {
	cw := min(width-4, 96)
	var content string
	if s.decided {
		content = s.slipView(cw)
	} else {
		content = s.deliberationView(cw)
	}
	return s.scroll.View(content, width, height)
}
