// Package flow implements the screen state machine that drives a play
// session: which screen is visible, which case is on the docket and which
// verdicts the juror has delivered so far.
package flow

import (
	"errors"
	"fmt"

	"github.com/abhisek/verdict/internal/casebook"
)

var (
	// ErrInvalidTransition is returned when the current screen has no
	// transition for the event. State is left untouched.
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrNoVerdict is returned by Next before a verdict was submitted for
	// the current case.
	ErrNoVerdict = errors.New("no verdict submitted for current case")

	// ErrUnknownVerdict is returned when SubmitVerdict gets a value outside
	// the verdict enumeration.
	ErrUnknownVerdict = errors.New("unknown verdict")
)

// Catalog is the read-only view of the case list the controller needs.
type Catalog interface {
	Count() int
	At(i int) (casebook.Case, bool)
}

// Controller owns the screen state and the verdict store for one session.
type Controller struct {
	catalog  Catalog
	state    State
	verdicts Verdicts
}

// NewController creates a controller on the landing screen with no verdicts.
func NewController(catalog Catalog) *Controller {
	return &Controller{
		catalog:  catalog,
		state:    InitialState(),
		verdicts: Verdicts{},
	}
}

// State returns the current screen state.
func (c *Controller) State() State {
	return c.state
}

// Verdicts returns a copy of the verdict store.
func (c *Controller) Verdicts() Verdicts {
	return c.verdicts.Clone()
}

// CaseCount returns the number of cases in the session.
func (c *Controller) CaseCount() int {
	return c.catalog.Count()
}

// CurrentCase returns the case on the docket. ok is false off the case screen.
func (c *Controller) CurrentCase() (casebook.Case, bool) {
	if c.state.Screen != ScreenCase {
		return casebook.Case{}, false
	}
	return c.catalog.At(c.state.CaseIndex)
}

// CurrentVerdict returns the verdict recorded for the current case.
func (c *Controller) CurrentVerdict() (casebook.VerdictType, bool) {
	cs, ok := c.CurrentCase()
	if !ok {
		return "", false
	}
	return c.verdicts.Get(cs.ID)
}

// IsLastCase reports whether the current case is the final one.
func (c *Controller) IsLastCase() bool {
	return c.state.Screen == ScreenCase && c.state.CaseIndex == c.catalog.Count()-1
}

// Apply dispatches an event to the matching intent method.
func (c *Controller) Apply(e Event) error {
	switch e.Kind {
	case EventStart:
		return c.Start()
	case EventAbout:
		return c.OpenAbout()
	case EventBack:
		return c.Back()
	case EventContinue:
		return c.Continue()
	case EventSubmitVerdict:
		return c.SubmitVerdict(e.Verdict)
	case EventNext:
		return c.Next()
	case EventReset:
		return c.Reset()
	default:
		return fmt.Errorf("%w: unknown event %d", ErrInvalidTransition, int(e.Kind))
	}
}

func (c *Controller) guard(k EventKind) error {
	if !c.state.Screen.Accepts(k) {
		return fmt.Errorf("%w: %s on %s", ErrInvalidTransition, k, c.state)
	}
	return nil
}

// Start moves from the landing screen to the how-to-play screen.
func (c *Controller) Start() error {
	if err := c.guard(EventStart); err != nil {
		return err
	}
	c.state = State{Screen: ScreenHowTo}
	return nil
}

// OpenAbout moves from the landing screen to the about screen.
func (c *Controller) OpenAbout() error {
	if err := c.guard(EventAbout); err != nil {
		return err
	}
	c.state = State{Screen: ScreenAbout}
	return nil
}

// Back returns to the landing screen. Leaving a case abandons the whole
// trial: all verdicts are cleared.
func (c *Controller) Back() error {
	if err := c.guard(EventBack); err != nil {
		return err
	}
	if c.state.Screen == ScreenCase {
		c.clear()
		return nil
	}
	c.state = InitialState()
	return nil
}

// Continue opens the first case.
func (c *Controller) Continue() error {
	if err := c.guard(EventContinue); err != nil {
		return err
	}
	if c.catalog.Count() == 0 {
		c.state = State{Screen: ScreenResults}
		return nil
	}
	c.state = State{Screen: ScreenCase, CaseIndex: 0}
	return nil
}

// SubmitVerdict records v for the current case, overwriting any earlier
// verdict for it. The screen does not change.
func (c *Controller) SubmitVerdict(v casebook.VerdictType) error {
	if err := c.guard(EventSubmitVerdict); err != nil {
		return err
	}
	if !v.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownVerdict, v)
	}
	cs, ok := c.catalog.At(c.state.CaseIndex)
	if !ok {
		return fmt.Errorf("%w: no case at index %d", ErrInvalidTransition, c.state.CaseIndex)
	}
	c.verdicts[cs.ID] = v
	return nil
}

// Next advances to the following case, or to results after the last case.
func (c *Controller) Next() error {
	if err := c.guard(EventNext); err != nil {
		return err
	}
	if _, ok := c.CurrentVerdict(); !ok {
		return ErrNoVerdict
	}
	if c.state.CaseIndex < c.catalog.Count()-1 {
		c.state.CaseIndex++
		return nil
	}
	c.state = State{Screen: ScreenResults}
	return nil
}

// Reset clears every verdict and returns to the landing screen.
func (c *Controller) Reset() error {
	if err := c.guard(EventReset); err != nil {
		return err
	}
	c.clear()
	return nil
}

func (c *Controller) clear() {
	c.verdicts = Verdicts{}
	c.state = InitialState()
}
