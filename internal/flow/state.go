package flow

import (
	"fmt"
	"maps"

	"github.com/abhisek/verdict/internal/casebook"
)

// Screen identifies which top-level view is visible.
type Screen string

const (
	ScreenLanding Screen = "landing"
	ScreenAbout   Screen = "about"
	ScreenHowTo   Screen = "howto"
	ScreenCase    Screen = "case"
	ScreenResults Screen = "results"
)

// State is the controller's position in the flow. CaseIndex is only
// meaningful on ScreenCase and is 0 everywhere else.
type State struct {
	Screen    Screen
	CaseIndex int
}

// InitialState is the state a session starts in and returns to on reset.
func InitialState() State {
	return State{Screen: ScreenLanding}
}

func (s State) String() string {
	if s.Screen == ScreenCase {
		return fmt.Sprintf("%s[%d]", s.Screen, s.CaseIndex)
	}
	return string(s.Screen)
}

// Verdicts maps a case id to the verdict the juror submitted for it.
// A key is present only once a verdict has been submitted.
type Verdicts map[int]casebook.VerdictType

// Get returns the verdict recorded for a case id.
func (v Verdicts) Get(id int) (casebook.VerdictType, bool) {
	verdict, ok := v[id]
	return verdict, ok
}

// Clone returns an independent copy.
func (v Verdicts) Clone() Verdicts {
	if v == nil {
		return Verdicts{}
	}
	return maps.Clone(v)
}
