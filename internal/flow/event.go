package flow

import (
	"slices"

	"github.com/abhisek/verdict/internal/casebook"
)

// EventKind names a user intent.
type EventKind int

const (
	EventStart         EventKind = iota // landing → how to play
	EventAbout                          // landing → about
	EventBack                           // about → landing, or case → landing with a full reset
	EventContinue                       // how to play → first case
	EventSubmitVerdict                  // record a verdict for the current case
	EventNext                           // next case, or results after the last one
	EventReset                          // results → landing with a full reset
)

func (k EventKind) String() string {
	switch k {
	case EventStart:
		return "start"
	case EventAbout:
		return "about"
	case EventBack:
		return "back"
	case EventContinue:
		return "continue"
	case EventSubmitVerdict:
		return "submit_verdict"
	case EventNext:
		return "next"
	case EventReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Event is a single intent dispatched to the controller. Verdict is only
// read for EventSubmitVerdict.
type Event struct {
	Kind    EventKind
	Verdict casebook.VerdictType
}

// Submit builds a verdict-submission event.
func Submit(v casebook.VerdictType) Event {
	return Event{Kind: EventSubmitVerdict, Verdict: v}
}

// transitions lists the events each screen accepts.
var transitions = map[Screen][]EventKind{
	ScreenLanding: {EventStart, EventAbout},
	ScreenAbout:   {EventBack},
	ScreenHowTo:   {EventContinue},
	ScreenCase:    {EventBack, EventSubmitVerdict, EventNext},
	ScreenResults: {EventReset},
}

// Accepts reports whether the screen has a transition for the event.
func (s Screen) Accepts(k EventKind) bool {
	return slices.Contains(transitions[s], k)
}
