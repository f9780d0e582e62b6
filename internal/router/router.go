// Package router connects screens to the flow controller. Screens never
// change the visible screen themselves: they emit intents, the router
// applies them to the controller and swaps in the screen for the new
// state.
package router

import (
	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/verdict/internal/flow"
	"github.com/abhisek/verdict/internal/screen"
)

// IntentMsg carries a user intent from a screen to the controller.
type IntentMsg struct {
	Event flow.Event
}

// AppliedMsg is delivered to the active screen when an intent was
// accepted without changing the screen state, e.g. a recorded verdict.
type AppliedMsg struct {
	Event flow.Event
}

// Dispatch returns a command that emits e as an intent.
func Dispatch(e flow.Event) tea.Cmd {
	return func() tea.Msg {
		return IntentMsg{Event: e}
	}
}

// Factory builds the screen that presents a state.
type Factory func(flow.State) screen.Screen

// Router owns the active screen and replaces it whenever the controller
// moves to a different state.
type Router struct {
	controller *flow.Controller
	factory    Factory
	logger     *zap.Logger
	active     screen.Screen
}

// New creates a Router showing the screen for the controller's current state.
func New(controller *flow.Controller, factory Factory, logger *zap.Logger) *Router {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Router{
		controller: controller,
		factory:    factory,
		logger:     logger,
		active:     factory(controller.State()),
	}
}

// Init runs the initial screen's Init.
func (r *Router) Init() tea.Cmd {
	return r.active.Init()
}

// Replace swaps the active screen and calls its Init().
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	r.active = s
	return s.Init()
}

// Active returns the active screen.
func (r *Router) Active() screen.Screen {
	return r.active
}

// Update applies intents and forwards every other message to the active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	if intent, ok := msg.(IntentMsg); ok {
		return r.apply(intent.Event)
	}
	return r.forward(msg)
}

func (r *Router) forward(msg tea.Msg) tea.Cmd {
	updated, cmd := r.active.Update(msg)
	r.active = updated
	return cmd
}

func (r *Router) apply(e flow.Event) tea.Cmd {
	before := r.controller.State()
	if err := r.controller.Apply(e); err != nil {
		r.logger.Warn("intent rejected",
			zap.Stringer("event", e.Kind),
			zap.Stringer("state", before),
			zap.Error(err))
		return nil
	}
	after := r.controller.State()

	if e.Kind == flow.EventSubmitVerdict {
		if c, ok := r.controller.CurrentCase(); ok {
			r.logger.Info("verdict recorded",
				zap.Int("case_id", c.ID),
				zap.String("verdict", string(e.Verdict)),
				zap.Bool("correct", e.Verdict == c.CorrectVerdict))
		}
	}

	if after == before {
		return r.forward(AppliedMsg{Event: e})
	}

	r.logger.Debug("intent applied",
		zap.Stringer("event", e.Kind),
		zap.Stringer("from", before),
		zap.Stringer("to", after))
	return r.Replace(r.factory(after))
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	return r.active.View(width, height)
}
