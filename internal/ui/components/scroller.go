package components

import (
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
)

// Scroller wraps a viewport whose size and content are set at render time.
type Scroller struct {
	vp viewport.Model
}

// NewScroller creates an empty Scroller.
func NewScroller() Scroller {
	return Scroller{vp: viewport.New()}
}

// Update forwards scroll keys to the viewport.
func (s *Scroller) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.vp, cmd = s.vp.Update(msg)
	return cmd
}

// GotoTop scrolls back to the first line.
func (s *Scroller) GotoTop() {
	s.vp.GotoTop()
}

// View sizes the viewport, loads content and renders the visible window.
func (s *Scroller) View(content string, width, height int) string {
	s.vp.SetWidth(width)
	s.vp.SetHeight(height)
	s.vp.SetContent(content)
	return s.vp.View()
}
