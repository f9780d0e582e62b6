// Package markdown renders the prose screens with glamour.
package markdown

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// Renderer turns markdown into styled terminal text for a fixed style.
type Renderer struct {
	style string
}

// New creates a renderer for a glamour standard style ("dark", "light",
// "notty", ...). An empty style means "dark".
func New(style string) *Renderer {
	if style == "" {
		style = "dark"
	}
	return &Renderer{style: style}
}

// Render renders md wrapped to width. A glamour error falls back to the
// raw markdown so the screen always has something to show.
func (r *Renderer) Render(md string, width int) (string, error) {
	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(r.style),
		glamour.WithWordWrap(max(width, 20)),
	)
	if err != nil {
		return md, fmt.Errorf("markdown renderer: %w", err)
	}
	out, err := tr.Render(md)
	if err != nil {
		return md, fmt.Errorf("render markdown: %w", err)
	}
	return strings.Trim(out, "\n"), nil
}
