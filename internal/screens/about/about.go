// Package about renders the project narrative, the disclaimer and the
// key sources.
package about

import (
	_ "embed"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/verdict/internal/casebook"
	"github.com/abhisek/verdict/internal/flow"
	"github.com/abhisek/verdict/internal/router"
	"github.com/abhisek/verdict/internal/screen"
	"github.com/abhisek/verdict/internal/ui/components"
	"github.com/abhisek/verdict/internal/ui/keys"
	"github.com/abhisek/verdict/internal/ui/layout"
	"github.com/abhisek/verdict/internal/ui/markdown"
	"github.com/abhisek/verdict/internal/ui/theme"
)

//go:embed about.md
var aboutMarkdown string

// AboutScreen shows the narrative in a scrollable view.
type AboutScreen struct {
	renderer *markdown.Renderer
	sources  []casebook.Source
	scroll   components.Scroller
	logger   *zap.Logger

	// rendered markdown is cached per width
	width    int
	rendered string
}

var _ screen.Screen = (*AboutScreen)(nil)
var _ screen.KeyHintProvider = (*AboutScreen)(nil)

// New creates an AboutScreen listing the given key sources. A nil logger
// discards render failures.
func New(renderer *markdown.Renderer, sources []casebook.Source, logger *zap.Logger) *AboutScreen {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AboutScreen{
		renderer: renderer,
		sources:  sources,
		scroll:   components.NewScroller(),
		logger:   logger,
	}
}

// KeySources returns the first source of every case, the ones the about
// page links to.
func KeySources(cases []casebook.Case) []casebook.Source {
	var out []casebook.Source
	for _, c := range cases {
		if len(c.Sources) > 0 {
			out = append(out, c.Sources[0])
		}
	}
	return out
}

func (a *AboutScreen) Init() tea.Cmd {
	return nil
}

func (a *AboutScreen) Title() string {
	return "About"
}

func (a *AboutScreen) KeyHints() []layout.KeyHint {
	return keys.Hints(keys.Back, keys.Up, keys.Down, keys.Quit)
}

func (a *AboutScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && key.Matches(kmsg, keys.Back) {
		return a, router.Dispatch(flow.Event{Kind: flow.EventBack})
	}
	return a, a.scroll.Update(msg)
}

func (a *AboutScreen) View(width, height int) string {
	cw := min(width-4, 96)
	return a.scroll.View(a.content(cw), width, height)
}

func (a *AboutScreen) content(width int) string {
	if a.width != width || a.rendered == "" {
		out, err := a.renderer.Render(aboutMarkdown, width)
		if err != nil {
			// out is the raw markdown
			a.logger.Debug("markdown render failed", zap.Int("width", width), zap.Error(err))
		}
		a.rendered = out
		a.width = width
	}

	var b strings.Builder
	b.WriteString(a.rendered)
	b.WriteString("\n\n  ")
	b.WriteString(theme.Section.Render("Key Sources"))
	b.WriteString("\n")
	for _, s := range a.sources {
		b.WriteString("  • ")
		b.WriteString(components.SourceLink(s))
		b.WriteString("\n")
	}
	return b.String()
}
