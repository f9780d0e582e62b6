package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/verdict/internal/casebook"
	"github.com/abhisek/verdict/internal/config"
	"github.com/abhisek/verdict/internal/flow"
	"github.com/abhisek/verdict/internal/router"
	"github.com/abhisek/verdict/internal/screen"
	"github.com/abhisek/verdict/internal/screens/results"
	"github.com/abhisek/verdict/internal/ui/keys"
	"github.com/abhisek/verdict/internal/ui/layout"
)

// Options configures a play session.
type Options struct {
	Catalog *casebook.Catalog
	Config  config.Config
	Logger  *zap.Logger
	Copier  results.Copier
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	controller *flow.Controller
	router     *router.Router
	logger     *zap.Logger
	width      int
	height     int
}

// newAppModel creates a new AppModel on the landing screen.
func newAppModel(opts Options) AppModel {
	if opts.Catalog == nil {
		opts.Catalog = casebook.Default()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	controller := flow.NewController(opts.Catalog)
	return AppModel{
		controller: controller,
		router:     router.New(controller, newFactory(opts, controller), opts.Logger),
		logger:     opts.Logger,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			m.logger.Info("session ended",
				zap.Stringer("state", m.controller.State()),
				zap.Int("verdicts", len(m.controller.Verdicts())))
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	v.SetContent(m.render())
	return v
}

func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	header := layout.RenderHeader(active.Title(), m.status(), m.width)

	footerHints := keys.Hints(keys.Quit)
	if p, ok := active.(screen.KeyHintProvider); ok {
		footerHints = p.KeyHints()
	}
	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// status is the right side of the header: the docket position while a
// case is open, otherwise how many verdicts are in.
func (m AppModel) status() string {
	st := m.controller.State()
	total := m.controller.CaseCount()
	if st.Screen == flow.ScreenCase {
		return fmt.Sprintf("Case %d of %d", st.CaseIndex+1, total)
	}
	return fmt.Sprintf("🔨 %d/%d verdicts", len(m.controller.Verdicts()), total)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := newAppModel(opts)
	m.logger.Info("session started", zap.Int("cases", m.controller.CaseCount()))

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		m.logger.Error("program exited with error", zap.Error(err))
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
