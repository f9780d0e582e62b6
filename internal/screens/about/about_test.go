package about

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/verdict/internal/casebook"
	"github.com/abhisek/verdict/internal/flow"
	"github.com/abhisek/verdict/internal/router"
	"github.com/abhisek/verdict/internal/ui/markdown"
)

func newTestAbout() *AboutScreen {
	return New(markdown.New("notty"), KeySources(casebook.Default().All()), nil)
}

func TestKeySources_FirstPerCase(t *testing.T) {
	got := KeySources(casebook.Default().All())
	if len(got) != 4 {
		t.Fatalf("expected 4 key sources, got %d", len(got))
	}
	if got[0].Label != "Justia: Moore v. Regents" {
		t.Errorf("first key source = %q", got[0].Label)
	}
}

func TestView_ShowsNarrativeAndSources(t *testing.T) {
	a := newTestAbout()
	view := ansi.Strip(a.View(100, 200))

	for _, want := range []string{"About This Project", "Medical Disclaimer", "Key Sources", "Justia: Rubio v. CIA Wheel Group"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestView_ScrollsWithinHeight(t *testing.T) {
	a := newTestAbout()
	view := a.View(100, 10)
	if n := strings.Count(view, "\n") + 1; n > 10 {
		t.Errorf("view has %d lines, want at most 10", n)
	}
}

func TestBackKeys(t *testing.T) {
	for _, k := range []tea.KeyPressMsg{
		{Code: tea.KeyEscape},
		{Code: 'b', Text: "b"},
	} {
		a := newTestAbout()
		_, cmd := a.Update(k)
		if cmd == nil {
			t.Fatalf("expected a command for %s", k.String())
		}
		intent, ok := cmd().(router.IntentMsg)
		if !ok || intent.Event.Kind != flow.EventBack {
			t.Errorf("%s: expected back intent, got %#v", k.String(), cmd())
		}
	}
}

func TestTitle(t *testing.T) {
	if newTestAbout().Title() != "About" {
		t.Error("unexpected title")
	}
}

func TestView_RenderFailureFallsBackAndLogs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	a := New(markdown.New("no-such-style"), nil, zap.New(core))

	view := a.View(100, 400)
	if !strings.Contains(view, "About This Project") {
		t.Error("expected the raw markdown when rendering fails")
	}
	a.View(100, 400)

	entries := logs.FilterMessage("markdown render failed").All()
	if len(entries) != 1 {
		t.Fatalf("expected one logged render failure per width, got %d", len(entries))
	}
	if entries[0].Level != zapcore.DebugLevel {
		t.Errorf("logged at %s, want debug", entries[0].Level)
	}
}
