package keys

import (
	"testing"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"

	"github.com/abhisek/verdict/internal/casebook"
)

func TestVerdictShortcutsMatchCasebook(t *testing.T) {
	for _, v := range casebook.AllVerdicts() {
		b := ForVerdict(v)
		msg := tea.KeyPressMsg{Code: rune(v.Shortcut()[0]), Text: v.Shortcut()}
		assert.True(t, key.Matches(msg, b), "shortcut for %s", v)
	}
}

func TestEvidenceMatchesDigits(t *testing.T) {
	assert.True(t, key.Matches(tea.KeyPressMsg{Code: '1', Text: "1"}, Evidence))
	assert.True(t, key.Matches(tea.KeyPressMsg{Code: '9', Text: "9"}, Evidence))
	assert.False(t, key.Matches(tea.KeyPressMsg{Code: '0', Text: "0"}, Evidence))
}

func TestHints_SkipsDisabled(t *testing.T) {
	off := key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "Hidden"), key.WithDisabled())
	hints := Hints(Select, off, Quit)

	assert.Len(t, hints, 2)
	assert.Equal(t, "Enter", hints[0].Key)
	assert.Equal(t, "Quit", hints[1].Description)
}
