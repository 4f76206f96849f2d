package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchInputReceivesBlinkMessages(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	a := NewApp(Options{Path: "report.csv", Budget: 100000, SkipRows: 3, NoCache: true})
	a.alloc.searching = true

	focusCmd := a.alloc.input.Focus()
	require.NotNil(t, focusCmd)
	msg := focusCmd()

	model, cmd := a.Update(msg)
	updated, ok := model.(App)
	require.True(t, ok)

	assert.True(t, updated.alloc.searching)
	// The focused input schedules the next blink tick.
	assert.NotNil(t, cmd)
}

func TestSettingsInputReceivesBlinkMessages(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	a := NewApp(Options{Path: "report.csv", Budget: 100000, SkipRows: 3, NoCache: true})
	a.settings.editing = true

	focusCmd := a.settings.input.Focus()
	require.NotNil(t, focusCmd)
	msg := focusCmd()

	model, cmd := a.Update(msg)
	updated, ok := model.(App)
	require.True(t, ok)

	assert.True(t, updated.settings.editing)
	assert.NotNil(t, cmd)
}
