package main

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	editor "github.com/ionut-t/edi/adapter-bubbletea"
	"github.com/ionut-t/edi/config"
	"github.com/ionut-t/edi/core"
)

func newTestProgram(lines ...string) program {
	session := core.NewSession(core.NewBuffer(lines...), core.Options{Path: "test.txt"})
	return program{editor: editor.New(session, 80, 24)}
}

func TestProgram_ForwardsKeys(t *testing.T) {
	p := newTestProgram("ab")

	updated, _ := p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	p = updated.(program)

	assert.Equal(t, []string{"xab"}, p.editor.Session().Lines())
	assert.Contains(t, p.View(), "xab")
}

func TestProgram_ConsumesReports(t *testing.T) {
	p := newTestProgram("ab")

	for _, msg := range []tea.Msg{
		editor.SaveMsg{Path: "test.txt", Bytes: 3},
		editor.ErrorMsg{ID: core.ErrFailedToSaveId, Error: errors.New("disk full")},
	} {
		updated, cmd := p.Update(msg)
		require.IsType(t, program{}, updated)
		assert.Nil(t, cmd)
	}
}

func TestThemeFromConfig(t *testing.T) {
	colors := config.Default().Colors
	colors.Highlight = config.ColorPair{Foreground: "1", Background: "2"}

	theme := themeFromConfig(colors)

	assert.Equal(t, lipgloss.Color("1"), theme.HighlightStyle.GetForeground())
	assert.Equal(t, lipgloss.Color("2"), theme.HighlightStyle.GetBackground())
}
