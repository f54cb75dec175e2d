package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Empty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParse_OverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
syntax_theme: dracula
system_clipboard: true
undo_limit: 50
colors:
  highlight:
    foreground: "#000000"
    background: "#ffcc00"
`))
	require.NoError(t, err)

	assert.True(t, cfg.SyntaxHighlighting)
	assert.Equal(t, "dracula", cfg.SyntaxTheme)
	assert.True(t, cfg.SystemClipboard)
	assert.Equal(t, 50, cfg.UndoLimit)
	assert.Equal(t, 100, cfg.HistoryLimit)
	assert.Equal(t, ColorPair{Foreground: "#000000", Background: "#ffcc00"}, cfg.Colors.Highlight)
	assert.Equal(t, Default().Colors.Title, cfg.Colors.Title)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown key", "syntax_colour: red\n"},
		{"negative undo limit", "undo_limit: -1\n"},
		{"negative history limit", "history_limit: -5\n"},
		{"missing theme", "syntax_theme: \"\"\n"},
		{"malformed", "undo_limit: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.content))
			assert.Error(t, err)
		})
	}
}

func TestParse_ThemeNotNeededWithoutHighlighting(t *testing.T) {
	_, err := Parse([]byte("syntax_highlighting: false\nsyntax_theme: \"\"\n"))
	assert.NoError(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("history_limit: 10\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.HistoryLimit)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_MissingDefaultFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().UndoLimit, cfg.UndoLimit)
	assert.Equal(t, Default().SyntaxTheme, cfg.SyntaxTheme)
}
