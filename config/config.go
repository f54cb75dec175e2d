// Package config loads the editor configuration from a YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const appName = "edi"

// ColorPair is a foreground/background pair of lipgloss color strings
// (ANSI numbers such as "240" or hex values such as "#ffcc00").
type ColorPair struct {
	Foreground string `yaml:"foreground"`
	Background string `yaml:"background"`
}

type Colors struct {
	Title     ColorPair `yaml:"title"`
	Status    ColorPair `yaml:"status"`
	Gutter    ColorPair `yaml:"gutter"`
	Highlight ColorPair `yaml:"highlight"`
	Error     ColorPair `yaml:"error"`
}

type Config struct {
	SyntaxHighlighting bool   `yaml:"syntax_highlighting"`
	SyntaxTheme        string `yaml:"syntax_theme"`
	SystemClipboard    bool   `yaml:"system_clipboard"`
	UndoLimit          int    `yaml:"undo_limit"`
	LogFile            string `yaml:"log_file"`
	HistoryFile        string `yaml:"history_file"`
	HistoryLimit       int    `yaml:"history_limit"`
	Colors             Colors `yaml:"colors"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		SyntaxHighlighting: true,
		SyntaxTheme:        "monokai",
		SystemClipboard:    false,
		UndoLimit:          0,
		HistoryFile:        defaultHistoryFile(),
		HistoryLimit:       100,
		Colors: Colors{
			Title:     ColorPair{Foreground: "255", Background: "62"},
			Status:    ColorPair{Foreground: "255", Background: "236"},
			Gutter:    ColorPair{Foreground: "240"},
			Highlight: ColorPair{Foreground: "0", Background: "220"},
			Error:     ColorPair{Foreground: "208", Background: "236"},
		},
	}
}

// DefaultPath is $XDG_CONFIG_HOME/edi/config.yaml or the platform equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appName, "config.yaml"), nil
}

func defaultHistoryFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, appName, "history.db")
}

// Load reads the configuration at path, or at DefaultPath when path is empty.
// A missing default file yields Default(); a missing explicit file is an
// error. Keys left out of the file keep their default values.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	return Parse(content)
}

// Parse decodes YAML content on top of Default(). Unknown keys are rejected.
func Parse(content []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.UndoLimit < 0 {
		return fmt.Errorf("invalid config: undo_limit must be >= 0, got %d", c.UndoLimit)
	}
	if c.HistoryLimit < 0 {
		return fmt.Errorf("invalid config: history_limit must be >= 0, got %d", c.HistoryLimit)
	}
	if c.SyntaxHighlighting && c.SyntaxTheme == "" {
		return errors.New("invalid config: syntax_theme is required when syntax_highlighting is on")
	}
	return nil
}
