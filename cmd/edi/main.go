// Package main is the entry point for the edi editor.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	editor "github.com/ionut-t/edi/adapter-bubbletea"
	"github.com/ionut-t/edi/adapter-bubbletea/highlighter"
	"github.com/ionut-t/edi/config"
	"github.com/ionut-t/edi/core"
	"github.com/ionut-t/edi/store"
	"github.com/ionut-t/edi/textfile"
)

// Version information (set via ldflags during build).
var version = "dev"

const debugLogFile = "edi-debug.log"

type options struct {
	configPath string
	debug      bool
	file       string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		fmt.Fprintln(os.Stderr, "Error: edi must be run in a terminal")
		return 1
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	closeLog, err := setupLogging(cfg.LogFile, opts.debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closeLog()

	sessionOpts := core.Options{
		Path:        opts.file,
		Persistence: textfile.New(),
		UndoLimit:   cfg.UndoLimit,
	}
	if cfg.SystemClipboard {
		sessionOpts.ClipboardSink = editor.SystemClipboard{}
	}

	session, err := core.Open(sessionOpts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	m := editor.New(session, 80, 24)
	m.WithTheme(themeFromConfig(cfg.Colors))

	if cfg.SyntaxHighlighting {
		m.WithSyntaxHighlighter(highlighter.ForFile(opts.file, cfg.SyntaxTheme))
	}

	if cfg.HistoryFile != "" {
		history, err := store.Open(cfg.HistoryFile, cfg.HistoryLimit)
		if err != nil {
			log.Printf("edi: search history disabled: %v", err)
		} else {
			defer history.Close()
			m.WithHistory(history)
		}
	}

	p := tea.NewProgram(program{editor: m}, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

// program runs the editor model and records what it reports.
type program struct {
	editor editor.Model
}

func (p program) Init() tea.Cmd {
	return p.editor.Init()
}

func (p program) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case editor.SaveMsg:
		log.Printf("edi: wrote %d bytes to %s", msg.Bytes, msg.Path)
		return p, nil

	case editor.ErrorMsg:
		log.Printf("edi: error %d: %v", msg.ID, msg.Error)
		return p, nil
	}

	updated, cmd := p.editor.Update(msg)
	p.editor = updated.(editor.Model)

	return p, cmd
}

func (p program) View() string {
	return p.editor.View()
}

func parseFlags() options {
	var opts options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.BoolVar(&opts.debug, "debug", false, "Write a debug log to "+debugLogFile)
	flag.BoolVar(&opts.debug, "d", false, "Write a debug log (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "edi - a small terminal text editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: edi [options] <filename>\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("edi %s\n", version)
		os.Exit(0)
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	opts.file = flag.Arg(0)

	return opts
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// setupLogging sends the standard logger to a file, since the screen belongs
// to the editor. Without a log file, log output is dropped.
func setupLogging(logFile string, debug bool) (func(), error) {
	if logFile == "" && debug {
		logFile = debugLogFile
	}

	if logFile == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	f, err := tea.LogToFile(logFile, "edi")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return func() { _ = f.Close() }, nil
}

func themeFromConfig(colors config.Colors) editor.Theme {
	theme := editor.DefaultTheme

	theme.TitleStyle = theme.TitleStyle.
		Foreground(lipgloss.Color(colors.Title.Foreground)).
		Background(lipgloss.Color(colors.Title.Background))
	theme.StatusLineStyle = theme.StatusLineStyle.
		Foreground(lipgloss.Color(colors.Status.Foreground)).
		Background(lipgloss.Color(colors.Status.Background))
	theme.LineNumberStyle = theme.LineNumberStyle.
		Foreground(lipgloss.Color(colors.Gutter.Foreground))
	theme.HighlightStyle = theme.HighlightStyle.
		Foreground(lipgloss.Color(colors.Highlight.Foreground)).
		Background(lipgloss.Color(colors.Highlight.Background))
	theme.ErrorStyle = theme.ErrorStyle.
		Foreground(lipgloss.Color(colors.Error.Foreground))

	return theme
}
