package adapter_bubbletea

import (
	"context"
	"log"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ionut-t/edi/adapter-bubbletea/highlighter"
	"github.com/ionut-t/edi/core"
)

// Rows taken by the title bar, the status line and the help bar.
const chromeRows = 3

const defaultMessageDuration = 3 * time.Second

type Theme struct {
	TitleStyle      lipgloss.Style
	StatusLineStyle lipgloss.Style
	LineNumberStyle lipgloss.Style
	HighlightStyle  lipgloss.Style
	CursorStyle     lipgloss.Style
	MessageStyle    lipgloss.Style
	ErrorStyle      lipgloss.Style
	HelpStyle       lipgloss.Style
}

var DefaultTheme = Theme{
	TitleStyle:      lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("255")).Bold(true),
	StatusLineStyle: lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("255")),
	LineNumberStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	HighlightStyle:  lipgloss.NewStyle().Background(lipgloss.Color("220")).Foreground(lipgloss.Color("0")),
	CursorStyle:     lipgloss.NewStyle().Reverse(true),
	MessageStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	ErrorStyle:      lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	HelpStyle:       lipgloss.NewStyle().Padding(1, 2),
}

// KeywordHistory remembers submitted search keywords across sessions.
type KeywordHistory interface {
	Add(keyword string) error
	Keywords() ([]string, error)
}

// Model is the terminal shell around a core.Session. It decodes key presses
// into commands, turns the resulting signals into UI state and draws frames.
type Model struct {
	session     *core.Session
	keymap      KeyMap
	help        help.Model
	prompt      textinput.Model
	theme       Theme
	highlighter *highlighter.Highlighter

	history   KeywordHistory
	recall    []string
	recallIdx int

	width  int
	height int

	err             error
	message         string
	messageDuration time.Duration
	clearMsgCancel  context.CancelFunc
}

// ErrorMsg and SaveMsg report session errors and completed saves to the
// program running the model; the model itself already shows them in the
// status line.
type ErrorMsg struct {
	ID    core.ErrorId
	Error error
}

type SaveMsg struct {
	Path  string
	Bytes int
}

type clearMsg struct{}

// SystemClipboard mirrors copied lines to the OS clipboard.
type SystemClipboard struct{}

func (SystemClipboard) Write(text string) error {
	return clipboard.WriteAll(text)
}

func New(session *core.Session, width, height int) Model {
	prompt := textinput.New()
	prompt.Prompt = "Search: "
	prompt.Placeholder = "keyword"

	m := Model{
		session: session,
		keymap:  DefaultKeyMap(),
		help:    help.New(),
		prompt:  prompt,
		theme:   DefaultTheme,

		messageDuration: defaultMessageDuration,
	}

	m.SetSize(width, height)

	return m
}

// SetSize resizes the shell. The text window gets whatever the chrome
// leaves, but never less than one row.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
	m.prompt.Width = max(width-len(m.prompt.Prompt)-1, 1)
	m.session.Resize(max(height-chromeRows, 1))
}

// WithTheme allows setting a custom theme for the editor.
func (m *Model) WithTheme(theme Theme) {
	m.theme = theme
}

// WithSyntaxHighlighter enables syntax colouring. A nil highlighter turns it off.
func (m *Model) WithSyntaxHighlighter(h *highlighter.Highlighter) {
	m.highlighter = h
}

// WithHistory makes submitted keywords persistent and recallable from the
// search prompt with the up and down keys.
func (m *Model) WithHistory(history KeywordHistory) {
	m.history = history
}

// SetMessageDuration sets how long status line messages and errors stay up.
func (m *Model) SetMessageDuration(d time.Duration) {
	m.messageDuration = d
}

// Session returns the session driven by the model.
func (m *Model) Session() *core.Session {
	return m.session
}

// DispatchMessage allows setting a message to be displayed in the status line for a specified duration.
func (m *Model) DispatchMessage(message string, duration time.Duration) tea.Cmd {
	m.message = message
	m.err = nil

	return m.dispatchClearMsg(duration)
}

// DispatchError allows setting an error to be displayed in the status line for a specified duration.
func (m *Model) DispatchError(err error, duration time.Duration) tea.Cmd {
	m.err = err
	m.message = ""

	return m.dispatchClearMsg(duration)
}

func (m *Model) dispatchClearMsg(duration time.Duration) tea.Cmd {
	if m.clearMsgCancel != nil {
		m.clearMsgCancel()
	}

	ctx, cancel := context.WithTimeout(context.Background(), duration)
	m.clearMsgCancel = cancel

	return func() tea.Msg {
		defer cancel()
		<-ctx.Done()
		if ctx.Err() == context.DeadlineExceeded {
			return clearMsg{}
		}
		return nil
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		if m.session.State() == core.AwaitingSearchInput {
			return m.updatePrompt(msg)
		}

		commands := m.keymap.Decode(msg)
		if len(commands) == 0 && m.session.State() != core.Editing {
			commands = []core.Command{core.Cancel{}}
		}

		cmds := make([]tea.Cmd, 0, len(commands))
		for _, command := range commands {
			cmds = append(cmds, m.handle(command))
		}
		return m, tea.Batch(cmds...)

	case clearMsg:
		m.message = ""
		m.err = nil
		m.clearMsgCancel = nil
	}

	return m, nil
}

// updatePrompt feeds keys to the search prompt until it is submitted or
// cancelled.
func (m Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		keyword := m.prompt.Value()
		m.prompt.Blur()
		return m, m.handle(core.SubmitSearch{Keyword: keyword})

	case tea.KeyEsc, tea.KeyCtrlC:
		m.prompt.Blur()
		return m, m.handle(core.Cancel{})

	case tea.KeyUp:
		if m.recallIdx > 0 {
			m.recallIdx--
			m.prompt.SetValue(m.recall[m.recallIdx])
			m.prompt.CursorEnd()
		}
		return m, nil

	case tea.KeyDown:
		if m.recallIdx < len(m.recall)-1 {
			m.recallIdx++
			m.prompt.SetValue(m.recall[m.recallIdx])
			m.prompt.CursorEnd()
		} else {
			m.recallIdx = len(m.recall)
			m.prompt.SetValue("")
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m *Model) openPrompt() tea.Cmd {
	m.prompt.SetValue("")
	m.recall = nil

	if m.history != nil {
		keywords, err := m.history.Keywords()
		if err != nil {
			log.Printf("edi: loading search history: %v", err)
		}
		m.recall = keywords
	}
	m.recallIdx = len(m.recall)

	return m.prompt.Focus()
}

// handle runs one command through the session and reacts to its signals.
func (m *Model) handle(command core.Command) tea.Cmd {
	var cmds []tea.Cmd

	for _, signal := range m.session.Handle(command) {
		switch signal := signal.(type) {
		case core.ErrorSignal:
			id, err := signal.Value()
			cmds = append(cmds, m.DispatchError(err, m.messageDuration), func() tea.Msg {
				return ErrorMsg{ID: id, Error: err}
			})

		case core.MessageSignal:
			id, message := signal.Value()
			// The exit prompt stays on screen for as long as the session waits.
			if id == core.SaveBeforeExitMessage {
				continue
			}
			cmds = append(cmds, m.DispatchMessage(message, m.messageDuration))

		case core.SaveSignal:
			path, bytes := signal.Value()
			cmds = append(cmds, func() tea.Msg {
				return SaveMsg{Path: path, Bytes: bytes}
			})

		case core.QuitSignal:
			cmds = append(cmds, tea.Quit)

		case core.SearchSignal:
			keyword, _, _ := signal.Value()
			if m.history != nil && keyword != "" {
				if err := m.history.Add(keyword); err != nil {
					log.Printf("edi: saving search history: %v", err)
				}
			}

		case core.ContentChangeSignal:
			if m.highlighter != nil {
				m.highlighter.Invalidate()
			}

		case core.StateChangeSignal:
			if _, to := signal.Value(); to == core.AwaitingSearchInput {
				cmds = append(cmds, m.openPrompt())
			}
		}
	}

	return tea.Batch(cmds...)
}
