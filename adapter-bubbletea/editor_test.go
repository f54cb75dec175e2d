package adapter_bubbletea

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ionut-t/edi/adapter-bubbletea/highlighter"
	"github.com/ionut-t/edi/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memPersistence struct {
	saved map[string][]string
	err   error
}

func (p *memPersistence) Load(string) ([]string, error) { return nil, core.ErrNotFound }

func (p *memPersistence) Save(path string, lines []string) error {
	if p.err != nil {
		return p.err
	}
	p.saved[path] = lines
	return nil
}

type memHistory struct {
	keywords []string
}

func (h *memHistory) Add(keyword string) error {
	h.keywords = append(h.keywords, keyword)
	return nil
}

func (h *memHistory) Keywords() ([]string, error) {
	return h.keywords, nil
}

func newTestModel(t *testing.T, lines ...string) (Model, *memPersistence) {
	t.Helper()
	p := &memPersistence{saved: make(map[string][]string)}
	session := core.NewSession(core.NewBuffer(lines...), core.Options{
		Path:        "test.txt",
		Persistence: p,
	})
	return New(session, 80, 24), p
}

func press(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}
	return m
}

// collect runs cmd and any batched commands it returns, gathering their
// messages.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, collect(c)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_SizesViewport(t *testing.T) {
	m, _ := newTestModel(t, "a")
	assert.Equal(t, 21, m.Session().VisibleRows())

	m = press(m, tea.WindowSizeMsg{Width: 40, Height: 10})
	assert.Equal(t, 7, m.Session().VisibleRows())

	m = press(m, tea.WindowSizeMsg{Width: 40, Height: 2})
	assert.Equal(t, 1, m.Session().VisibleRows())
}

func TestModel_TypingAndUndo(t *testing.T) {
	m, _ := newTestModel(t, "ab")

	m = press(m, tea.KeyMsg{Type: tea.KeyRight}, runes("X"))
	assert.Equal(t, []string{"aXb"}, m.Session().Lines())
	assert.Equal(t, core.Position{Line: 1, Col: 2}, m.Session().Cursor())

	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, []string{"aX", "b"}, m.Session().Lines())

	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlZ}, tea.KeyMsg{Type: tea.KeyCtrlZ})
	assert.Equal(t, []string{"ab"}, m.Session().Lines())
}

func TestModel_SaveShowsMessage(t *testing.T) {
	m, p := newTestModel(t, "ab")

	m = press(m, runes("x"), tea.KeyMsg{Type: tea.KeyCtrlS})

	assert.Equal(t, []string{"xab"}, p.saved["test.txt"])
	assert.Contains(t, m.View(), core.FileSavedMessage)

	m = press(m, clearMsg{})
	assert.NotContains(t, m.View(), core.FileSavedMessage)
}

func TestModel_SaveReportsToProgram(t *testing.T) {
	m, _ := newTestModel(t, "ab")
	m.SetMessageDuration(0)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})

	msgs := collect(cmd)
	assert.Contains(t, msgs, SaveMsg{Path: "test.txt", Bytes: 3})
	assert.Contains(t, msgs, clearMsg{})
}

func TestModel_ErrorReportsToProgram(t *testing.T) {
	m, p := newTestModel(t, "ab")
	p.err = core.ErrIOFailure
	m.SetMessageDuration(0)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	m = updated.(Model)

	var got *ErrorMsg
	for _, msg := range collect(cmd) {
		if e, ok := msg.(ErrorMsg); ok {
			got = &e
		}
	}
	require.NotNil(t, got)
	assert.Equal(t, core.ErrFailedToSaveId, got.ID)
	assert.ErrorIs(t, got.Error, core.ErrIOFailure)
	assert.Contains(t, m.View(), core.ErrIOFailure.Error())
}

func TestModel_Search(t *testing.T) {
	m, _ := newTestModel(t, "alpha\n", "beta gamma\n")
	history := &memHistory{}
	m.WithHistory(history)

	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlF})
	require.Equal(t, core.AwaitingSearchInput, m.Session().State())

	m = press(m, runes("gam"), runes("ma"))
	assert.Equal(t, "gamma", m.prompt.Value())
	assert.Contains(t, m.View(), "Search: ")

	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, core.Editing, m.Session().State())
	assert.Equal(t, core.Position{Line: 2, Col: 5}, m.Session().Cursor())
	assert.Equal(t, []string{"gamma"}, history.keywords)
	assert.Equal(t, []string{"alpha", "beta gamma"}, m.Session().Lines())
}

func TestModel_SearchRecallsHistory(t *testing.T) {
	m, _ := newTestModel(t, "one\n", "two\n")
	m.WithHistory(&memHistory{keywords: []string{"one", "two"}})

	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlF}, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "two", m.prompt.Value())

	m = press(m, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "one", m.prompt.Value())

	m = press(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "", m.prompt.Value())

	m = press(m, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, core.Position{Line: 2, Col: 0}, m.Session().Cursor())
}

func TestModel_SearchEscCancels(t *testing.T) {
	m, _ := newTestModel(t, "alpha")

	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlF}, runes("al"), tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, core.Editing, m.Session().State())
	assert.False(t, m.Session().Search().Active())
	assert.Equal(t, []string{"alpha"}, m.Session().Lines())
}

func TestModel_ExitPrompt(t *testing.T) {
	m, p := newTestModel(t, "ab")

	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlX})
	require.Equal(t, core.AwaitingSaveConfirmation, m.Session().State())
	assert.Contains(t, m.View(), core.SaveBeforeExitMessage)

	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlA})
	assert.Equal(t, core.Editing, m.Session().State())

	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlX})
	_, cmd := m.Update(runes("y"))
	assert.NotNil(t, cmd)
	assert.Equal(t, core.Terminated, m.Session().State())
	assert.Equal(t, []string{"ab"}, p.saved["test.txt"])
}

func TestModel_HelpScreen(t *testing.T) {
	m, _ := newTestModel(t, "ab")

	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlH})
	require.Equal(t, core.ShowingHelp, m.Session().State())
	assert.Contains(t, m.View(), helpFooter)

	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlA})
	assert.Equal(t, core.Editing, m.Session().State())
	assert.NotContains(t, m.View(), helpFooter)
}

func TestModel_View(t *testing.T) {
	m, _ := newTestModel(t, "hello\n", "world")
	m = press(m, tea.WindowSizeMsg{Width: 40, Height: 8})

	view := m.View()

	assert.Contains(t, view, "edi - test.txt")
	assert.Contains(t, view, "   1 │ ")
	assert.Contains(t, view, "world")
	assert.Contains(t, view, "1/1")

	m = press(m, runes("x"))
	assert.Contains(t, m.View(), "[+]")
}

func TestModel_WithSyntaxHighlighter(t *testing.T) {
	m, _ := newTestModel(t, "package main\n", "func main() {}\n")
	h := highlighter.New(nil, "monokai")
	m.WithSyntaxHighlighter(h)

	assert.Contains(t, m.View(), "func")

	m = press(m, runes("x"))
	m.View()

	spans := h.Spans(0, m.Session().Lines())
	require.NotEmpty(t, spans)
	assert.Equal(t, len("xpackage main"), spans[len(spans)-1].End)
}

func TestHorizontalStart(t *testing.T) {
	line := []rune("abcdefghij")

	assert.Equal(t, 0, horizontalStart(line, 3, 10))
	assert.Equal(t, 5, horizontalStart(line, 9, 5))
	assert.Equal(t, 6, horizontalStart(line, 10, 5))
	assert.Equal(t, 0, horizontalStart(line, 0, 1))
}

func TestHorizontalStart_Tabs(t *testing.T) {
	tabs := []rune(strings.Repeat("\t", 10))

	assert.Equal(t, 5, horizontalStart(tabs, 9, 5))
	assert.Equal(t, 0, horizontalStart(tabs, 4, 5))
	assert.Equal(t, 3, horizontalStart([]rune("a\tb\tc\td"), 7, 5))
}

func TestModel_ViewScrollsTabbedLine(t *testing.T) {
	m, _ := newTestModel(t, strings.Repeat("\t", 20)+"end")
	m = press(m, tea.WindowSizeMsg{Width: 17, Height: 8})
	for i := 0; i < 23; i++ {
		m = press(m, tea.KeyMsg{Type: tea.KeyRight})
	}
	require.Equal(t, core.Position{Line: 1, Col: 23}, m.Session().Cursor())

	// Ten text cells: six tabs drawn as blanks, "end", then the cursor.
	assert.Contains(t, m.View(), "   1 │       end")
}
