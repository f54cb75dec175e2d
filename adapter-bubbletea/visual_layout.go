package adapter_bubbletea

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/ionut-t/edi/adapter-bubbletea/highlighter"
	"github.com/ionut-t/edi/core"
	"github.com/rivo/uniseg"
)

// Line numbers are drawn in a fixed-width margin.
const (
	gutterFormat = "%4d │ "
	gutterWidth  = 7
)

const helpFooter = "Press any key to return..."

func (m Model) View() string {
	frame := m.session.Frame()

	if frame.State == core.ShowingHelp {
		return m.renderHelpScreen()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderTitle(frame),
		m.renderText(frame),
		m.renderStatusLine(frame),
		m.help.ShortHelpView(m.keymap.ShortHelp()),
	)
}

func (m Model) renderTitle(frame core.Frame) string {
	title := " edi - " + frame.Path
	if frame.Modified {
		title += " [+]"
	}
	if m.highlighter != nil {
		title += " (" + m.highlighter.Language() + ")"
	}
	return m.theme.TitleStyle.Width(max(m.width, 1)).Render(ansi.Truncate(title, m.width, "…"))
}

// renderText draws exactly VisibleRows rows, padding below the last line.
func (m Model) renderText(frame core.Frame) string {
	rows := m.session.VisibleRows()

	var all []string
	if m.highlighter != nil {
		all = m.session.Lines()
	}

	out := make([]string, rows)
	for i := 0; i < rows; i++ {
		if i >= len(frame.Lines) {
			continue
		}
		out[i] = m.renderLine(frame, frame.Lines[i], i == frame.CursorRow, all)
	}

	return strings.Join(out, "\n")
}

func (m Model) renderLine(frame core.Frame, line core.FrameLine, isCursorLine bool, all []string) string {
	runes := []rune(line.Text)
	available := max(m.width-gutterWidth, 1)

	cursorCol := -1
	start := 0
	if isCursorLine {
		cursorCol = frame.Cursor.Col
		start = horizontalStart(runes, cursorCol, available)
	}

	var spans []highlighter.Span
	if m.highlighter != nil {
		spans = m.highlighter.Spans(line.Number-1, all)
	}

	match, hasMatch := frame.HighlightFor(line.Number)

	var sb strings.Builder
	sb.WriteString(m.theme.LineNumberStyle.Render(fmt.Sprintf(gutterFormat, line.Number)))

	for col := start; col < len(runes); col++ {
		ch := cell(runes[col])

		style := lipgloss.NewStyle()
		if s, ok := highlighter.StyleAt(m.highlighter, spans, col); ok {
			style = s
		}
		if hasMatch && col >= match.Start && col < match.Start+match.Length {
			style = m.theme.HighlightStyle
		}
		if col == cursorCol {
			style = m.theme.CursorStyle
		}

		sb.WriteString(style.Render(ch))
	}

	if cursorCol == len(runes) {
		sb.WriteString(m.theme.CursorStyle.Render(" "))
	}

	return ansi.Truncate(sb.String(), m.width, "")
}

// horizontalStart returns the first rune to draw so that the cursor cell at
// col still fits within width cells.
func horizontalStart(runes []rune, col, width int) int {
	col = min(col, len(runes))
	start := 0
	for start < col && cellsWidth(runes[start:col])+1 > width {
		start++
	}
	return start
}

// cell is what gets drawn for r. Tabs take a single blank cell.
func cell(r rune) string {
	if r == '\t' {
		return " "
	}
	return string(r)
}

func cellsWidth(runes []rune) int {
	var sb strings.Builder
	for _, r := range runes {
		sb.WriteString(cell(r))
	}
	return uniseg.StringWidth(sb.String())
}

func (m Model) renderStatusLine(frame core.Frame) string {
	var left string

	switch {
	case frame.State == core.AwaitingSearchInput:
		left = m.prompt.View()
	case frame.State == core.AwaitingSaveConfirmation:
		left = m.theme.ErrorStyle.
			Background(m.theme.StatusLineStyle.GetBackground()).
			Render(core.SaveBeforeExitMessage)
	case m.err != nil:
		left = m.theme.ErrorStyle.
			Background(m.theme.StatusLineStyle.GetBackground()).
			Render(m.err.Error())
	case m.message != "":
		left = m.theme.MessageStyle.
			Background(m.theme.StatusLineStyle.GetBackground()).
			Render(m.message)
	case frame.Search.Active():
		left = m.theme.StatusLineStyle.Render(fmt.Sprintf("Search: %q", frame.Search.Keyword))
	}
	left = m.theme.StatusLineStyle.Render(" ") + left

	cursorInfo := fmt.Sprintf("%d/%d ", frame.Cursor.Line, frame.Cursor.Col+1)

	gap := strings.Repeat(" ", max(0, m.width-lipgloss.Width(left)-lipgloss.Width(cursorInfo)))

	return ansi.Truncate(left+m.theme.StatusLineStyle.Render(gap+cursorInfo), m.width, "")
}

func (m Model) renderHelpScreen() string {
	body := lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.TitleStyle.Render(" edi "),
		"",
		"A small terminal text editor.",
		"",
		m.help.FullHelpView(m.keymap.FullHelp()),
		"",
		helpFooter,
	)
	return m.theme.HelpStyle.Render(body)
}
