package core

import (
	"fmt"
	"strings"
)

// line is one buffer line. text never contains a line terminator; eol keeps
// the terminator the line was read with ("\n", "\r\n" or "").
type line struct {
	text []rune
	eol  string
}

// Buffer is the ordered sequence of lines being edited. Lines are addressed
// 1-based and columns 0-based, in runes. A Buffer always holds at least one
// line.
type Buffer struct {
	lines []line
}

// NewBuffer creates a buffer from lines as returned by a line reader: each
// argument is one line and may end with its terminator. With no arguments
// the buffer holds a single empty line.
func NewBuffer(lines ...string) *Buffer {
	b := &Buffer{lines: make([]line, 0, max(len(lines), 1))}
	for _, l := range lines {
		text, eol := splitTerminator(l)
		b.lines = append(b.lines, line{text: []rune(text), eol: eol})
	}

	if len(b.lines) == 0 {
		b.lines = append(b.lines, line{text: []rune{}})
	}

	return b
}

func splitTerminator(s string) (text, eol string) {
	switch {
	case strings.HasSuffix(s, "\r\n"):
		return s[:len(s)-2], "\r\n"
	case strings.HasSuffix(s, "\n"):
		return s[:len(s)-1], "\n"
	}
	return s, ""
}

func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// LineText returns the text of the given line without its terminator.
func (b *Buffer) LineText(lineNum int) (string, error) {
	if err := b.checkLine("LineText", lineNum); err != nil {
		return "", err
	}
	return string(b.lines[lineNum-1].text), nil
}

// LineLen returns the rune count of a line, or 0 when the line does not exist.
func (b *Buffer) LineLen(lineNum int) int {
	if lineNum < 1 || lineNum > len(b.lines) {
		return 0
	}
	return len(b.lines[lineNum-1].text)
}

func (b *Buffer) lineRunes(lineNum int) []rune {
	if lineNum < 1 || lineNum > len(b.lines) {
		return nil
	}
	return b.lines[lineNum-1].text
}

// Lines returns the text of every line, without terminators.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	for i, l := range b.lines {
		out[i] = string(l.text)
	}
	return out
}

// RawLines returns every line followed by its terminator, ready to be
// concatenated back into file content.
func (b *Buffer) RawLines() []string {
	out := make([]string, len(b.lines))
	for i, l := range b.lines {
		out[i] = string(l.text) + l.eol
	}
	return out
}

// Clone returns a deep copy that shares no memory with b.
func (b *Buffer) Clone() *Buffer {
	c := &Buffer{lines: make([]line, len(b.lines))}
	for i, l := range b.lines {
		text := make([]rune, len(l.text))
		copy(text, l.text)
		c.lines[i] = line{text: text, eol: l.eol}
	}
	return c
}

// Equal reports whether both buffers hold the same lines and terminators.
func (b *Buffer) Equal(other *Buffer) bool {
	if other == nil || len(b.lines) != len(other.lines) {
		return false
	}
	for i := range b.lines {
		if b.lines[i].eol != other.lines[i].eol ||
			string(b.lines[i].text) != string(other.lines[i].text) {
			return false
		}
	}
	return true
}

func (b *Buffer) checkLine(op string, lineNum int) error {
	if lineNum < 1 || lineNum > len(b.lines) {
		return fmt.Errorf("%s: %w: line %d outside [1, %d]", op, ErrOutOfRange, lineNum, len(b.lines))
	}
	return nil
}

func (b *Buffer) checkPosition(op string, lineNum, col int) error {
	if err := b.checkLine(op, lineNum); err != nil {
		return err
	}
	lineLen := len(b.lines[lineNum-1].text)
	if col < 0 || col > lineLen {
		return fmt.Errorf("%s: %w: col %d outside [0, %d]", op, ErrOutOfRange, col, lineLen)
	}
	return nil
}

// --- Buffer Modification ---

// InsertChar inserts ch at col of the given line.
func (b *Buffer) InsertChar(lineNum, col int, ch rune) error {
	if err := b.checkPosition("InsertChar", lineNum, col); err != nil {
		return err
	}
	if ch == '\n' || ch == '\r' {
		return fmt.Errorf("InsertChar: %w: line terminator %q", ErrInvalidChar, ch)
	}

	l := &b.lines[lineNum-1]
	text := make([]rune, 0, len(l.text)+1)
	text = append(text, l.text[:col]...)
	text = append(text, ch)
	text = append(text, l.text[col:]...)
	l.text = text

	return nil
}

// DeleteCharBefore implements backspace. It removes the character before col,
// or at column 0 joins the line onto the end of the previous one. The returned
// position is where the cursor belongs afterwards. At (1, 0) nothing changes.
func (b *Buffer) DeleteCharBefore(lineNum, col int) (Position, error) {
	if err := b.checkPosition("DeleteCharBefore", lineNum, col); err != nil {
		return Position{}, err
	}

	if col > 0 {
		l := &b.lines[lineNum-1]
		text := make([]rune, 0, len(l.text)-1)
		text = append(text, l.text[:col-1]...)
		text = append(text, l.text[col:]...)
		l.text = text
		return Position{Line: lineNum, Col: col - 1}, nil
	}

	if lineNum == 1 {
		return Position{Line: 1, Col: 0}, nil
	}

	prevLen := len(b.lines[lineNum-2].text)
	b.join(lineNum - 1)

	return Position{Line: lineNum - 1, Col: prevLen}, nil
}

// DeleteCharAfter implements the delete key. It removes the character at col,
// or at the end of the line pulls the following line up onto this one. At the
// end of the document nothing changes.
func (b *Buffer) DeleteCharAfter(lineNum, col int) error {
	if err := b.checkPosition("DeleteCharAfter", lineNum, col); err != nil {
		return err
	}

	l := &b.lines[lineNum-1]
	if col < len(l.text) {
		text := make([]rune, 0, len(l.text)-1)
		text = append(text, l.text[:col]...)
		text = append(text, l.text[col+1:]...)
		l.text = text
		return nil
	}

	if lineNum < len(b.lines) {
		b.join(lineNum)
	}

	return nil
}

// join appends line lineNum+1 onto line lineNum and removes it. The joined
// line takes over the terminator of the removed one.
func (b *Buffer) join(lineNum int) {
	dst := &b.lines[lineNum-1]
	src := b.lines[lineNum]

	text := make([]rune, 0, len(dst.text)+len(src.text))
	text = append(text, dst.text...)
	text = append(text, src.text...)
	dst.text = text
	dst.eol = src.eol

	b.lines = append(b.lines[:lineNum], b.lines[lineNum+1:]...)
}

// SplitLine breaks the line at col. The original line keeps [0, col) and a
// new line holding [col, end) is inserted right after it, taking over the
// original terminator. Returns the start of the new line.
func (b *Buffer) SplitLine(lineNum, col int) (Position, error) {
	if err := b.checkPosition("SplitLine", lineNum, col); err != nil {
		return Position{}, err
	}

	l := b.lines[lineNum-1]
	head := make([]rune, col)
	copy(head, l.text[:col])
	tail := make([]rune, len(l.text)-col)
	copy(tail, l.text[col:])

	b.lines[lineNum-1] = line{text: head, eol: b.headTerminator(lineNum)}

	b.lines = append(b.lines, line{})
	copy(b.lines[lineNum+1:], b.lines[lineNum:])
	b.lines[lineNum] = line{text: tail, eol: l.eol}

	return Position{Line: lineNum + 1, Col: 0}, nil
}

// headTerminator picks the terminator for the head of a split line: the
// line's own, else the previous line's, else "\n".
func (b *Buffer) headTerminator(lineNum int) string {
	if eol := b.lines[lineNum-1].eol; eol != "" {
		return eol
	}
	if lineNum > 1 && b.lines[lineNum-2].eol != "" {
		return b.lines[lineNum-2].eol
	}
	return "\n"
}
