package core

// Position is a location in the buffer. Line is 1-based, Col is a 0-based
// rune offset into the line.
type Position struct {
	Line int
	Col  int
}

// Cursor is the editing position of a session.
type Cursor struct {
	Position Position
}

// ClampColumn keeps col inside [0, lineLen].
func ClampColumn(col, lineLen int) int {
	if col > lineLen {
		col = lineLen
	}
	if col < 0 {
		col = 0
	}
	return col
}

// RecomputeScroll returns the scroll offset (0-based index of the first
// visible line) that keeps cursorLine (1-based) inside a window of
// visibleRows lines. A single vertical step moves the window by one row.
func RecomputeScroll(cursorLine, scrollOffset, visibleRows int) int {
	if visibleRows < 1 {
		visibleRows = 1
	}

	row := cursorLine - 1
	if row < scrollOffset {
		scrollOffset = row
	} else if row >= scrollOffset+visibleRows {
		scrollOffset = row - visibleRows + 1
	}

	if scrollOffset < 0 {
		scrollOffset = 0
	}
	return scrollOffset
}

// Clamp brings the cursor back inside the buffer: the line into
// [1, LineCount] and the column into [0, len(line)].
func (c *Cursor) Clamp(buffer *Buffer) {
	if c.Position.Line < 1 {
		c.Position.Line = 1
	} else if c.Position.Line > buffer.LineCount() {
		c.Position.Line = buffer.LineCount()
	}
	c.clampCol(buffer)
}

func (c *Cursor) clampCol(buffer *Buffer) {
	c.Position.Col = ClampColumn(c.Position.Col, buffer.LineLen(c.Position.Line))
}

// --- Cursor Movement ---

func (c *Cursor) MoveUp(buffer *Buffer) error {
	if c.Position.Line <= 1 {
		return ErrStartOfBuffer
	}
	c.Position.Line--
	c.clampCol(buffer)
	return nil
}

func (c *Cursor) MoveDown(buffer *Buffer) error {
	if c.Position.Line >= buffer.LineCount() {
		return ErrEndOfBuffer
	}
	c.Position.Line++
	c.clampCol(buffer)
	return nil
}

// MoveLeft stays on the current line; it does not wrap to the previous one.
func (c *Cursor) MoveLeft(buffer *Buffer) error {
	if c.Position.Col <= 0 {
		return ErrStartOfLine
	}
	c.Position.Col--
	return nil
}

// MoveRight allows the cursor to sit one past the last character.
func (c *Cursor) MoveRight(buffer *Buffer) error {
	if c.Position.Col >= buffer.LineLen(c.Position.Line) {
		return ErrEndOfLine
	}
	c.Position.Col++
	return nil
}
