package core

// FrameLine is one visible buffer line.
type FrameLine struct {
	Number int // 1-based line number
	Text   string
}

// Frame is a read-only snapshot of what the shell needs to draw.
type Frame struct {
	State      State
	Path       string
	Modified   bool
	LineCount  int
	Lines      []FrameLine
	Cursor     Position // Cursor in buffer coordinates
	CursorRow  int      // Cursor row inside Lines
	Highlights []Span   // First keyword occurrence on each visible line
	Search     SearchState
}

// Frame returns the visible window of the buffer along with the cursor and
// search highlights.
func (s *Session) Frame() Frame {
	first := s.scroll + 1
	last := min(s.scroll+s.rows, s.buffer.LineCount())

	lines := make([]FrameLine, 0, max(last-first+1, 0))
	for n := first; n <= last; n++ {
		lines = append(lines, FrameLine{Number: n, Text: string(s.buffer.lineRunes(n))})
	}

	return Frame{
		State:      s.current.Name(),
		Path:       s.path,
		Modified:   s.modified,
		LineCount:  s.buffer.LineCount(),
		Lines:      lines,
		Cursor:     s.cursor.Position,
		CursorRow:  s.cursor.Position.Line - first,
		Highlights: Highlights(s.buffer, s.search.Keyword, first, last),
		Search:     s.search,
	}
}

// HighlightFor returns the highlight span of a line, if any.
func (f Frame) HighlightFor(lineNum int) (Span, bool) {
	for _, span := range f.Highlights {
		if span.Line == lineNum {
			return span, true
		}
	}
	return Span{}, false
}
