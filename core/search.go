package core

import (
	"strings"
	"unicode/utf8"
)

// SearchState is the result of the most recent search. Line is the 0-based
// index of the line holding the first match, -1 when nothing matched or no
// search ran.
type SearchState struct {
	Keyword string
	Line    int
	Col     int
}

func noSearch() SearchState {
	return SearchState{Line: -1}
}

// Active reports whether a keyword is set, matched or not.
func (s SearchState) Active() bool {
	return s.Keyword != ""
}

// Span marks Length runes starting at Start on a 1-based Line.
type Span struct {
	Line   int
	Start  int
	Length int
}

// Find scans the buffer from the first line and returns the first line
// (1-based) containing keyword, with the rune offset of its first occurrence.
// Matching is exact and case-sensitive. An empty keyword never matches.
func Find(buffer *Buffer, keyword string) (lineNum, col int, ok bool) {
	if keyword == "" {
		return 0, 0, false
	}

	for i := range buffer.lines {
		if col, ok := indexRunes(string(buffer.lines[i].text), keyword); ok {
			return i + 1, col, true
		}
	}

	return 0, 0, false
}

// Highlights returns, for each line in [from, to] (1-based, inclusive) that
// contains keyword, the span of its first occurrence.
func Highlights(buffer *Buffer, keyword string, from, to int) []Span {
	if keyword == "" {
		return nil
	}

	from = max(from, 1)
	to = min(to, buffer.LineCount())
	length := utf8.RuneCountInString(keyword)

	var spans []Span
	for n := from; n <= to; n++ {
		if col, ok := indexRunes(string(buffer.lines[n-1].text), keyword); ok {
			spans = append(spans, Span{Line: n, Start: col, Length: length})
		}
	}
	return spans
}

// indexRunes is strings.Index reporting a rune offset instead of a byte one.
func indexRunes(s, substr string) (int, bool) {
	idx := strings.Index(s, substr)
	if idx < 0 {
		return 0, false
	}
	return utf8.RuneCountInString(s[:idx]), true
}
