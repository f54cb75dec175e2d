package highlighter

import (
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
)

// Highlighter colours buffer lines using the chroma lexer matching a
// filename. Tokens are cached per 0-based line until Invalidate is called.
type Highlighter struct {
	lexer chroma.Lexer
	style *chroma.Style

	mu         sync.RWMutex
	tokenized  bool
	cache      map[int][]chroma.Token
	styleCache map[chroma.TokenType]lipgloss.Style
}

// Span is a run of runes [Start, End) on one line sharing a token type.
type Span struct {
	Type  chroma.TokenType
	Start int
	End   int
}

// ForFile returns a highlighter for filename, or nil when no lexer claims it.
// An unknown theme falls back to chroma's default style.
func ForFile(filename, theme string) *Highlighter {
	lexer := lexers.Match(filename)
	if lexer == nil {
		return nil
	}
	return New(lexer, theme)
}

func New(lexer chroma.Lexer, theme string) *Highlighter {
	if lexer == nil {
		lexer = lexers.Fallback
	}

	style := styles.Get(theme)
	if style == nil {
		style = styles.Fallback
	}

	return &Highlighter{
		lexer:      chroma.Coalesce(lexer),
		style:      style,
		cache:      make(map[int][]chroma.Token),
		styleCache: make(map[chroma.TokenType]lipgloss.Style),
	}
}

// Language is the name of the lexer in use.
func (h *Highlighter) Language() string {
	return h.lexer.Config().Name
}

// Invalidate drops cached tokens; call it whenever the buffer changes.
func (h *Highlighter) Invalidate() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.tokenized = false
	h.cache = make(map[int][]chroma.Token)
}

// tokenize lexes the whole document at once so multi-line constructs
// (block comments, raw strings) colour correctly.
func (h *Highlighter) tokenize(lines []string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.cache = make(map[int][]chroma.Token)
	h.tokenized = true

	content := strings.Join(lines, "\n")
	if content == "" {
		return
	}

	iterator, err := h.lexer.Tokenise(nil, content)
	if err != nil {
		return
	}

	lineNum := 0
	for _, token := range iterator.Tokens() {
		value := token.Value
		for {
			before, after, found := strings.Cut(value, "\n")
			if before != "" {
				h.cache[lineNum] = append(h.cache[lineNum], chroma.Token{Type: token.Type, Value: before})
			}
			if !found {
				break
			}
			lineNum++
			value = after
		}
	}
}

// Spans returns the token spans of the 0-based line row of lines.
func (h *Highlighter) Spans(row int, lines []string) []Span {
	h.mu.RLock()
	tokenized := h.tokenized
	h.mu.RUnlock()

	if !tokenized {
		h.tokenize(lines)
	}

	h.mu.RLock()
	tokens := h.cache[row]
	h.mu.RUnlock()

	spans := make([]Span, 0, len(tokens))
	col := 0
	for _, token := range tokens {
		n := len([]rune(token.Value))
		spans = append(spans, Span{Type: token.Type, Start: col, End: col + n})
		col += n
	}
	return spans
}

// Style converts a chroma token type to a lipgloss style.
func (h *Highlighter) Style(tokenType chroma.TokenType) lipgloss.Style {
	h.mu.RLock()
	style, ok := h.styleCache[tokenType]
	h.mu.RUnlock()
	if ok {
		return style
	}

	entry := h.style.Get(tokenType)

	style = lipgloss.NewStyle()
	if entry.Colour.IsSet() {
		style = style.Foreground(lipgloss.Color(entry.Colour.String()))
	}
	if entry.Bold == chroma.Yes {
		style = style.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		style = style.Italic(true)
	}
	if entry.Underline == chroma.Yes {
		style = style.Underline(true)
	}

	h.mu.Lock()
	h.styleCache[tokenType] = style
	h.mu.Unlock()

	return style
}

// StyleAt returns the style of the token covering col, if any.
func StyleAt(h *Highlighter, spans []Span, col int) (lipgloss.Style, bool) {
	for _, span := range spans {
		if col >= span.Start && col < span.End {
			return h.Style(span.Type), true
		}
	}
	return lipgloss.Style{}, false
}
