package core

import (
	"errors"
	"fmt"
	"log"
	"strings"
)

// Options configures a Session.
type Options struct {
	Path          string        // File the session edits
	Persistence   Persistence   // Load/save collaborator
	ClipboardSink ClipboardSink // Optional mirror for copied lines
	UndoLimit     int           // Max snapshots kept; <= 0 keeps all
	VisibleRows   int           // Height of the text window
}

// Session owns the buffer, cursor, viewport, undo stack, search state and
// clipboard of one editing session and drives them from commands.
//
// A Session is not safe for concurrent use: it must be owned by a single
// goroutine, normally the shell's event loop.
type Session struct {
	path        string
	persistence Persistence

	buffer    *Buffer
	cursor    Cursor
	scroll    int
	rows      int
	undoStack *UndoStack
	search    SearchState
	clipboard *Clipboard
	modified  bool

	current  stateHandler
	handlers map[State]stateHandler

	signals []Signal
}

// NewSession creates a session editing buffer, with the cursor at (1, 0).
func NewSession(buffer *Buffer, opts Options) *Session {
	if buffer == nil {
		buffer = NewBuffer()
	}

	s := &Session{
		path:        opts.Path,
		persistence: opts.Persistence,
		buffer:      buffer,
		cursor:      Cursor{Position: Position{Line: 1, Col: 0}},
		rows:        max(opts.VisibleRows, 1),
		undoStack:   NewUndoStack(opts.UndoLimit),
		search:      noSearch(),
		clipboard:   NewClipboard(opts.ClipboardSink),
		handlers:    make(map[State]stateHandler),
	}

	for _, h := range []stateHandler{
		newEditingMode(),
		newSearchMode(),
		newConfirmMode(),
		newHelpMode(),
		newTerminatedMode(),
	} {
		s.handlers[h.Name()] = h
	}
	s.current = s.handlers[Editing]

	return s
}

// Open loads opts.Path through opts.Persistence. A missing file starts an
// empty buffer; any other load error is returned.
func Open(opts Options) (*Session, error) {
	if opts.Persistence == nil {
		return nil, errors.New("open: no persistence configured")
	}
	if opts.Path == "" {
		return nil, fmt.Errorf("open: %w", ErrNoFile)
	}

	lines, err := opts.Persistence.Load(opts.Path)
	if errors.Is(err, ErrNotFound) {
		log.Printf("edi: %s does not exist, starting empty", opts.Path)
		lines = nil
	} else if err != nil {
		return nil, fmt.Errorf("open %s: %w", opts.Path, err)
	}

	return NewSession(NewBuffer(lines...), opts), nil
}

// Handle processes one command and returns the signals it produced.
func (s *Session) Handle(cmd Command) []Signal {
	s.signals = nil

	if err := s.current.HandleCommand(s, cmd); err != nil {
		s.dispatchError(err.id, err.err)
	}

	s.scrollViewport()

	signals := s.signals
	s.signals = nil
	return signals
}

func (s *Session) setState(name State) {
	next, ok := s.handlers[name]
	if !ok || next == s.current {
		return
	}

	from := s.current.Name()
	s.current.Exit(s)
	s.current = next
	s.current.Enter(s)

	s.dispatch(StateChangeSignal{from: from, to: name})
}

// mutate applies edit and pushes the buffer as it was before the edit onto
// the undo stack. A failed edit leaves both the buffer and the stack as they
// were.
func (s *Session) mutate(edit func() error) *Error {
	before := s.buffer.Clone()

	if err := edit(); err != nil {
		id := ErrOutOfRangeId
		if errors.Is(err, ErrInvalidChar) {
			id = ErrInvalidCharId
		}
		return newError(id, err)
	}

	s.undoStack.push(before)
	s.modified = true
	s.dispatch(ContentChangeSignal{})
	return nil
}

func (s *Session) undo() *Error {
	prev, ok := s.undoStack.Undo()
	if !ok {
		s.dispatchMessage(NothingToUndoMessage)
		return nil
	}

	s.buffer = prev
	s.cursor.Clamp(s.buffer)
	s.modified = true

	s.dispatch(ContentChangeSignal{})
	s.dispatch(UndoSignal{remaining: s.undoStack.Len()})
	return nil
}

func (s *Session) save() error {
	if s.path == "" {
		return fmt.Errorf("save: %w", ErrNoFile)
	}
	if s.persistence == nil {
		return fmt.Errorf("save %s: %w: no persistence configured", s.path, ErrIOFailure)
	}

	lines := s.buffer.RawLines()
	if err := s.persistence.Save(s.path, lines); err != nil {
		return fmt.Errorf("save %s: %w", s.path, err)
	}

	s.modified = false
	content := strings.Join(lines, "")
	bytes := len(content)
	if !strings.HasSuffix(content, "\n") {
		bytes++
	}
	s.dispatch(SaveSignal{path: s.path, bytes: bytes})
	s.dispatchMessage(FileSavedMessage)
	return nil
}

func (s *Session) quit(saved bool) {
	s.setState(Terminated)
	s.dispatch(QuitSignal{saved: saved})
}

func (s *Session) copyLine() *Error {
	text, err := s.clipboard.CopyLine(s.buffer, s.cursor.Position.Line)
	if errors.Is(err, ErrClipboardWrite) {
		s.dispatch(CopySignal{content: text})
		return newError(ErrCopyFailedId, err)
	}
	if err != nil {
		return newError(ErrOutOfRangeId, err)
	}

	s.dispatch(CopySignal{content: text})
	s.dispatchMessage(LineCopiedMessage)
	return nil
}

// runSearch records keyword as the active search and moves the cursor to the
// first match. An empty keyword clears the search.
func (s *Session) runSearch(keyword string) {
	s.search = noSearch()
	s.search.Keyword = keyword

	if keyword == "" {
		s.dispatchMessage(SearchClearedMessage)
		s.dispatch(SearchSignal{keyword: keyword})
		return
	}

	lineNum, col, ok := Find(s.buffer, keyword)
	if !ok {
		s.dispatchMessage(NoMatchesMessage)
		s.dispatch(SearchSignal{keyword: keyword})
		return
	}

	s.search.Line = lineNum - 1
	s.search.Col = col
	s.cursor.Position = Position{Line: lineNum, Col: col}

	s.dispatch(SearchSignal{keyword: keyword, pos: s.cursor.Position, found: true})
}

// scrollViewport keeps the cursor line inside the visible window.
func (s *Session) scrollViewport() {
	s.scroll = RecomputeScroll(s.cursor.Position.Line, s.scroll, s.rows)
}

// Resize sets the number of visible text rows.
func (s *Session) Resize(rows int) {
	s.rows = max(rows, 1)
	s.scrollViewport()
}

func (s *Session) State() State { return s.current.Name() }

func (s *Session) Path() string { return s.path }

func (s *Session) Cursor() Position { return s.cursor.Position }

func (s *Session) ScrollOffset() int { return s.scroll }

func (s *Session) VisibleRows() int { return s.rows }

func (s *Session) Search() SearchState { return s.search }

func (s *Session) ClipboardText() string { return s.clipboard.Text() }

func (s *Session) UndoDepth() int { return s.undoStack.Len() }

// Modified reports whether the buffer changed since it was loaded or saved.
func (s *Session) Modified() bool { return s.modified }

// Lines returns a copy of the buffer's lines.
func (s *Session) Lines() []string { return s.buffer.Lines() }

// Buffer returns a deep copy of the buffer.
func (s *Session) Buffer() *Buffer { return s.buffer.Clone() }
