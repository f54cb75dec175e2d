package core

// Signal is produced by the session while handling a command and consumed by
// the shell.
type Signal any

type MessageSignal struct {
	id    string
	value string
}

func (m MessageSignal) Value() (id, message string) {
	id = m.id
	message = m.value

	return id, message
}

type SaveSignal struct {
	path  string
	bytes int
}

func (s SaveSignal) Value() (path string, bytes int) {
	return s.path, s.bytes
}

type QuitSignal struct {
	saved bool
}

// Value reports whether the buffer was written before quitting.
func (q QuitSignal) Value() bool {
	return q.saved
}

type ErrorSignal Error

func (e ErrorSignal) Value() (id ErrorId, err error) {
	id = e.id
	err = e.err

	return id, err
}

type SearchSignal struct {
	keyword string
	pos     Position
	found   bool
}

func (s SearchSignal) Value() (keyword string, pos Position, found bool) {
	return s.keyword, s.pos, s.found
}

type CopySignal struct {
	content string
}

func (c CopySignal) Value() string {
	return c.content
}

type UndoSignal struct {
	remaining int
}

func (u UndoSignal) Value() int {
	return u.remaining
}

// ContentChangeSignal is emitted after every command that changed the buffer,
// including undo.
type ContentChangeSignal struct{}

type StateChangeSignal struct {
	from State
	to   State
}

func (s StateChangeSignal) Value() (from, to State) {
	return s.from, s.to
}

func (s *Session) dispatch(signal Signal) {
	s.signals = append(s.signals, signal)
}

func (s *Session) dispatchError(id ErrorId, err error) {
	s.dispatch(ErrorSignal{id: id, err: err})
}

func (s *Session) dispatchMessage(args ...string) {
	id := args[0]
	value := id
	if len(args) > 1 {
		value = args[1]
	}
	s.dispatch(MessageSignal{id, value})
}
