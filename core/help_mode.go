package core

type helpMode struct{}

func newHelpMode() stateHandler { return &helpMode{} }

func (m *helpMode) Name() State { return ShowingHelp }

func (m *helpMode) Enter(session *Session) {}

func (m *helpMode) Exit(session *Session) {}

// HandleCommand consumes whatever comes next and returns to editing.
func (m *helpMode) HandleCommand(session *Session, cmd Command) *Error {
	session.setState(Editing)
	return nil
}
