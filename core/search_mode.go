package core

type searchMode struct{}

func newSearchMode() stateHandler { return &searchMode{} }

func (m *searchMode) Name() State { return AwaitingSearchInput }

func (m *searchMode) Enter(session *Session) {}

func (m *searchMode) Exit(session *Session) {}

func (m *searchMode) HandleCommand(session *Session, cmd Command) *Error {
	switch cmd := cmd.(type) {
	case SubmitSearch:
		session.runSearch(cmd.Keyword)
		session.setState(Editing)

	case Cancel:
		session.setState(Editing)
	}

	// Anything else is input for the prompt, which the shell owns.
	return nil
}
