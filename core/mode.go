package core

type State string

const (
	Editing                  State = "editing"
	AwaitingSearchInput      State = "search"
	AwaitingSaveConfirmation State = "confirm-exit"
	ShowingHelp              State = "help"
	Terminated               State = "terminated"
)

// stateHandler reacts to commands while the session is in one state.
type stateHandler interface {
	Name() State
	// HandleCommand processes one command. Transitions go through
	// Session.setState.
	HandleCommand(session *Session, cmd Command) *Error
	Enter(session *Session) // Called when entering the state
	Exit(session *Session)  // Called when leaving the state
}

type terminatedMode struct{}

func newTerminatedMode() stateHandler { return terminatedMode{} }

func (terminatedMode) Name() State { return Terminated }

func (terminatedMode) Enter(*Session) {}

func (terminatedMode) Exit(*Session) {}

// HandleCommand ignores everything: a terminated session emits nothing.
func (terminatedMode) HandleCommand(*Session, Command) *Error { return nil }
