package core

import "log"

// confirmMode asks whether to save before exiting. y/Y saves and quits, n/N
// quits without saving, anything else goes back to editing.
type confirmMode struct{}

func newConfirmMode() stateHandler { return &confirmMode{} }

func (m *confirmMode) Name() State { return AwaitingSaveConfirmation }

func (m *confirmMode) Enter(session *Session) {
	session.dispatchMessage(SaveBeforeExitMessage)
}

func (m *confirmMode) Exit(session *Session) {}

func (m *confirmMode) HandleCommand(session *Session, cmd Command) *Error {
	answer, _ := cmd.(InsertChar)

	switch answer.Ch {
	case 'y', 'Y':
		if err := session.save(); err != nil {
			// Stay in the editor so the changes are not lost.
			session.setState(Editing)
			return newError(ErrFailedToSaveId, err)
		}
		session.quit(true)

	case 'n', 'N':
		log.Printf("edi: discarding changes to %s", session.path)
		session.quit(false)

	default:
		session.setState(Editing)
		session.dispatchMessage(ExitCancelledMessage)
	}

	return nil
}
