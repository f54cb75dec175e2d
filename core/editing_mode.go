package core

type editingMode struct{}

func newEditingMode() stateHandler { return &editingMode{} }

func (m *editingMode) Name() State { return Editing }

func (m *editingMode) Enter(session *Session) {}

func (m *editingMode) Exit(session *Session) {}

func (m *editingMode) HandleCommand(session *Session, cmd Command) *Error {
	buffer := session.buffer
	cursor := &session.cursor
	pos := cursor.Position

	switch cmd := cmd.(type) {
	case MoveUp:
		_ = cursor.MoveUp(buffer)
	case MoveDown:
		_ = cursor.MoveDown(buffer)
	case MoveLeft:
		_ = cursor.MoveLeft(buffer)
	case MoveRight:
		_ = cursor.MoveRight(buffer)

	case InsertChar:
		return session.mutate(func() error {
			if err := buffer.InsertChar(pos.Line, pos.Col, cmd.Ch); err != nil {
				return err
			}
			cursor.Position.Col++
			return nil
		})

	case InsertSpace:
		return session.mutate(func() error {
			if err := buffer.InsertChar(pos.Line, pos.Col, ' '); err != nil {
				return err
			}
			cursor.Position.Col++
			return nil
		})

	case Enter:
		return session.mutate(func() error {
			next, err := buffer.SplitLine(pos.Line, pos.Col)
			if err != nil {
				return err
			}
			cursor.Position = next
			return nil
		})

	case Backspace:
		return session.mutate(func() error {
			next, err := buffer.DeleteCharBefore(pos.Line, pos.Col)
			if err != nil {
				return err
			}
			cursor.Position = next
			return nil
		})

	case DeleteForward:
		return session.mutate(func() error {
			return buffer.DeleteCharAfter(pos.Line, pos.Col)
		})

	case Undo:
		return session.undo()

	case Save:
		if err := session.save(); err != nil {
			return newError(ErrFailedToSaveId, err)
		}

	case CopyLine:
		return session.copyLine()

	case Search:
		session.setState(AwaitingSearchInput)

	case Exit:
		session.setState(AwaitingSaveConfirmation)

	case Help:
		session.setState(ShowingHelp)
	}

	return nil
}
