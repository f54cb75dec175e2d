package core

// Command is an abstract editing command decoded by the shell. The set of
// commands is closed: only types in this package implement it.
type Command interface {
	command()
}

type (
	MoveUp        struct{}
	MoveDown      struct{}
	MoveLeft      struct{}
	MoveRight     struct{}
	InsertChar    struct{ Ch rune }
	InsertSpace   struct{}
	Enter         struct{}
	Backspace     struct{}
	DeleteForward struct{}
	Save          struct{}
	Exit          struct{}
	Help          struct{}
	Search        struct{}
	CopyLine      struct{}
	Undo          struct{}

	// SubmitSearch carries the keyword typed while the session awaits
	// search input.
	SubmitSearch struct{ Keyword string }

	// Cancel dismisses a prompt or the help screen without acting.
	Cancel struct{}
)

func (MoveUp) command()        {}
func (MoveDown) command()      {}
func (MoveLeft) command()      {}
func (MoveRight) command()     {}
func (InsertChar) command()    {}
func (InsertSpace) command()   {}
func (Enter) command()         {}
func (Backspace) command()     {}
func (DeleteForward) command() {}
func (Save) command()          {}
func (Exit) command()          {}
func (Help) command()          {}
func (Search) command()        {}
func (CopyLine) command()      {}
func (Undo) command()          {}
func (SubmitSearch) command()  {}
func (Cancel) command()        {}
