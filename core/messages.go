package core

var (
	FileSavedMessage      = "File saved!"
	NoMatchesMessage      = "No matches found!"
	NothingToUndoMessage  = "Nothing to undo"
	LineCopiedMessage     = "Line copied"
	ExitCancelledMessage  = "Exit cancelled"
	SearchClearedMessage  = "Search cleared"
	SaveBeforeExitMessage = "Save changes before exiting? (y/n)"
)
