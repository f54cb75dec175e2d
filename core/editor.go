package core

// Persistence loads and stores the lines of a file.
type Persistence interface {
	// Load returns the lines of the file at path, each ending with the
	// terminator it was read with. A missing file yields an error wrapping
	// ErrNotFound.
	Load(path string) ([]string, error)
	// Save writes the concatenation of lines followed by exactly one
	// trailing newline.
	Save(path string, lines []string) error
}

// ClipboardSink receives every copied line, typically the system clipboard.
type ClipboardSink interface {
	Write(text string) error
}
