// Package textfile reads and writes plain-text files as ordered lines.
package textfile

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/ionut-t/edi/core"
)

const defaultPerm fs.FileMode = 0o644

// Store implements core.Persistence on the local file system.
type Store struct{}

func New() *Store { return &Store{} }

// Load returns the lines of the file at path, each with the terminator it was
// read with. A missing file yields an error wrapping core.ErrNotFound.
func (s *Store) Load(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", path, core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w: %w", path, core.ErrIOFailure, err)
	}

	return SplitLines(content), nil
}

// Save writes lines to path, keeping the file's mode when it already exists.
func (s *Store) Save(path string, lines []string) error {
	perm := defaultPerm
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	if err := os.WriteFile(path, []byte(Join(lines)), perm); err != nil {
		return fmt.Errorf("%w: %w", core.ErrIOFailure, err)
	}

	return nil
}

// SplitLines splits content after every '\n', keeping the terminators. A
// trailing terminator does not start an extra empty line.
func SplitLines(content []byte) []string {
	var lines []string
	for len(content) > 0 {
		i := bytes.IndexByte(content, '\n')
		if i < 0 {
			lines = append(lines, string(content))
			break
		}
		lines = append(lines, string(content[:i+1]))
		content = content[i+1:]
	}
	return lines
}

// Join concatenates lines and makes sure the result ends with exactly one
// newline added by the writer: ["a", "b"] becomes "ab\n".
func Join(lines []string) string {
	content := strings.Join(lines, "")
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	return content
}
