package adapter_bubbletea

import (
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ionut-t/edi/core"
)

// KeyMap holds the fixed key bindings of the editor.
type KeyMap struct {
	Up, Down, Left, Right key.Binding

	Backspace, Delete, Enter key.Binding

	Save, Exit, Help, Search, Copy, Undo key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),

		Backspace: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "new line")),

		Save:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("^S", "Save")),
		Exit:   key.NewBinding(key.WithKeys("ctrl+x", "ctrl+c"), key.WithHelp("^X", "Exit")),
		Help:   key.NewBinding(key.WithKeys("ctrl+h", "f1"), key.WithHelp("^H", "Help")),
		Search: key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("^F", "Search")),
		Copy:   key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("^K", "Copy")),
		Undo:   key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("^Z", "Undo")),
	}
}

// ShortHelp is shown in the help bar at the bottom of the screen.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Save, k.Exit, k.Help, k.Search, k.Copy, k.Undo}
}

// FullHelp is shown on the help screen.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Save, k.Exit, k.Help, k.Search, k.Copy, k.Undo},
		{k.Up, k.Down, k.Left, k.Right},
		{k.Enter, k.Backspace, k.Delete},
	}
}

// Decode translates a key press into editor commands. Printable input may
// carry several runes (bracketed paste), each becoming its own command.
// Keys without a meaning yield no commands.
func (k KeyMap) Decode(msg tea.KeyMsg) []core.Command {
	switch {
	case key.Matches(msg, k.Up):
		return []core.Command{core.MoveUp{}}
	case key.Matches(msg, k.Down):
		return []core.Command{core.MoveDown{}}
	case key.Matches(msg, k.Left):
		return []core.Command{core.MoveLeft{}}
	case key.Matches(msg, k.Right):
		return []core.Command{core.MoveRight{}}
	case key.Matches(msg, k.Backspace):
		return []core.Command{core.Backspace{}}
	case key.Matches(msg, k.Delete):
		return []core.Command{core.DeleteForward{}}
	case key.Matches(msg, k.Enter):
		return []core.Command{core.Enter{}}
	case key.Matches(msg, k.Save):
		return []core.Command{core.Save{}}
	case key.Matches(msg, k.Exit):
		return []core.Command{core.Exit{}}
	case key.Matches(msg, k.Help):
		return []core.Command{core.Help{}}
	case key.Matches(msg, k.Search):
		return []core.Command{core.Search{}}
	case key.Matches(msg, k.Copy):
		return []core.Command{core.CopyLine{}}
	case key.Matches(msg, k.Undo):
		return []core.Command{core.Undo{}}
	}

	switch msg.Type {
	case tea.KeySpace:
		return []core.Command{core.InsertSpace{}}
	case tea.KeyTab:
		return []core.Command{core.InsertChar{Ch: '\t'}}
	case tea.KeyRunes:
		if msg.Alt {
			return nil
		}
		return decodeRunes(msg.Runes)
	}

	return nil
}

func decodeRunes(runes []rune) []core.Command {
	commands := make([]core.Command, 0, len(runes))
	for i, r := range runes {
		switch {
		case r == ' ':
			commands = append(commands, core.InsertSpace{})
		case r == '\r' && i+1 < len(runes) && runes[i+1] == '\n':
			// The '\n' that follows produces the line break.
		case r == '\n' || r == '\r':
			commands = append(commands, core.Enter{})
		case r == '\t':
			commands = append(commands, core.InsertChar{Ch: r})
		case unicode.IsControl(r):
		default:
			commands = append(commands, core.InsertChar{Ch: r})
		}
	}
	return commands
}
