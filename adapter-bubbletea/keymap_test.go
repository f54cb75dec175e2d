package adapter_bubbletea

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ionut-t/edi/core"
	"github.com/stretchr/testify/assert"
)

func TestKeyMap_Decode(t *testing.T) {
	k := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want []core.Command
	}{
		{"up", tea.KeyMsg{Type: tea.KeyUp}, []core.Command{core.MoveUp{}}},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, []core.Command{core.MoveDown{}}},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, []core.Command{core.MoveLeft{}}},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, []core.Command{core.MoveRight{}}},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, []core.Command{core.Enter{}}},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, []core.Command{core.Backspace{}}},
		{"delete", tea.KeyMsg{Type: tea.KeyDelete}, []core.Command{core.DeleteForward{}}},
		{"save", tea.KeyMsg{Type: tea.KeyCtrlS}, []core.Command{core.Save{}}},
		{"exit", tea.KeyMsg{Type: tea.KeyCtrlX}, []core.Command{core.Exit{}}},
		{"ctrl+c exits", tea.KeyMsg{Type: tea.KeyCtrlC}, []core.Command{core.Exit{}}},
		{"help", tea.KeyMsg{Type: tea.KeyCtrlH}, []core.Command{core.Help{}}},
		{"search", tea.KeyMsg{Type: tea.KeyCtrlF}, []core.Command{core.Search{}}},
		{"copy", tea.KeyMsg{Type: tea.KeyCtrlK}, []core.Command{core.CopyLine{}}},
		{"undo", tea.KeyMsg{Type: tea.KeyCtrlZ}, []core.Command{core.Undo{}}},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, []core.Command{core.InsertSpace{}}},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, []core.Command{core.InsertChar{Ch: '\t'}}},
		{"rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("é")}, []core.Command{core.InsertChar{Ch: 'é'}}},
		{"alt rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x"), Alt: true}, nil},
		{"unbound", tea.KeyMsg{Type: tea.KeyCtrlA}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, k.Decode(tt.msg))
		})
	}
}

func TestKeyMap_DecodePaste(t *testing.T) {
	got := DefaultKeyMap().Decode(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a b\r\nc\x01"), Paste: true})

	assert.Equal(t, []core.Command{
		core.InsertChar{Ch: 'a'},
		core.InsertSpace{},
		core.InsertChar{Ch: 'b'},
		core.Enter{},
		core.InsertChar{Ch: 'c'},
	}, got)
}

func TestKeyMap_Help(t *testing.T) {
	k := DefaultKeyMap()

	assert.Len(t, k.ShortHelp(), 6)

	total := 0
	for _, group := range k.FullHelp() {
		total += len(group)
	}
	assert.Equal(t, 13, total)
}
