package state

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const maxInputLen = 256

// Buffer is the text being composed. Its keymap only knows backward
// deletion, so the cursor never leaves the end of the text.
type Buffer struct {
	input textinput.Model
}

func NewBuffer() Buffer {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = maxInputLen
	ti.KeyMap = textinput.KeyMap{
		DeleteCharacterBackward: textinput.DefaultKeyMap.DeleteCharacterBackward,
	}
	ti.Cursor.SetMode(cursor.CursorStatic)
	ti.Focus()
	return Buffer{input: ti}
}

// Edit forwards a text key or paste to the input.
func (b *Buffer) Edit(msg tea.KeyMsg) {
	b.input, _ = b.input.Update(msg)
}

// Insert types runes one at a time, as a terminal delivers them.
func (b *Buffer) Insert(runes ...rune) {
	for _, r := range runes {
		b.Edit(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// Backspace drops the last character, if any.
func (b *Buffer) Backspace() {
	b.Edit(tea.KeyMsg{Type: tea.KeyBackspace})
}

func (b *Buffer) Reset() {
	b.input.Reset()
}

func (b Buffer) String() string {
	return b.input.Value()
}

func (b Buffer) Empty() bool {
	return b.input.Value() == ""
}

// View renders the text with the cursor after it.
func (b Buffer) View() string {
	return b.input.View()
}
