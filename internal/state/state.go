// Package state holds the application state of the todo list: the items, the
// selection, the text being composed and the active mode. All operations are
// total; anything that does not apply to the current state is a no-op.
package state

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"donelist/internal/storage"
)

type Mode int

const (
	Browse Mode = iota
	Compose
)

func (m Mode) String() string {
	switch m {
	case Browse:
		return "browse"
	case Compose:
		return "compose"
	default:
		return "unknown"
	}
}

// AppState has a single owner. The dispatcher mutates it through the
// methods below; rendering only reads it.
type AppState struct {
	Items     *storage.Store
	Selection Selection
	Input     Buffer
	Mode      Mode
}

func New(items ...storage.Item) *AppState {
	return &AppState{
		Items: storage.New(items...),
		Input: NewBuffer(),
		Mode:  Browse,
	}
}

// StartCompose enters Compose mode with an empty buffer.
func (s *AppState) StartCompose() bool {
	if s.Mode != Browse {
		return false
	}
	s.Input.Reset()
	s.Mode = Compose
	return true
}

// Submit leaves Compose mode, appending the buffer as a new item unless it is
// blank. It reports whether an item was added.
func (s *AppState) Submit() (storage.Item, bool) {
	if s.Mode != Compose {
		return storage.Item{}, false
	}
	text := s.Input.String()
	s.Input.Reset()
	s.Mode = Browse
	if strings.TrimSpace(text) == "" {
		return storage.Item{}, false
	}
	s.Items.Append(text)
	return s.Items.Get(s.Items.Len() - 1)
}

// Cancel leaves Compose mode and discards the buffer.
func (s *AppState) Cancel() bool {
	if s.Mode != Compose {
		return false
	}
	s.Input.Reset()
	s.Mode = Browse
	return true
}

func (s *AppState) SelectNext() {
	s.Selection.Next(s.Items.Len())
}

func (s *AppState) SelectPrevious() {
	s.Selection.Previous(s.Items.Len())
}

// ToggleSelected flips the done flag of the selected item, if any.
func (s *AppState) ToggleSelected() (storage.Item, bool) {
	idx, ok := s.Selection.Index()
	if !ok || !s.Items.ToggleDoneAt(idx) {
		return storage.Item{}, false
	}
	return s.Items.Get(idx)
}

// DeleteSelected removes the selected item and re-validates the selection.
func (s *AppState) DeleteSelected() (storage.Item, bool) {
	idx, ok := s.Selection.Index()
	if !ok {
		return storage.Item{}, false
	}
	removed, ok := s.Items.Get(idx)
	if !ok || !s.Items.RemoveAt(idx) {
		return storage.Item{}, false
	}
	s.Selection.AfterRemoval(idx, s.Items.Len())
	return removed, true
}

// Type appends runes to the buffer while composing.
func (s *AppState) Type(runes ...rune) {
	if s.Mode != Compose {
		return
	}
	s.Input.Insert(runes...)
}

// Edit hands a text key press or paste to the buffer while composing.
func (s *AppState) Edit(msg tea.KeyMsg) {
	if s.Mode != Compose {
		return
	}
	s.Input.Edit(msg)
}

func (s *AppState) Backspace() {
	if s.Mode != Compose {
		return
	}
	s.Input.Backspace()
}
