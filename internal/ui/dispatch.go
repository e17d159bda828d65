package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"donelist/internal/state"
	"donelist/internal/storage"
)

type actionKind int

const (
	actNone actionKind = iota
	actQuit
	actMove
	actToggled
	actDeleted
	actCompose
	actEdit
	actAdded
	actEmpty
	actCancelled
)

// action reports what a key did, for the status line and the log.
type action struct {
	kind actionKind
	item storage.Item
}

// dispatch applies one key press to s according to the active mode. Keys
// that mean nothing in the current state leave s untouched.
func dispatch(s *state.AppState, keys KeyMap, msg tea.KeyMsg) action {
	switch s.Mode {
	case state.Browse:
		return dispatchBrowse(s, keys, msg)
	case state.Compose:
		return dispatchCompose(s, keys, msg)
	}
	return action{}
}

func dispatchBrowse(s *state.AppState, keys KeyMap, msg tea.KeyMsg) action {
	switch {
	case key.Matches(msg, keys.Quit):
		return action{kind: actQuit}
	case key.Matches(msg, keys.Down):
		s.SelectNext()
		return action{kind: actMove}
	case key.Matches(msg, keys.Up):
		s.SelectPrevious()
		return action{kind: actMove}
	case key.Matches(msg, keys.Toggle):
		if it, ok := s.ToggleSelected(); ok {
			return action{kind: actToggled, item: it}
		}
	case key.Matches(msg, keys.Delete):
		if it, ok := s.DeleteSelected(); ok {
			return action{kind: actDeleted, item: it}
		}
	case key.Matches(msg, keys.Add):
		if s.StartCompose() {
			return action{kind: actCompose}
		}
	}
	return action{}
}

func dispatchCompose(s *state.AppState, keys KeyMap, msg tea.KeyMsg) action {
	switch {
	case key.Matches(msg, keys.Cancel):
		s.Cancel()
		return action{kind: actCancelled}
	case key.Matches(msg, keys.Confirm):
		if it, ok := s.Submit(); ok {
			return action{kind: actAdded, item: it}
		}
		return action{kind: actEmpty}
	case key.Matches(msg, keys.Backspace):
		s.Backspace()
		return action{kind: actEdit}
	}
	if isText(msg) {
		s.Edit(msg)
		return action{kind: actEdit}
	}
	return action{}
}

// isText reports whether msg types or pastes text. Only these reach the
// buffer, so no key can move its cursor off the end.
func isText(msg tea.KeyMsg) bool {
	if msg.Alt {
		return false
	}
	return msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace
}
