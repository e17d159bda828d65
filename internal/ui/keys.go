package ui

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"

	"donelist/internal/config"
)

// KeyMap holds the bindings for both modes. Browse keys are only consulted
// in Browse mode and Compose keys only while composing, so the same key may
// appear in both groups.
type KeyMap struct {
	// Browse mode.
	Quit   key.Binding
	Add    key.Binding
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Delete key.Binding

	// Compose mode.
	Confirm   key.Binding
	Cancel    key.Binding
	Backspace key.Binding
}

// NewKeyMap builds bindings from the configured keys plus the keys that are
// always bound (arrows, ctrl+c, ctrl+h).
func NewKeyMap(k config.Keymap) KeyMap {
	b := map[string]key.Binding{}
	for _, cb := range append(k.BrowseBindings(), k.ComposeBindings()...) {
		b[cb.Action] = binding(helpDesc(cb.Action), cb.Keys)
	}
	return KeyMap{
		Quit:      b["quit"],
		Add:       b["add"],
		Up:        b["up"],
		Down:      b["down"],
		Toggle:    b["toggle"],
		Delete:    b["delete"],
		Confirm:   b["confirm"],
		Cancel:    b["cancel"],
		Backspace: b["backspace"],
	}
}

func helpDesc(action string) string {
	switch action {
	case "confirm":
		return "save"
	case "backspace":
		return "erase"
	default:
		return action
	}
}

func binding(desc string, keys []string) key.Binding {
	uniq := make([]string, 0, len(keys))
	for _, k := range keys {
		if !slices.Contains(uniq, k) {
			uniq = append(uniq, k)
		}
	}
	return key.NewBinding(
		key.WithKeys(uniq...),
		key.WithHelp(keyLabel(keys[0]), desc),
	)
}

func keyLabel(k string) string {
	if k == " " {
		return "space"
	}
	return k
}

func (k KeyMap) browseHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Delete, k.Add, k.Quit}
}

func (k KeyMap) composeHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Cancel}
}

// Entry names an action and the keys bound to it.
type Entry struct {
	Mode   string
	Action string
	Keys   []string
}

// Entries lists every binding in a stable order.
func (k KeyMap) Entries() []Entry {
	named := []struct {
		mode string
		b    key.Binding
	}{
		{"browse", k.Up},
		{"browse", k.Down},
		{"browse", k.Toggle},
		{"browse", k.Delete},
		{"browse", k.Add},
		{"browse", k.Quit},
		{"compose", k.Confirm},
		{"compose", k.Cancel},
		{"compose", k.Backspace},
	}
	out := make([]Entry, 0, len(named))
	for _, n := range named {
		labels := make([]string, 0, len(n.b.Keys()))
		for _, kk := range n.b.Keys() {
			labels = append(labels, keyLabel(kk))
		}
		out = append(out, Entry{Mode: n.mode, Action: n.b.Help().Desc, Keys: labels})
	}
	return out
}
