package ui

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"donelist/internal/config"
	"donelist/internal/state"
)

// Model drives the application state from Bubble Tea messages. The
// AppState pointer is owned by the model; only Update writes through it.
type Model struct {
	app    *state.AppState
	keys   KeyMap
	logger *slog.Logger
	width  int
	height int
	status string
}

func NewModel(s *state.AppState, keys KeyMap, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return Model{
		app:    s,
		keys:   keys,
		logger: logger,
		status: fmt.Sprintf("Press %s to add, %s to toggle, %s to delete.",
			keys.Add.Help().Key, keys.Toggle.Help().Key, keys.Delete.Help().Key),
	}
}

// Run starts the event loop with an empty list and blocks until the user
// quits or the terminal fails.
func Run(cfg config.Config, logger *slog.Logger) error {
	m := NewModel(state.New(), NewKeyMap(cfg.Keys), logger)

	var opts []tea.ProgramOption
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	program := tea.NewProgram(m, opts...)
	m.logger.Info("starting", "alt_screen", cfg.AltScreen)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	m.logger.Info("stopped")
	return nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	from := m.app.Mode
	act := dispatch(m.app, m.keys, msg)

	switch act.kind {
	case actQuit:
		m.logger.Info("quit requested", "items", m.app.Items.Len())
		return m, tea.Quit
	case actCompose:
		m.status = fmt.Sprintf("Type a description, %s to save, %s to cancel.",
			m.keys.Confirm.Help().Key, m.keys.Cancel.Help().Key)
	case actAdded:
		m.status = fmt.Sprintf("Added %q", act.item.Description)
		m.logger.Debug("item added", "items", m.app.Items.Len())
	case actEmpty:
		m.status = "Nothing to add"
	case actCancelled:
		m.status = "Cancelled"
		m.logger.Debug("compose cancelled")
	case actToggled:
		if act.item.Done {
			m.status = fmt.Sprintf("Done: %q", act.item.Description)
		} else {
			m.status = fmt.Sprintf("Reopened %q", act.item.Description)
		}
		m.logger.Debug("item toggled", "done", act.item.Done)
	case actDeleted:
		m.status = fmt.Sprintf("Deleted %q", act.item.Description)
		m.logger.Debug("item removed", "items", m.app.Items.Len())
	}
	if m.app.Mode != from {
		m.logger.Debug("mode changed", "from", from.String(), "to", m.app.Mode.String())
	}
	return m, nil
}

func (m Model) View() string {
	return Project(m.app, m.keys, Viewport{Width: m.width, Height: m.height, Status: m.status})
}

func (m Model) appState() *state.AppState {
	return m.app
}
