package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"donelist/internal/state"
	"donelist/internal/storage"
)

const (
	frameMargin   = 1
	defaultWidth  = 80
	defaultHeight = 24
	minWidth      = 24
	minHeight     = 10
	footerLines   = 2 // status + help
)

// Viewport is what the projection needs besides the application state.
type Viewport struct {
	Width  int
	Height int
	Status string
}

// Project renders s into a full-screen frame. It only reads s, so two calls
// with the same arguments produce the same string.
func Project(s *state.AppState, keys KeyMap, v Viewport) string {
	w, h := v.Width, v.Height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	w, h = max(w, minWidth), max(h, minHeight)

	innerW := w - 2*frameMargin - 2
	innerH := h - 2*frameMargin - 2
	boxH := innerH - footerLines

	var box string
	var bindings []key.Binding
	switch s.Mode {
	case state.Compose:
		box = titledBox("New item", composeLines(s.Input.View(), innerW-2, boxH-2), innerW, boxH)
		bindings = keys.composeHelp()
	default:
		title := fmt.Sprintf("Todo (%d/%d)", s.Items.DoneCount(), s.Items.Len())
		box = titledBox(title, listLines(s, keys, innerW-2, boxH-2), innerW, boxH)
		bindings = keys.browseHelp()
	}

	hm := help.New()
	hm.Width = innerW
	status := statusStyle.Render(ansi.Truncate(v.Status, innerW, "…"))

	body := lipgloss.JoinVertical(lipgloss.Left, box, status, hm.ShortHelpView(bindings))
	return frameStyle.
		Width(innerW).
		Height(innerH).
		MaxWidth(w).
		MaxHeight(h).
		Render(body)
}

// titledBox draws a rounded box of the given outer size with title set into
// its top border.
func titledBox(title string, lines []string, width, height int) string {
	b := lipgloss.RoundedBorder()
	title = ansi.Truncate(title, max(width-5, 0), "…")
	fill := max(width-lipgloss.Width(title)-5, 0)
	top := borderStyle.Render(b.TopLeft+b.Top+" ") +
		titleStyle.Render(title) +
		borderStyle.Render(" "+strings.Repeat(b.Top, fill)+b.TopRight)

	body := boxStyle.
		Width(width - 2).
		Height(height - 2).
		Render(strings.Join(lines, "\n"))
	return lipgloss.JoinVertical(lipgloss.Left, top, body)
}

func listLines(s *state.AppState, keys KeyMap, width, rows int) []string {
	n := s.Items.Len()
	if n == 0 {
		hint := fmt.Sprintf("No items yet. Press %s to add one.", keys.Add.Help().Key)
		return []string{dimStyle.Render(ansi.Truncate(hint, width, "…"))}
	}
	sel, hasSel := s.Selection.Index()
	start := scrollOffset(sel, hasSel, rows)
	end := min(n, start+rows)

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		it, _ := s.Items.Get(i)
		lines = append(lines, itemLine(it, hasSel && i == sel, width))
	}
	return lines
}

// scrollOffset keeps the selected row inside a window of rows lines.
func scrollOffset(sel int, hasSel bool, rows int) int {
	if !hasSel || rows <= 0 || sel < rows {
		return 0
	}
	return sel - rows + 1
}

func itemLine(it storage.Item, selected bool, width int) string {
	prefix := noCursor
	if selected {
		prefix = cursorStyle.Render(cursorGlyph)
	}
	checkbox := "[ ] "
	if it.Done {
		checkbox = "[x] "
	}
	desc := ansi.Truncate(it.Description, max(width-lipgloss.Width(noCursor+checkbox), 0), "…")

	style := itemStyle
	if it.Done {
		style = doneStyle
	}
	if selected {
		style = style.Inherit(selectedStyle)
	}
	return prefix + style.Render(checkbox+desc)
}

// composeLines wraps the rendered input to width and keeps the last rows
// lines so the end of the text and the cursor stay visible.
func composeLines(input string, width, rows int) []string {
	wrapped := ansi.Hardwrap(input, max(width, 1), true)
	lines := strings.Split(wrapped, "\n")
	if rows > 0 && len(lines) > rows {
		lines = lines[len(lines)-rows:]
	}
	return lines
}
