package ui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent = lipgloss.Color("#E07A5F")
	colorText   = lipgloss.Color("#FFFFFF")
	colorDim    = lipgloss.Color("#6B7280")
	colorDone   = lipgloss.Color("#A6E3A1")
	colorBorder = lipgloss.Color("#4B5563")
)

var (
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Margin(frameMargin)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderTop(false).
			BorderForeground(colorDim)

	borderStyle = lipgloss.NewStyle().Foreground(colorDim)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	itemStyle = lipgloss.NewStyle().Foreground(colorText)

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Reverse(true)

	doneStyle = lipgloss.NewStyle().
			Foreground(colorDone).
			Strikethrough(true)

	cursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	dimStyle = lipgloss.NewStyle().Foreground(colorDim)

	statusStyle = lipgloss.NewStyle().Foreground(colorAccent)
)

const (
	cursorGlyph = "› "
	noCursor    = "  "
)
