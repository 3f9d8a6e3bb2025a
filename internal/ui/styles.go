package ui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary   = lipgloss.Color("62")
	colorSecondary = lipgloss.Color("241")
	colorMuted     = lipgloss.Color("240")
	colorHighlight = lipgloss.Color("212")
	colorScore     = lipgloss.Color("214")
)

var SelectedItem = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255")).
	Background(colorPrimary).
	Padding(0, 1)

var NormalItem = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Padding(0, 1)

var TabActive = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorHighlight).
	Underline(true).
	Padding(0, 1)

var TabInactive = lipgloss.NewStyle().
	Foreground(colorSecondary).
	Padding(0, 1)

var Title = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorHighlight).
	Padding(0, 1)

var ScoreBadge = lipgloss.NewStyle().
	Foreground(colorScore).
	Bold(true)

var Muted = lipgloss.NewStyle().
	Foreground(colorMuted).
	Padding(0, 1)

// EndOfList marks an exhausted list.
var EndOfList = lipgloss.NewStyle().
	Foreground(colorSecondary).
	Italic(true).
	Padding(0, 1)

var StatusBar = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Background(lipgloss.Color("236")).
	Padding(0, 1)

var StatusBarKey = lipgloss.NewStyle().
	Foreground(colorHighlight).
	Bold(true)

var ErrorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("196")).
	Bold(true).
	Padding(0, 1)

var FormLabel = lipgloss.NewStyle().
	Foreground(colorSecondary).
	Padding(0, 1)
