package main

import "github.com/charmbracelet/lipgloss"

// Centralized style definitions for the TUI.
var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")) // cyan
	subtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))            // gray

	// Score header styles.
	pointsStyle = lipgloss.NewStyle().Bold(true)
	statStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	timerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4")) // blue
	pausedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	// Technique list styles.
	techniqueStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5")) // magenta
	cursorStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
	useStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("2")) // green
	usedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Faint(true)
	exampleStyle   = lipgloss.NewStyle()

	// Notification alert.
	alertStyle = lipgloss.NewStyle().
			PaddingLeft(1).
			BorderLeft(true).
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color("3")) // yellow
	alertTitleStyle = lipgloss.NewStyle().Bold(true)

	// Reset confirmation prompt.
	confirmStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")) // red

	// Error block style.
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

const (
	cursorMark = "› "
	noCursor   = "  "
)
