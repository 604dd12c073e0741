package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	colorRed    = lipgloss.Color("#FF5555")
	colorYellow = lipgloss.Color("#F1FA8C")
	colorGreen  = lipgloss.Color("#50FA7B")
	colorCyan   = lipgloss.Color("#8BE9FD")
	colorOrange = lipgloss.Color("#FFB86C")
	colorWhite  = lipgloss.Color("#F8F8F2")
	colorGray   = lipgloss.Color("#6272A4")

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGray).
			Padding(0, 1)

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	labelStyle  = lipgloss.NewStyle().Foreground(colorGray)
	valueStyle  = lipgloss.NewStyle().Foreground(colorWhite)
	warnStyle   = lipgloss.NewStyle().Foreground(colorYellow).Bold(true)
	critStyle   = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	okStyle     = lipgloss.NewStyle().Foreground(colorGreen)
	dimStyle    = lipgloss.NewStyle().Foreground(colorGray)
	orangeStyle = lipgloss.NewStyle().Foreground(colorOrange)
	helpStyle   = lipgloss.NewStyle().Foreground(colorGray)
)

// statusStyle colors the last pipeline status string.
func statusStyle(status string) lipgloss.Style {
	switch status {
	case "Success", "Proved":
		return okStyle
	case "Proof Failed", "Submit Failed":
		return critStyle
	}
	return dimStyle
}

// eventStyle colors an event line by its outcome type.
func eventStyle(t string) lipgloss.Style {
	switch t {
	case "success":
		return okStyle
	case "error":
		return critStyle
	case "state_change":
		return orangeStyle
	}
	return valueStyle
}
