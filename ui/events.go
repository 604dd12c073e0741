package ui

import (
	"fmt"
	"strings"
)

// renderEvents shows the full retained event history, newest first.
func (m Model) renderEvents() string {
	log := m.ticker.Log()
	events := log.All()

	rows := m.height - 6
	if rows < 5 {
		rows = 20
	}

	maxScroll := len(events) - rows
	if maxScroll < 0 {
		maxScroll = 0
	}
	scroll := m.scroll
	if scroll > maxScroll {
		scroll = maxScroll
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(" %s  %s\n\n",
		titleStyle.Render("Events"),
		labelStyle.Render(fmt.Sprintf("%d total", len(events)))))

	// Newest first; scroll moves toward older events.
	shown := 0
	for i := len(events) - 1 - scroll; i >= 0 && shown < rows; i-- {
		sb.WriteString(" " + eventLine(events[i], m.width) + "\n")
		shown++
	}
	if shown == 0 {
		sb.WriteString(dimStyle.Render("  no events yet\n"))
	}

	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render("  j/k scroll │ tab pages │ q quit"))
	return sb.String()
}
