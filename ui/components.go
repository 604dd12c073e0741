package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// styledPad pads a styled string to the given visual width using spaces.
// Unlike fmt.Sprintf("%-Xs"), this accounts for ANSI escape codes.
func styledPad(styled string, width int) string {
	visW := lipgloss.Width(styled)
	if visW >= width {
		return styled
	}
	return styled + strings.Repeat(" ", width-visW)
}

// kvLine renders one "label: value" row with aligned columns.
func kvLine(key, val string) string {
	return fmt.Sprintf("%s %s", styledPad(labelStyle.Render(key+":"), 16), val)
}

// bar renders a percentage bar of given width.
func bar(pct float64, width int) string {
	if width < 1 {
		width = 10
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := int(pct / 100 * float64(width))
	if filled > width {
		filled = width
	}
	b := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	switch {
	case pct >= 80:
		return critStyle.Render(b)
	case pct >= 50:
		return warnStyle.Render(b)
	default:
		return okStyle.Render(b)
	}
}

// countdownBar renders a backoff countdown: full at the start of the
// wait, draining to empty as it elapses.
func countdownBar(elapsed, total float64, width int) string {
	if total <= 0 {
		return okStyle.Render(strings.Repeat("░", width))
	}
	remaining := (total - elapsed) / total * 100
	if remaining < 0 {
		remaining = 0
	}
	filled := int(remaining / 100 * float64(width))
	if filled > width {
		filled = width
	}
	b := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return orangeStyle.Render(b)
}

// sparkline renders a single-line chart of the series.
func sparkline(data []float64, width int, minVal, maxVal float64) string {
	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	if maxVal <= minVal {
		maxVal = minVal + 1
	}

	var resampled []float64
	if len(data) <= width {
		resampled = data
	} else {
		resampled = make([]float64, width)
		for i := 0; i < width; i++ {
			srcIdx := i * len(data) / width
			if srcIdx >= len(data) {
				srcIdx = len(data) - 1
			}
			resampled[i] = data[srcIdx]
		}
	}

	var sb strings.Builder
	for _, v := range resampled {
		ratio := (v - minVal) / (maxVal - minVal)
		if ratio < 0 {
			ratio = 0
		}
		if ratio > 1 {
			ratio = 1
		}
		idx := int(ratio * float64(len(blocks)-1))
		sb.WriteString(okStyle.Render(string(blocks[idx])))
	}
	return sb.String()
}

// truncate shortens s to maxLen characters with ellipsis if needed.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return truncate(s, width)
	}
	return s + strings.Repeat(" ", width-len(s))
}
