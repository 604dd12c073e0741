package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/ftahirops/provertop/model"
)

func (m Model) renderDashboard() string {
	snap := m.snap

	var sb strings.Builder
	sb.WriteString(m.renderHeader())
	sb.WriteString("\n")

	left := lipgloss.JoinVertical(lipgloss.Left,
		m.renderTaskPanel(),
		m.renderFetchPanel(),
	)
	right := lipgloss.JoinVertical(lipgloss.Left,
		m.renderZkVMPanel(),
		m.renderSystemPanel(),
	)
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, right))
	sb.WriteString("\n")
	sb.WriteString(m.renderEventTail(8))
	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render(fmt.Sprintf("  tick %d │ tab pages │ a pause │ ? help │ q quit", snap.Tick)))
	return sb.String()
}

func (m Model) renderHeader() string {
	snap := m.snap

	state := string(snap.ProverState)
	if state == "" {
		state = "unknown"
	}
	stateStr := orangeStyle.Render(state)
	if snap.ProverState == model.StateProving {
		stateStr = okStyle.Render(state)
	} else if snap.ProverState == model.StateError {
		stateStr = critStyle.Render(state)
	}

	paused := ""
	if m.paused {
		paused = warnStyle.Render("  ⏸ PAUSED")
	}

	tabs := make([]string, len(pageNames))
	for i, name := range pageNames {
		if Page(i) == m.page {
			tabs[i] = titleStyle.Render("[" + name + "]")
		} else {
			tabs[i] = dimStyle.Render(" " + name + " ")
		}
	}

	return fmt.Sprintf(" %s  %s  %s %s%s",
		titleStyle.Render("provertop"),
		strings.Join(tabs, " "),
		labelStyle.Render("prover state:"),
		stateStr,
		paused,
	)
}

func (m Model) renderTaskPanel() string {
	snap := m.snap

	task := snap.CurrentTask
	taskStr := dimStyle.Render("none")
	if task != "" {
		taskStr = valueStyle.Render(truncate(task, 28))
	}

	fetching := snap.Fetching
	var fetchStr string
	switch fetching.State {
	case model.FetchActive:
		elapsed := snap.Timestamp.Sub(fetching.StartedAt).Round(time.Second)
		fetchStr = okStyle.Render(fmt.Sprintf("fetching (%s)", elapsed))
	case model.FetchTimeout:
		fetchStr = critStyle.Render("timed out")
	default:
		fetchStr = dimStyle.Render("idle")
	}

	proving := dimStyle.Render("—")
	if !snap.ProvingSince.IsZero() {
		proving = okStyle.Render(fmt.Sprintf("for %s", snap.Timestamp.Sub(snap.ProvingSince).Round(time.Second)))
	}

	lines := []string{
		titleStyle.Render("Task"),
		kvLine("current", taskStr),
		kvLine("fetch", fetchStr),
		kvLine("proving", proving),
	}
	return panelStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) renderZkVMPanel() string {
	z := m.snap.ZkVM

	lines := []string{
		titleStyle.Render("zkVM"),
		kvLine("executed", valueStyle.Render(fmt.Sprintf("%d", z.TasksExecuted))),
		kvLine("proved", valueStyle.Render(fmt.Sprintf("%d", z.TasksProved))),
		kvLine("runtime", valueStyle.Render(z.Runtime.Round(time.Second).String())),
		kvLine("points", okStyle.Render(humanize.Comma(int64(z.TotalPoints)))),
		kvLine("last status", statusStyle(z.LastStatus).Render(z.LastStatus)),
	}
	return panelStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) renderFetchPanel() string {
	tf := m.snap.TaskFetch

	var lines []string
	if tf.CanFetchNow {
		lines = []string{
			titleStyle.Render("Fetch backoff"),
			kvLine("status", okStyle.Render("ready")),
			kvLine("wait", dimStyle.Render("—")),
		}
	} else {
		elapsed := tf.SinceBackoffStart.Seconds()
		total := tf.BackoffDuration.Seconds()
		lines = []string{
			titleStyle.Render("Fetch backoff"),
			kvLine("status", warnStyle.Render(fmt.Sprintf("rate limited, %ds left", int(tf.Remaining().Seconds())))),
			kvLine("wait", countdownBar(elapsed, total, 24)),
		}
	}
	return panelStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) renderSystemPanel() string {
	sys := m.snap.System

	ramPct := 0.0
	if sys.TotalRAMBytes > 0 {
		ramPct = float64(sys.RAMBytes) / float64(sys.TotalRAMBytes) * 100
	}

	cpuSeries := m.ticker.Base().History.CPUSeries()

	lines := []string{
		titleStyle.Render("System"),
		kvLine("cpu", fmt.Sprintf("%s %s", bar(sys.CPUPct, 16), valueStyle.Render(fmt.Sprintf("%5.1f%%", sys.CPUPct)))),
		kvLine("cpu trend", sparkline(cpuSeries, 24, 0, 100)),
		kvLine("ram", fmt.Sprintf("%s %s", bar(ramPct, 16), valueStyle.Render(humanize.IBytes(sys.RAMBytes)))),
		kvLine("peak ram", valueStyle.Render(humanize.IBytes(sys.PeakRAMBytes))),
	}
	return panelStyle.Render(strings.Join(lines, "\n"))
}

// renderEventTail shows the newest events at the bottom of the dashboard.
func (m Model) renderEventTail(n int) string {
	events := m.ticker.Log().Recent(n)

	lines := []string{titleStyle.Render("Recent events")}
	if len(events) == 0 {
		lines = append(lines, dimStyle.Render("no events yet"))
	}
	for i := len(events) - 1; i >= 0; i-- {
		lines = append(lines, eventLine(events[i], m.width))
	}
	return panelStyle.Render(strings.Join(lines, "\n"))
}

func eventLine(e model.Event, width int) string {
	msgW := width - 40
	if msgW < 20 {
		msgW = 40
	}
	return fmt.Sprintf("%s %s %s",
		dimStyle.Render(e.Timestamp.Format("15:04:05")),
		eventStyle(string(e.Type)).Render(padRight(e.Worker.String(), 14)),
		valueStyle.Render(truncate(e.Msg, msgW)),
	)
}
