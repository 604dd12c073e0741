package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ftahirops/provertop/engine"
	"github.com/ftahirops/provertop/model"
)

// Page identifies the current screen.
type Page int

const (
	PageDashboard Page = iota
	PageEvents
	pageCount
)

var pageNames = []string{"Dashboard", "Events"}

type tickMsg time.Time

type collectMsg struct {
	snap *model.Snapshot
}

// Model is the bubbletea model.
type Model struct {
	ticker   engine.Ticker
	interval time.Duration
	width    int
	height   int

	snap *model.Snapshot

	page     Page
	showHelp bool
	paused   bool
	scroll   int // events page scroll offset
}

// NewModel creates a new TUI model.
func NewModel(ticker engine.Ticker, interval time.Duration) Model {
	return Model{
		ticker:   ticker,
		interval: interval,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tick(m.interval), collectOnce(m.ticker))
}

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func collectOnce(ticker engine.Ticker) tea.Cmd {
	return func() tea.Msg {
		return collectMsg{snap: ticker.Tick()}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "?":
			m.showHelp = true
		case "tab":
			m.page = (m.page + 1) % pageCount
			m.scroll = 0
		case "1":
			m.page = PageDashboard
		case "2":
			m.page = PageEvents
		case "a":
			m.paused = !m.paused
			if !m.paused {
				return m, tea.Batch(tick(m.interval), collectOnce(m.ticker))
			}
		case "n":
			// Step one frame while paused (replay mode).
			if m.paused {
				if p, ok := m.ticker.(*engine.Player); ok {
					if snap := p.Tick(); snap != nil {
						m.snap = snap
					}
				}
			}
		case "[":
			if p, ok := m.ticker.(*engine.Player); ok {
				if snap := p.Seek(p.Index() - 10); snap != nil {
					m.snap = snap
				}
			}
		case "]":
			if p, ok := m.ticker.(*engine.Player); ok {
				if snap := p.Seek(p.Index() + 10); snap != nil {
					m.snap = snap
				}
			}
		case "j", "down":
			if m.page == PageEvents {
				m.scroll++
			}
		case "k", "up":
			if m.page == PageEvents && m.scroll > 0 {
				m.scroll--
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		if m.paused {
			return m, nil
		}
		return m, tea.Batch(tick(m.interval), collectOnce(m.ticker))

	case collectMsg:
		if msg.snap != nil {
			m.snap = msg.snap
		}
	}

	return m, nil
}

func (m Model) View() string {
	if m.snap == nil {
		return "\n  collecting..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	switch m.page {
	case PageEvents:
		return m.renderEvents()
	default:
		return m.renderDashboard()
	}
}

func (m Model) renderHelp() string {
	lines := []string{
		"",
		titleStyle.Render("  provertop keys"),
		"",
		"  tab / 1 / 2    switch page",
		"  a              pause / resume",
		"  n              step one frame (paused replay)",
		"  [ / ]          seek ±10 frames (replay)",
		"  j / k          scroll events page",
		"  ?              toggle this help",
		"  q              quit",
		"",
		helpStyle.Render("  press any key to close"),
	}
	out := ""
	for _, l := range lines {
		out += l + "\n"
	}
	return out
}
