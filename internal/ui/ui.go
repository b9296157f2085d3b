// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-antikythera/internal/state"
	"github.com/litescript/ls-antikythera/internal/version"
)

// ViewMode represents the current UI view.
type ViewMode int

const (
	ViewChart ViewMode = iota
	ViewAlmanac
)

// TickMsg drives the simulated clock and periodic redraws.
type TickMsg time.Time

// Clock step sizes for the keyboard controls.
const (
	stepHour = time.Hour
	stepDay  = 24 * time.Hour

	maxRate = 1e6
)

// Model is the root Bubble Tea model.
type Model struct {
	state *state.Manager

	viewMode  ViewMode
	width     int
	height    int
	ready     bool
	statusMsg string
	animTick  int

	chart   ChartModel
	almanac AlmanacModel

	snapshot state.Snapshot
	lastTick time.Time
}

// New creates a new root UI model.
func New(stateMgr *state.Manager) Model {
	return Model{
		state:    stateMgr,
		viewMode: ViewChart,
		chart:    NewChartModel(),
		almanac:  NewAlmanacModel(),
		snapshot: stateMgr.Snapshot(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.state.TickInterval())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "1", "c":
			m.viewMode = ViewChart
		case "2", "a":
			m.viewMode = ViewAlmanac
		case "tab":
			m.viewMode = (m.viewMode + 1) % 2

		case " ":
			if m.state.TogglePause() {
				m.statusMsg = "Clock paused"
			} else {
				m.statusMsg = ""
			}
			m.refresh()

		case ",":
			m.state.Step(-stepHour)
			m.refresh()
		case ".":
			m.state.Step(stepHour)
			m.refresh()
		case "<":
			m.state.Step(-stepDay)
			m.refresh()
		case ">":
			m.state.Step(stepDay)
			m.refresh()

		case "[":
			m.setRate(m.state.Rate() / 10)
		case "]":
			m.setRate(m.state.Rate() * 10)
		case "0":
			m.setRate(1)
		case "n":
			m.state.SetTime(time.Now())
			m.statusMsg = "Clock reset to now"
			m.refresh()

		default:
			cmds = append(cmds, m.updateActiveView(msg))
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		// Logo and tabs take 6 lines, footer 2.
		contentHeight := msg.Height - 8
		m.chart = m.chart.SetSize(msg.Width, contentHeight)
		m.almanac = m.almanac.SetSize(msg.Width, contentHeight)

	case TickMsg:
		cmds = append(cmds, tickCmd(m.state.TickInterval()))
		m.animTick++

		now := time.Time(msg)
		if !m.lastTick.IsZero() {
			m.state.Advance(now.Sub(m.lastTick))
		}
		m.lastTick = now
		m.refresh()

	default:
		cmds = append(cmds, m.updateActiveView(msg))
	}

	return m, tea.Batch(cmds...)
}

// refresh pulls a fresh snapshot and pushes it into the sub-models.
func (m *Model) refresh() {
	m.snapshot = m.state.Snapshot()
	m.chart = m.chart.UpdateData(m.snapshot)
	m.almanac = m.almanac.UpdateData(m.snapshot)
}

func (m *Model) setRate(rate float64) {
	if rate < 1 {
		rate = 1
	}
	if rate > maxRate {
		rate = maxRate
	}
	m.state.SetRate(rate)
	m.statusMsg = fmt.Sprintf("Rate %sx", formatRate(rate))
}

func (m *Model) updateActiveView(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.viewMode {
	case ViewChart:
		m.chart, cmd = m.chart.Update(msg)
	case ViewAlmanac:
		m.almanac, cmd = m.almanac.Update(msg)
	}
	return cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var content string
	switch m.viewMode {
	case ViewChart:
		content = m.chart.View()
	case ViewAlmanac:
		content = m.almanac.View()
	}

	return m.renderHeader() + "\n" + content + "\n" + m.renderFooter()
}

func (m Model) renderHeader() string {
	return m.renderLogo() + m.renderTabs() + "\n"
}

func (m Model) renderLogo() string {
	// Half-block lettering with a horizontal truecolor gradient
	logo := []string{
		`  ▄▀█ █▄ █ ▀█▀ █ █▄▀ █▄█ ▀█▀ █▄█ █▀▀ █▀█ ▄▀█`,
		`  █▀█ █ ▀█  █  █ █ █  █   █  █ █ ██▄ █▀▄ █▀█`,
	}

	var b strings.Builder
	b.WriteString("\n")
	for row, line := range logo {
		runes := []rune(line)
		for col, r := range runes {
			color := gradientColor(col, row, len(runes), len(logo))
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
			b.WriteString(style.Render(string(r)))
		}
		b.WriteString("\n")
	}

	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	tagline := fmt.Sprintf("  A Mechanical Sky · v%s", version.Version)
	b.WriteString(muted.Render(tagline))
	b.WriteString("\n\n")
	return b.String()
}

// gradientColor returns a hex color for a position in the logo gradient:
// amber through orange to a deep bronze, fading toward the bottom row.
func gradientColor(col, row, width, height int) string {
	xRatio := float64(col) / float64(width)
	yRatio := float64(row) / float64(height)

	// Amber (#FCD34D) -> Orange (#F97316) -> Bronze (#B45309)
	var r, g, b float64
	if xRatio < 0.5 {
		t := xRatio / 0.5
		r = 252 + t*(249-252)
		g = 211 + t*(115-211)
		b = 77 + t*(22-77)
	} else {
		t := (xRatio - 0.5) / 0.5
		r = 249 + t*(180-249)
		g = 115 + t*(83-115)
		b = 22 + t*(9-22)
	}

	factor := 1.0 - yRatio*0.35
	ri := clamp8(int(r * factor))
	gi := clamp8(int(g * factor))
	bi := clamp8(int(b * factor))
	return fmt.Sprintf("#%02X%02X%02X", ri, gi, bi)
}

func clamp8(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

func (m Model) renderTabs() string {
	tabs := []string{"[1] Chart", "[2] Almanac"}
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B")).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	var parts []string
	for i, tab := range tabs {
		if ViewMode(i) == m.viewMode {
			parts = append(parts, activeStyle.Render("▶ "+tab))
		} else {
			parts = append(parts, dimStyle.Render("  "+tab))
		}
	}
	return "  " + strings.Join(parts, "  ")
}

func (m Model) renderFooter() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B"))

	var clock string
	if m.snapshot.Paused {
		clock = accentStyle.Render("⏸ " + m.snapshot.Time.Format("2006-01-02 15:04:05 MST"))
	} else {
		spinnerFrames := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
		spinner := spinnerFrames[m.animTick%len(spinnerFrames)]
		clock = accentStyle.Render(spinner) + " " + m.snapshot.Time.Format("2006-01-02 15:04:05 MST")
	}
	clock += dimStyle.Render(fmt.Sprintf("  %sx", formatRate(m.snapshot.Rate)))

	var help string
	switch m.viewMode {
	case ViewChart:
		help = dimStyle.Render("space: pause | ,/. ±1h | </> ±1d | [/] rate | g: grid | l: labels | e: ecliptic")
	case ViewAlmanac:
		help = dimStyle.Render("space: pause | ,/. ±1h | </> ±1d | [/] rate | ↑↓: scroll | v: visible only")
	}

	footer := "  " + clock + "  " + dimStyle.Render("|") + "  " + help
	if m.statusMsg != "" {
		footer += "\n  " + dimStyle.Render(m.statusMsg)
	}
	return footer
}

// formatRate renders a rate multiplier without trailing zeros.
func formatRate(rate float64) string {
	if rate == float64(int64(rate)) {
		return fmt.Sprintf("%d", int64(rate))
	}
	return fmt.Sprintf("%g", rate)
}

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
