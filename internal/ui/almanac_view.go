package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/soniakeys/unit"

	"github.com/litescript/ls-antikythera/internal/almanac"
	"github.com/litescript/ls-antikythera/internal/state"
)

// Number of recent events shown under the table.
const eventPanelLen = 5

// AlmanacModel renders the sky as a scrollable table plus the recent
// rise/set event log.
type AlmanacModel struct {
	width  int
	height int

	sky    almanac.Sky
	events []state.Event

	offset      int
	visibleOnly bool
}

// NewAlmanacModel creates a new almanac view model.
func NewAlmanacModel() AlmanacModel {
	return AlmanacModel{}
}

// SetSize updates the viewport size.
func (m AlmanacModel) SetSize(width, height int) AlmanacModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData updates with a new state snapshot.
func (m AlmanacModel) UpdateData(snapshot state.Snapshot) AlmanacModel {
	m.sky = snapshot.Sky
	if len(snapshot.Events) > eventPanelLen {
		m.events = snapshot.Events[len(snapshot.Events)-eventPanelLen:]
	} else {
		m.events = snapshot.Events
	}
	return m
}

// Update handles messages.
func (m AlmanacModel) Update(msg tea.Msg) (AlmanacModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "up", "k":
			if m.offset > 0 {
				m.offset--
			}
		case "down", "j":
			if m.offset < len(m.rows())-1 {
				m.offset++
			}
		case "v":
			m.visibleOnly = !m.visibleOnly
			m.offset = 0
		}
	}
	return m, nil
}

// Init returns nil cmd.
func (m AlmanacModel) Init() tea.Cmd {
	return nil
}

// rows returns the table rows under the current filter.
func (m AlmanacModel) rows() []almanac.Row {
	if !m.visibleOnly {
		return m.sky.Rows
	}
	var rows []almanac.Row
	for _, r := range m.sky.Rows {
		if r.Visible() || r.Kind == almanac.KindSun || r.Kind == almanac.KindMoon {
			rows = append(rows, r)
		}
	}
	return rows
}

// View renders the almanac.
func (m AlmanacModel) View() string {
	if m.width < 40 || m.height < 8 {
		return "Almanac requires a larger terminal"
	}

	headStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F59E0B"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	var b strings.Builder
	b.WriteString("  " + headStyle.Render(fmt.Sprintf("%-16s %-7s %10s %10s  %s", "Body", "Kind", "Alt", "Az", "Notes")))
	b.WriteString("\n  " + dimStyle.Render(strings.Repeat("─", min(m.width-4, 60))))
	b.WriteString("\n")

	rows := m.rows()
	tableHeight := m.height - eventPanelLen - 5
	if tableHeight < 1 {
		tableHeight = 1
	}
	if m.offset > len(rows)-1 {
		m.offset = 0
	}

	end := m.offset + tableHeight
	if end > len(rows) {
		end = len(rows)
	}
	for _, r := range rows[m.offset:end] {
		b.WriteString("  " + m.renderRow(r) + "\n")
	}
	if end < len(rows) {
		b.WriteString("  " + dimStyle.Render(fmt.Sprintf("… %d more", len(rows)-end)) + "\n")
	}

	b.WriteString("\n  " + headStyle.Render("Events"))
	b.WriteString("\n  " + dimStyle.Render(strings.Repeat("─", min(m.width-4, 60))))
	b.WriteString("\n")
	if len(m.events) == 0 {
		b.WriteString("  " + dimStyle.Render("none yet — let the clock run") + "\n")
	}
	for _, e := range m.events {
		b.WriteString("  " + renderEvent(e) + "\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func (m AlmanacModel) renderRow(r almanac.Row) string {
	upStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	downStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	style := upStyle
	if !r.Visible() {
		style = downStyle
	}

	notes := ""
	switch r.Kind {
	case almanac.KindStar:
		notes = fmt.Sprintf("mag %.2f", r.Mag)
	case almanac.KindMoon:
		notes = fmt.Sprintf("%s %c", almanac.PhaseName(r.LunarPhase), almanac.PhaseGlyph(r.LunarPhase))
	case almanac.KindPlanet:
		notes = r.Glyph
	}

	return style.Render(fmt.Sprintf("%-16s %-7s %9.2f° %9.2f°  %s",
		truncate(r.Name, 16),
		r.Kind,
		unit.Angle(r.Pos.Alt).Deg(),
		unit.Angle(r.Pos.Az).Deg(),
		notes))
}

func renderEvent(e state.Event) string {
	riseStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("114")) // soft green
	setStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("174")) // soft red
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	stamp := dimStyle.Render(e.Timestamp.Format("01-02 15:04"))
	switch e.Type {
	case state.EventRise:
		return fmt.Sprintf("%s  %s az %.0f°", stamp, riseStyle.Render("▲ "+e.Body+" rises"), e.AzimuthDeg)
	case state.EventSet:
		return fmt.Sprintf("%s  %s az %.0f°", stamp, setStyle.Render("▼ "+e.Body+" sets"), e.AzimuthDeg)
	case state.EventPhase:
		return fmt.Sprintf("%s  %s", stamp, dimStyle.Render("☽ moon is "+e.Phase))
	default:
		return fmt.Sprintf("%s  %s %s", stamp, e.Type, e.Body)
	}
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-2] + ".."
}
