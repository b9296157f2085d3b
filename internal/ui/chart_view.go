package ui

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/soniakeys/unit"

	"github.com/litescript/ls-antikythera/internal/almanac"
	"github.com/litescript/ls-antikythera/internal/astro"
	"github.com/litescript/ls-antikythera/internal/state"
)

const (
	// Terminal cells are roughly twice as tall as wide; the dome is drawn
	// as an ellipse with this column/row ratio so it reads as a circle.
	cellAspect = 2.0

	// Ecliptic samples slightly outside the horizon are still drawn so the
	// arc meets the circle cleanly.
	eclipticOverscan = 1.15

	// Sun and moon glyphs
	glyphSun = '☉'

	// Star glyphs by magnitude
	glyphStarBright = '✶' // mag < 1.0
	glyphStarMedium = '✦' // mag 1.0-2.0
	glyphStarDim    = '·' // fainter

	glyphPlanetFallback = '✦'

	// Colors
	colorSun      = "220" // gold
	colorMoon     = "252" // pale silver
	colorPlanet   = "#d0c8ff"
	colorEcliptic = "94"  // dark amber
	colorHorizon  = "60"  // muted purple
	colorGrid     = "238" // near-background gray
	colorCardinal = "252"

	colorStarBright = "255"
	colorStarMedium = "250"
	colorStarDim    = "244"
)

// LabelMode controls which bodies get name labels on the chart.
type LabelMode int

const (
	LabelNone    LabelMode = iota
	LabelPlanets           // sun, moon and planets
	LabelAll               // also named stars brighter than mag 1.5
)

// ChartModel renders the whole visible sky as a stereographic disc:
// zenith at the center, horizon at the rim, north up, east left.
type ChartModel struct {
	width  int
	height int

	sky almanac.Sky

	showGrid     bool
	showEcliptic bool
	labelMode    LabelMode
}

// NewChartModel creates a new chart view model.
func NewChartModel() ChartModel {
	return ChartModel{
		showGrid:     true,
		showEcliptic: true,
		labelMode:    LabelPlanets,
	}
}

// SetSize updates the viewport size.
func (m ChartModel) SetSize(width, height int) ChartModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData updates with a new state snapshot.
func (m ChartModel) UpdateData(snapshot state.Snapshot) ChartModel {
	m.sky = snapshot.Sky
	return m
}

// Update handles messages.
func (m ChartModel) Update(msg tea.Msg) (ChartModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "g":
			m.showGrid = !m.showGrid
		case "e":
			m.showEcliptic = !m.showEcliptic
		case "l":
			m.labelMode = (m.labelMode + 1) % 3
		}
	}
	return m, nil
}

// Init returns nil cmd.
func (m ChartModel) Init() tea.Cmd {
	return nil
}

// View renders the chart.
func (m ChartModel) View() string {
	if m.width < 24 || m.height < 12 {
		return "Chart requires a larger terminal"
	}

	canvasHeight := m.height - 2
	canvas := newCanvas(m.width, canvasHeight)

	dome := fitDome(m.width, canvasHeight)

	if m.showGrid {
		m.drawAltitudeRings(canvas, dome)
	}
	m.drawHorizon(canvas, dome)
	if m.showEcliptic {
		m.drawEcliptic(canvas, dome)
	}

	var labels []bodyLabel
	for _, r := range m.sky.Rows {
		if !r.Visible() {
			continue
		}
		p := astro.StereographicProjection(r.Pos)
		x, y, ok := dome.toCell(p)
		if !ok {
			continue
		}

		glyph, color, labeled := m.bodyGlyph(r)
		canvas.set(x, y, glyph, color)
		if labeled {
			labels = append(labels, bodyLabel{x: x, y: y, name: r.Name, color: color})
		}
	}
	m.drawLabels(canvas, labels)

	m.drawCardinals(canvas, dome)

	return canvas.render() + "\n" + m.renderStatus()
}

// bodyGlyph picks the glyph and color for a row and reports whether the
// current label mode wants it named.
func (m ChartModel) bodyGlyph(r almanac.Row) (rune, lipgloss.Color, bool) {
	switch r.Kind {
	case almanac.KindSun:
		return glyphSun, colorSun, m.labelMode != LabelNone
	case almanac.KindMoon:
		return moonGlyph(r.LunarPhase), colorMoon, m.labelMode != LabelNone
	case almanac.KindPlanet:
		g := glyphPlanetFallback
		if r.Glyph != "" {
			g = []rune(r.Glyph)[0]
		}
		return g, colorPlanet, m.labelMode != LabelNone
	default:
		g, c := starGlyph(r.Mag)
		labeled := m.labelMode == LabelAll && r.Name != "" && r.Mag < 1.5
		return g, c, labeled
	}
}

// moonGlyph approximates the moon's appearance with a single-width rune.
// The detailed phase name and limb angle live in the status line.
func moonGlyph(lunarPhase float64) rune {
	switch almanac.PhaseName(lunarPhase) {
	case "new":
		return '○'
	case "full":
		return '●'
	case "waxing crescent", "first quarter", "waxing gibbous":
		return '☽'
	default:
		return '☾'
	}
}

// starGlyph returns the glyph and color for a star by magnitude. Brighter
// stars (lower magnitude) get more prominent symbols.
func starGlyph(mag float64) (rune, lipgloss.Color) {
	switch {
	case mag < 1.0:
		return glyphStarBright, colorStarBright
	case mag < 2.0:
		return glyphStarMedium, colorStarMedium
	default:
		return glyphStarDim, colorStarDim
	}
}

func (m ChartModel) drawHorizon(c *chartCanvas, d domeGeometry) {
	drawChartCircle(c, d, astro.Point{}, 1, '·', colorHorizon)
}

func (m ChartModel) drawAltitudeRings(c *chartCanvas, d domeGeometry) {
	for _, altDeg := range []float64{20, 40, 60, 80} {
		alt := unit.AngleFromDeg(altDeg).Rad()
		r := astro.StereographicProjection(astro.AltAz{Alt: alt, Az: 0}).Y
		drawChartCircle(c, d, astro.Point{}, r, '·', colorGrid)
	}
	m.drawMeridianSpokes(c, d)
	// Zenith marker
	if x, y, ok := d.toCell(astro.Point{}); ok {
		c.set(x, y, '+', colorGrid)
	}
}

// drawMeridianSpokes draws radial ticks at the eight compass azimuths, from
// the horizon up to the innermost altitude ring.
func (m ChartModel) drawMeridianSpokes(c *chartCanvas, d domeGeometry) {
	steps := int(math.Max(d.rx, d.ry))
	for i := 0; i < 8; i++ {
		az := float64(i) * math.Pi / 4
		for j := 1; j <= steps; j++ {
			alt := unit.AngleFromDeg(75).Rad() * float64(j) / float64(steps)
			p := astro.StereographicProjection(astro.AltAz{Alt: alt, Az: az})
			if x, y, ok := d.toCell(p); ok && !c.occupied(x, y) {
				c.set(x, y, '·', colorGrid)
			}
		}
	}
}

// drawEcliptic fits a circle through the three projected sun-path samples
// and draws the part of it near or above the horizon.
func (m ChartModel) drawEcliptic(c *chartCanvas, d domeGeometry) {
	var pts [3]astro.Point
	for i, pos := range m.sky.Ecliptic {
		pts[i] = astro.StereographicProjection(pos)
	}

	center, radius := astro.CircleFromThreePoints(pts[0], pts[1], pts[2])
	if math.IsNaN(radius) || math.IsInf(radius, 0) || radius > astro.ChartCutoffRadius {
		return
	}

	drawChartCircle(c, d, center, radius, '∙', colorEcliptic)
}

func (m ChartModel) drawCardinals(c *chartCanvas, d domeGeometry) {
	// Horizon points at the four cardinal azimuths; north projects to
	// (0, 1), east to (1, 0) which lands on the left half of the screen.
	cardinals := []struct {
		label rune
		az    float64
	}{
		{'N', 0},
		{'E', math.Pi / 2},
		{'S', math.Pi},
		{'W', 3 * math.Pi / 2},
	}
	for _, card := range cardinals {
		p := astro.StereographicProjection(astro.AltAz{Alt: 0, Az: card.az})
		if x, y, ok := d.toCell(p); ok {
			c.set(x, y, card.label, colorCardinal)
		}
	}
}

// bodyLabel tracks a drawn body for label placement.
type bodyLabel struct {
	x, y  int
	name  string
	color lipgloss.Color
}

// drawLabels writes each name to the right of its glyph, skipping cells
// already holding a body so labels never erase one.
func (m ChartModel) drawLabels(c *chartCanvas, labels []bodyLabel) {
	if m.labelMode == LabelNone {
		return
	}
	for _, l := range labels {
		for i, r := range []rune(l.name) {
			x := l.x + 2 + i
			if x >= c.width || c.occupied(x, l.y) {
				break
			}
			c.set(x, l.y, r, l.color)
		}
	}
}

func (m ChartModel) renderStatus() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	sunStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorSun))
	moonStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorMoon))

	var sun, moon string
	visible := 0
	for _, r := range m.sky.Rows {
		if r.Visible() {
			visible++
		}
		switch r.Kind {
		case almanac.KindSun:
			sun = sunStyle.Render(fmt.Sprintf("☉ alt %+.1f°", unit.Angle(r.Pos.Alt).Deg()))
		case almanac.KindMoon:
			moon = moonStyle.Render(fmt.Sprintf("%c %s, limb %.0f°",
				moonGlyph(r.LunarPhase),
				almanac.PhaseName(r.LunarPhase),
				unit.Angle(r.Orientation).Deg()))
		}
	}

	counts := dimStyle.Render(fmt.Sprintf("%d bodies up", visible))
	return fmt.Sprintf("  %s  %s  %s  %s  %s", sun, dimStyle.Render("|"), moon, dimStyle.Render("|"), counts)
}

// domeGeometry maps chart-plane coordinates onto canvas cells.
type domeGeometry struct {
	cx, cy int
	rx, ry float64
	width  int
	height int
}

// fitDome centers the largest ellipse of the right aspect that fits the
// canvas, leaving a one-cell margin.
func fitDome(width, height int) domeGeometry {
	ry := float64(height-2) / 2
	rx := ry * cellAspect
	if max := float64(width-2) / 2; rx > max {
		rx = max
		ry = rx / cellAspect
	}
	return domeGeometry{
		cx:     width / 2,
		cy:     height / 2,
		rx:     rx,
		ry:     ry,
		width:  width,
		height: height,
	}
}

// toCell converts a chart-plane point to a canvas cell. Chart X points
// east, which is drawn to the left: the chart shows the sky as seen lying
// on your back with your head to the north.
func (d domeGeometry) toCell(p astro.Point) (int, int, bool) {
	x := d.cx - int(math.Round(p.X*d.rx))
	y := d.cy - int(math.Round(p.Y*d.ry))
	if x < 0 || x >= d.width || y < 0 || y >= d.height {
		return 0, 0, false
	}
	return x, y, true
}

// drawChartCircle samples a chart-plane circle densely enough that adjacent
// cells connect, clipping to the drawable area around the dome.
func drawChartCircle(c *chartCanvas, d domeGeometry, center astro.Point, radius float64, glyph rune, color lipgloss.Color) {
	steps := int(2 * math.Pi * radius * math.Max(d.rx, d.ry) * 1.5)
	if steps < 32 {
		steps = 32
	}
	for i := 0; i < steps; i++ {
		theta := 2 * math.Pi * float64(i) / float64(steps)
		p := astro.Point{
			X: center.X + radius*math.Cos(theta),
			Y: center.Y + radius*math.Sin(theta),
		}
		if math.Hypot(p.X, p.Y) > eclipticOverscan {
			continue
		}
		if x, y, ok := d.toCell(p); ok && !c.occupied(x, y) {
			c.set(x, y, glyph, color)
		}
	}
}

// chartCanvas is a rune grid with a parallel color grid.
type chartCanvas struct {
	width  int
	height int
	cells  [][]rune
	colors [][]lipgloss.Color
}

func newCanvas(width, height int) *chartCanvas {
	c := &chartCanvas{
		width:  width,
		height: height,
		cells:  make([][]rune, height),
		colors: make([][]lipgloss.Color, height),
	}
	for y := 0; y < height; y++ {
		c.cells[y] = make([]rune, width)
		c.colors[y] = make([]lipgloss.Color, width)
		for x := 0; x < width; x++ {
			c.cells[y][x] = ' '
			c.colors[y][x] = "236"
		}
	}
	return c
}

func (c *chartCanvas) set(x, y int, r rune, color lipgloss.Color) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.cells[y][x] = r
	c.colors[y][x] = color
}

func (c *chartCanvas) occupied(x, y int) bool {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return true
	}
	return c.cells[y][x] != ' '
}

func (c *chartCanvas) render() string {
	var b strings.Builder
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			style := lipgloss.NewStyle().Foreground(c.colors[y][x])
			b.WriteString(style.Render(string(c.cells[y][x])))
		}
		if y < c.height-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
