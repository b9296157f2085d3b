// Package almanac derives per-body display rows from a position engine
// snapshot. It is the shared data layer behind both the TUI table and the
// headless writers.
package almanac

import (
	"math"
	"time"

	"github.com/litescript/ls-antikythera/internal/astro"
	"github.com/litescript/ls-antikythera/internal/catalog"
)

// Kind classifies a sky row for display.
type Kind int

const (
	KindSun Kind = iota
	KindMoon
	KindPlanet
	KindStar
)

func (k Kind) String() string {
	switch k {
	case KindSun:
		return "sun"
	case KindMoon:
		return "moon"
	case KindPlanet:
		return "planet"
	case KindStar:
		return "star"
	default:
		return "unknown"
	}
}

// Row is one body's computed appearance.
type Row struct {
	Name  string
	Kind  Kind
	Pos   astro.AltAz
	Mag   float64 // stars only
	Glyph string  // planets only, may be empty

	// Moon only.
	LunarPhase  float64 // Sun–Moon elongation, [0, 2π]
	Orientation float64 // bright-limb rotation for a rendered phase image
}

// Visible reports whether the body is above the horizon.
func (r Row) Visible() bool {
	return r.Pos.Alt > 0
}

// Sky is the complete computed state for one instant: every body's position
// plus the ecliptic reference samples for the chart arc.
type Sky struct {
	Time     time.Time
	Observer struct {
		LatRad, LonRad float64
	}
	Rows     []Row // sun, moon, planets, then stars, in catalog order
	Ecliptic [3]astro.AltAz
}

// Compute queries the engine once per body and assembles the almanac.
func Compute(eng *astro.Engine, stars []catalog.Star, planets []catalog.Planet) Sky {
	sky := Sky{Time: eng.Time()}
	sky.Observer.LatRad = eng.Latitude()
	sky.Observer.LonRad = eng.Longitude()
	sky.Rows = make([]Row, 0, 2+len(planets)+len(stars))

	sky.Rows = append(sky.Rows, Row{
		Name: "Sun",
		Kind: KindSun,
		Pos:  eng.SunPosition(),
	})

	moonPos, lunar, orient := eng.MoonPosition()
	sky.Rows = append(sky.Rows, Row{
		Name:        "Moon",
		Kind:        KindMoon,
		Pos:         moonPos,
		LunarPhase:  lunar,
		Orientation: orient,
	})

	for _, p := range planets {
		sky.Rows = append(sky.Rows, Row{
			Name:  p.Name,
			Kind:  KindPlanet,
			Pos:   eng.PlanetPosition(p.Orbit()),
			Glyph: p.Glyph,
		})
	}

	for _, s := range stars {
		sky.Rows = append(sky.Rows, Row{
			Name: s.Name,
			Kind: KindStar,
			Pos:  eng.StarPosition(s.RA.Rad(), s.Dec.Rad()),
			Mag:  s.Mag,
		})
	}

	sky.Ecliptic = eng.EclipticPoints()
	return sky
}

// Moon returns the moon row, or a zero Row if the sky is empty.
func (s Sky) Moon() Row {
	for _, r := range s.Rows {
		if r.Kind == KindMoon {
			return r
		}
	}
	return Row{}
}

// PhaseName names the lunar phase for an elongation angle in [0, 2π].
func PhaseName(lunarPhase float64) string {
	names := []string{
		"new", "waxing crescent", "first quarter", "waxing gibbous",
		"full", "waning gibbous", "last quarter", "waning crescent",
	}
	return names[phaseOctant(lunarPhase)]
}

// PhaseGlyph returns a moon-face glyph for an elongation angle.
func PhaseGlyph(lunarPhase float64) rune {
	glyphs := []rune("🌑🌒🌓🌔🌕🌖🌗🌘")
	return glyphs[phaseOctant(lunarPhase)]
}

// phaseOctant buckets the elongation into eight phases, with each named
// phase centered on its exact angle.
func phaseOctant(lunarPhase float64) int {
	p := math.Mod(lunarPhase, 2*math.Pi)
	if p < 0 {
		p += 2 * math.Pi
	}
	oct := int(math.Floor(p/(2*math.Pi)*8 + 0.5))
	return oct % 8
}
