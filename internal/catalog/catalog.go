// Package catalog holds the star and planet records the position engine
// consumes. All unit conversion happens here, once, at load time: the engine
// only ever sees radians.
package catalog

import (
	"github.com/soniakeys/unit"

	"github.com/litescript/ls-antikythera/internal/astro"
)

// Star is a cataloged fixed star: J2000 sky coordinates plus apparent
// visual magnitude (lower = brighter).
type Star struct {
	Name string
	RA   unit.RA
	Dec  unit.Angle
	Mag  float64
}

// Planet is a cataloged planet with circular-orbit elements. Inclination and
// the nodal phase are carried from the record format but the engine's
// in-plane model does not consume them.
type Planet struct {
	Name              string
	SemimajorAU       float64
	PeriodSec         float64 // sidereal period in seconds
	InitialPhase      float64 // orbital phase at the Unix epoch, radians
	InclinationDeg    float64
	NodalInitialPhase float64
	Glyph             string // display hint from the catalog file, may be empty
}

// Orbit returns the elements the position engine needs.
func (p Planet) Orbit() astro.Orbit {
	return astro.Orbit{
		SemimajorAU:  p.SemimajorAU,
		Period:       p.PeriodSec,
		InitialPhase: p.InitialPhase,
	}
}
