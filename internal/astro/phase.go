package astro

import "math"

// Orbital constants. Timestamps throughout the package are seconds since the
// Unix epoch; initial phases are the corresponding angles at t = 0.
//
// Diurnal and annual motion use sidereal periods, not solar ones: spinning
// the observer with the 24h solar day would drift star positions by several
// minutes per day.
const (
	SiderealDay  = 86164.0905        // seconds
	SiderealYear = 31558144.36363983 // seconds

	InitialDailyPhase = 1.736602605734358
	SunInitialPhase   = 1.7247443415579253

	AxialTilt      = 23.44 * math.Pi / 180
	AxialDirection = 1.54075846982669

	SiderealMonth    = 27.321661547 * 24 * 60 * 60
	MoonInitialPhase = 5.0

	// The Moon's orbital plane is tilted against the ecliptic and its node
	// line precesses with an ~18.6-year period.
	LunarInclination  = 5.145 * math.Pi / 180
	NodalPeriod       = 6798.383 * 24 * 60 * 60
	NodalInitialPhase = 6.0264

	// Earth's own circular-orbit elements, used when deriving geocentric
	// planet directions by heliocentric vector subtraction.
	EarthSemimajorAU = 1.0
)

// Phase returns the periodic angle of a body at time ts (seconds since the
// Unix epoch) given its phase at t=0 and its period in seconds. The result
// is always in [0, 2π).
func Phase(ts, initialPhase, period float64) float64 {
	p := math.Mod(initialPhase+math.Mod(ts/period*2*math.Pi, 2*math.Pi), 2*math.Pi)
	if p < 0 {
		p += 2 * math.Pi
	}
	return p
}
