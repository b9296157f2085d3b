package astro

import (
	"math"
	"time"
)

// Orbit holds the circular-orbit elements the engine needs for a planet.
type Orbit struct {
	SemimajorAU  float64
	Period       float64 // sidereal period in seconds
	InitialPhase float64 // orbital phase at the Unix epoch, radians
}

// AltAz is an apparent sky position: altitude above the horizon in
// [-π/2, π/2] and azimuth clockwise from north in [0, 2π), both radians.
type AltAz struct {
	Alt float64
	Az  float64
}

// Engine is a pure snapshot of the sky for one instant and one observer.
// It is constructed fresh for every frame, holds the observer's derived
// up/north vectors, and never mutates; all queries are read-only and O(1).
type Engine struct {
	ts       float64 // seconds since the Unix epoch
	lat, lon float64 // radians
	normal   Vec3    // observer's "straight up" in the global frame
	north    Vec3    // direction of geographic north in the global frame
}

// New derives the observer frame for the given instant and location.
// Latitude and longitude are radians; latitude must be within (-π/2, π/2),
// the exact poles leave the azimuth reference degenerate.
func New(t time.Time, lat, lon float64) *Engine {
	ts := float64(t.Unix()) + float64(t.Nanosecond())*1e-9
	daily := Phase(ts, InitialDailyPhase, SiderealDay)
	return &Engine{
		ts:     ts,
		lat:    lat,
		lon:    lon,
		normal: ToGlobal(AxialTilt, AxialDirection, ToRecent(daily, ToLocal(lat, lon, UnitX))),
		north:  ToGlobal(AxialTilt, AxialDirection, ToRecent(daily, ToLocal(lat, lon, UnitZ))),
	}
}

// Time returns the snapshot's instant.
func (e *Engine) Time() time.Time {
	sec := math.Floor(e.ts)
	return time.Unix(int64(sec), int64((e.ts-sec)*1e9)).UTC()
}

// Latitude returns the observer latitude in radians.
func (e *Engine) Latitude() float64 { return e.lat }

// Longitude returns the observer longitude in radians.
func (e *Engine) Longitude() float64 { return e.lon }

// Altitude returns the angle of toObject above the horizon defined by
// normal. Both inputs must be unit vectors.
func Altitude(normal, toObject Vec3) float64 {
	return math.Pi/2 - math.Acos(clamp1(normal.Dot(toObject)))
}

// Azimuth returns the compass angle of toObject, clockwise from north, in
// [0, 2π). The object direction is projected onto the horizon plane and the
// acos quadrant ambiguity is resolved with the local east direction.
// Unspecified when toObject is at the exact zenith or nadir.
func Azimuth(normal, north, toObject Vec3) float64 {
	proj := toObject.Sub(normal.Scale(normal.Dot(toObject))).Normalized()
	angle := math.Acos(clamp1(north.Dot(proj)))
	east := north.Cross(normal)
	if east.Dot(proj) > 0 {
		return angle
	}
	return 2*math.Pi - angle
}

func (e *Engine) altAz(dir Vec3) AltAz {
	return AltAz{
		Alt: Altitude(e.normal, dir),
		Az:  Azimuth(e.normal, e.north, dir),
	}
}

// sunDirection returns the apparent direction of the Sun in the global
// frame: opposite the observer's own orbital phase vector.
func sunDirection(ts float64) Vec3 {
	phase := Phase(ts, SunInitialPhase, SiderealYear)
	return RotateZ(phase, UnitX).Neg()
}

// SunPosition returns the Sun's apparent altitude and azimuth.
func (e *Engine) SunPosition() AltAz {
	return e.altAz(sunDirection(e.ts))
}

// StarPosition returns the apparent position of a fixed star given its
// right ascension and declination in radians. Stars are defined directly in
// sky coordinates, so no diurnal term applies.
func (e *Engine) StarPosition(ra, dec float64) AltAz {
	dir := ToGlobal(AxialTilt, AxialDirection, ToLocal(dec, ra, UnitX))
	return e.altAz(dir)
}

// PlanetPosition returns the apparent position of a planet from its
// circular-orbit elements, via heliocentric vector subtraction. This is a
// visualization-grade model, not an ephemeris.
func (e *Engine) PlanetPosition(o Orbit) AltAz {
	toEarth := RotateZ(Phase(e.ts, SunInitialPhase, SiderealYear), UnitX)
	toPlanet := RotateZ(Phase(e.ts, o.InitialPhase, o.Period), UnitX)
	dir := toPlanet.Scale(o.SemimajorAU).Sub(toEarth.Scale(EarthSemimajorAU)).Normalized()
	return e.altAz(dir)
}

// MoonPosition returns the Moon's apparent position, the Sun–Moon elongation
// angle in [0, 2π] (0 or 2π at new moon, π at full), and the orientation
// angle in [0, 2π) through which a rendered phase image should be rotated so
// its bright limb faces the Sun.
func (e *Engine) MoonPosition() (pos AltAz, lunarPhase, orientation float64) {
	moonDir := RotateZ(Phase(e.ts, MoonInitialPhase, SiderealMonth), UnitX)

	// Tilt the orbital plane around the precessing node line. Unlike the
	// axial tilt, the conjugating rotation here moves with time.
	nodal := Phase(e.ts, NodalInitialPhase, NodalPeriod)
	moonDir = RotateZ(-nodal, RotateY(-LunarInclination, RotateZ(nodal, moonDir)))

	toSun := sunDirection(e.ts)
	lunarPhase = LunarPhase(toSun, moonDir)

	return e.altAz(moonDir), lunarPhase, e.moonOrientation(moonDir, toSun, lunarPhase)
}

// LunarPhase returns the elongation angle between the Sun and Moon
// directions, sign-corrected so the angle grows monotonically through the
// month rather than folding at π.
func LunarPhase(toSun, moonDir Vec3) float64 {
	angle := math.Acos(clamp1(toSun.Dot(moonDir)))
	if toSun.Cross(moonDir).Z > 0 {
		return angle
	}
	return 2*math.Pi - angle
}

// moonOrientation computes the position angle of the sunward direction on
// the Moon's disc, measured from the on-disc "straight down" direction
// implied by the Moon's azimuth. The half-turn correction across full/new
// matches the winding of the chart view's phase glyphs.
func (e *Engine) moonOrientation(moonDir, toSun Vec3, lunarPhase float64) float64 {
	moonToSun := toSun.Sub(moonDir).Normalized()
	sunward := moonToSun.Sub(moonDir.Scale(moonDir.Dot(moonToSun))).Normalized()

	down := moonDir.Scale(moonDir.Dot(e.normal)).Sub(e.normal).Normalized()

	angle := math.Acos(clamp1(down.Dot(sunward)))
	if sunward.Dot(down.Cross(moonDir)) < 0 {
		angle = 2*math.Pi - angle
	}
	if lunarPhase >= math.Pi {
		angle += math.Pi
	}
	return math.Mod(angle, 2*math.Pi)
}

// EclipticPoints samples three well-separated points along the Sun's orbital
// path, for fitting the ecliptic arc on a projected chart.
func (e *Engine) EclipticPoints() [3]AltAz {
	base := Phase(e.ts, SunInitialPhase, SiderealYear)
	var pts [3]AltAz
	for i := range pts {
		dir := RotateZ(base+float64(i)*2*math.Pi/3, UnitX).Neg()
		pts[i] = e.altAz(dir)
	}
	return pts
}

// clamp1 keeps acos arguments in [-1, 1] against floating point drift.
func clamp1(x float64) float64 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}
