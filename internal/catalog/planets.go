package catalog

// DefaultPlanets returns circular-orbit elements for the naked-eye-and-beyond
// planets. Initial phases are mean heliocentric longitudes at the Unix epoch,
// good to a degree or two — chart-grade, not ephemeris-grade.
func DefaultPlanets() []Planet {
	return []Planet{
		{Name: "Mercury", SemimajorAU: 0.387, PeriodSec: 87.9691 * day, InitialPhase: 0.867, InclinationDeg: 7.005, NodalInitialPhase: 0.8435, Glyph: "☿"},
		{Name: "Venus", SemimajorAU: 0.723, PeriodSec: 224.701 * day, InitialPhase: 4.651, InclinationDeg: 3.395, NodalInitialPhase: 1.3383, Glyph: "♀"},
		{Name: "Mars", SemimajorAU: 1.524, PeriodSec: 686.980 * day, InitialPhase: 0.227, InclinationDeg: 1.850, NodalInitialPhase: 0.8650, Glyph: "♂"},
		{Name: "Jupiter", SemimajorAU: 5.203, PeriodSec: 4332.589 * day, InitialPhase: 3.559, InclinationDeg: 1.303, NodalInitialPhase: 1.7536, Glyph: "♃"},
		{Name: "Saturn", SemimajorAU: 9.537, PeriodSec: 10759.22 * day, InitialPhase: 0.758, InclinationDeg: 2.489, NodalInitialPhase: 1.9837, Glyph: "♄"},
		{Name: "Uranus", SemimajorAU: 19.191, PeriodSec: 30688.5 * day, InitialPhase: 3.238, InclinationDeg: 0.773, NodalInitialPhase: 1.2916, Glyph: "♅"},
		{Name: "Neptune", SemimajorAU: 30.07, PeriodSec: 60182 * day, InitialPhase: 4.168, InclinationDeg: 1.770, NodalInitialPhase: 2.3001, Glyph: "♆"},
	}
}

const day = 24 * 60 * 60
