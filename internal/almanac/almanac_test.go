package almanac

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/litescript/ls-antikythera/internal/astro"
	"github.com/litescript/ls-antikythera/internal/catalog"
)

func testEngine(t *testing.T) *astro.Engine {
	t.Helper()
	when := time.Date(2024, 3, 20, 21, 0, 0, 0, time.UTC)
	return astro.New(when, 48.8*math.Pi/180, 2.35*math.Pi/180)
}

func TestCompute_RowLayout(t *testing.T) {
	eng := testEngine(t)
	stars := catalog.DefaultStars()
	planets := catalog.DefaultPlanets()

	sky := Compute(eng, stars, planets)

	want := 2 + len(planets) + len(stars)
	if len(sky.Rows) != want {
		t.Fatalf("Compute() produced %d rows, want %d", len(sky.Rows), want)
	}
	if sky.Rows[0].Kind != KindSun || sky.Rows[0].Name != "Sun" {
		t.Errorf("rows[0] = %v %s, want the sun", sky.Rows[0].Kind, sky.Rows[0].Name)
	}
	if sky.Rows[1].Kind != KindMoon {
		t.Errorf("rows[1].Kind = %v, want moon", sky.Rows[1].Kind)
	}
	if sky.Rows[2].Kind != KindPlanet || sky.Rows[2].Name != "Mercury" {
		t.Errorf("rows[2] = %v %s, want Mercury", sky.Rows[2].Kind, sky.Rows[2].Name)
	}
	if last := sky.Rows[len(sky.Rows)-1]; last.Kind != KindStar {
		t.Errorf("last row kind = %v, want star", last.Kind)
	}

	if !sky.Time.Equal(eng.Time()) {
		t.Errorf("sky.Time = %v, want %v", sky.Time, eng.Time())
	}

	moon := sky.Moon()
	if moon.Kind != KindMoon {
		t.Fatal("Moon() did not find the moon row")
	}
	if moon.LunarPhase < 0 || moon.LunarPhase > 2*math.Pi {
		t.Errorf("moon phase angle %v out of [0, 2π]", moon.LunarPhase)
	}

	for _, r := range sky.Rows {
		if r.Pos.Alt < -math.Pi/2-1e-9 || r.Pos.Alt > math.Pi/2+1e-9 {
			t.Errorf("%s: altitude %v out of range", r.Name, r.Pos.Alt)
		}
		if r.Pos.Az < 0 || r.Pos.Az > 2*math.Pi+1e-9 {
			t.Errorf("%s: azimuth %v out of range", r.Name, r.Pos.Az)
		}
	}
}

func TestPhaseName(t *testing.T) {
	tests := []struct {
		angle float64
		want  string
	}{
		{0, "new"},
		{2 * math.Pi, "new"},
		{math.Pi / 2, "first quarter"},
		{math.Pi, "full"},
		{3 * math.Pi / 2, "last quarter"},
		{math.Pi / 4, "waxing crescent"},
		{3 * math.Pi / 4, "waxing gibbous"},
		{5 * math.Pi / 4, "waning gibbous"},
		{7 * math.Pi / 4, "waning crescent"},
		// Just past a boundary still rounds to the nearest phase.
		{math.Pi/2 + 0.1, "first quarter"},
		{math.Pi - 0.1, "full"},
	}

	for _, tt := range tests {
		if got := PhaseName(tt.angle); got != tt.want {
			t.Errorf("PhaseName(%v) = %q, want %q", tt.angle, got, tt.want)
		}
	}
}

func TestPhaseGlyph_DistinctPerOctant(t *testing.T) {
	seen := make(map[rune]bool)
	for i := 0; i < 8; i++ {
		g := PhaseGlyph(float64(i) * math.Pi / 4)
		if seen[g] {
			t.Errorf("octant %d reuses glyph %c", i, g)
		}
		seen[g] = true
	}
}

func TestWriteTable(t *testing.T) {
	eng := testEngine(t)
	sky := Compute(eng, catalog.DefaultStars(), catalog.DefaultPlanets())

	var buf strings.Builder
	WriteTable(&buf, sky)
	out := buf.String()

	// Sun and moon always appear, even below the horizon.
	for _, want := range []string{"Sun", "Moon", "Altitude", "Azimuth", "2024-03-20T21:00:00Z"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "bodies above the horizon") {
		t.Error("table output missing the visible-body count")
	}
}

func TestExportSky(t *testing.T) {
	eng := testEngine(t)
	sky := Compute(eng, catalog.DefaultStars()[:3], catalog.DefaultPlanets())

	export := ExportSky(sky)
	if len(export.Bodies) != len(sky.Rows) {
		t.Fatalf("export has %d bodies, want %d", len(export.Bodies), len(sky.Rows))
	}
	if math.Abs(export.LatitudeDeg-48.8) > 1e-9 {
		t.Errorf("LatitudeDeg = %v, want 48.8", export.LatitudeDeg)
	}

	moon := export.Bodies[1]
	if moon.Kind != "moon" || moon.Phase == "" {
		t.Errorf("moon export = %+v, want kind moon with a phase name", moon)
	}
	star := export.Bodies[len(export.Bodies)-1]
	if star.Kind != "star" || star.Magnitude == 0 {
		t.Errorf("star export = %+v, want kind star with a magnitude", star)
	}

	var buf strings.Builder
	if err := export.WriteJSON(&buf); err != nil {
		t.Fatalf("WriteJSON() error: %v", err)
	}
	if !strings.Contains(buf.String(), `"altitude_deg"`) {
		t.Error("JSON output missing altitude_deg field")
	}
}
