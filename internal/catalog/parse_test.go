package catalog

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestParseStars(t *testing.T) {
	input := `# bright stars, radians
1.767793 -0.291751 -1.46 Sirius
4.873563 0.676901 0.03 Vega

3.733528 0.334792 -0.05 null
0.662403 1.557953 2.02
`
	stars, err := ParseStars(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseStars() error: %v", err)
	}
	if len(stars) != 4 {
		t.Fatalf("ParseStars() returned %d stars, want 4", len(stars))
	}

	if stars[0].Name != "Sirius" {
		t.Errorf("stars[0].Name = %q, want Sirius", stars[0].Name)
	}
	if math.Abs(stars[0].RA.Rad()-1.767793) > 1e-12 {
		t.Errorf("stars[0].RA = %v rad, want 1.767793", stars[0].RA.Rad())
	}
	if math.Abs(stars[0].Dec.Rad()+0.291751) > 1e-12 {
		t.Errorf("stars[0].Dec = %v rad, want -0.291751", stars[0].Dec.Rad())
	}
	if stars[0].Mag != -1.46 {
		t.Errorf("stars[0].Mag = %v, want -1.46", stars[0].Mag)
	}

	// "null" and missing names both mean anonymous.
	if stars[2].Name != "" || stars[3].Name != "" {
		t.Errorf("anonymous stars got names %q, %q", stars[2].Name, stars[3].Name)
	}
}

func TestParseStars_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"too few fields", "1.0 2.0\n"},
		{"too many fields", "1.0 2.0 3.0 name extra\n"},
		{"non-numeric ra", "abc 2.0 3.0\n"},
		{"non-numeric mag", "1.0 2.0 bright\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseStars(strings.NewReader(tt.input)); err == nil {
				t.Error("ParseStars() accepted malformed input")
			}
		})
	}
}

func TestParsePlanets(t *testing.T) {
	input := `# name a period phase incl node glyph
Mars 1.524 59355072 0.227 1.850 0.8650 ♂
Saturn 9.537 929596608 0.758 2.489 1.9837 null
Vulcan 0.15 1000000 0.0 0.0 0.0
`
	planets, err := ParsePlanets(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParsePlanets() error: %v", err)
	}
	if len(planets) != 3 {
		t.Fatalf("ParsePlanets() returned %d planets, want 3", len(planets))
	}

	mars := planets[0]
	if mars.Name != "Mars" || mars.SemimajorAU != 1.524 || mars.PeriodSec != 59355072 {
		t.Errorf("unexpected Mars record: %+v", mars)
	}
	if mars.Glyph != "♂" {
		t.Errorf("Mars glyph = %q, want ♂", mars.Glyph)
	}
	if planets[1].Glyph != "" || planets[2].Glyph != "" {
		t.Error("null/absent glyphs should be empty")
	}

	o := mars.Orbit()
	if o.SemimajorAU != 1.524 || o.Period != 59355072 || o.InitialPhase != 0.227 {
		t.Errorf("Orbit() = %+v", o)
	}
}

func TestParsePlanets_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"zero period", "X 1.0 0 0 0 0\n"},
		{"negative semimajor", "X -1.0 100 0 0 0\n"},
		{"missing fields", "X 1.0 100\n"},
		{"non-numeric", "X 1.0 fast 0 0 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePlanets(strings.NewReader(tt.input))
			if err == nil {
				t.Error("ParsePlanets() accepted invalid input")
			}
		})
	}

	_, err := ParsePlanets(strings.NewReader("X 0 100 0 0 0\n"))
	if !errors.Is(err, ErrBadRecord) {
		t.Errorf("error = %v, want ErrBadRecord", err)
	}
}
