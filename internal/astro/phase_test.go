package astro

import (
	"math"
	"testing"
)

func TestPhase_ReferenceZeroes(t *testing.T) {
	// Regression values: instants where the annual phase wraps through zero.
	tests := []struct {
		name string
		ts   float64
		want float64
		tol  float64
	}{
		{"epoch", 0, SunInitialPhase, 1e-4},
		{"first wrap", 22895580, 0, 1e-4},
		{"wrap after 25 years", 811849260, 0, 1e-4},
		{"approaching wrap from below", 1600802520, 2 * math.Pi, 1e-4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Phase(tt.ts, SunInitialPhase, SiderealYear)
			if math.Abs(got-tt.want) > tt.tol {
				t.Errorf("Phase(%v) = %v, want %v (±%v)", tt.ts, got, tt.want, tt.tol)
			}
		})
	}
}

func TestPhase_Range(t *testing.T) {
	for _, ts := range []float64{-1e9, -12345.6, 0, 1, 86400, 1e9, 4e9} {
		for _, period := range []float64{SiderealDay, SiderealMonth, SiderealYear, NodalPeriod} {
			got := Phase(ts, MoonInitialPhase, period)
			if got < 0 || got >= 2*math.Pi {
				t.Errorf("Phase(%v, %v, %v) = %v, out of [0, 2π)", ts, MoonInitialPhase, period, got)
			}
		}
	}
}

func TestPhase_InitialOffset(t *testing.T) {
	for _, p0 := range []float64{0, 1.5, MoonInitialPhase, 2*math.Pi - 1e-9} {
		got := Phase(0, p0, SiderealMonth)
		want := math.Mod(p0, 2*math.Pi)
		if math.Abs(got-want) > 1e-12 {
			t.Errorf("Phase(0, %v) = %v, want %v", p0, got, want)
		}
	}
}

func TestPhase_Periodicity(t *testing.T) {
	for _, ts := range []float64{0, 123456.789, 9.87e8} {
		a := Phase(ts, SunInitialPhase, SiderealYear)
		b := Phase(ts+SiderealYear, SunInitialPhase, SiderealYear)
		diff := math.Abs(a - b)
		if diff > math.Pi {
			diff = 2*math.Pi - diff
		}
		if diff > 1e-6 {
			t.Errorf("Phase not periodic at ts=%v: %v vs %v", ts, a, b)
		}
	}
}
