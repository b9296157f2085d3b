package astro

import (
	"math"
	"testing"
)

func TestStereographicProjection_Zenith(t *testing.T) {
	for az := 0.0; az < 2*math.Pi; az += math.Pi / 4 {
		p := StereographicProjection(AltAz{Alt: math.Pi / 2, Az: az})
		if math.Abs(p.X) > 1e-12 || math.Abs(p.Y) > 1e-12 {
			t.Errorf("zenith at az=%v projected to %+v, want origin", az, p)
		}
	}
}

func TestStereographicProjection_Horizon(t *testing.T) {
	tests := []struct {
		name string
		az   float64
		want Point
	}{
		{"north", 0, Point{0, 1}},
		{"east", math.Pi / 2, Point{1, 0}},
		{"south", math.Pi, Point{0, -1}},
		{"west", 3 * math.Pi / 2, Point{-1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := StereographicProjection(AltAz{Alt: 0, Az: tt.az})
			if math.Abs(p.X-tt.want.X) > 1e-12 || math.Abs(p.Y-tt.want.Y) > 1e-12 {
				t.Errorf("horizon at az=%v projected to %+v, want %+v", tt.az, p, tt.want)
			}
		})
	}
}

func TestStereographicProjection_BelowHorizonGrows(t *testing.T) {
	prev := 0.0
	for alt := 0.0; alt > -1.4; alt -= 0.2 {
		p := StereographicProjection(AltAz{Alt: alt, Az: 1.0})
		r := math.Hypot(p.X, p.Y)
		if alt < 0 && r <= prev {
			t.Errorf("radius should grow below horizon: alt=%v r=%v prev=%v", alt, r, prev)
		}
		prev = r
	}
}

func TestCircleFromThreePoints_UnitCircle(t *testing.T) {
	center, r := CircleFromThreePoints(Point{1, 0}, Point{0, 1}, Point{-1, 0})
	if math.Abs(center.X) > 1e-12 || math.Abs(center.Y) > 1e-12 {
		t.Errorf("center = %+v, want origin", center)
	}
	if math.Abs(r-1) > 1e-12 {
		t.Errorf("radius = %v, want 1", r)
	}
}

func TestCircleFromThreePoints_Offset(t *testing.T) {
	// Circle of radius 2 centered at (3, -1).
	pts := [3]Point{}
	for i, ang := range []float64{0.3, 2.1, 4.4} {
		pts[i] = Point{3 + 2*math.Cos(ang), -1 + 2*math.Sin(ang)}
	}
	center, r := CircleFromThreePoints(pts[0], pts[1], pts[2])
	if math.Abs(center.X-3) > 1e-9 || math.Abs(center.Y+1) > 1e-9 {
		t.Errorf("center = %+v, want (3, -1)", center)
	}
	if math.Abs(r-2) > 1e-9 {
		t.Errorf("radius = %v, want 2", r)
	}
}
