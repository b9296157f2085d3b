package astro

import (
	"math"
	"testing"
)

const vecTol = 1e-15

func vecClose(a, b Vec3, tol float64) bool {
	return a.Sub(b).Norm() < tol
}

func TestDotCross(t *testing.T) {
	if got := UnitX.Dot(UnitY); got != 0 {
		t.Errorf("X·Y = %v, want 0", got)
	}
	if got := UnitX.Dot(UnitX); got != 1 {
		t.Errorf("X·X = %v, want 1", got)
	}
	if got := UnitX.Cross(UnitY); !vecClose(got, UnitZ, vecTol) {
		t.Errorf("X×Y = %v, want Z", got)
	}
	if got := UnitY.Cross(UnitX); !vecClose(got, UnitZ.Neg(), vecTol) {
		t.Errorf("Y×X = %v, want -Z", got)
	}
}

func TestNormalized(t *testing.T) {
	v := Vec3{3, 0, 4}
	got := v.Normalized()
	if !vecClose(got, Vec3{0.6, 0, 0.8}, vecTol) {
		t.Errorf("Normalized() = %v, want (0.6, 0, 0.8)", got)
	}

	// Degenerate input stays zero rather than producing NaN.
	if got := (Vec3{}).Normalized(); got != (Vec3{}) {
		t.Errorf("Normalized() of zero = %v, want zero", got)
	}
}

func TestRotateZ(t *testing.T) {
	tests := []struct {
		name  string
		angle float64
		in    Vec3
		want  Vec3
	}{
		{"identity", 0, UnitX, UnitX},
		{"quarter turn carries X to Y", math.Pi / 2, UnitX, UnitY},
		{"half turn", math.Pi, UnitX, Vec3{-1, 0, 0}},
		{"negative quarter turn", -math.Pi / 2, UnitX, Vec3{0, -1, 0}},
		{"Z axis fixed", 1.234, UnitZ, UnitZ},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RotateZ(tt.angle, tt.in)
			if !vecClose(got, tt.want, vecTol) {
				t.Errorf("RotateZ(%v, %v) = %v, want %v", tt.angle, tt.in, got, tt.want)
			}
		})
	}
}

func TestRotateY(t *testing.T) {
	tests := []struct {
		name  string
		angle float64
		in    Vec3
		want  Vec3
	}{
		{"identity", 0, UnitZ, UnitZ},
		{"quarter turn carries Z to X", math.Pi / 2, UnitZ, UnitX},
		{"quarter turn carries X to -Z", math.Pi / 2, UnitX, Vec3{0, 0, -1}},
		{"Y axis fixed", 1.234, UnitY, UnitY},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RotateY(tt.angle, tt.in)
			if !vecClose(got, tt.want, vecTol) {
				t.Errorf("RotateY(%v, %v) = %v, want %v", tt.angle, tt.in, got, tt.want)
			}
		})
	}
}

func TestRotationsPreserveLength(t *testing.T) {
	v := Vec3{0.3, -1.2, 2.5}
	for angle := -6.0; angle <= 6.0; angle += 0.7 {
		if got := RotateY(angle, v).Norm(); math.Abs(got-v.Norm()) > 1e-12 {
			t.Errorf("RotateY(%v) changed length: %v", angle, got)
		}
		if got := RotateZ(angle, v).Norm(); math.Abs(got-v.Norm()) > 1e-12 {
			t.Errorf("RotateZ(%v) changed length: %v", angle, got)
		}
	}
}
