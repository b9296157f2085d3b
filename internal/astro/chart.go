package astro

import "math"

// ChartCutoffRadius bounds the projected radius worth drawing; points beyond
// it are far below the horizon and blow up toward the projection's pole.
const ChartCutoffRadius = 30.0

// Point is a position on the projected 2D chart.
type Point struct {
	X, Y float64
}

// StereographicProjection maps an apparent sky position onto a plane disc.
// The zenith maps to the origin; the horizon maps to the unit circle; points
// below the horizon land outside it, growing without bound toward the nadir.
// Positive Y points north, positive X east.
func StereographicProjection(pos AltAz) Point {
	zenith := pos.Alt + math.Pi/2
	r := math.Sin(zenith) / (1 - math.Cos(zenith))
	return Point{
		X: r * math.Sin(pos.Az),
		Y: r * math.Cos(pos.Az),
	}
}

// CircleFromThreePoints returns the circumcircle of three non-collinear
// points via the determinant method. Collinear input divides by a
// near-zero determinant; callers must keep the samples well separated.
func CircleFromThreePoints(a, b, c Point) (center Point, radius float64) {
	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	aa := a.X*a.X + a.Y*a.Y
	bb := b.X*b.X + b.Y*b.Y
	cc := c.X*c.X + c.Y*c.Y
	center = Point{
		X: (aa*(b.Y-c.Y) + bb*(c.Y-a.Y) + cc*(a.Y-b.Y)) / d,
		Y: (aa*(c.X-b.X) + bb*(a.X-c.X) + cc*(b.X-a.X)) / d,
	}
	radius = math.Hypot(a.X-center.X, a.Y-center.Y)
	return center, radius
}
