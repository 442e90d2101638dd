package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Point is a plan-space point in millimetre-equivalent units.
type Point struct {
	X float64 `json:"x"`
	Z float64 `json:"z"`
}

// Vec converts the point to a gonum vector.
func (p Point) Vec() r2.Vec {
	return r2.Vec{X: p.X, Y: p.Z}
}

// Translate returns the point shifted by dx, dz.
func (p Point) Translate(dx, dz float64) Point {
	return Point{X: p.X + dx, Z: p.Z + dz}
}

// SignedArea returns the shoelace area of a ring. The ring is implicitly
// closed; a repeated closing point is harmless.
func SignedArea(ring []Point) float64 {
	if len(ring) < 3 {
		return 0
	}
	var sum float64
	for i := range ring {
		a := ring[i].Vec()
		b := ring[(i+1)%len(ring)].Vec()
		sum += r2.Cross(a, b)
	}
	return sum / 2
}

// Area returns the absolute area of a ring.
func Area(ring []Point) float64 {
	return math.Abs(SignedArea(ring))
}

// Bounds returns the axis-aligned bounding box of the points.
// ok is false for an empty slice.
func Bounds(points []Point) (min, max Point, ok bool) {
	if len(points) == 0 {
		return Point{}, Point{}, false
	}
	min, max = points[0], points[0]
	for _, p := range points[1:] {
		min.X = math.Min(min.X, p.X)
		min.Z = math.Min(min.Z, p.Z)
		max.X = math.Max(max.X, p.X)
		max.Z = math.Max(max.Z, p.Z)
	}
	return min, max, true
}
