package geometry

import (
	"sort"

	"gonum.org/v1/gonum/spatial/r2"
)

// ConvexHull computes the convex hull of a set of points using Andrew's
// monotone chain. The hull is returned without a closing point, starting
// at the lexicographically smallest (X, Z) point. Collinear points on the
// hull are dropped.
//
// Fewer than three distinct points are returned as-is (deduplicated).
func ConvexHull(points []Point) []Point {
	pts := make([]Point, len(points))
	copy(pts, points)

	sort.Slice(pts, func(i, j int) bool {
		if pts[i].X != pts[j].X {
			return pts[i].X < pts[j].X
		}
		return pts[i].Z < pts[j].Z
	})

	// Deduplicate
	uniq := pts[:0]
	for i, p := range pts {
		if i == 0 || p != uniq[len(uniq)-1] {
			uniq = append(uniq, p)
		}
	}
	pts = uniq

	if len(pts) < 3 {
		return pts
	}

	hull := make([]Point, 0, 2*len(pts))

	// Lower chain
	for _, p := range pts {
		for len(hull) >= 2 && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}

	// Upper chain
	lower := len(hull) + 1
	for i := len(pts) - 2; i >= 0; i-- {
		p := pts[i]
		for len(hull) >= lower && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}

	// Last point repeats the first
	return hull[:len(hull)-1]
}

// cross returns the z-component of (a-o) x (b-o).
func cross(o, a, b Point) float64 {
	return r2.Cross(r2.Sub(a.Vec(), o.Vec()), r2.Sub(b.Vec(), o.Vec()))
}
