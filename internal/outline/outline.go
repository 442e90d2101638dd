package outline

import (
	"encoding/json"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/ironsheep/floorplan-mcp/internal/geometry"
	"github.com/ironsheep/floorplan-mcp/internal/logging"
)

// Result is a traced outline with diagnostics.
type Result struct {
	// Points is the outline, centred on the plan midpoint and wound
	// clockwise with z pointing down. No closing point is repeated.
	Points []geometry.Point `json:"points"`

	// Fallback is true when Points is the plan rectangle rather than a
	// traced boundary; Reason says why.
	Fallback bool   `json:"fallback"`
	Reason   string `json:"reason,omitempty"`

	// Spaces is the number of usable input rectangles.
	Spaces int `json:"spaces"`

	// Cells is the number of occupied compressed cells after gap filling.
	Cells int `json:"cells"`

	// Components and Euler describe the occupied cells. The walk is only
	// trusted for one component with Euler characteristic 1.
	Components int  `json:"components"`
	Euler      int  `json:"euler"`
	Trusted    bool `json:"trusted"`

	// Area is the enclosed area in plan units squared.
	Area float64 `json:"area"`
}

// BuildUnitOutline traces the outer boundary of a plan's spaces. It never
// fails: degenerate input yields the plan rectangle.
func BuildUnitOutline(plan Plan) []geometry.Point {
	return Trace(plan).Points
}

// Trace runs the outline tracer and reports how the result was obtained.
func Trace(plan Plan) Result {
	log := logging.Logger()
	width, height := plan.OverallDimensions.Width, plan.OverallDimensions.Height

	rects := make([]rect, 0, len(plan.Spaces))
	for _, s := range plan.Spaces {
		if r, ok := normalize(s); ok {
			rects = append(rects, r)
		}
	}

	res := Result{Spaces: len(rects)}
	fallback := func(reason string) Result {
		log.Warn("outline fallback", "reason", reason, "spaces", len(plan.Spaces))
		res.Fallback = true
		res.Reason = reason
		res.Points = fallbackRect(width, height)
		res.Area = geometry.Area(res.Points)
		return res
	}

	if !validDimension(width) || !validDimension(height) {
		return fallback(fmt.Sprintf("invalid overall dimensions %vx%v", width, height))
	}
	if len(rects) == 0 {
		return fallback("no usable spaces")
	}

	xs, ys := compress(width, height, rects)
	g := newGrid(xs, ys, rects)
	g.fillColumns()

	res.Cells = g.occupied()
	res.Components = g.components()
	res.Euler = g.euler()
	res.Trusted = res.Components == 1 && res.Euler == 1
	if !res.Trusted {
		return fallback(fmt.Sprintf("occupied cells form %d components with Euler characteristic %d", res.Components, res.Euler))
	}

	path, closed := walk(boundaryEdges(g))
	if !closed {
		return fallback("boundary walk did not close")
	}
	path = mergeCollinear(path)
	if len(path) < 3 {
		return fallback(fmt.Sprintf("boundary walk produced %d points", len(path)))
	}

	cx, cz := width/2, height/2
	res.Points = make([]geometry.Point, len(path))
	for k, v := range path {
		res.Points[k] = geometry.Point{X: xs.values[v.i] - cx, Z: ys.values[v.j] - cz}
	}
	res.Area = geometry.Area(res.Points)

	log.Debug("outline traced",
		"spaces", res.Spaces,
		"grid", fmt.Sprintf("%dx%d", g.nx, g.ny),
		"vertices", len(res.Points))
	return res
}

// fallbackRect is the plan rectangle, centred.
func fallbackRect(width, height float64) []geometry.Point {
	cx, cz := width/2, height/2
	return []geometry.Point{
		{X: -cx, Z: -cz},
		{X: width - cx, Z: -cz},
		{X: width - cx, Z: height - cz},
		{X: -cx, Z: height - cz},
	}
}

// Ring returns the outline as a closed orb ring.
func (r Result) Ring() orb.Ring {
	ring := make(orb.Ring, 0, len(r.Points)+1)
	for _, p := range r.Points {
		ring = append(ring, orb.Point{p.X, p.Z})
	}
	if len(ring) > 0 {
		ring = append(ring, ring[0])
	}
	return ring
}

// GeoJSON encodes the outline as a GeoJSON Feature with a Polygon
// geometry in plan units. Diagnostics are carried as properties.
func (r Result) GeoJSON() ([]byte, error) {
	f := geojson.NewFeature(orb.Polygon{r.Ring()})
	f.Properties["fallback"] = r.Fallback
	f.Properties["trusted"] = r.Trusted
	f.Properties["area"] = r.Area
	if r.Reason != "" {
		f.Properties["reason"] = r.Reason
	}
	return json.Marshal(f)
}
