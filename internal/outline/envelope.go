package outline

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ironsheep/floorplan-mcp/internal/geometry"
)

// Placement positions one unit plan in a shared frame. Offset moves the
// unit's centred outline.
type Placement struct {
	Name   string         `json:"name,omitempty"`
	Offset geometry.Point `json:"offset"`
	Plan   Plan           `json:"plan"`
}

// EnvelopeResult is the convex envelope of several placed units.
type EnvelopeResult struct {
	Hull  []geometry.Point `json:"hull"`
	Area  float64          `json:"area"`
	Units int              `json:"units"`
}

// Envelope traces each placement, moves its outline by the offset and
// returns the convex hull of all resulting points.
func Envelope(placements []Placement) EnvelopeResult {
	var points []geometry.Point
	for _, p := range placements {
		for _, pt := range BuildUnitOutline(p.Plan) {
			points = append(points, pt.Translate(p.Offset.X, p.Offset.Z))
		}
	}

	hull := geometry.ConvexHull(points)
	if hull == nil {
		hull = []geometry.Point{}
	}
	return EnvelopeResult{
		Hull:  hull,
		Area:  geometry.Area(hull),
		Units: len(placements),
	}
}

// LoadPlacements reads a JSON array of placements.
func LoadPlacements(path string) ([]Placement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read placements: %w", err)
	}
	var placements []Placement
	if err := json.Unmarshal(data, &placements); err != nil {
		return nil, fmt.Errorf("failed to parse placements: %w", err)
	}
	return placements, nil
}
