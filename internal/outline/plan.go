package outline

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// Dimensions is the overall size of a plan in plan units (millimetres).
type Dimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Space is one axis-aligned rectangle of a plan. Coordinates are [x, y]
// pairs with y pointing down; the corners may be given in any order.
type Space struct {
	Type            string    `json:"type"`
	Comment         string    `json:"comment,omitempty"`
	StartCoordinate []float64 `json:"startCoordinate"`
	EndCoordinate   []float64 `json:"endCoordinate"`
}

// Plan is the input of the outline tracer.
type Plan struct {
	OverallDimensions Dimensions `json:"overallDimensions"`
	Spaces            []Space    `json:"spaces"`
}

// LoadPlan reads a Plan from a JSON file.
func LoadPlan(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan: %w", err)
	}
	var p Plan
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse plan: %w", err)
	}
	return &p, nil
}

// rect is a normalised space with x0 < x1 and y0 < y1.
type rect struct {
	x0, y0, x1, y1 float64
}

// normalize validates a space and orders its corners. Spaces with missing
// or non-finite coordinates, or zero area, are rejected.
func normalize(s Space) (rect, bool) {
	if len(s.StartCoordinate) < 2 || len(s.EndCoordinate) < 2 {
		return rect{}, false
	}
	ax, ay := s.StartCoordinate[0], s.StartCoordinate[1]
	bx, by := s.EndCoordinate[0], s.EndCoordinate[1]
	for _, v := range []float64{ax, ay, bx, by} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return rect{}, false
		}
	}

	r := rect{
		x0: math.Min(ax, bx),
		y0: math.Min(ay, by),
		x1: math.Max(ax, bx),
		y1: math.Max(ay, by),
	}
	if r.x0 == r.x1 || r.y0 == r.y1 {
		return rect{}, false
	}
	return r, true
}

func validDimension(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
