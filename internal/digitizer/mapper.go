package digitizer

import (
	"math"

	"github.com/ironsheep/floorplan-mcp/internal/detection"
)

// Point is a room polygon vertex in millimetres, y pointing down.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Room is one region exported as an axis-aligned rectangle.
type Room struct {
	ID              int             `json:"id"`
	Type            detection.Label `json:"type"`
	Polygon         []Point         `json:"polygon"`
	StartCoordinate [2]float64      `json:"startCoordinate"`
	EndCoordinate   [2]float64      `json:"endCoordinate"`
	AreaMM2         float64         `json:"areaMm2"`
	AreaPixels      int             `json:"areaPixels"`
}

// MapRegion converts a region's pixel bounding box into a rectangle in
// millimetres relative to the footprint's top-left corner. The far edge
// is the pixel boundary after the last covered pixel, so a region of w
// pixels spans w*mmPerPixelX.
func MapRegion(r detection.Region, footprint detection.Bounds, mmPerPixelX, mmPerPixelY float64) Room {
	x0 := round2(float64(r.Bounds.MinX-footprint.MinX) * mmPerPixelX)
	y0 := round2(float64(r.Bounds.MinY-footprint.MinY) * mmPerPixelY)
	x1 := round2(float64(r.Bounds.MaxX+1-footprint.MinX) * mmPerPixelX)
	y1 := round2(float64(r.Bounds.MaxY+1-footprint.MinY) * mmPerPixelY)

	return Room{
		ID:   r.ID,
		Type: r.Type,
		Polygon: []Point{
			{X: x0, Y: y0},
			{X: x1, Y: y0},
			{X: x1, Y: y1},
			{X: x0, Y: y1},
		},
		StartCoordinate: [2]float64{x0, y0},
		EndCoordinate:   [2]float64{x1, y1},
		AreaMM2:         round2((x1 - x0) * (y1 - y0)),
		AreaPixels:      r.AreaPixels,
	}
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
