package detection

import "errors"

// ErrFootprintNotFound is returned when an image contains no pixel that
// belongs to a room palette.
var ErrFootprintNotFound = errors.New("no footprint found")

// Bounds is an inclusive pixel bounding box.
type Bounds struct {
	MinX int `json:"minX"`
	MinY int `json:"minY"`
	MaxX int `json:"maxX"`
	MaxY int `json:"maxY"`
}

// Width is the number of pixel columns covered by the box.
func (b Bounds) Width() int { return b.MaxX - b.MinX + 1 }

// Height is the number of pixel rows covered by the box.
func (b Bounds) Height() int { return b.MaxY - b.MinY + 1 }

// extend grows the box to include (x, y).
func (b *Bounds) extend(x, y int) {
	if x < b.MinX {
		b.MinX = x
	}
	if x > b.MaxX {
		b.MaxX = x
	}
	if y < b.MinY {
		b.MinY = y
	}
	if y > b.MaxY {
		b.MaxY = y
	}
}

// LocateFootprint returns the bounding box of every pixel whose label is
// neither Ignore nor Other. The result is the coordinate origin for all
// exported room geometry, so output is relative to the drawn plan rather
// than to the canvas around it.
func LocateFootprint(grid *LabelGrid) (Bounds, error) {
	found := false
	var b Bounds

	for y := 0; y < grid.Height; y++ {
		row := grid.Labels[y*grid.Width : (y+1)*grid.Width]
		for x, l := range row {
			if !l.IsRoom() {
				continue
			}
			if !found {
				b = Bounds{MinX: x, MinY: y, MaxX: x, MaxY: y}
				found = true
				continue
			}
			b.extend(x, y)
		}
	}

	if !found {
		return Bounds{}, ErrFootprintNotFound
	}
	return b, nil
}
