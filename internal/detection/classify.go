package detection

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/floorplan-mcp/internal/imaging"
)

// Classification thresholds. Brightness is the mean of the three channels,
// distances are Euclidean in 0-255 RGB space.
const (
	BrightCutoff   = 245.0
	DarkCutoff     = 25.0
	NearBlackLimit = 45
	MaxSampleDist  = 90.0
)

// Classify maps one RGB triple to a Label using DefaultPalettes.
//
// Very bright pixels (paper), very dark pixels and near-black pixels
// (walls, dimension text) are Ignore. Everything else takes the label of
// the nearest palette sample, downgraded to Other when that sample is
// further than MaxSampleDist away.
func Classify(r, g, b uint8) Label {
	return ClassifyWith(DefaultPalettes, r, g, b)
}

// ClassifyWith is Classify with an explicit palette set.
func ClassifyWith(palettes []Palette, r, g, b uint8) Label {
	brightness := (float64(r) + float64(g) + float64(b)) / 3
	if brightness > BrightCutoff || brightness < DarkCutoff {
		return Ignore
	}
	if r < NearBlackLimit && g < NearBlackLimit && b < NearBlackLimit {
		return Ignore
	}

	c := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}

	best := Other
	bestDist := math.Inf(1)
	for _, p := range palettes {
		for _, s := range p.Samples {
			d := c.DistanceRgb(s) * 255
			if d < bestDist {
				bestDist = d
				best = p.Label
			}
		}
	}

	if bestDist > MaxSampleDist && best != Other {
		return Other
	}
	return best
}

// LabelGrid is a classified image, one Label per pixel in row-major order.
type LabelGrid struct {
	Width  int
	Height int
	Labels []Label
}

// NewLabelGrid allocates a grid with every pixel set to Ignore.
func NewLabelGrid(width, height int) *LabelGrid {
	return &LabelGrid{
		Width:  width,
		Height: height,
		Labels: make([]Label, width*height),
	}
}

// At returns the label at (x, y). Out-of-range coordinates are Ignore.
func (g *LabelGrid) At(x, y int) Label {
	if x < 0 || y < 0 || x >= g.Width || y >= g.Height {
		return Ignore
	}
	return g.Labels[y*g.Width+x]
}

// Set assigns the label at (x, y). Out-of-range coordinates are ignored.
func (g *LabelGrid) Set(x, y int, l Label) {
	if x < 0 || y < 0 || x >= g.Width || y >= g.Height {
		return
	}
	g.Labels[y*g.Width+x] = l
}

// ClassifyImage classifies every pixel of an RGB buffer.
//
// Plans use a handful of flat fills, so results are memoised per distinct
// colour; the palette search runs once per colour rather than once per pixel.
func ClassifyImage(img *imaging.RGBImage) *LabelGrid {
	grid := NewLabelGrid(img.Width, img.Height)
	memo := make(map[uint32]Label)

	for i := 0; i < img.Width*img.Height; i++ {
		r, g, b := img.Pix[i*3], img.Pix[i*3+1], img.Pix[i*3+2]
		key := uint32(r)<<16 | uint32(g)<<8 | uint32(b)
		l, ok := memo[key]
		if !ok {
			l = Classify(r, g, b)
			memo[key] = l
		}
		grid.Labels[i] = l
	}

	return grid
}
