package detection

import (
	"testing"

	"github.com/ironsheep/floorplan-mcp/internal/imaging"
)

// sample returns the first palette colour of a label as 8-bit RGB.
func sample(t *testing.T, l Label) [3]uint8 {
	t.Helper()
	for _, p := range DefaultPalettes {
		if p.Label == l {
			r, g, b := SampleRGB(p.Samples[0])
			return [3]uint8{r, g, b}
		}
	}
	t.Fatalf("no palette for %s", l)
	return [3]uint8{}
}

// newRGB creates a width×height RGB buffer filled with c.
func newRGB(width, height int, c [3]uint8) *imaging.RGBImage {
	img := &imaging.RGBImage{Width: width, Height: height, Pix: make([]uint8, width*height*3)}
	for i := 0; i < width*height; i++ {
		copy(img.Pix[i*3:i*3+3], c[:])
	}
	return img
}

// fillRGB paints the inclusive rectangle (x0,y0)-(x1,y1).
func fillRGB(img *imaging.RGBImage, x0, y0, x1, y1 int, c [3]uint8) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			i := (y*img.Width + x) * 3
			copy(img.Pix[i:i+3], c[:])
		}
	}
}
