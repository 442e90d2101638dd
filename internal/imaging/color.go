package imaging

import (
	"fmt"
	"image"
	"math"
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGBColor represents an RGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// Colorful converts the color to go-colorful's float representation.
func (c RGBColor) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// Hex returns the color as "#RRGGBB".
func (c RGBColor) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorResult contains a pixel color in the representations used when
// tuning room palettes.
type ColorResult struct {
	Hex        string   `json:"hex"`        // Hex format "#RRGGBB" (no alpha)
	RGB        RGBColor `json:"rgb"`        // RGB components
	HSL        HSLColor `json:"hsl"`        // HSL representation
	Brightness float64  `json:"brightness"` // Mean of R, G and B (0-255)
}

// SampleColor extracts the color value at a specific pixel coordinate.
//
// Parameters:
//   - img: The source image to sample from.
//   - x: X coordinate (0-based, 0 = leftmost pixel).
//   - y: Y coordinate (0-based, 0 = topmost pixel).
//
// Returns:
//   - *ColorResult: The color at (x, y) in multiple formats.
//   - error: Non-nil if coordinates are outside the image bounds.
//
// Coordinates are relative to the image origin, so they match the pixel
// coordinates reported by the digitizer for images whose bounds do not
// start at (0,0).
func SampleColor(img image.Image, x, y int) (*ColorResult, error) {
	bounds := img.Bounds()
	px, py := bounds.Min.X+x, bounds.Min.Y+y
	if x < 0 || y < 0 || px >= bounds.Max.X || py >= bounds.Max.Y {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	r, g, b, _ := img.At(px, py).RGBA()
	rgb := RGBColor{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}

	return &ColorResult{
		Hex:        rgb.Hex(),
		RGB:        rgb,
		HSL:        toHSL(rgb),
		Brightness: math.Round((float64(rgb.R)+float64(rgb.G)+float64(rgb.B))/3*100) / 100,
	}, nil
}

// toHSL converts through go-colorful and rounds down to whole units.
func toHSL(c RGBColor) HSLColor {
	h, s, l := c.Colorful().Hsl()
	return HSLColor{
		H: int(h),
		S: int(s * 100),
		L: int(l * 100),
	}
}

// Region represents a rectangular region within an image.
//
// Coordinates follow the standard image convention:
//   - (X1, Y1) is the top-left corner (inclusive)
//   - (X2, Y2) is the bottom-right corner (exclusive)
type Region struct {
	X1 int
	Y1 int
	X2 int
	Y2 int
}

// ColorFrequency represents a color and its occurrence frequency in an image.
type ColorFrequency struct {
	Hex        string   `json:"hex"`        // Hex color "#RRGGBB"
	Percentage float64  `json:"percentage"` // Percentage of pixels with this color (0-100)
	RGB        RGBColor `json:"rgb"`        // RGB components
}

// DominantColorsResult contains the most frequently occurring colors,
// sorted by frequency in descending order.
type DominantColorsResult struct {
	Colors []ColorFrequency `json:"colors"`
}

// DominantColors extracts the N most common colors from an image or region.
//
// Unlike photo palettes, plan fills are flat, so colors are counted
// exactly (no quantization). This makes the output directly usable as
// palette samples for a new plan style.
//
// Parameters:
//   - img: The source image to analyze.
//   - count: Maximum number of colors to return.
//   - region: Optional region to analyze, clipped to the image. If nil, the
//     entire image is analyzed.
func DominantColors(img image.Image, count int, region *Region) (*DominantColorsResult, error) {
	bounds := img.Bounds()
	if region != nil {
		bounds = image.Rect(region.X1, region.Y1, region.X2, region.Y2).Intersect(bounds)
	}
	if bounds.Empty() {
		return nil, fmt.Errorf("region is empty or outside image bounds")
	}

	counts := make(map[uint32]int)
	totalPixels := 0

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			counts[(r>>8)<<16|(g>>8)<<8|b>>8]++
			totalPixels++
		}
	}

	colors := make([]ColorFrequency, 0, len(counts))
	for key, cnt := range counts {
		rgb := RGBColor{R: uint8(key >> 16), G: uint8(key >> 8), B: uint8(key)}
		colors = append(colors, ColorFrequency{
			Hex:        rgb.Hex(),
			Percentage: math.Round(float64(cnt)/float64(totalPixels)*10000) / 100,
			RGB:        rgb,
		})
	}

	sort.Slice(colors, func(i, j int) bool {
		if colors[i].Percentage != colors[j].Percentage {
			return colors[i].Percentage > colors[j].Percentage
		}
		return colors[i].Hex < colors[j].Hex
	})

	if count > 0 && len(colors) > count {
		colors = colors[:count]
	}

	return &DominantColorsResult{Colors: colors}, nil
}
