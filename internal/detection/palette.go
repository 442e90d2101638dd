package detection

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Palette groups the fill colours a plan uses for one room type.
type Palette struct {
	Label   Label
	Samples []colorful.Color
}

// paletteHex lists the fill colours of each room type. Each type carries a
// light and a saturated variant because plan exports are not consistent
// about fill opacity.
var paletteHex = []struct {
	label  Label
	colors []string
}{
	{Living, []string{"#F5D6A8", "#EFC98F"}},
	{Bedroom, []string{"#BFD8EE", "#A9C8E6"}},
	{Balcony, []string{"#C9E4B4", "#B5D99C"}},
	{Kitchen, []string{"#F3B6B0", "#EBA29A"}},
	{Utility, []string{"#D7C4E8", "#C6AEDD"}},
	{Loggia, []string{"#9FD3C7", "#86C5B6"}},
	{Foyer, []string{"#E8E0B0", "#DCD29A"}},
	{Core, []string{"#A6A6A6", "#8C8C8C"}},
}

// DefaultPalettes is the palette set used by Classify.
var DefaultPalettes = mustPalettes()

func mustPalettes() []Palette {
	palettes := make([]Palette, 0, len(paletteHex))
	for _, p := range paletteHex {
		samples := make([]colorful.Color, 0, len(p.colors))
		for _, hex := range p.colors {
			c, err := colorful.Hex(hex)
			if err != nil {
				panic(fmt.Sprintf("invalid palette colour %s for %s: %v", hex, p.label, err))
			}
			samples = append(samples, c)
		}
		palettes = append(palettes, Palette{Label: p.label, Samples: samples})
	}
	return palettes
}

// SampleRGB returns the 8-bit components of a palette sample.
func SampleRGB(c colorful.Color) (r, g, b uint8) {
	return c.RGB255()
}
