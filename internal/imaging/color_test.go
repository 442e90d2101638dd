package imaging

import (
	"image"
	"image/color"
	"testing"
)

// createInMemoryImage creates an in-memory test image
func createInMemoryImage(width, height int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// createPatternImage creates an image with different colors in each quadrant
func createPatternImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var c color.Color
			if x < width/2 && y < height/2 {
				c = color.RGBA{255, 0, 0, 255} // Red top-left
			} else if x >= width/2 && y < height/2 {
				c = color.RGBA{0, 255, 0, 255} // Green top-right
			} else if x < width/2 && y >= height/2 {
				c = color.RGBA{0, 0, 255, 255} // Blue bottom-left
			} else {
				c = color.RGBA{255, 255, 255, 255} // White bottom-right
			}
			img.Set(x, y, c)
		}
	}
	return img
}

func TestSampleColor(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 128, 64, 255})

	result, err := SampleColor(img, 50, 50)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}

	// Check hex
	if result.Hex != "#FF8040" {
		t.Errorf("Hex: got %s, want #FF8040", result.Hex)
	}

	// Check RGB
	if result.RGB.R != 255 || result.RGB.G != 128 || result.RGB.B != 64 {
		t.Errorf("RGB: got (%d,%d,%d), want (255,128,64)", result.RGB.R, result.RGB.G, result.RGB.B)
	}

	// Check brightness (mean of channels)
	if result.Brightness != 149 {
		t.Errorf("Brightness: got %v, want 149", result.Brightness)
	}
}

func TestSampleColor_KnownColors(t *testing.T) {
	tests := []struct {
		name    string
		color   color.RGBA
		wantHex string
		wantHue int // approximate
	}{
		{"pure red", color.RGBA{255, 0, 0, 255}, "#FF0000", 0},
		{"pure green", color.RGBA{0, 255, 0, 255}, "#00FF00", 120},
		{"pure blue", color.RGBA{0, 0, 255, 255}, "#0000FF", 240},
		{"white", color.RGBA{255, 255, 255, 255}, "#FFFFFF", 0},
		{"black", color.RGBA{0, 0, 0, 255}, "#000000", 0},
		{"gray", color.RGBA{128, 128, 128, 255}, "#808080", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := createInMemoryImage(10, 10, tt.color)
			result, err := SampleColor(img, 5, 5)
			if err != nil {
				t.Fatalf("SampleColor failed: %v", err)
			}

			if result.Hex != tt.wantHex {
				t.Errorf("Hex: got %s, want %s", result.Hex, tt.wantHex)
			}
			if abs(result.HSL.H-tt.wantHue) > 1 {
				t.Errorf("Hue: got %d, want %d", result.HSL.H, tt.wantHue)
			}
		})
	}
}

func TestSampleColor_OutOfBounds(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 0, 0, 255})

	tests := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 50},
		{"negative y", 50, -1},
		{"x too large", 100, 50},
		{"y too large", 50, 100},
		{"both too large", 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SampleColor(img, tt.x, tt.y)
			if err == nil {
				t.Error("SampleColor should fail for out-of-bounds coordinates")
			}
		})
	}
}

func TestSampleColor_EdgeCoordinates(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 0, 0, 255})

	// Test edge coordinates (should succeed)
	tests := []struct {
		name string
		x, y int
	}{
		{"top-left", 0, 0},
		{"top-right", 99, 0},
		{"bottom-left", 0, 99},
		{"bottom-right", 99, 99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SampleColor(img, tt.x, tt.y)
			if err != nil {
				t.Errorf("SampleColor failed for valid edge coordinate (%d,%d): %v", tt.x, tt.y, err)
			}
		})
	}
}

func TestDominantColors(t *testing.T) {
	// Create an image with mostly red, some green
	img := image.NewRGBA(image.Rect(0, 0, 100, 100))
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			if x < 80 {
				img.Set(x, y, color.RGBA{255, 0, 0, 255}) // 80% red
			} else {
				img.Set(x, y, color.RGBA{0, 255, 0, 255}) // 20% green
			}
		}
	}

	result, err := DominantColors(img, 5, nil)
	if err != nil {
		t.Fatalf("DominantColors failed: %v", err)
	}

	if len(result.Colors) == 0 {
		t.Fatal("expected at least one color")
	}

	if len(result.Colors) != 2 {
		t.Fatalf("expected 2 colors, got %d", len(result.Colors))
	}
	if result.Colors[0].Hex != "#FF0000" || result.Colors[0].Percentage != 80 {
		t.Errorf("first color: got %s at %v%%, want #FF0000 at 80%%", result.Colors[0].Hex, result.Colors[0].Percentage)
	}
	if result.Colors[1].Hex != "#00FF00" || result.Colors[1].Percentage != 20 {
		t.Errorf("second color: got %s at %v%%, want #00FF00 at 20%%", result.Colors[1].Hex, result.Colors[1].Percentage)
	}
}

func TestDominantColors_WithRegion(t *testing.T) {
	img := createPatternImage(100, 100)

	// Sample only the top-left quadrant (red)
	region := &Region{X1: 0, Y1: 0, X2: 50, Y2: 50}
	result, err := DominantColors(img, 5, region)
	if err != nil {
		t.Fatalf("DominantColors with region failed: %v", err)
	}

	if len(result.Colors) == 0 {
		t.Fatal("expected at least one color")
	}

	if result.Colors[0].Hex != "#FF0000" || result.Colors[0].Percentage != 100 {
		t.Errorf("expected only red in top-left region, got %s at %v%%", result.Colors[0].Hex, result.Colors[0].Percentage)
	}
}

func TestDominantColors_SingleColor(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{128, 128, 128, 255})

	result, err := DominantColors(img, 3, nil)
	if err != nil {
		t.Fatalf("DominantColors failed: %v", err)
	}

	// Should have exactly 1 color since image is uniform
	if len(result.Colors) != 1 {
		t.Errorf("expected 1 color for uniform image, got %d", len(result.Colors))
	}

	// That color should be 100%
	if result.Colors[0].Percentage != 100 {
		t.Errorf("expected 100%% for single color, got %f%%", result.Colors[0].Percentage)
	}
}

func TestDominantColors_RegionOutside(t *testing.T) {
	img := createInMemoryImage(10, 10, color.RGBA{1, 2, 3, 255})

	_, err := DominantColors(img, 3, &Region{X1: 20, Y1: 20, X2: 30, Y2: 30})
	if err == nil {
		t.Error("DominantColors should fail for a region outside the image")
	}
}

func TestToHSL(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		wantH   int
		wantS   int
		wantL   int
	}{
		{"red", 255, 0, 0, 0, 100, 50},
		{"green", 0, 255, 0, 120, 100, 50},
		{"blue", 0, 0, 255, 240, 100, 50},
		{"white", 255, 255, 255, 0, 0, 100},
		{"black", 0, 0, 0, 0, 0, 0},
		{"gray", 128, 128, 128, 0, 0, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hsl := toHSL(RGBColor{R: tt.r, G: tt.g, B: tt.b})

			// Allow some tolerance for rounding
			if abs(hsl.H-tt.wantH) > 1 {
				t.Errorf("H: got %d, want %d", hsl.H, tt.wantH)
			}
			if abs(hsl.S-tt.wantS) > 1 {
				t.Errorf("S: got %d, want %d", hsl.S, tt.wantS)
			}
			if abs(hsl.L-tt.wantL) > 1 {
				t.Errorf("L: got %d, want %d", hsl.L, tt.wantL)
			}
		})
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
