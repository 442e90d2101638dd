package ocr

import (
	"image"
	"math"

	"github.com/anthonynsimon/bild/effect"
	"github.com/anthonynsimon/bild/segment"
	"github.com/disintegration/imaging"
)

// Preprocess prepares an image for recognition and returns it together
// with the factor it was scaled by.
//
// Images narrower than minWidth are upscaled with Lanczos resampling. The
// result is converted to grayscale and, when threshold is non-zero,
// binarised so that coloured room fills behind the labels drop to white.
// Divide coordinates found in the returned image by the factor to map them
// back to the input.
func Preprocess(img image.Image, minWidth int, threshold uint8) (image.Image, float64) {
	scale := 1.0
	bounds := img.Bounds()

	if minWidth > 0 && bounds.Dx() > 0 && bounds.Dx() < minWidth {
		scale = float64(minWidth) / float64(bounds.Dx())
		h := int(math.Round(float64(bounds.Dy()) * scale))
		img = imaging.Resize(img, minWidth, max(h, 1), imaging.Lanczos)
	}

	gray := effect.Grayscale(img)
	if threshold == 0 {
		return gray, scale
	}
	return segment.Threshold(gray, threshold), scale
}

// unscale maps a box found in a preprocessed image back to the source.
func unscale(b Bounds, scale float64) Bounds {
	if scale == 1 {
		return b
	}
	return Bounds{
		X1: int(math.Floor(float64(b.X1) / scale)),
		Y1: int(math.Floor(float64(b.Y1) / scale)),
		X2: int(math.Ceil(float64(b.X2) / scale)),
		Y2: int(math.Ceil(float64(b.Y2) / scale)),
	}
}
