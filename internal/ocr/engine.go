package ocr

import (
	"context"
	"errors"
	"image"
)

// ErrOCRUnavailable is returned when the OCR engine cannot be created or a
// recognition pass fails. Callers treat it as "no calibration evidence".
var ErrOCRUnavailable = errors.New("ocr unavailable")

// Bounds represents a rectangular bounding box in pixel coordinates.
type Bounds struct {
	X1 int `json:"x1"` // Left edge
	Y1 int `json:"y1"` // Top edge
	X2 int `json:"x2"` // Right edge (exclusive)
	Y2 int `json:"y2"` // Bottom edge (exclusive)
}

// Center returns the midpoint of the box.
func (b Bounds) Center() (x, y float64) {
	return float64(b.X1+b.X2) / 2, float64(b.Y1+b.Y2) / 2
}

// Word is one recognized word with its location and OCR confidence.
type Word struct {
	// Text is the recognized text content.
	Text string `json:"text"`

	// Confidence is the OCR confidence score (0.0 to 1.0).
	Confidence float64 `json:"confidence"`

	// Bounds is the bounding box around this word in the source image.
	Bounds Bounds `json:"bounds"`
}

// Engine recognizes words in an image.
//
// An Engine owns native resources and must be closed. Engines are not
// required to support concurrent Recognize calls; acquire one per
// goroutine from a Factory.
type Engine interface {
	// Recognize runs one OCR pass over img. Word bounds are reported in
	// img's coordinate space with the origin moved to (0,0).
	Recognize(ctx context.Context, img image.Image) ([]Word, error)

	// Close releases the engine.
	Close() error
}

// Factory creates a fresh Engine.
type Factory func() (Engine, error)

// Options configures a Tesseract engine.
type Options struct {
	// Language is the Tesseract language code, e.g. "eng".
	Language string

	// Whitelist restricts recognition to these characters. Empty means
	// no restriction.
	Whitelist string

	// TessdataPrefix overrides the directory holding *.traineddata.
	TessdataPrefix string

	// MinWidth upscales narrower images before recognition. Dimension
	// labels on small scans are only a few pixels tall and Tesseract
	// misses them at native resolution. Zero disables upscaling.
	MinWidth int

	// Threshold is the binarisation level (0-255) applied before
	// recognition. Zero disables binarisation.
	Threshold uint8
}

// DefaultOptions returns the options used for reading dimension labels.
func DefaultOptions() Options {
	return Options{
		Language:  "eng",
		Whitelist: "0123456789",
		MinWidth:  1600,
		Threshold: 160,
	}
}
