package digitizer

import (
	"time"

	"github.com/ironsheep/floorplan-mcp/internal/detection"
)

// Defaults for Options fields left at their zero value.
const (
	DefaultOCRWhitelist = "0123456789"
	DefaultMaxPixels    = 40_000_000
	DefaultOCRTimeout   = 30 * time.Second
)

// Options controls one Digitize call.
type Options struct {
	// MinRegionPixels drops regions with fewer pixels. Default 1500.
	MinRegionPixels int `json:"minRegionPixels"`

	// OCRWhitelist restricts the characters OCR may return.
	// Default "0123456789".
	OCRWhitelist string `json:"ocrWhitelist"`

	// MaxPixels rejects larger images before decoding. Default 40M.
	MaxPixels int `json:"maxPixels"`

	// OCRTimeout bounds the recognition pass. Default 30s.
	OCRTimeout time.Duration `json:"ocrTimeout"`

	// DisableOCR skips calibration; rooms are reported in pixels.
	DisableOCR bool `json:"disableOcr"`
}

func (o Options) withDefaults() Options {
	if o.MinRegionPixels <= 0 {
		o.MinRegionPixels = detection.DefaultMinRegionPixels
	}
	if o.OCRWhitelist == "" {
		o.OCRWhitelist = DefaultOCRWhitelist
	}
	if o.MaxPixels <= 0 {
		o.MaxPixels = DefaultMaxPixels
	}
	if o.OCRTimeout <= 0 {
		o.OCRTimeout = DefaultOCRTimeout
	}
	return o
}
