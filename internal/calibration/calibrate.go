package calibration

import (
	"context"
	"errors"
	"fmt"
	"image"
	"math"
	"time"

	"github.com/ironsheep/floorplan-mcp/internal/detection"
	"github.com/ironsheep/floorplan-mcp/internal/logging"
	"github.com/ironsheep/floorplan-mcp/internal/ocr"
)

// Scale is the outcome of calibration. Nil factors mean no evidence.
type Scale struct {
	MMPerPixelX *float64 `json:"mmPerPixelX"`
	MMPerPixelY *float64 `json:"mmPerPixelY"`
	WidthMM     *float64 `json:"widthMm"`
	HeightMM    *float64 `json:"heightMm"`
	Tokens      []Token  `json:"tokens"`
}

// Calibrated reports whether at least one axis has a factor.
func (s Scale) Calibrated() bool {
	return s.MMPerPixelX != nil || s.MMPerPixelY != nil
}

// Factors returns both factors with 1 substituted for missing ones, so
// uncalibrated output stays in pixel units.
func (s Scale) Factors() (x, y float64) {
	x, y = 1, 1
	if s.MMPerPixelX != nil {
		x = *s.MMPerPixelX
	}
	if s.MMPerPixelY != nil {
		y = *s.MMPerPixelY
	}
	return x, y
}

// Span picks the authoritative millimetre span from label values: the
// maximum, or the sum of all values when the maximum is not positive.
func Span(values []int) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}
	best, sum := 0, 0
	for _, v := range values {
		sum += v
		if v > best {
			best = v
		}
	}
	if best > 0 {
		return float64(best), true
	}
	if sum > 0 {
		return float64(sum), true
	}
	return 0, false
}

// FromTokens computes scale factors from classified tokens and the
// footprint the spans refer to.
func FromTokens(tokens []Token, footprint detection.Bounds) Scale {
	var horizontal, vertical []int
	for _, t := range tokens {
		switch t.Axis {
		case AxisHorizontal:
			horizontal = append(horizontal, t.Value)
		case AxisVertical:
			vertical = append(vertical, t.Value)
		}
	}

	s := Scale{Tokens: tokens}
	if s.Tokens == nil {
		s.Tokens = []Token{}
	}

	spanX, okX := Span(horizontal)
	spanY, okY := Span(vertical)

	if okX {
		s.MMPerPixelX = ptr(spanX / float64(footprint.Width()))
		s.WidthMM = ptr(spanX)
	}
	if okY {
		s.MMPerPixelY = ptr(spanY / float64(footprint.Height()))
		s.HeightMM = ptr(spanY)
	}

	// Square pixels: a missing axis borrows the other one.
	switch {
	case okX && !okY:
		s.MMPerPixelY = ptr(*s.MMPerPixelX)
		s.HeightMM = ptr(round2(*s.MMPerPixelY * float64(footprint.Height())))
	case okY && !okX:
		s.MMPerPixelX = ptr(*s.MMPerPixelY)
		s.WidthMM = ptr(round2(*s.MMPerPixelX * float64(footprint.Width())))
	}

	return s
}

// Calibrate runs one OCR pass over img and derives the scale.
//
// The engine is created from factory and closed before returning. When
// timeout is positive the recognition is bounded by it. Any OCR failure
// is returned wrapped in ocr.ErrOCRUnavailable; callers that treat
// calibration as optional should fall back to an empty Scale.
func Calibrate(ctx context.Context, factory ocr.Factory, img image.Image, footprint detection.Bounds, timeout time.Duration) (Scale, error) {
	log := logging.Logger()

	engine, err := factory()
	if err != nil {
		return Scale{}, unavailable("failed to create OCR engine", err)
	}
	defer func() {
		if cerr := engine.Close(); cerr != nil {
			log.Warn("failed to close OCR engine", "error", cerr)
		}
	}()

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()
	words, err := engine.Recognize(ctx, img)
	if err != nil {
		return Scale{}, unavailable("failed to recognize dimension labels", err)
	}

	b := img.Bounds()
	tokens := Tokens(words, b.Dx(), b.Dy())
	log.Debug("ocr finished",
		"words", len(words),
		"tokens", len(tokens),
		"elapsed", time.Since(start))

	return FromTokens(tokens, footprint), nil
}

// Empty is the scale used when no calibration evidence exists.
func Empty() Scale {
	return Scale{Tokens: []Token{}}
}

func unavailable(msg string, err error) error {
	if errors.Is(err, ocr.ErrOCRUnavailable) {
		return fmt.Errorf("%s: %w", msg, err)
	}
	return fmt.Errorf("%s: %w: %w", msg, ocr.ErrOCRUnavailable, err)
}

func ptr(v float64) *float64 { return &v }

func round2(v float64) float64 { return math.Round(v*100) / 100 }
