package calibration

import (
	"strconv"
	"strings"

	"github.com/ironsheep/floorplan-mcp/internal/ocr"
)

// MarginFraction is the share of the image width or height, measured from
// each edge, in which dimension labels are expected.
const MarginFraction = 0.22

// Axis says which dimension a label measures.
type Axis int

const (
	AxisNone Axis = iota
	AxisHorizontal
	AxisVertical
)

func (a Axis) String() string {
	switch a {
	case AxisHorizontal:
		return "horizontal"
	case AxisVertical:
		return "vertical"
	default:
		return "none"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a Axis) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// Token is an OCR word that reads as a positive integer.
type Token struct {
	Text    string     `json:"text"`
	Value   int        `json:"value"`
	Bounds  ocr.Bounds `json:"bounds"`
	CenterX float64    `json:"centerX"`
	CenterY float64    `json:"centerY"`
	Axis    Axis       `json:"axis"`
}

// ParseValue strips every non-ASCII-digit from text and parses the rest.
// ok is false when nothing is left or the value is not positive.
func ParseValue(text string) (value int, ok bool) {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, text)
	if digits == "" {
		return 0, false
	}
	v, err := strconv.Atoi(digits)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

// ClassifyPosition assigns an axis to a label centred at (cx, cy) in an
// image of the given size. The top/bottom test runs first.
func ClassifyPosition(cx, cy float64, width, height int) Axis {
	w, h := float64(width), float64(height)
	if cy < h*MarginFraction || cy > h*(1-MarginFraction) {
		return AxisHorizontal
	}
	if cx < w*MarginFraction || cx > w*(1-MarginFraction) {
		return AxisVertical
	}
	return AxisNone
}

// Tokens filters words to numeric tokens and classifies each by position.
func Tokens(words []ocr.Word, width, height int) []Token {
	tokens := make([]Token, 0, len(words))
	for _, w := range words {
		v, ok := ParseValue(w.Text)
		if !ok {
			continue
		}
		cx, cy := w.Bounds.Center()
		tokens = append(tokens, Token{
			Text:    w.Text,
			Value:   v,
			Bounds:  w.Bounds,
			CenterX: cx,
			CenterY: cy,
			Axis:    ClassifyPosition(cx, cy, width, height),
		})
	}
	return tokens
}
