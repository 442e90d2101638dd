package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// OverlayBox is one rectangle to draw, in source image pixel coordinates.
// (X1,Y1) is inclusive, (X2,Y2) exclusive.
type OverlayBox struct {
	X1, Y1, X2, Y2 int
	Label          string
	Color          string // "#RRGGBB"; empty means red
}

// OverlayResult contains the rendered overlay as base64 PNG.
type OverlayResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
	Boxes       int    `json:"boxes"`
}

// RenderOverlay draws boxes and their labels over img.
//
// When crop is non-nil the output is cut to that region first (box
// coordinates stay in source pixels). A scale other than 1 resizes the
// result with Lanczos resampling after drawing, so labels stay readable
// on large scans when scale < 1.
func RenderOverlay(img image.Image, boxes []OverlayBox, crop *Region, scale float64) (*OverlayResult, error) {
	bounds := img.Bounds()
	canvas := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(canvas, canvas.Bounds(), img, bounds.Min, draw.Src)

	for _, b := range boxes {
		c := parseBoxColor(b.Color)
		strokeRect(canvas, image.Rect(b.X1, b.Y1, b.X2, b.Y2), c, 2)
		if b.Label != "" {
			drawLabel(canvas, b.X1+3, b.Y1+3, b.Label, color.RGBA{255, 255, 255, 255}, c)
		}
	}

	var out image.Image = canvas
	if crop != nil {
		r := image.Rect(crop.X1, crop.Y1, crop.X2, crop.Y2)
		if r.Intersect(canvas.Bounds()).Empty() {
			return nil, fmt.Errorf("crop region (%d,%d)-(%d,%d) outside image bounds", crop.X1, crop.Y1, crop.X2, crop.Y2)
		}
		out = imaging.Crop(out, r)
	}

	if scale > 0 && scale != 1.0 {
		w := int(float64(out.Bounds().Dx()) * scale)
		h := int(float64(out.Bounds().Dy()) * scale)
		if w < 1 || h < 1 {
			return nil, fmt.Errorf("scale %.3f produces an empty image", scale)
		}
		out = imaging.Resize(out, w, h, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return nil, fmt.Errorf("failed to encode overlay: %w", err)
	}

	return &OverlayResult{
		Width:       out.Bounds().Dx(),
		Height:      out.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
		Boxes:       len(boxes),
	}, nil
}

// parseBoxColor parses "#RRGGBB", falling back to opaque red.
func parseBoxColor(hex string) color.RGBA {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{255, 0, 0, 255}
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// strokeRect draws the outline of r, thickness pixels wide, inside r.
func strokeRect(img *image.RGBA, r image.Rectangle, c color.RGBA, thickness int) {
	r = r.Intersect(img.Bounds())
	if r.Empty() {
		return
	}
	src := image.NewUniform(c)
	t := min(thickness, r.Dx(), r.Dy())

	draw.Draw(img, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+t), src, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(r.Min.X, r.Max.Y-t, r.Max.X, r.Max.Y), src, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(r.Min.X, r.Min.Y, r.Min.X+t, r.Max.Y), src, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(r.Max.X-t, r.Min.Y, r.Max.X, r.Max.Y), src, image.Point{}, draw.Src)
}

// drawLabel draws text on a filled background box whose top-left is (x, y).
func drawLabel(img *image.RGBA, x, y int, text string, fg, bg color.RGBA) {
	face := basicfont.Face7x13
	width := font.MeasureString(face, text).Ceil()
	height := face.Metrics().Height.Ceil()

	box := image.Rect(x-1, y-1, x+width+1, y+height+1).Intersect(img.Bounds())
	draw.Draw(img, box, image.NewUniform(bg), image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(fg),
		Face: face,
		Dot:  fixed.P(x, y+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(text)
}
