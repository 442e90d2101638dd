package digitizer

import (
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"time"

	"github.com/ironsheep/floorplan-mcp/internal/calibration"
	"github.com/ironsheep/floorplan-mcp/internal/detection"
	"github.com/ironsheep/floorplan-mcp/internal/imaging"
	"github.com/ironsheep/floorplan-mcp/internal/logging"
	"github.com/ironsheep/floorplan-mcp/internal/ocr"
	"github.com/ironsheep/floorplan-mcp/internal/outline"
)

// ErrUnsupportedImageFormat and ErrFootprintNotFound are the fatal
// input errors. They are re-exported so callers need only this package.
var (
	ErrUnsupportedImageFormat = imaging.ErrUnsupportedImageFormat
	ErrFootprintNotFound      = detection.ErrFootprintNotFound
	ErrImageTooLarge          = imaging.ErrImageTooLarge
)

// Source describes the decoded input image.
type Source struct {
	WidthPixels  int `json:"widthPixels"`
	HeightPixels int `json:"heightPixels"`
}

// Meta describes the footprint and calibration of a digitized plan.
// Scale fields are null when no dimension labels were read.
type Meta struct {
	Source       Source              `json:"source"`
	LayoutBounds detection.Bounds    `json:"layoutBounds"`
	WidthMM      *float64            `json:"widthMm"`
	HeightMM     *float64            `json:"heightMm"`
	MMPerPixelX  *float64            `json:"mmPerPixelX"`
	MMPerPixelY  *float64            `json:"mmPerPixelY"`
	OCRValues    []calibration.Token `json:"ocrValues"`
	OCRError     string              `json:"ocrError,omitempty"`
}

// Result is the digitized plan.
type Result struct {
	Meta  Meta   `json:"meta"`
	Rooms []Room `json:"rooms"`
}

// Digitizer runs the raster pipeline. The zero value is not usable; create
// one with New.
type Digitizer struct {
	// Decoder decodes input bytes.
	Decoder imaging.Decoder

	// NewEngine creates the OCR engine for one call. Options.OCRWhitelist
	// overrides OCR.Whitelist.
	NewEngine func(ocr.Options) (ocr.Engine, error)

	// OCR is the base engine configuration.
	OCR ocr.Options
}

// New returns a Digitizer using the standard decoders and Tesseract.
func New(opts ocr.Options) *Digitizer {
	return &Digitizer{
		Decoder: imaging.StandardDecoder{},
		NewEngine: func(o ocr.Options) (ocr.Engine, error) {
			return ocr.NewTesseract(o)
		},
		OCR: opts,
	}
}

// DigitizeFile reads path and digitizes it.
func (d *Digitizer) DigitizeFile(ctx context.Context, path string, opts Options) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	return d.Digitize(ctx, data, opts)
}

// Digitize decodes data and runs the pipeline.
func (d *Digitizer) Digitize(ctx context.Context, data []byte, opts Options) (*Result, error) {
	opts = opts.withDefaults()

	img, err := imaging.DecodeBytes(d.Decoder, data, opts.MaxPixels)
	if err != nil {
		return nil, err
	}
	return d.DigitizeImage(ctx, img, opts)
}

// DigitizeImage runs the pipeline on an already decoded image.
//
// Returns an error wrapping ErrUnsupportedImageFormat when img is not a
// 3-channel colour image, ErrImageTooLarge when it exceeds
// Options.MaxPixels, and ErrFootprintNotFound when it holds no room
// colours. OCR problems are logged and reported in Meta.OCRError only.
func (d *Digitizer) DigitizeImage(ctx context.Context, img image.Image, opts Options) (*Result, error) {
	log := logging.Logger()
	opts = opts.withDefaults()
	start := time.Now()

	bounds := img.Bounds()
	if bounds.Dx()*bounds.Dy() > opts.MaxPixels {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrImageTooLarge, bounds.Dx(), bounds.Dy(), opts.MaxPixels)
	}
	if ch := imaging.Channels(img); ch != 3 {
		return nil, fmt.Errorf("%w: expected 3 channels, got %d", ErrUnsupportedImageFormat, ch)
	}

	grid := detection.ClassifyImage(imaging.ToRGB(img))
	footprint, err := detection.LocateFootprint(grid)
	if err != nil {
		return nil, err
	}
	log.Debug("footprint located",
		"width", bounds.Dx(),
		"height", bounds.Dy(),
		"footprint", fmt.Sprintf("(%d,%d)-(%d,%d)", footprint.MinX, footprint.MinY, footprint.MaxX, footprint.MaxY))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	scale, ocrErr := d.calibrate(ctx, img, footprint, opts)

	// A cancelled caller is not an OCR failure.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	regions := detection.ExtractRegions(grid, opts.MinRegionPixels)
	mmX, mmY := scale.Factors()
	rooms := make([]Room, 0, len(regions))
	for _, r := range regions {
		rooms = append(rooms, MapRegion(r, footprint, mmX, mmY))
	}

	res := &Result{
		Meta: Meta{
			Source:       Source{WidthPixels: bounds.Dx(), HeightPixels: bounds.Dy()},
			LayoutBounds: footprint,
			WidthMM:      scale.WidthMM,
			HeightMM:     scale.HeightMM,
			MMPerPixelX:  scale.MMPerPixelX,
			MMPerPixelY:  scale.MMPerPixelY,
			OCRValues:    scale.Tokens,
		},
		Rooms: rooms,
	}
	if ocrErr != nil {
		res.Meta.OCRError = ocrErr.Error()
	}

	log.Debug("digitized",
		"rooms", len(rooms),
		"calibrated", scale.Calibrated(),
		"elapsed", time.Since(start))
	return res, nil
}

func (d *Digitizer) calibrate(ctx context.Context, img image.Image, footprint detection.Bounds, opts Options) (calibration.Scale, error) {
	if opts.DisableOCR || d.NewEngine == nil {
		return calibration.Empty(), nil
	}

	ocrOpts := d.OCR
	ocrOpts.Whitelist = opts.OCRWhitelist
	factory := func() (ocr.Engine, error) { return d.NewEngine(ocrOpts) }

	scale, err := calibration.Calibrate(ctx, factory, img, footprint, opts.OCRTimeout)
	if err != nil {
		if !errors.Is(err, ocr.ErrOCRUnavailable) {
			err = fmt.Errorf("%w: %w", ocr.ErrOCRUnavailable, err)
		}
		logging.Logger().Warn("calibration unavailable, reporting pixel units", "error", err)
		return calibration.Empty(), err
	}
	return scale, nil
}

// Plan converts the rooms into an outline plan whose overall dimensions
// are the footprint, in the same units as the rooms.
func (r *Result) Plan() outline.Plan {
	w := float64(r.Meta.LayoutBounds.Width())
	h := float64(r.Meta.LayoutBounds.Height())
	if r.Meta.MMPerPixelX != nil {
		w = round2(w * *r.Meta.MMPerPixelX)
	}
	if r.Meta.MMPerPixelY != nil {
		h = round2(h * *r.Meta.MMPerPixelY)
	}

	plan := outline.Plan{
		OverallDimensions: outline.Dimensions{Width: w, Height: h},
		Spaces:            make([]outline.Space, 0, len(r.Rooms)),
	}
	for _, room := range r.Rooms {
		if !room.Type.IsRoom() {
			continue
		}
		plan.Spaces = append(plan.Spaces, outline.Space{
			Type:            room.Type.String(),
			Comment:         fmt.Sprintf("room %d", room.ID),
			StartCoordinate: []float64{room.StartCoordinate[0], room.StartCoordinate[1]},
			EndCoordinate:   []float64{room.EndCoordinate[0], room.EndCoordinate[1]},
		})
	}
	return plan
}
