package ocr

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"strings"
	"sync"

	"github.com/otiai10/gosseract/v2"
)

// Tesseract is an Engine backed by a gosseract client.
//
// The client is configured once in NewTesseract: language, character
// whitelist and PSM_SINGLE_BLOCK page segmentation, which suits a drawing
// annotated with short, isolated numbers.
//
// # Cancellation
//
// Tesseract itself cannot be interrupted. When the context passed to
// Recognize expires, Recognize returns immediately and the native call is
// left to finish in the background; the client is released by whichever
// of Close or the background call finishes last.
type Tesseract struct {
	mu      sync.Mutex
	client  *gosseract.Client
	opts    Options
	running bool
	closed  bool
}

// NewTesseract creates and configures a Tesseract engine.
//
// Returns an error wrapping ErrOCRUnavailable if the client rejects the
// configuration (missing language data, bad tessdata prefix).
func NewTesseract(opts Options) (*Tesseract, error) {
	if opts.Language == "" {
		opts.Language = "eng"
	}

	client := gosseract.NewClient()

	if opts.TessdataPrefix != "" {
		if err := client.SetTessdataPrefix(opts.TessdataPrefix); err != nil {
			client.Close()
			return nil, fmt.Errorf("%w: failed to set tessdata path: %w", ErrOCRUnavailable, err)
		}
	}
	if err := client.SetLanguage(opts.Language); err != nil {
		client.Close()
		return nil, fmt.Errorf("%w: failed to set language: %w", ErrOCRUnavailable, err)
	}
	if opts.Whitelist != "" {
		if err := client.SetWhitelist(opts.Whitelist); err != nil {
			client.Close()
			return nil, fmt.Errorf("%w: failed to set whitelist: %w", ErrOCRUnavailable, err)
		}
	}
	if err := client.SetPageSegMode(gosseract.PSM_SINGLE_BLOCK); err != nil {
		client.Close()
		return nil, fmt.Errorf("%w: failed to set page segmentation mode: %w", ErrOCRUnavailable, err)
	}

	return &Tesseract{client: client, opts: opts}, nil
}

// NewTesseractFactory returns a Factory creating Tesseract engines with opts.
func NewTesseractFactory(opts Options) Factory {
	return func() (Engine, error) {
		return NewTesseract(opts)
	}
}

// Recognize performs word-level OCR on img.
//
// The image is preprocessed (see Preprocess), encoded as PNG and passed to
// Tesseract; word boxes are scaled back to img's coordinates. Empty words
// are dropped.
func (t *Tesseract) Recognize(ctx context.Context, img image.Image) ([]Word, error) {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return nil, fmt.Errorf("%w: engine closed", ErrOCRUnavailable)
	}
	if t.running {
		t.mu.Unlock()
		return nil, errors.New("ocr: recognition already in progress")
	}
	t.running = true
	t.mu.Unlock()

	prepared, scale := Preprocess(img, t.opts.MinWidth, t.opts.Threshold)

	type result struct {
		boxes []gosseract.BoundingBox
		err   error
	}
	done := make(chan result, 1)

	go func() {
		boxes, err := t.recognize(prepared)

		t.mu.Lock()
		t.running = false
		if t.closed {
			t.client.Close()
		}
		t.mu.Unlock()

		done <- result{boxes: boxes, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %w", ErrOCRUnavailable, ctx.Err())
	case r := <-done:
		if r.err != nil {
			return nil, fmt.Errorf("%w: %w", ErrOCRUnavailable, r.err)
		}
		return toWords(r.boxes, scale), nil
	}
}

func (t *Tesseract) recognize(img image.Image) ([]gosseract.BoundingBox, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	if err := t.client.SetImageFromBytes(buf.Bytes()); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	boxes, err := t.client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, fmt.Errorf("failed to get bounding boxes: %w", err)
	}
	return boxes, nil
}

// Close releases the native client. Closing twice is a no-op.
func (t *Tesseract) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return nil
	}
	t.closed = true
	if t.running {
		// the in-flight call closes the client when it returns
		return nil
	}
	return t.client.Close()
}

func toWords(boxes []gosseract.BoundingBox, scale float64) []Word {
	words := make([]Word, 0, len(boxes))
	for _, box := range boxes {
		text := strings.TrimSpace(box.Word)
		if text == "" {
			continue
		}
		words = append(words, Word{
			Text:       text,
			Confidence: box.Confidence / 100.0,
			Bounds: unscale(Bounds{
				X1: box.Box.Min.X,
				Y1: box.Box.Min.Y,
				X2: box.Box.Max.X,
				Y2: box.Box.Max.Y,
			}, scale),
		})
	}
	return words
}

// Info contains information about the OCR subsystem.
type Info struct {
	Available    bool   `json:"available"`
	Version      string `json:"version,omitempty"`
	Error        string `json:"error,omitempty"`
	Backend      string `json:"backend"`
	Language     string `json:"language"`
	TessdataPath string `json:"tessdata_path,omitempty"`
}

// Probe checks whether an engine can be created with opts and can complete
// a recognition pass over a blank image.
func Probe(ctx context.Context, opts Options) Info {
	info := Info{
		Backend:      "gosseract",
		Language:     opts.Language,
		TessdataPath: opts.TessdataPrefix,
	}

	engine, err := NewTesseract(opts)
	if err != nil {
		info.Error = err.Error()
		return info
	}
	defer engine.Close()

	info.Version = engine.client.Version()

	blank := image.NewGray(image.Rect(0, 0, 32, 32))
	for i := range blank.Pix {
		blank.Pix[i] = 0xFF
	}
	if _, err := engine.Recognize(ctx, blank); err != nil {
		info.Error = err.Error()
		return info
	}

	info.Available = true
	return info
}

// Available reports whether Tesseract works with opts.
func Available(opts Options) bool {
	return Probe(context.Background(), opts).Available
}
