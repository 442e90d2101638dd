package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

var (
	// ErrUnsupportedImageFormat is returned for images that do not decode
	// to exactly three colour channels (grayscale, alpha or CMYK images).
	ErrUnsupportedImageFormat = errors.New("unsupported image format")

	// ErrImageTooLarge is returned when an image exceeds the pixel ceiling.
	ErrImageTooLarge = errors.New("image too large")
)

// Decoder turns encoded image bytes into an image.
//
// DecodeConfig must not decode pixel data; it is used to reject oversized
// images before any width×height allocation happens.
type Decoder interface {
	DecodeConfig(r io.Reader) (image.Config, error)
	Decode(r io.Reader) (image.Image, error)
}

// StandardDecoder decodes PNG, JPEG, GIF, BMP, TIFF and WebP.
type StandardDecoder struct{}

// DecodeConfig reads only the image header.
func (StandardDecoder) DecodeConfig(r io.Reader) (image.Config, error) {
	cfg, _, err := image.DecodeConfig(r)
	return cfg, err
}

// Decode decodes the full image.
func (StandardDecoder) Decode(r io.Reader) (image.Image, error) {
	return imaging.Decode(r)
}

// DecodeBytes decodes data with dec, rejecting images with more than
// maxPixels pixels (maxPixels <= 0 disables the check) before the pixel
// data is decoded.
func DecodeBytes(dec Decoder, data []byte, maxPixels int) (image.Image, error) {
	cfg, err := dec.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image header: %w", err)
	}
	if maxPixels > 0 && cfg.Width*cfg.Height > maxPixels {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrImageTooLarge, cfg.Width, cfg.Height, maxPixels)
	}

	img, err := dec.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// Channels reports how many colour channels a decoded image carries:
// 1 for grayscale, 3 for opaque colour and 4 for colour with alpha or CMYK.
//
// Formats that always carry alpha (NRGBA) count as 4 even when every pixel
// is opaque. Premultiplied RGBA and paletted images are 3 when opaque,
// which is how the PNG decoder returns truecolour images without alpha.
func Channels(img image.Image) int {
	switch m := img.(type) {
	case *image.Gray, *image.Gray16:
		return 1
	case *image.YCbCr:
		return 3
	case *image.NYCbCrA, *image.CMYK, *image.NRGBA, *image.NRGBA64:
		return 4
	case *image.Paletted:
		if m.Opaque() {
			return 3
		}
		return 4
	case *image.RGBA:
		if m.Opaque() {
			return 3
		}
		return 4
	case *image.RGBA64:
		if m.Opaque() {
			return 3
		}
		return 4
	}

	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		return 3
	}
	return 4
}

// RGBImage is a tightly packed 8-bit RGB buffer, three bytes per pixel in
// row-major order. Its origin is always (0,0).
type RGBImage struct {
	Width  int
	Height int
	Pix    []uint8
}

// RGB returns the components of the pixel at (x, y).
func (m *RGBImage) RGB(x, y int) (r, g, b uint8) {
	i := (y*m.Width + x) * 3
	return m.Pix[i], m.Pix[i+1], m.Pix[i+2]
}

// ToRGB copies an image into an RGBImage, dropping alpha. The result is
// re-based so that img.Bounds().Min maps to (0,0).
func ToRGB(img image.Image) *RGBImage {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	out := &RGBImage{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*3),
	}

	if src, ok := img.(*image.RGBA); ok {
		for y := 0; y < height; y++ {
			row := src.Pix[src.PixOffset(bounds.Min.X, bounds.Min.Y+y):]
			for x := 0; x < width; x++ {
				copy(out.Pix[(y*width+x)*3:(y*width+x)*3+3], row[x*4:x*4+3])
			}
		}
		return out
	}

	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			out.Pix[i] = uint8(r >> 8)
			out.Pix[i+1] = uint8(g >> 8)
			out.Pix[i+2] = uint8(b >> 8)
			i += 3
		}
	}
	return out
}

// ImageCache provides thread-safe caching of loaded images to avoid redundant disk reads.
//
// The cache stores decoded image.Image objects keyed by their file path. Once an image
// is loaded, subsequent Load() calls for the same path return the cached copy without
// disk I/O.
//
// ImageCache is safe for concurrent use by multiple goroutines.
//
// # Memory Management
//
// Cached images remain in memory until explicitly removed via Evict() or Clear().
// Floor-plan scans are large; long-running servers should evict after digitizing.
type ImageCache struct {
	mu        sync.RWMutex
	images    map[string]image.Image
	decoder   Decoder
	maxPixels int
}

// NewImageCache creates a cache that decodes with StandardDecoder and no
// pixel ceiling.
func NewImageCache() *ImageCache {
	return NewImageCacheWith(StandardDecoder{}, 0)
}

// NewImageCacheWith creates a cache with an explicit decoder and pixel ceiling.
func NewImageCacheWith(dec Decoder, maxPixels int) *ImageCache {
	return &ImageCache{
		images:    make(map[string]image.Image),
		decoder:   dec,
		maxPixels: maxPixels,
	}
}

// Load retrieves an image from the cache or loads it from disk if not cached.
//
// The image is cached using the exact path string provided. Different paths to the
// same file (e.g., relative vs absolute) will result in separate cache entries.
//
// # Errors
//
//   - Returns error if the file does not exist or cannot be read
//   - Returns error if the file is not a supported image
//   - Returns an ErrImageTooLarge error if the image exceeds the ceiling
func (c *ImageCache) Load(path string) (image.Image, error) {
	c.mu.RLock()
	if img, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}

	img, err := DecodeBytes(c.decoder, data, c.maxPixels)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.images[path] = img
	c.mu.Unlock()

	return img, nil
}

// Clear removes all images from the cache.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]image.Image)
	c.mu.Unlock()
}

// Evict removes a specific image from the cache by its path.
// If the path is not in the cache, this method does nothing.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// ImageInfo contains metadata about a loaded image file.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the detected image format, based on the file extension.
	Format string `json:"format"`

	// Channels is 1 (gray), 3 (RGB) or 4 (RGB with alpha, or CMYK).
	// Only 3-channel images can be digitized.
	Channels int `json:"channels"`

	// Digitizable reports whether the image passes the channel check.
	Digitizable bool `json:"digitizable"`

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadImageInfo loads an image through the cache and returns its metadata.
func LoadImageInfo(cache *ImageCache, path string) (*ImageInfo, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	format := "unknown"
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		format = "png"
	case ".jpg", ".jpeg":
		format = "jpeg"
	case ".gif":
		format = "gif"
	case ".bmp":
		format = "bmp"
	case ".tif", ".tiff":
		format = "tiff"
	case ".webp":
		format = "webp"
	}

	bounds := img.Bounds()
	channels := Channels(img)

	return &ImageInfo{
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
		Format:        format,
		Channels:      channels,
		Digitizable:   channels == 3,
		FileSizeBytes: stat.Size(),
	}, nil
}

// DimensionsResult contains the width and height of an image.
type DimensionsResult struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// GetDimensions returns the dimensions of an image without additional metadata.
func GetDimensions(cache *ImageCache, path string) (*DimensionsResult, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	return &DimensionsResult{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}, nil
}
