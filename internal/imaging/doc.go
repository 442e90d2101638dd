// Package imaging loads floor-plan rasters and provides the pixel-level
// helpers used around digitizing: color sampling, palette discovery and
// debug overlays.
//
// All coordinates are 0-based with (0,0) at the top-left corner, X
// increasing rightward and Y increasing downward. For regions, (x1,y1) is
// inclusive and (x2,y2) is exclusive.
//
// # Decoding
//
// Images are decoded through a Decoder. The header is inspected with
// DecodeConfig before any pixel data is allocated, so oversized scans are
// rejected with ErrImageTooLarge instead of exhausting memory. ToRGB
// flattens any decoded image into a packed 8-bit RGB buffer with its origin
// moved to (0,0), which is the form the classifier consumes.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. The remaining functions are
// stateless and may be called concurrently on images nobody is writing to.
//
// # Colors
//
// Colors are reported as hex "#RRGGBB", 8-bit RGB and HSL (hue 0-360,
// saturation and lightness 0-100). Plan fills are flat, so DominantColors
// counts exact colors; its output can be pasted into a new palette.
package imaging
