// Package digitizer converts an annotated floor-plan raster into typed,
// calibrated room rectangles.
//
// The pipeline is:
//
//  1. decode, rejecting images above the pixel ceiling and images that
//     are not 3-channel colour
//  2. classify every pixel against the room palettes
//  3. locate the footprint (bounding box of room pixels)
//  4. calibrate mm-per-pixel from the dimension labels (OCR, best effort)
//  5. extract 4-connected regions above the minimum size
//  6. map each region's bounding box to millimetres relative to the
//     footprint's top-left corner
//
// Calibration failure never aborts the pipeline: rooms are then reported
// in pixel units and the scale fields are null. Every call owns its own
// buffers and OCR engine, so a Digitizer may be used from many goroutines.
package digitizer
