// Package detection turns a decoded floor-plan raster into labelled rooms.
//
// The package implements the pixel-level half of the digitizer:
//
//   - Classify: maps one RGB triple to a semantic Label using the room
//     colour palettes (living, bedroom, balcony, kitchen, utility, loggia,
//     foyer, core). Background, walls and annotation ink are Ignore;
//     colours far from every palette sample are Other.
//   - ClassifyImage: classifies a whole RGB buffer into a LabelGrid.
//   - LocateFootprint: finds the bounding box of all meaningfully
//     labelled pixels. This box is the origin of every exported polygon.
//   - ExtractRegions: splits the grid into 4-connected same-label regions.
//
// # Coordinate System
//
// Pixel coordinates are 0-based with the origin at the top-left corner.
// Bounds are inclusive on both ends, so a single pixel at (3,4) has bounds
// (3,4)-(3,4) and a width of 1.
//
// # Memory
//
// ClassifyImage allocates one byte per pixel, and ExtractRegions allocates
// a visited array and an explicit stack, both sized width×height. Callers
// are expected to bound image dimensions before classifying (see the
// digitizer's MaxPixels option). No recursion is used anywhere, so large
// regions cannot exhaust the goroutine stack.
package detection
