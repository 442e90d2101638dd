// Package calibration derives millimetre-per-pixel factors from the
// dimension labels printed around a floor plan.
//
// Plans are annotated filmstrip-style: overall widths are written along
// the top or bottom edge and overall heights along the left or right edge.
// Calibration runs OCR once over the whole image, keeps words that reduce
// to a positive integer, and sorts them by position:
//
//   - centre in the top or bottom 22% of the image: horizontal label
//   - otherwise, centre in the left or right 22%: vertical label
//   - anything else is ignored for scaling but still reported
//
// For each axis the largest label is taken as the full span, falling back
// to the sum of the labels when no usable maximum exists. The span divided
// by the footprint extent in pixels is the scale for that axis. A missing
// axis borrows the other axis' factor (square pixels); with no labels at
// all both factors are nil.
package calibration
