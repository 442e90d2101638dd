// Package geometry provides the small set of planar helpers shared by the
// raster digitizer and the outline tracer.
//
// Points use the plan convention of the rest of the module: X grows to the
// right and Z (or Y for raster data) grows downward. Winding is therefore
// reported in screen terms: a positive signed area means the ring is
// clockwise on screen.
package geometry
