// Package outline reconstructs the outer boundary of a unit from its
// axis-aligned room rectangles.
//
// The input is a Plan: overall dimensions plus a list of Spaces, each a
// rectangle given by two opposite corners. The output is one ordered
// polygon, centred on the plan midpoint, that follows the outside of the
// union of all spaces.
//
// # Algorithm
//
//  1. Compress: every distinct rectangle edge, plus the plan bounds,
//     becomes a cut line. Cells between adjacent cut lines form a coarse
//     grid regardless of the plan's units.
//  2. Occupy: cells covered by a space are occupied. Each column is then
//     filled between its first and last occupied cell, which absorbs
//     hallways and other circulation that is not declared as a space.
//  3. Cancel: the four edges of every occupied cell are toggled in a set.
//     Interior edges are toggled twice and vanish; only boundary edges
//     survive.
//  4. Walk: starting from the smallest (x,y) vertex, boundary edges are
//     followed preferring a right turn, then straight, then left, then
//     reverse. Collinear vertices are merged.
//
// Before the walk is trusted, the occupied cells must form a single
// 4-connected component with Euler characteristic 1. Anything else, an
// empty plan, or a walk that does not close yields the plan rectangle as a
// fallback. Tracing never fails.
package outline
