// Package grid provides a fixed-size rectangular container addressed by
// Coordinate, together with the neighbor resolver, text parsing and
// rendering shared by the simulations in this module.
//
// Reads are bounds-tolerant: Get reports absence for any coordinate outside
// the grid. Writes are not: Set and Mutate panic with a *BoundsError, since
// every mutating caller is expected to have resolved the coordinate through
// Neighbors or ForEachCell first.
//
// Traversal is row-major (y ascending, then x ascending) everywhere, and the
// neighbor order is fixed: top-left, top, top-right, left, right,
// bottom-left, bottom, bottom-right.
package grid
