// SPDX-License-Identifier: MIT

// Package mesh derives the face-connected quadrilateral cell topology of a
// populated 2D lattice and bundles lattice plus cells into a Block.
//
// Cells follow an arena-and-index layout: a Face stores the ids of its two
// vertices, never the vertices themselves. The geometry.Vertices container
// that produced the cells owns the coordinates and must be kept to resolve
// them (ResolveFace, Block.Quad).
//
// Every cell is anchored at its lower-left vertex v and bounded by
//
//	n ──north── ne
//	│           │
//	west       east
//	│           │
//	v ──south── e
//
// with south = (v, e), west = (v, n), north = (n, ne) and east = (e, ne).
// A complete nx×ny lattice yields (nx−1)·(ny−1) cells with ids 0, 1, 2, …
// in the container order of their anchors.
//
// Errors:
//
//   - ErrNilContainer: Build or a resolver received a nil container.
//   - ErrDimensionMismatch: a non-2D container, or a cell whose
//     dimensionality differs from the collection's.
//   - ErrTopology: an anchor has east and north neighbours but no
//     north-east one; no partial collection is returned.
//   - ErrInvalidBlock, ErrUnknownBoundary: BlockConfig and Boundary misuse.
package mesh
