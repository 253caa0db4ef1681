// SPDX-License-Identifier: MIT

// Package geometry holds the structured-lattice primitives of lvmesh: the
// lattice shape (Dimensions), immutable coordinate points, indexed vertices
// and the dense point container (Vertices) with its row-major addressing.
//
// What:
//
//   - Dimensions describes an nx×ny (2D) or nx×ny×nz (3D) lattice, every axis ≥ 2.
//   - Vertices stores one slot per lattice point; the slot index IS the vertex id.
//   - id = i + j*nx (+ k*nx*ny) is the only addressing key; LinearToGrid and
//     GridToLinear convert between the two forms.
//   - Neighbor steps North(+j), South(−j), East(+i), West(−i), Up(+k), Down(−k).
//
// Why:
//
//   - Row-major ids turn adjacency into integer arithmetic: no search, no maps.
//   - Boundary detection is a pure index comparison, which is what the mesh
//     topology builder relies on to decide where cells are anchored.
//
// Complexity:
//
//   - Add, Get, Exists, LinearToGrid, GridToLinear, Neighbor: O(1).
//   - PopulateUniform, Vertices: O(nx·ny·nz), Memory: O(nx·ny·nz).
//
// Precision:
//
//   - Vertices[F] is generic over F ∈ {float32, float64}; the precision is a
//     container-wide choice, never per point.
//
// Errors:
//
//   - ErrInvalidDimensions: an axis count below MinAxisPoints or a zero-value shape.
//   - ErrDimensionMismatch: a 2D vertex offered to a 3D container or vice versa.
//   - ErrIDOutOfRange: a vertex id outside [0, TotalPoints).
//   - ErrDuplicateVertex: a vertex id that is already populated.
//   - ErrContainerNotEmpty: PopulateUniform on a container that already holds points.
//
// Absence (a boundary step or an id that is not populated yet) is not an
// error: lookups return (zero, false) and callers branch on it.
//
// Concurrency:
//
//   - Vertices is not synchronised. Populate it from one goroutine; once
//     population is finished it is read-only and may be shared freely.
package geometry
