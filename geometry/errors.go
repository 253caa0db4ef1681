// SPDX-License-Identifier: MIT

package geometry

import "errors"

// Sentinel errors for geometry operations. Callers MUST match them with
// errors.Is; implementations attach context with %w.
var (
	// ErrInvalidDimensions indicates an axis count below MinAxisPoints, or
	// an uninitialised (zero-value) Dimensions.
	ErrInvalidDimensions = errors.New("geometry: invalid lattice dimensions")

	// ErrDimensionMismatch indicates a 2D value met a 3D one (vertex vs container).
	ErrDimensionMismatch = errors.New("geometry: dimension mismatch")

	// ErrIDOutOfRange indicates a vertex id outside [0, TotalPoints).
	ErrIDOutOfRange = errors.New("geometry: vertex id out of range")

	// ErrDuplicateVertex indicates the vertex id is already populated.
	ErrDuplicateVertex = errors.New("geometry: duplicate vertex id")

	// ErrContainerNotEmpty indicates an operation that requires an empty container.
	ErrContainerNotEmpty = errors.New("geometry: container is not empty")
)
