// SPDX-License-Identifier: MIT

package mesh

import (
	"errors"

	"github.com/katalvlaran/lvmesh/geometry"
)

var (
	// ErrNilContainer indicates a nil *geometry.Vertices.
	ErrNilContainer = errors.New("mesh: nil container")

	// ErrTopology indicates a lattice whose neighbour relation cannot close a cell.
	ErrTopology = errors.New("mesh: inconsistent lattice topology")

	// ErrInvalidBlock indicates a BlockConfig field outside its domain.
	ErrInvalidBlock = errors.New("mesh: invalid block configuration")

	// ErrUnknownBoundary indicates a BoundaryType outside the declared set.
	ErrUnknownBoundary = errors.New("mesh: unknown boundary")

	// ErrDimensionMismatch is geometry.ErrDimensionMismatch.
	ErrDimensionMismatch = geometry.ErrDimensionMismatch
)
