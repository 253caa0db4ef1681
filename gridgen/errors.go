// SPDX-License-Identifier: MIT

package gridgen

import (
	"errors"

	"github.com/katalvlaran/lvmesh/geometry"
)

var (
	// ErrInvalidParameter indicates a generator argument that cannot produce
	// a valid grid (non-positive length, zero beta, non-positive height, ...).
	ErrInvalidParameter = errors.New("gridgen: invalid parameter")

	// ErrNilContainer indicates Generate was called without a container.
	ErrNilContainer = errors.New("gridgen: nil container")

	// ErrUnknownLaw indicates a Law value or name outside the supported set.
	ErrUnknownLaw = errors.New("gridgen: unknown clustering law")

	// ErrInvalidExpression indicates a contour expression that does not compile
	// or does not evaluate to a number.
	ErrInvalidExpression = errors.New("gridgen: invalid contour expression")

	// ErrDimensionMismatch is geometry.ErrDimensionMismatch; the generator
	// only fills 2D containers.
	ErrDimensionMismatch = geometry.ErrDimensionMismatch

	// ErrContainerNotEmpty is geometry.ErrContainerNotEmpty.
	ErrContainerNotEmpty = geometry.ErrContainerNotEmpty
)
