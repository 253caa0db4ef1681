// SPDX-License-Identifier: MIT

package gridgen

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvmesh/geometry"
)

const methodGenerate = "Generate"

// Generate fills the empty 2D container vs with an nx×ny grid over
// [0, lengthX] under contour, distributing rows by law.
//
// Column i sits at x = i·lengthX/(nx−1); row j of that column sits at
// y = h(x)·law.Stretch(j/(ny−1), beta). Vertex ids are i + j*nx.
//
// Errors (the container is unchanged on every error):
//   - ErrNilContainer for a nil vs.
//   - ErrDimensionMismatch when vs is not 2D.
//   - ErrContainerNotEmpty when vs already holds vertices.
//   - ErrUnknownLaw for an undeclared law.
//   - ErrInvalidParameter for a non-finite or non-positive lengthX, a nil
//     contour, a zero or non-finite beta, or a non-finite or non-positive
//     height at any column.
//
// Complexity: O(nx·ny) time, O(nx) extra memory.
func Generate[F geometry.Float](vs *geometry.Vertices[F], lengthX float64, law Law, contour Contour, opts ...Option) error {
	s := newSettings(opts)
	heights, err := validate(vs, lengthX, law, contour, s)
	if err != nil {
		return err
	}

	nx, ny := vs.Dimensions().Nx(), vs.Dimensions().Ny()
	dx := lengthX / float64(nx-1)
	for j := 0; j < ny; j++ {
		eta := float64(j) / float64(ny-1)
		stretch := law.Stretch(eta, s.beta)
		for i := 0; i < nx; i++ {
			x := float64(i) * dx
			y := heights[i] * stretch
			if err := vs.Add(geometry.NewVertex2D(i+j*nx, F(x), F(y))); err != nil {
				return fmt.Errorf("%s: %w", methodGenerate, err)
			}
		}
	}

	return nil
}

// validate checks every precondition of Generate and returns the column heights.
func validate[F geometry.Float](vs *geometry.Vertices[F], lengthX float64, law Law, contour Contour, s settings) ([]float64, error) {
	if vs == nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, ErrNilContainer)
	}
	if !vs.Is2D() {
		return nil, fmt.Errorf("%s: %dD container: %w", methodGenerate, vs.Dims(), ErrDimensionMismatch)
	}
	if vs.Len() != 0 {
		return nil, fmt.Errorf("%s: %d vertices present: %w", methodGenerate, vs.Len(), ErrContainerNotEmpty)
	}
	if !law.Valid() {
		return nil, fmt.Errorf("%s: %v: %w", methodGenerate, law, ErrUnknownLaw)
	}
	if !finite(lengthX) || lengthX <= 0 {
		return nil, fmt.Errorf("%s: lengthX=%g must be finite and > 0: %w", methodGenerate, lengthX, ErrInvalidParameter)
	}
	if contour == nil {
		return nil, fmt.Errorf("%s: nil contour: %w", methodGenerate, ErrInvalidParameter)
	}
	if !finite(s.beta) || s.beta == 0 {
		return nil, fmt.Errorf("%s: beta=%g must be finite and non-zero: %w", methodGenerate, s.beta, ErrInvalidParameter)
	}

	nx := vs.Dimensions().Nx()
	dx := lengthX / float64(nx-1)
	heights := make([]float64, nx)
	for i := range heights {
		x := float64(i) * dx
		h := contour(x)
		if !finite(h) || h <= 0 {
			return nil, fmt.Errorf("%s: contour(%g)=%g must be finite and > 0: %w", methodGenerate, x, h, ErrInvalidParameter)
		}
		heights[i] = h
	}

	return heights, nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
