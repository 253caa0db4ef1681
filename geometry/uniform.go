// SPDX-License-Identifier: MIT

package geometry

import "fmt"

// PopulateUniform fills every lattice point with the unit-square (2D) or
// unit-cube (3D) reference coordinates i/(nx-1), j/(ny-1)[, k/(nz-1)],
// ids assigned by the row-major formula. It is the topology fixture used
// independently of the grid generator.
//
// Returns ErrContainerNotEmpty if any vertex is already present; the
// container is then left untouched.
// Complexity: O(TotalPoints).
func (vs *Vertices[F]) PopulateUniform() error {
	if vs.Len() != 0 {
		return fmt.Errorf("%s: %d vertices present: %w", methodPopulateUniform, vs.Len(), ErrContainerNotEmpty)
	}
	nx, ny, nz := vs.dims.Nx(), vs.dims.Ny(), vs.dims.Nz()
	dx := 1.0 / float64(nx-1)
	dy := 1.0 / float64(ny-1)

	if vs.dims.Is2D() {
		for j := 0; j < ny; j++ {
			for i := 0; i < nx; i++ {
				id := i + j*nx
				v := NewVertex2D(id, F(float64(i)*dx), F(float64(j)*dy))
				if err := vs.Add(v); err != nil {
					return fmt.Errorf("%s: %w", methodPopulateUniform, err)
				}
			}
		}
		return nil
	}

	dz := 1.0 / float64(nz-1)
	for k := 0; k < nz; k++ {
		for j := 0; j < ny; j++ {
			for i := 0; i < nx; i++ {
				id := i + j*nx + k*nx*ny
				v := NewVertex3D(id, F(float64(i)*dx), F(float64(j)*dy), F(float64(k)*dz))
				if err := vs.Add(v); err != nil {
					return fmt.Errorf("%s: %w", methodPopulateUniform, err)
				}
			}
		}
	}

	return nil
}
