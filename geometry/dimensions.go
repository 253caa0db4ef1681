// SPDX-License-Identifier: MIT

package geometry

import "fmt"

// MinAxisPoints is the smallest point count allowed along any lattice axis.
// A single-point axis has no interior and admits no neighbour queries.
const MinAxisPoints = 2

// Method tags used to prefix wrapped errors.
const (
	methodDimensions2D = "NewDimensions2D"
	methodDimensions3D = "NewDimensions3D"
)

// Index is a lattice coordinate (i along x, j along y, k along z).
// On 2D lattices K is always 0.
type Index struct {
	I, J, K int
}

// Dimensions is the logical shape of a structured lattice: either
// TwoD{nx, ny} or ThreeD{nx, ny, nz}. Build it with NewDimensions2D or
// NewDimensions3D; the zero value is invalid and reports Dims() == 0.
// A Dimensions value is immutable.
type Dimensions struct {
	nx, ny, nz int // nz == 1 for 2D lattices
	dims       int // 2, 3, or 0 for the zero value
}

// NewDimensions2D returns the shape of an nx×ny lattice.
// Returns ErrInvalidDimensions if either count is below MinAxisPoints.
// Complexity: O(1).
func NewDimensions2D(nx, ny int) (Dimensions, error) {
	if nx < MinAxisPoints || ny < MinAxisPoints {
		return Dimensions{}, fmt.Errorf("%s: nx=%d, ny=%d (each must be ≥ %d): %w",
			methodDimensions2D, nx, ny, MinAxisPoints, ErrInvalidDimensions)
	}

	return Dimensions{nx: nx, ny: ny, nz: 1, dims: 2}, nil
}

// NewDimensions3D returns the shape of an nx×ny×nz lattice.
// Returns ErrInvalidDimensions if any count is below MinAxisPoints.
// Complexity: O(1).
func NewDimensions3D(nx, ny, nz int) (Dimensions, error) {
	if nx < MinAxisPoints || ny < MinAxisPoints || nz < MinAxisPoints {
		return Dimensions{}, fmt.Errorf("%s: nx=%d, ny=%d, nz=%d (each must be ≥ %d): %w",
			methodDimensions3D, nx, ny, nz, MinAxisPoints, ErrInvalidDimensions)
	}

	return Dimensions{nx: nx, ny: ny, nz: nz, dims: 3}, nil
}

// Dims reports the dimensionality: 2, 3, or 0 for an uninitialised value.
func (d Dimensions) Dims() int { return d.dims }

// Is2D reports whether d describes a 2D lattice.
func (d Dimensions) Is2D() bool { return d.dims == 2 }

// Valid reports whether d was produced by one of the constructors.
func (d Dimensions) Valid() bool { return d.dims != 0 }

// Nx returns the point count along i.
func (d Dimensions) Nx() int { return d.nx }

// Ny returns the point count along j.
func (d Dimensions) Ny() int { return d.ny }

// Nz returns the point count along k; 1 for 2D lattices.
func (d Dimensions) Nz() int { return d.nz }

// TotalPoints returns the product of the axis counts (0 for the zero value).
func (d Dimensions) TotalPoints() int {
	if !d.Valid() {
		return 0
	}
	return d.nx * d.ny * d.nz
}

// Contains reports whether idx lies in [0,nx)×[0,ny)×[0,nz).
// For 2D lattices only K == 0 is inside.
// Complexity: O(1).
func (d Dimensions) Contains(idx Index) bool {
	return d.Valid() &&
		idx.I >= 0 && idx.I < d.nx &&
		idx.J >= 0 && idx.J < d.ny &&
		idx.K >= 0 && idx.K < d.nz
}

// Linear applies the row-major formula i + j*nx + k*nx*ny.
// It does not check bounds; pair it with Contains.
func (d Dimensions) Linear(idx Index) int {
	return idx.I + idx.J*d.nx + idx.K*d.nx*d.ny
}

// Grid inverts Linear for ids in [0, TotalPoints).
// It does not check bounds or presence; Vertices.LinearToGrid does.
func (d Dimensions) Grid(id int) Index {
	if d.dims == 3 {
		return Index{I: id % d.nx, J: (id / d.nx) % d.ny, K: id / (d.nx * d.ny)}
	}
	return Index{I: id % d.nx, J: id / d.nx}
}

// String renders the shape as "2D{nx=…, ny=…}" or "3D{nx=…, ny=…, nz=…}".
func (d Dimensions) String() string {
	switch d.dims {
	case 2:
		return fmt.Sprintf("2D{nx=%d, ny=%d}", d.nx, d.ny)
	case 3:
		return fmt.Sprintf("3D{nx=%d, ny=%d, nz=%d}", d.nx, d.ny, d.nz)
	default:
		return "invalid"
	}
}
