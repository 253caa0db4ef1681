// SPDX-License-Identifier: MIT

package mesh

import (
	"fmt"

	"github.com/katalvlaran/lvmesh/geometry"
	"github.com/katalvlaran/lvmesh/gridgen"
)

const (
	methodNewBlock = "NewBlock"
	methodBoundary = "Block.Boundary"
)

// BoundaryType names one side of a block.
type BoundaryType int

const (
	// North is the j = ny−1 row.
	North BoundaryType = iota
	// South is the j = 0 row.
	South
	// East is the i = nx−1 column.
	East
	// West is the i = 0 column.
	West
	// Top is the k = nz−1 layer of a 3D block.
	Top
	// Bottom is the k = 0 layer of a 3D block.
	Bottom
)

// String returns the lowercase side name.
func (b BoundaryType) String() string {
	switch b {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	}
	return fmt.Sprintf("BoundaryType(%d)", int(b))
}

// BlockConfig describes one generated block. Zero-valued optional fields
// take defaults: Law is gridgen.Uniform and a nil Beta means
// gridgen.DefaultBeta.
type BlockConfig struct {
	ID      int
	Nx, Ny  int
	LengthX float64
	Law     gridgen.Law
	Beta    *float64
	Contour gridgen.Contour
}

// Block is a generated lattice together with its cells.
type Block[F geometry.Float] struct {
	id       int
	vertices *geometry.Vertices[F]
	cells    *Cells
}

// NewBlock validates cfg, generates the lattice and builds its topology.
//
// Errors:
//   - ErrInvalidBlock for a negative ID.
//   - geometry.ErrInvalidDimensions for Nx or Ny below geometry.MinAxisPoints.
//   - any gridgen.Generate error (length, beta, contour, law).
//   - any Build error.
func NewBlock[F geometry.Float](cfg BlockConfig) (*Block[F], error) {
	if cfg.ID < 0 {
		return nil, fmt.Errorf("%s: id=%d must be ≥ 0: %w", methodNewBlock, cfg.ID, ErrInvalidBlock)
	}
	vs, err := geometry.NewVertices2D[F](cfg.Nx, cfg.Ny)
	if err != nil {
		return nil, fmt.Errorf("%s(%d): %w", methodNewBlock, cfg.ID, err)
	}
	var opts []gridgen.Option
	if cfg.Beta != nil {
		opts = append(opts, gridgen.WithBeta(*cfg.Beta))
	}
	if err = gridgen.Generate(vs, cfg.LengthX, cfg.Law, cfg.Contour, opts...); err != nil {
		return nil, fmt.Errorf("%s(%d): %w", methodNewBlock, cfg.ID, err)
	}
	cells, err := Build(vs)
	if err != nil {
		return nil, fmt.Errorf("%s(%d): %w", methodNewBlock, cfg.ID, err)
	}

	return &Block[F]{id: cfg.ID, vertices: vs, cells: cells}, nil
}

// ID returns the block id.
func (b *Block[F]) ID() int { return b.id }

// Vertices returns the block's point container. It must not be modified.
func (b *Block[F]) Vertices() *geometry.Vertices[F] { return b.vertices }

// Cells returns the block's cell collection.
func (b *Block[F]) Cells() *Cells { return b.cells }

// Quad returns the corner vertices v, e, ne, n of the i-th cell.
// ok is false when i is out of range.
func (b *Block[F]) Quad(i int) ([4]geometry.Vertex[F], bool) {
	var out [4]geometry.Vertex[F]
	c, ok := b.cells.At(i)
	if !ok {
		return out, false
	}
	for k, id := range c.Corners() {
		v, ok := b.vertices.Get(id)
		if !ok {
			return out, false
		}
		out[k] = v
	}
	return out, true
}

// Boundary returns the vertex ids along side, ordered by increasing i for
// North and South and by increasing j for East and West.
// Top and Bottom return ErrDimensionMismatch on a 2D block; any other
// value returns ErrUnknownBoundary.
func (b *Block[F]) Boundary(side BoundaryType) ([]int, error) {
	d := b.vertices.Dimensions()
	nx, ny := d.Nx(), d.Ny()

	var ids []int
	switch side {
	case South, North:
		j := 0
		if side == North {
			j = ny - 1
		}
		ids = make([]int, 0, nx)
		for i := 0; i < nx; i++ {
			ids = append(ids, d.Linear(geometry.Index{I: i, J: j}))
		}
	case West, East:
		i := 0
		if side == East {
			i = nx - 1
		}
		ids = make([]int, 0, ny)
		for j := 0; j < ny; j++ {
			ids = append(ids, d.Linear(geometry.Index{I: i, J: j}))
		}
	case Top, Bottom:
		return nil, fmt.Errorf("%s(%v): 2D block: %w", methodBoundary, side, ErrDimensionMismatch)
	default:
		return nil, fmt.Errorf("%s(%v): %w", methodBoundary, side, ErrUnknownBoundary)
	}

	return ids, nil
}
