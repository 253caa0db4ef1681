// SPDX-License-Identifier: MIT

package mesh

import (
	"fmt"

	"github.com/katalvlaran/lvmesh/geometry"
)

const methodBuild = "Build"

// Build derives the cell topology of the 2D container vs.
//
// Vertices are visited in container order. A vertex with both an east and a
// north neighbour anchors one cell; any other vertex (the last column, the
// last row, or a hole in a partial lattice) is skipped. Cell ids are
// assigned sequentially from 0.
//
// Errors:
//   - ErrNilContainer if vs is nil.
//   - ErrDimensionMismatch if vs is not 2D.
//   - ErrTopology if an anchor's east neighbour has no north neighbour.
//
// On error no collection is returned.
// Complexity: O(Len) time and memory.
func Build[F geometry.Float](vs *geometry.Vertices[F]) (*Cells, error) {
	if vs == nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, ErrNilContainer)
	}
	if !vs.Is2D() {
		return nil, fmt.Errorf("%s: %dD container: %w", methodBuild, vs.Dims(), ErrDimensionMismatch)
	}

	d := vs.Dimensions()
	cells := NewCells((d.Nx() - 1) * (d.Ny() - 1))
	var err error
	vs.Each(func(v geometry.Vertex[F]) bool {
		e, okE := vs.Neighbor(v.ID(), geometry.East)
		n, okN := vs.Neighbor(v.ID(), geometry.North)
		if !okE || !okN {
			return true
		}
		ne, ok := vs.Neighbor(e.ID(), geometry.North)
		if !ok {
			err = fmt.Errorf("%s: anchor %d: east %d has no north neighbour: %w",
				methodBuild, v.ID(), e.ID(), ErrTopology)
			return false
		}
		c := NewCell(cells.Len(),
			Face{Start: n.ID(), End: ne.ID()},
			Face{Start: v.ID(), End: e.ID()},
			Face{Start: e.ID(), End: ne.ID()},
			Face{Start: v.ID(), End: n.ID()},
			v.Dims(),
		)
		if err = cells.Add(c); err != nil {
			err = fmt.Errorf("%s: %w", methodBuild, err)
			return false
		}
		return true
	})
	if err != nil {
		return nil, err
	}

	return cells, nil
}

// ResolveFace returns the two vertices f refers to.
// ok is false if vs is nil or either id is absent.
func ResolveFace[F geometry.Float](vs *geometry.Vertices[F], f Face) (start, end geometry.Vertex[F], ok bool) {
	if vs == nil {
		return start, end, false
	}
	start, ok1 := vs.Get(f.Start)
	end, ok2 := vs.Get(f.End)
	return start, end, ok1 && ok2
}
