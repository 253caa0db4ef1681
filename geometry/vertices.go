// SPDX-License-Identifier: MIT

package geometry

import "fmt"

// Method tags used to prefix wrapped errors.
const (
	methodNewVertices     = "NewVertices"
	methodAdd             = "Vertices.Add"
	methodPopulateUniform = "Vertices.PopulateUniform"
)

// Vertices is the dense point container of a structured lattice.
//   - slots holds one Vertex per lattice point; slots[id] is vertex id.
//   - present marks which slots are populated (partial population is legal).
//   - order records insertion order ("container order") for iteration.
//
// The container never removes a vertex. Once population is finished it is
// read-only and safe for concurrent readers.
type Vertices[F Float] struct {
	dims    Dimensions
	slots   []Vertex[F]
	present []bool
	order   []int
}

// NewVertices allocates an empty container shaped by d.
// Returns ErrInvalidDimensions if d is the zero value.
// Complexity: O(TotalPoints) time and memory.
func NewVertices[F Float](d Dimensions) (*Vertices[F], error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%s: %w", methodNewVertices, ErrInvalidDimensions)
	}
	n := d.TotalPoints()

	return &Vertices[F]{
		dims:    d,
		slots:   make([]Vertex[F], n),
		present: make([]bool, n),
		order:   make([]int, 0, n),
	}, nil
}

// NewVertices2D is shorthand for NewVertices(NewDimensions2D(nx, ny)).
func NewVertices2D[F Float](nx, ny int) (*Vertices[F], error) {
	d, err := NewDimensions2D(nx, ny)
	if err != nil {
		return nil, err
	}
	return NewVertices[F](d)
}

// NewVertices3D is shorthand for NewVertices(NewDimensions3D(nx, ny, nz)).
func NewVertices3D[F Float](nx, ny, nz int) (*Vertices[F], error) {
	d, err := NewDimensions3D(nx, ny, nz)
	if err != nil {
		return nil, err
	}
	return NewVertices[F](d)
}

// Dimensions returns the lattice shape fixed at construction.
func (vs *Vertices[F]) Dimensions() Dimensions { return vs.dims }

// Dims reports 2 or 3.
func (vs *Vertices[F]) Dims() int { return vs.dims.Dims() }

// Is2D reports whether the container holds a 2D lattice.
func (vs *Vertices[F]) Is2D() bool { return vs.dims.Is2D() }

// Len returns the number of populated vertices.
func (vs *Vertices[F]) Len() int { return len(vs.order) }

// Complete reports whether every lattice point is populated.
func (vs *Vertices[F]) Complete() bool { return len(vs.order) == len(vs.slots) }

// Add inserts v at slot v.ID().
// The container is left unchanged on error:
//   - ErrDimensionMismatch if v's dimensionality differs from the container's;
//   - ErrIDOutOfRange if the id is outside [0, TotalPoints);
//   - ErrDuplicateVertex if the id is already populated.
//
// Complexity: O(1) amortised.
func (vs *Vertices[F]) Add(v Vertex[F]) error {
	if v.Dims() != vs.dims.Dims() {
		return fmt.Errorf("%s(%d): %dD vertex in %dD container: %w",
			methodAdd, v.id, v.Dims(), vs.dims.Dims(), ErrDimensionMismatch)
	}
	if v.id < 0 || v.id >= len(vs.slots) {
		return fmt.Errorf("%s(%d): valid ids are [0,%d): %w",
			methodAdd, v.id, len(vs.slots), ErrIDOutOfRange)
	}
	if vs.present[v.id] {
		return fmt.Errorf("%s(%d): %w", methodAdd, v.id, ErrDuplicateVertex)
	}
	vs.slots[v.id] = v
	vs.present[v.id] = true
	vs.order = append(vs.order, v.id)

	return nil
}

// Get returns the vertex with the given id; ok is false if it is absent.
// Complexity: O(1).
func (vs *Vertices[F]) Get(id int) (Vertex[F], bool) {
	if !vs.Exists(id) {
		return Vertex[F]{}, false
	}
	return vs.slots[id], true
}

// Exists reports whether id is populated.
// Complexity: O(1).
func (vs *Vertices[F]) Exists(id int) bool {
	return id >= 0 && id < len(vs.present) && vs.present[id]
}

// LinearToGrid converts a populated id to its lattice index.
// ok is false when the id is not present, even if it is in formula range.
// Complexity: O(1).
func (vs *Vertices[F]) LinearToGrid(id int) (Index, bool) {
	if !vs.Exists(id) {
		return Index{}, false
	}
	return vs.dims.Grid(id), true
}

// GridToLinear converts a lattice index to its id.
// ok is false when idx is outside the lattice or the id is not populated.
// Complexity: O(1).
func (vs *Vertices[F]) GridToLinear(idx Index) (int, bool) {
	if !vs.dims.Contains(idx) {
		return 0, false
	}
	id := vs.dims.Linear(idx)
	if !vs.Exists(id) {
		return 0, false
	}
	return id, true
}

// Neighbor returns the vertex one step from id in direction dir.
// ok is false if id is absent, the step leaves the lattice (boundary), the
// target is not populated, or dir is Up/Down on a 2D container.
// Complexity: O(1).
func (vs *Vertices[F]) Neighbor(id int, dir Direction) (Vertex[F], bool) {
	idx, ok := vs.LinearToGrid(id)
	if !ok {
		return Vertex[F]{}, false
	}
	di, dj, dk, ok := dir.offset()
	if !ok || (dk != 0 && vs.dims.Is2D()) {
		return Vertex[F]{}, false
	}
	next := Index{I: idx.I + di, J: idx.J + dj, K: idx.K + dk}
	nid, ok := vs.GridToLinear(next)
	if !ok {
		return Vertex[F]{}, false
	}
	return vs.slots[nid], true
}

// Vertices returns the populated vertices in container (insertion) order.
// The slice is a fresh copy; mutating it does not affect the container.
// Complexity: O(Len) time and memory.
func (vs *Vertices[F]) Vertices() []Vertex[F] {
	out := make([]Vertex[F], len(vs.order))
	for i, id := range vs.order {
		out[i] = vs.slots[id]
	}
	return out
}

// Each calls fn for every populated vertex in container order and stops
// early when fn returns false.
func (vs *Vertices[F]) Each(fn func(Vertex[F]) bool) {
	for _, id := range vs.order {
		if !fn(vs.slots[id]) {
			return
		}
	}
}
