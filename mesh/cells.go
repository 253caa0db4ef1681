// SPDX-License-Identifier: MIT

package mesh

import "fmt"

const methodCellsAdd = "Cells.Add"

// Cells is an ordered cell collection of a single dimensionality.
// The first added cell fixes that dimensionality.
type Cells struct {
	cells []Cell
	dims  int
}

// NewCells returns an empty collection with room for capHint cells.
func NewCells(capHint int) *Cells {
	if capHint < 0 {
		capHint = 0
	}
	return &Cells{cells: make([]Cell, 0, capHint)}
}

// Add appends c. Returns ErrDimensionMismatch, leaving the collection
// unchanged, when c.Dims() differs from the collection's dimensionality.
func (cs *Cells) Add(c Cell) error {
	if len(cs.cells) > 0 && c.dims != cs.dims {
		return fmt.Errorf("%s(%d): %dD cell in %dD collection: %w",
			methodCellsAdd, c.id, c.dims, cs.dims, ErrDimensionMismatch)
	}
	cs.dims = c.dims
	cs.cells = append(cs.cells, c)

	return nil
}

// Len returns the number of cells.
func (cs *Cells) Len() int { return len(cs.cells) }

// Dims returns the collection's dimensionality, or 0 while it is empty.
func (cs *Cells) Dims() int {
	if len(cs.cells) == 0 {
		return 0
	}
	return cs.dims
}

// Is2D reports whether the collection holds 2D cells.
func (cs *Cells) Is2D() bool { return cs.Dims() == 2 }

// At returns the i-th cell; ok is false when i is out of range.
func (cs *Cells) At(i int) (Cell, bool) {
	if i < 0 || i >= len(cs.cells) {
		return Cell{}, false
	}
	return cs.cells[i], true
}

// All returns a copy of the cells in insertion order.
func (cs *Cells) All() []Cell {
	out := make([]Cell, len(cs.cells))
	copy(out, cs.cells)
	return out
}

// Edges returns every distinct face once, in first-seen order over cells
// and their Faces() order. A face shared by two cells is reported with the
// orientation of the first cell that owns it.
// Complexity: O(Len) time and memory.
func (cs *Cells) Edges() []Face {
	seen := make(map[Face]struct{}, 2*len(cs.cells))
	out := make([]Face, 0, 2*len(cs.cells))
	for _, c := range cs.cells {
		for _, f := range c.Faces() {
			k := f.key()
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, f)
		}
	}
	return out
}
