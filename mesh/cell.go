// SPDX-License-Identifier: MIT

package mesh

// Face is a directed cell edge between two vertex ids.
type Face struct {
	Start, End int
}

// key returns the undirected identity of f.
func (f Face) key() Face {
	if f.Start > f.End {
		return Face{Start: f.End, End: f.Start}
	}
	return f
}

// Cell is a quadrilateral bounded by four faces. See the package
// documentation for the corner and face layout.
type Cell struct {
	id                       int
	north, south, east, west Face
	dims                     int
}

// NewCell assembles a cell from its faces.
func NewCell(id int, north, south, east, west Face, dims int) Cell {
	return Cell{id: id, north: north, south: south, east: east, west: west, dims: dims}
}

// ID returns the cell id.
func (c Cell) ID() int { return c.id }

// North returns the (n, ne) face.
func (c Cell) North() Face { return c.north }

// South returns the (v, e) face.
func (c Cell) South() Face { return c.south }

// East returns the (e, ne) face.
func (c Cell) East() Face { return c.east }

// West returns the (v, n) face.
func (c Cell) West() Face { return c.west }

// Faces returns the faces in south, east, north, west order.
func (c Cell) Faces() [4]Face { return [4]Face{c.south, c.east, c.north, c.west} }

// Corners returns the vertex ids v, e, ne, n (counter-clockwise from the anchor).
func (c Cell) Corners() [4]int {
	return [4]int{c.south.Start, c.south.End, c.north.End, c.north.Start}
}

// Dims reports the dimensionality of the vertices the cell refers to.
func (c Cell) Dims() int { return c.dims }
