// SPDX-License-Identifier: MIT

package geometry

import "golang.org/x/exp/constraints"

// Float is the set of coordinate precisions a container may be built with.
type Float interface {
	constraints.Float
}

// Point is an immutable coordinate tuple, (x, y) or (x, y, z).
// Points carry no identity; see Vertex.
type Point[F Float] struct {
	x, y, z F
	dims    int
}

// Pt2 returns the 2D point (x, y).
func Pt2[F Float](x, y F) Point[F] { return Point[F]{x: x, y: y, dims: 2} }

// Pt3 returns the 3D point (x, y, z).
func Pt3[F Float](x, y, z F) Point[F] { return Point[F]{x: x, y: y, z: z, dims: 3} }

// X returns the x coordinate.
func (p Point[F]) X() F { return p.x }

// Y returns the y coordinate.
func (p Point[F]) Y() F { return p.y }

// Z returns the z coordinate; always 0 for 2D points.
func (p Point[F]) Z() F { return p.z }

// Dims reports 2 or 3.
func (p Point[F]) Dims() int { return p.dims }

// Is2D reports whether p is a 2D point.
func (p Point[F]) Is2D() bool { return p.dims == 2 }

// Vertex is a Point plus an id unique within its container.
// The id is the container's sole addressing key.
type Vertex[F Float] struct {
	id    int
	point Point[F]
}

// NewVertex2D returns the 2D vertex id at (x, y).
func NewVertex2D[F Float](id int, x, y F) Vertex[F] {
	return Vertex[F]{id: id, point: Pt2(x, y)}
}

// NewVertex3D returns the 3D vertex id at (x, y, z).
func NewVertex3D[F Float](id int, x, y, z F) Vertex[F] {
	return Vertex[F]{id: id, point: Pt3(x, y, z)}
}

// ID returns the vertex id.
func (v Vertex[F]) ID() int { return v.id }

// Point returns the vertex coordinates.
func (v Vertex[F]) Point() Point[F] { return v.point }

// X returns the x coordinate.
func (v Vertex[F]) X() F { return v.point.x }

// Y returns the y coordinate.
func (v Vertex[F]) Y() F { return v.point.y }

// Z returns the z coordinate; 0 for 2D vertices.
func (v Vertex[F]) Z() F { return v.point.z }

// Dims reports the dimensionality of the underlying point.
func (v Vertex[F]) Dims() int { return v.point.dims }
