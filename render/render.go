// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"io"
	"os"

	"github.com/gogpu/gg"

	"github.com/katalvlaran/lvmesh/geometry"
	"github.com/katalvlaran/lvmesh/mesh"
)

const (
	methodPoints = "render.Points"
	methodCells  = "render.Cells"
)

var (
	background = gg.White
	pointColor = gg.Black
	edgeColor  = gg.RGB(0.15, 0.25, 0.45)
)

func vertexBounds[F geometry.Float](vs *geometry.Vertices[F]) bounds {
	b := newBounds()
	vs.Each(func(v geometry.Vertex[F]) bool {
		b.add(float64(v.X()), float64(v.Y()))
		return true
	})
	return b
}

func newCanvas(s settings) *gg.Context {
	dc := gg.NewContext(s.width, s.height)
	dc.ClearWithColor(background)
	return dc
}

// Points draws every vertex of vs as a filled dot and writes the PNG to w.
// Only x and y are drawn; a 3D container is projected onto its k planes.
func Points[F geometry.Float](vs *geometry.Vertices[F], w io.Writer, opts ...Option) error {
	if vs == nil {
		return fmt.Errorf("%s: %w", methodPoints, ErrNilContainer)
	}
	if vs.Len() == 0 {
		return fmt.Errorf("%s: empty container: %w", methodPoints, ErrNothingToRender)
	}
	s := newSettings(opts)
	vp := newViewport(vertexBounds(vs), s.padding, s.width, s.height)

	dc := newCanvas(s)
	defer dc.Close()

	dc.SetColor(pointColor.Color())
	vs.Each(func(v geometry.Vertex[F]) bool {
		px, py := vp.pixel(float64(v.X()), float64(v.Y()))
		dc.DrawCircle(px, py, s.radius)
		return true
	})
	if err := dc.Fill(); err != nil {
		return fmt.Errorf("%s: fill: %w", methodPoints, err)
	}
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("%s: encode: %w", methodPoints, err)
	}

	return nil
}

// Cells strokes every distinct edge of cells, resolving its vertices
// through vs, and writes the PNG to w. Edges whose vertices are not in
// vs are skipped.
func Cells[F geometry.Float](vs *geometry.Vertices[F], cells *mesh.Cells, w io.Writer, opts ...Option) error {
	if vs == nil || cells == nil {
		return fmt.Errorf("%s: %w", methodCells, ErrNilContainer)
	}
	if vs.Len() == 0 || cells.Len() == 0 {
		return fmt.Errorf("%s: %d vertices, %d cells: %w", methodCells, vs.Len(), cells.Len(), ErrNothingToRender)
	}
	s := newSettings(opts)
	vp := newViewport(vertexBounds(vs), s.padding, s.width, s.height)

	dc := newCanvas(s)
	defer dc.Close()

	dc.SetColor(edgeColor.Color())
	dc.SetLineWidth(s.lineWidth)
	for _, f := range cells.Edges() {
		a, b, ok := mesh.ResolveFace(vs, f)
		if !ok {
			continue
		}
		x1, y1 := vp.pixel(float64(a.X()), float64(a.Y()))
		x2, y2 := vp.pixel(float64(b.X()), float64(b.Y()))
		dc.DrawLine(x1, y1, x2, y2)
	}
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("%s: stroke: %w", methodCells, err)
	}
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("%s: encode: %w", methodCells, err)
	}

	return nil
}

// SavePoints renders Points into the file at path.
func SavePoints[F geometry.Float](vs *geometry.Vertices[F], path string, opts ...Option) error {
	return saveTo(path, func(w io.Writer) error { return Points(vs, w, opts...) })
}

// SaveCells renders Cells into the file at path.
func SaveCells[F geometry.Float](vs *geometry.Vertices[F], cells *mesh.Cells, path string, opts ...Option) error {
	return saveTo(path, func(w io.Writer) error { return Cells(vs, cells, w, opts...) })
}

func saveTo(path string, draw func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("render: %w", cerr)
		}
	}()
	return draw(f)
}
