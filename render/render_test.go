package render_test

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmesh/geometry"
	"github.com/katalvlaran/lvmesh/mesh"
	"github.com/katalvlaran/lvmesh/render"
)

func unitLattice(t *testing.T) *geometry.Vertices[float64] {
	t.Helper()
	vs, err := geometry.NewVertices2D[float64](3, 2)
	require.NoError(t, err)
	require.NoError(t, vs.PopulateUniform())
	return vs
}

func decode(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	return img
}

func dark(img image.Image, x, y int) bool {
	r, g, b, _ := img.At(x, y).RGBA()
	return r < 0x8000 && g < 0x8000 && b < 0x8000
}

func TestPoints(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Points(unitLattice(t), &buf, render.WithSize(240, 120)))

	img := decode(t, buf.Bytes())
	require.Equal(t, image.Rect(0, 0, 240, 120), img.Bounds())

	// Vertex (0,0) lands at (20, 110) inside the padded [-0.1,1.1]² box.
	require.True(t, dark(img, 20, 109))
	// Vertex (1,1) lands at (220, 10).
	require.True(t, dark(img, 219, 10))
	require.False(t, dark(img, 0, 0))
	require.False(t, dark(img, 120, 60))
}

func TestPoints_DefaultSize(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Points(unitLattice(t), &buf))

	img := decode(t, buf.Bytes())
	require.Equal(t, render.DefaultWidth, img.Bounds().Dx())
	require.Equal(t, render.DefaultHeight, img.Bounds().Dy())
}

func TestCells(t *testing.T) {
	vs := unitLattice(t)
	cells, err := mesh.Build(vs)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.Cells(vs, cells, &buf, render.WithSize(240, 120), render.WithLineWidth(3)))

	img := decode(t, buf.Bytes())
	// The shared edge x = 0.5 runs down the middle of the image.
	require.True(t, dark(img, 120, 60))
	// The cell interior stays blank.
	require.False(t, dark(img, 70, 60))
}

func TestRender_Errors(t *testing.T) {
	var buf bytes.Buffer
	require.ErrorIs(t, render.Points[float64](nil, &buf), render.ErrNilContainer)

	empty, err := geometry.NewVertices2D[float64](2, 2)
	require.NoError(t, err)
	require.ErrorIs(t, render.Points(empty, &buf), render.ErrNothingToRender)

	vs := unitLattice(t)
	require.ErrorIs(t, render.Cells(vs, nil, &buf), render.ErrNilContainer)
	require.ErrorIs(t, render.Cells(vs, mesh.NewCells(0), &buf), render.ErrNothingToRender)
	require.Zero(t, buf.Len())
}

func TestSave(t *testing.T) {
	vs := unitLattice(t)
	cells, err := mesh.Build(vs)
	require.NoError(t, err)
	dir := t.TempDir()

	pointsPath := filepath.Join(dir, "points.png")
	require.NoError(t, render.SavePoints(vs, pointsPath, render.WithSize(64, 32)))
	cellsPath := filepath.Join(dir, "cells.png")
	require.NoError(t, render.SaveCells(vs, cells, cellsPath, render.WithSize(64, 32)))

	for _, p := range []string{pointsPath, cellsPath} {
		data, err := os.ReadFile(p)
		require.NoError(t, err)
		require.Equal(t, image.Rect(0, 0, 64, 32), decode(t, data).Bounds())
	}
}

func TestOptions_Panic(t *testing.T) {
	require.Panics(t, func() { render.WithSize(0, 10) })
	require.Panics(t, func() { render.WithPadding(-1) })
	require.Panics(t, func() { render.WithPointRadius(0) })
	require.Panics(t, func() { render.WithLineWidth(-2) })
	require.NotPanics(t, func() { render.WithPadding(0) })
}
