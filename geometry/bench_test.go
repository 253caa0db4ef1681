package geometry_test

import (
	"testing"

	"github.com/katalvlaran/lvmesh/geometry"
)

// BenchmarkPopulateUniform measures filling a 400×200 lattice.
func BenchmarkPopulateUniform(b *testing.B) {
	const nx, ny = 400, 200

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		vs, _ := geometry.NewVertices2D[float64](nx, ny)
		_ = vs.PopulateUniform()
	}
}

// BenchmarkNeighbor measures four directional lookups per vertex.
func BenchmarkNeighbor(b *testing.B) {
	const nx, ny = 400, 200
	vs, _ := geometry.NewVertices2D[float64](nx, ny)
	_ = vs.PopulateUniform()
	dirs := []geometry.Direction{geometry.North, geometry.South, geometry.East, geometry.West}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		id := i % (nx * ny)
		for _, d := range dirs {
			_, _ = vs.Neighbor(id, d)
		}
	}
}
