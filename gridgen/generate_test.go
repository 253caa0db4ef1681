package gridgen_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmesh/geometry"
	"github.com/katalvlaran/lvmesh/gridgen"
)

func newContainer(t *testing.T, nx, ny int) *geometry.Vertices[float64] {
	t.Helper()
	vs, err := geometry.NewVertices2D[float64](nx, ny)
	require.NoError(t, err)
	return vs
}

func requireXY(t *testing.T, vs *geometry.Vertices[float64], i, j int, x, y float64) {
	t.Helper()
	id, ok := vs.GridToLinear(geometry.Index{I: i, J: j})
	require.True(t, ok, "(%d,%d) missing", i, j)
	v, _ := vs.Get(id)
	require.InDelta(t, x, v.X(), 1e-12, "x at (%d,%d)", i, j)
	require.InDelta(t, y, v.Y(), 1e-12, "y at (%d,%d)", i, j)
}

// TestGenerate_UniformScenario checks the 3×2 inlet grid point by point.
func TestGenerate_UniformScenario(t *testing.T) {
	vs := newContainer(t, 3, 2)
	require.NoError(t, gridgen.Generate(vs, 2.0, gridgen.Uniform, gridgen.Inlet()))
	require.Equal(t, 6, vs.Len())

	requireXY(t, vs, 0, 0, 0, 0)
	requireXY(t, vs, 1, 0, 1, 0)
	requireXY(t, vs, 2, 0, 2, 0)
	requireXY(t, vs, 0, 1, 0, 1.0)
	requireXY(t, vs, 1, 1, 1, 0.9)
	requireXY(t, vs, 2, 1, 2, 0.6)
}

// TestGenerate_TopClusteredScenario checks the constant-height 2×3 grid.
func TestGenerate_TopClusteredScenario(t *testing.T) {
	vs := newContainer(t, 2, 3)
	require.NoError(t, gridgen.Generate(vs, 1.0, gridgen.TopClusteredTangent, gridgen.Constant(1), gridgen.WithBeta(2)))

	middle := math.Tanh(1) / math.Tanh(2)
	for i := 0; i < 2; i++ {
		requireXY(t, vs, i, 0, float64(i), 0)
		requireXY(t, vs, i, 1, float64(i), middle)
		requireXY(t, vs, i, 2, float64(i), 1)
	}
	require.InDelta(t, 0.7900, middle, 1e-4)
}

// TestGenerate_DefaultBeta checks that omitting WithBeta uses DefaultBeta.
func TestGenerate_DefaultBeta(t *testing.T) {
	a := newContainer(t, 2, 5)
	b := newContainer(t, 2, 5)
	require.NoError(t, gridgen.Generate(a, 1, gridgen.SymmetricTangent, gridgen.Constant(1)))
	require.NoError(t, gridgen.Generate(b, 1, gridgen.SymmetricTangent, gridgen.Constant(1), gridgen.WithBeta(gridgen.DefaultBeta)))
	require.Equal(t, a.Vertices(), b.Vertices())
}

// TestGenerate_SymmetricTangent checks wall clustering and mid-height symmetry.
func TestGenerate_SymmetricTangent(t *testing.T) {
	const ny = 5
	vs := newContainer(t, 2, ny)
	require.NoError(t, gridgen.Generate(vs, 1, gridgen.SymmetricTangent, gridgen.Constant(2), gridgen.WithBeta(1.5)))

	ys := make([]float64, ny)
	for j := 0; j < ny; j++ {
		v, ok := vs.Get(j * 2)
		require.True(t, ok)
		ys[j] = v.Y()
	}
	require.InDelta(t, 0, ys[0], 1e-12)
	require.InDelta(t, 2, ys[ny-1], 1e-12)
	require.InDelta(t, 1, ys[2], 1e-12)
	// Spacing shrinks towards both walls.
	require.Less(t, ys[1]-ys[0], ys[2]-ys[1])
	require.Less(t, ys[4]-ys[3], ys[3]-ys[2])
}

// TestGenerate_Float32 checks the generator at single precision.
func TestGenerate_Float32(t *testing.T) {
	vs, err := geometry.NewVertices2D[float32](3, 2)
	require.NoError(t, err)
	require.NoError(t, gridgen.Generate(vs, 2, gridgen.Uniform, gridgen.Inlet()))

	v, ok := vs.Get(5)
	require.True(t, ok)
	require.Equal(t, float32(2), v.X())
	require.InDelta(t, 0.6, float64(v.Y()), 1e-6)
}

// TestGenerate_Rejections checks every up-front validation and that the
// container stays empty afterwards.
func TestGenerate_Rejections(t *testing.T) {
	cases := []struct {
		name    string
		length  float64
		law     gridgen.Law
		contour gridgen.Contour
		opts    []gridgen.Option
		want    error
	}{
		{"beta zero", 2, gridgen.TopClusteredTangent, gridgen.Inlet(), []gridgen.Option{gridgen.WithBeta(0)}, gridgen.ErrInvalidParameter},
		{"beta NaN", 2, gridgen.SymmetricTangent, gridgen.Inlet(), []gridgen.Option{gridgen.WithBeta(math.NaN())}, gridgen.ErrInvalidParameter},
		{"beta zero uniform", 2, gridgen.Uniform, gridgen.Inlet(), []gridgen.Option{gridgen.WithBeta(0)}, gridgen.ErrInvalidParameter},
		{"length zero", 0, gridgen.Uniform, gridgen.Inlet(), nil, gridgen.ErrInvalidParameter},
		{"length negative", -1, gridgen.Uniform, gridgen.Inlet(), nil, gridgen.ErrInvalidParameter},
		{"length inf", math.Inf(1), gridgen.Uniform, gridgen.Inlet(), nil, gridgen.ErrInvalidParameter},
		{"nil contour", 2, gridgen.Uniform, nil, nil, gridgen.ErrInvalidParameter},
		{"unknown law", 2, gridgen.Law(99), gridgen.Inlet(), nil, gridgen.ErrUnknownLaw},
		// 1 - x²/10 reaches zero at x = √10 ≈ 3.16.
		{"height collapses", 4, gridgen.Uniform, gridgen.Inlet(), nil, gridgen.ErrInvalidParameter},
		{"height NaN", 2, gridgen.Uniform, func(float64) float64 { return math.NaN() }, nil, gridgen.ErrInvalidParameter},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			vs := newContainer(t, 3, 3)
			err := gridgen.Generate(vs, tc.length, tc.law, tc.contour, tc.opts...)
			require.ErrorIs(t, err, tc.want)
			require.Equal(t, 0, vs.Len())
		})
	}
}

// TestGenerate_ContainerPreconditions checks nil, 3D and non-empty containers.
func TestGenerate_ContainerPreconditions(t *testing.T) {
	err := gridgen.Generate[float64](nil, 1, gridgen.Uniform, gridgen.Inlet())
	require.ErrorIs(t, err, gridgen.ErrNilContainer)

	vs3, err := geometry.NewVertices3D[float64](2, 2, 2)
	require.NoError(t, err)
	err = gridgen.Generate(vs3, 1, gridgen.Uniform, gridgen.Inlet())
	require.ErrorIs(t, err, gridgen.ErrDimensionMismatch)
	require.ErrorIs(t, err, geometry.ErrDimensionMismatch)
	require.Equal(t, 0, vs3.Len())

	vs := newContainer(t, 2, 2)
	require.NoError(t, vs.Add(geometry.NewVertex2D(0, 0.0, 0.0)))
	err = gridgen.Generate(vs, 1, gridgen.Uniform, gridgen.Inlet())
	require.ErrorIs(t, err, gridgen.ErrContainerNotEmpty)
	require.Equal(t, 1, vs.Len())
}
