package gridgen_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmesh/gridgen"
)

func TestClosedFormContours(t *testing.T) {
	require.Equal(t, 3.0, gridgen.Constant(3)(42))
	require.InDelta(t, 0.6, gridgen.Inlet()(2), 1e-15)
	require.InDelta(t, 1.0, gridgen.Inlet()(0), 1e-15)
	require.InDelta(t, 5-2*9, gridgen.Quadratic(5, 2)(3), 1e-15)
}

// TestParseContour checks that textual contours match their closed forms.
func TestParseContour(t *testing.T) {
	cases := []struct {
		expr string
		want gridgen.Contour
	}{
		{"1 - x**2/10", gridgen.Inlet()},
		{"1.5", gridgen.Constant(1.5)},
		{"2 - 0.25 * x * x", gridgen.Quadratic(2, 0.25)},
		{"1 + 0.1*sin(x)", func(x float64) float64 { return 1 + 0.1*math.Sin(x) }},
		{"sqrt(abs(x) + 1)", func(x float64) float64 { return math.Sqrt(math.Abs(x) + 1) }},
		{"pow(2, x) / 4 + tanh(x)", func(x float64) float64 { return math.Pow(2, x)/4 + math.Tanh(x) }},
	}
	for _, tc := range cases {
		t.Run(tc.expr, func(t *testing.T) {
			c, err := gridgen.ParseContour(tc.expr)
			require.NoError(t, err)
			for _, x := range []float64{0, 0.5, 1, 2} {
				require.InDelta(t, tc.want(x), c(x), 1e-12, "x=%g", x)
			}
		})
	}
}

func TestParseContour_Errors(t *testing.T) {
	for _, expr := range []string{
		"",
		"1 - ",
		"1 - y",
		"x > 1",
		"nosuch(x)",
		"sqrt(1, 2)",
	} {
		_, err := gridgen.ParseContour(expr)
		require.ErrorIs(t, err, gridgen.ErrInvalidExpression, "expr %q", expr)
	}
}

// TestParseContour_Generate drives the generator with a parsed contour.
func TestParseContour_Generate(t *testing.T) {
	c, err := gridgen.ParseContour("1 - x**2/10")
	require.NoError(t, err)

	vs := newContainer(t, 3, 2)
	require.NoError(t, gridgen.Generate(vs, 2, gridgen.Uniform, c))
	requireXY(t, vs, 2, 1, 2, 0.6)
}
