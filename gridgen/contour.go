// SPDX-License-Identifier: MIT

package gridgen

// Contour returns the channel height h(x) at streamwise position x.
// Generate requires h(x) to be finite and strictly positive at every column.
type Contour func(x float64) float64

// Constant returns a flat contour of height h.
func Constant(h float64) Contour {
	return func(float64) float64 { return h }
}

// Quadratic returns h(x) = h0 − k·x².
func Quadratic(h0, k float64) Contour {
	return func(x float64) float64 { return h0 - k*x*x }
}

// Inlet is the reference intake contour h(x) = 1 − x²/10.
func Inlet() Contour { return Quadratic(1, 0.1) }
