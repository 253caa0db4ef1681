// SPDX-License-Identifier: MIT

package render

import "math"

// viewport maps world coordinates onto an image with y pointing up.
type viewport struct {
	minX, minY float64
	sx, sy     float64
	height     float64
}

// bounds accumulates the bounding box of a point set.
type bounds struct {
	minX, minY, maxX, maxY float64
	empty                  bool
}

func newBounds() bounds {
	return bounds{
		minX: math.Inf(1), minY: math.Inf(1),
		maxX: math.Inf(-1), maxY: math.Inf(-1),
		empty: true,
	}
}

func (b *bounds) add(x, y float64) {
	b.minX = math.Min(b.minX, x)
	b.maxX = math.Max(b.maxX, x)
	b.minY = math.Min(b.minY, y)
	b.maxY = math.Max(b.maxY, y)
	b.empty = false
}

// newViewport pads b by padding·max(extent) on every side and scales it to
// width×height. A degenerate box (a single point) is padded by half a unit.
func newViewport(b bounds, padding float64, width, height int) viewport {
	pad := padding * math.Max(b.maxX-b.minX, b.maxY-b.minY)
	if pad == 0 {
		pad = 0.5
	}
	minX, maxX := b.minX-pad, b.maxX+pad
	minY, maxY := b.minY-pad, b.maxY+pad

	return viewport{
		minX:   minX,
		minY:   minY,
		sx:     float64(width) / (maxX - minX),
		sy:     float64(height) / (maxY - minY),
		height: float64(height),
	}
}

// pixel returns the image position of world point (x, y).
func (v viewport) pixel(x, y float64) (px, py float64) {
	return (x - v.minX) * v.sx, v.height - (y-v.minY)*v.sy
}
