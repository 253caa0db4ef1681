// SPDX-License-Identifier: MIT

package render

import "math"

// Defaults for an image rendered without options.
const (
	DefaultWidth       = 2560
	DefaultHeight      = 1440
	DefaultPadding     = 0.1
	DefaultPointRadius = 3.0
	DefaultLineWidth   = 1.0
)

// Option customizes a render call. Constructors panic on meaningless values.
type Option func(*settings)

type settings struct {
	width, height int
	padding       float64
	radius        float64
	lineWidth     float64
}

func newSettings(opts []Option) settings {
	s := settings{
		width:     DefaultWidth,
		height:    DefaultHeight,
		padding:   DefaultPadding,
		radius:    DefaultPointRadius,
		lineWidth: DefaultLineWidth,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// WithSize sets the image size in pixels.
func WithSize(width, height int) Option {
	if width <= 0 || height <= 0 {
		panic("render: WithSize(width<=0 || height<=0)")
	}
	return func(s *settings) { s.width, s.height = width, height }
}

// WithPadding sets the margin as a fraction of the largest world extent.
func WithPadding(frac float64) Option {
	if frac < 0 || math.IsNaN(frac) || math.IsInf(frac, 0) {
		panic("render: WithPadding(frac<0 or non-finite)")
	}
	return func(s *settings) { s.padding = frac }
}

// WithPointRadius sets the dot radius in pixels.
func WithPointRadius(r float64) Option {
	if !(r > 0) {
		panic("render: WithPointRadius(r<=0)")
	}
	return func(s *settings) { s.radius = r }
}

// WithLineWidth sets the edge stroke width in pixels.
func WithLineWidth(w float64) Option {
	if !(w > 0) {
		panic("render: WithLineWidth(w<=0)")
	}
	return func(s *settings) { s.lineWidth = w }
}
