// SPDX-License-Identifier: MIT

package gridgen

// DefaultBeta is the clustering strength used when WithBeta is not given.
const DefaultBeta = 2.0

// Option customizes a Generate call.
type Option func(*settings)

type settings struct {
	beta float64
}

func newSettings(opts []Option) settings {
	s := settings{beta: DefaultBeta}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	return s
}

// WithBeta sets the clustering strength of the tangent laws.
// The value is validated by Generate, not here: beta = 0 (division by
// tanh 0) and non-finite values are reported as ErrInvalidParameter.
func WithBeta(beta float64) Option {
	return func(s *settings) { s.beta = beta }
}
