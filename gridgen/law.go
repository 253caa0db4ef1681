// SPDX-License-Identifier: MIT

package gridgen

import (
	"fmt"
	"math"
	"strings"
)

// Law selects the wall-normal point distribution of a column.
type Law int

const (
	// Uniform spaces rows evenly: s(eta) = eta.
	Uniform Law = iota
	// SymmetricTangent clusters rows at both walls:
	// s(eta) = ½·(1 + tanh(β(2eta−1))/tanh β).
	SymmetricTangent
	// TopClusteredTangent clusters rows at the upper contour:
	// s(eta) = tanh(β·eta)/tanh β.
	TopClusteredTangent
)

var lawNames = [...]string{
	Uniform:             "uniform",
	SymmetricTangent:    "symmetric-tangent",
	TopClusteredTangent: "top-clustered-tangent",
}

// lawAliases maps accepted short names onto laws.
var lawAliases = map[string]Law{
	"tanh":          SymmetricTangent,
	"symmetric":     SymmetricTangent,
	"top-clustered": TopClusteredTangent,
	"top":           TopClusteredTangent,
}

// Laws returns every supported law in declaration order.
func Laws() []Law {
	return []Law{Uniform, SymmetricTangent, TopClusteredTangent}
}

// Valid reports whether l is one of the declared laws.
func (l Law) Valid() bool { return l >= Uniform && l <= TopClusteredTangent }

// String returns the canonical law name.
func (l Law) String() string {
	if !l.Valid() {
		return fmt.Sprintf("Law(%d)", int(l))
	}
	return lawNames[l]
}

// ParseLaw resolves a canonical name or alias, case-insensitively.
func ParseLaw(name string) (Law, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, l := range Laws() {
		if lawNames[l] == key {
			return l, nil
		}
	}
	if l, ok := lawAliases[key]; ok {
		return l, nil
	}
	return 0, fmt.Errorf("ParseLaw(%q): %w", name, ErrUnknownLaw)
}

// Stretch maps eta ∈ [0,1] to the normalised wall distance s ∈ [0,1].
// s(0) = 0 and s(1) = 1 for every law and every non-zero beta.
// beta is ignored by Uniform. Stretch does not validate its arguments.
func (l Law) Stretch(eta, beta float64) float64 {
	switch l {
	case SymmetricTangent:
		return 0.5 * (1 + math.Tanh(beta*(2*eta-1))/math.Tanh(beta))
	case TopClusteredTangent:
		return math.Tanh(beta*eta) / math.Tanh(beta)
	default:
		return eta
	}
}
