// SPDX-License-Identifier: MIT

package geometry

// Direction selects a unit step on the lattice.
type Direction int

const (
	// North steps +j.
	North Direction = iota
	// South steps −j.
	South
	// East steps +i.
	East
	// West steps −i.
	West
	// Up steps +k (3D only).
	Up
	// Down steps −k (3D only).
	Down
)

// offset returns the (di, dj, dk) step for d; ok is false for unknown values.
func (d Direction) offset() (di, dj, dk int, ok bool) {
	switch d {
	case North:
		return 0, 1, 0, true
	case South:
		return 0, -1, 0, true
	case East:
		return 1, 0, 0, true
	case West:
		return -1, 0, 0, true
	case Up:
		return 0, 0, 1, true
	case Down:
		return 0, 0, -1, true
	}
	return 0, 0, 0, false
}

// Planar reports whether d moves within the i/j plane.
func (d Direction) Planar() bool { return d >= North && d <= West }

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return "unknown"
}
