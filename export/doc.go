// SPDX-License-Identifier: MIT

// Package export writes a point container as flat CSV: a header row
// ("id,x,y" or "id,x,y,z") followed by one record per vertex in container
// order. Coordinates use the shortest representation that parses back to
// the same value at the container's precision.
package export
