// SPDX-License-Identifier: MIT

// Package gridgen fills an empty 2D point container with an algebraic,
// wall-clustered grid over a variable-height channel.
//
// What:
//
//   - Columns are evenly spaced: x_i = i·lengthX/(nx−1).
//   - Each column spans [0, h(x_i)] where h is the channel Contour.
//   - Rows follow a clustering Law applied to eta = j/(ny−1):
//     Uniform, SymmetricTangent (clustered at both walls) or
//     TopClusteredTangent (clustered at the upper contour).
//   - Vertex ids follow the row-major formula i + j*nx.
//
// Validation:
//
//   - Every argument is checked and every column height is evaluated before
//     the first point is written. On error the container is unchanged.
//
// Contours:
//
//   - Constant, Quadratic and Inlet are closed-form contours.
//   - ParseContour compiles a textual expression in x, e.g. "1 - x**2/10".
//
// Complexity:
//
//   - Generate: O(nx·ny) time, O(nx) scratch memory.
package gridgen
