// SPDX-License-Identifier: MIT

package render

import "errors"

var (
	// ErrNilContainer indicates a nil *geometry.Vertices or *mesh.Cells.
	ErrNilContainer = errors.New("render: nil input")

	// ErrNothingToRender indicates an empty container or cell collection.
	ErrNothingToRender = errors.New("render: nothing to render")
)
