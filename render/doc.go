// SPDX-License-Identifier: MIT

// Package render rasterises a point container, or the cells built on it,
// to PNG with github.com/gogpu/gg.
//
// The world box is the bounding box of the vertices grown on every side by
// a padding fraction of its largest extent. Each axis is scaled to the
// image independently and y points up.
//
// Renderers only read the container; it is never modified.
package render
