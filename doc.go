// Package lvmesh builds structured 2D curvilinear meshes for channel and
// intake geometries: a wall-clustered point lattice whose row/column
// topology lives in the row-major vertex id, and the quadrilateral cells
// derived from it.
//
// What is lvmesh?
//
//	A small pipeline of focused packages:
//		• geometry: lattice shape, points, vertices, the dense point container
//		• gridgen:  algebraic grid generator, clustering laws, contours
//		• mesh:     cell topology builder, unique edges, blocks and boundaries
//		• export:   flat id,x,y[,z] CSV
//		• render:   PNG drawings of points or cells
//		• config:   TOML run configuration
//
// Pipeline:
//
//	Vertices ──Generate──▶ lattice ──Build──▶ Cells ──▶ CSV / PNG
//
// Quick ASCII example (nx=3, ny=2):
//
//	3 ── 4 ── 5
//	│ c0 │ c1 │
//	0 ── 1 ── 2
//
//	id = i + j*nx, and each cell is anchored at its lower-left vertex.
//
// The lvmesh command (cmd/lvmesh) drives the pipeline from a TOML file or
// flags; see examples/intake for the same pipeline as a library.
package lvmesh
