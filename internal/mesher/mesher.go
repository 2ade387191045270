// Package mesher triangulates regular sounding grids into indexed
// triangle meshes.
package mesher

import (
	"github.com/seafloorlab/mbmesh/internal/swath"
	"github.com/seafloorlab/mbmesh/pkg/geom"
)

// BuildMesh converts an ordered width×length grid of soundings into an
// indexed triangle mesh. Each grid cell is covered by two triangles
// split on a fixed diagonal:
//
//	idx--------idx+1
//	 |  \   B   |
//	 |  A  \    |
//	idx+W------idx+W+1
//
// Cells are enumerated ping-major (outer loop over pings, inner over
// beams), triangle A before B within a cell. All triangles share a
// consistent winding with respect to the grid axes; callers must not
// reorder or rewind them. A grid narrower than two beams or shorter
// than two pings yields a mesh with vertices but no triangles.
func BuildMesh(grid *swath.Grid) *geom.Mesh {
	width := grid.Width
	length := grid.Length

	var triangles []geom.Triangle
	if width >= 2 && length >= 2 {
		triangles = make([]geom.Triangle, 0, 2*(width-1)*(length-1))
	}

	w := uint32(width)
	for i := 0; i < length-1; i++ {
		for j := 0; j < width-1; j++ {
			idx := uint32(i*width + j)
			triangles = append(triangles,
				geom.Triangle{V0: idx, V1: idx + w, V2: idx + 1},
				geom.Triangle{V0: idx + 1, V1: idx + w, V2: idx + w + 1},
			)
		}
	}

	return &geom.Mesh{Vertices: grid.Points, Triangles: triangles}
}
