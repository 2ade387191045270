package mesher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seafloorlab/mbmesh/internal/swath"
	"github.com/seafloorlab/mbmesh/pkg/geom"
)

func mustGrid(t *testing.T, width, length int) *swath.Grid {
	t.Helper()
	grid, err := swath.Generate(width, length)
	require.NoError(t, err)
	return grid
}

func TestBuildMesh_Counts(t *testing.T) {
	tests := []struct {
		width, length int
		wantTriangles int
	}{
		{2, 2, 2},
		{3, 3, 8},
		{10, 2, 18},
		{5, 5, 32},
		{50, 100, 9702},
	}

	for _, tt := range tests {
		mesh := BuildMesh(mustGrid(t, tt.width, tt.length))
		assert.Equal(t, tt.width*tt.length, mesh.VertexCount(), "vertices for %dx%d", tt.width, tt.length)
		assert.Equal(t, tt.wantTriangles, mesh.TriangleCount(), "triangles for %dx%d", tt.width, tt.length)
	}
}

func TestBuildMesh_CellDiagonal(t *testing.T) {
	mesh := BuildMesh(mustGrid(t, 3, 3))

	require.GreaterOrEqual(t, mesh.TriangleCount(), 2)
	assert.Equal(t, geom.Triangle{V0: 0, V1: 3, V2: 1}, mesh.Triangles[0])
	assert.Equal(t, geom.Triangle{V0: 1, V1: 3, V2: 4}, mesh.Triangles[1])
}

func TestBuildMesh_MinimumGrid(t *testing.T) {
	mesh := BuildMesh(mustGrid(t, 2, 2))

	require.Equal(t, 2, mesh.TriangleCount())
	assert.Equal(t, geom.Triangle{V0: 0, V1: 2, V2: 1}, mesh.Triangles[0])
	assert.Equal(t, geom.Triangle{V0: 1, V1: 2, V2: 3}, mesh.Triangles[1])
}

func TestBuildMesh_EnumerationOrder(t *testing.T) {
	// Cells are enumerated ping-major; for a 3xL grid the third and
	// fourth triangles belong to the second cell of the first ping row.
	mesh := BuildMesh(mustGrid(t, 3, 2))

	require.Equal(t, 4, mesh.TriangleCount())
	assert.Equal(t, geom.Triangle{V0: 0, V1: 3, V2: 1}, mesh.Triangles[0])
	assert.Equal(t, geom.Triangle{V0: 1, V1: 3, V2: 4}, mesh.Triangles[1])
	assert.Equal(t, geom.Triangle{V0: 1, V1: 4, V2: 2}, mesh.Triangles[2])
	assert.Equal(t, geom.Triangle{V0: 2, V1: 4, V2: 5}, mesh.Triangles[3])
}

func TestBuildMesh_SingleRowOrColumn(t *testing.T) {
	rowMesh := BuildMesh(mustGrid(t, 10, 1))
	assert.Equal(t, 10, rowMesh.VertexCount())
	assert.Zero(t, rowMesh.TriangleCount())

	colMesh := BuildMesh(mustGrid(t, 1, 10))
	assert.Equal(t, 10, colMesh.VertexCount())
	assert.Zero(t, colMesh.TriangleCount())

	single := BuildMesh(mustGrid(t, 1, 1))
	assert.Equal(t, 1, single.VertexCount())
	assert.Zero(t, single.TriangleCount())
}

func TestBuildMesh_IndicesValid(t *testing.T) {
	mesh := BuildMesh(mustGrid(t, 100, 200))

	assert.Equal(t, 20000, mesh.VertexCount())
	assert.Equal(t, 39402, mesh.TriangleCount())
	require.NoError(t, mesh.Validate())
}
