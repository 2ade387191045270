package geom

import (
	"errors"
	"fmt"
)

// Mesh validation errors.
var (
	ErrIndexOutOfRange    = errors.New("triangle index out of range")
	ErrDegenerateTriangle = errors.New("degenerate triangle")
)

// Mesh is an indexed triangle mesh: an ordered vertex sequence and an
// ordered triangle sequence. Both are immutable after construction.
type Mesh struct {
	Vertices  []Point
	Triangles []Triangle
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int { return len(m.Vertices) }

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int { return len(m.Triangles) }

// Bounds returns the component-wise min/max over the vertices after
// downcasting to float32, so the box matches the serialized positions
// exactly. The result is unspecified for an empty mesh.
func (m *Mesh) Bounds() Bounds {
	var b Bounds
	if len(m.Vertices) == 0 {
		return b
	}
	first := m.Vertices[0].F32()
	b = Bounds{Min: first, Max: first}
	for _, v := range m.Vertices[1:] {
		b.Extend(v.F32())
	}
	return b
}

// Validate checks every triangle: all three indices must fall inside
// the vertex sequence and be pairwise distinct.
func (m *Mesh) Validate() error {
	n := uint32(len(m.Vertices))
	for i, t := range m.Triangles {
		if t.V0 >= n || t.V1 >= n || t.V2 >= n {
			return fmt.Errorf("triangle %d (%d,%d,%d): %w", i, t.V0, t.V1, t.V2, ErrIndexOutOfRange)
		}
		if t.Degenerate() {
			return fmt.Errorf("triangle %d (%d,%d,%d): %w", i, t.V0, t.V1, t.V2, ErrDegenerateTriangle)
		}
	}
	return nil
}
