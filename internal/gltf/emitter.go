package gltf

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/segmentio/encoding/json"

	"github.com/seafloorlab/mbmesh/pkg/geom"
)

// Both regions use 12-byte elements: three float32 components per
// vertex, three uint32 indices per triangle.
const (
	vertexStride   = 12
	triangleStride = 12
)

// ErrEmptyMesh is returned when a mesh with no vertices is emitted.
var ErrEmptyMesh = errors.New("gltf: mesh has no vertices")

// Emitter writes meshes as glTF 2.0 assets. It holds no mesh state;
// the zero value is ready to use.
type Emitter struct {
	// Generator overrides the asset generator tag. Empty means
	// "mbmesh".
	Generator string
}

func (e *Emitter) generator() string {
	if e.Generator == "" {
		return "mbmesh"
	}
	return e.Generator
}

// BuildDocument assembles the JSON descriptor for mesh. binURI is
// recorded as the buffer URI and must be the relative filename of the
// payload written by WriteBuffer. The mesh must have at least one
// vertex and pass validation; a mesh without triangles is allowed and
// produces a vertex-only asset with an empty index region.
func (e *Emitter) BuildDocument(mesh *geom.Mesh, binURI string) (*Document, error) {
	if mesh.VertexCount() == 0 {
		return nil, ErrEmptyMesh
	}
	if err := mesh.Validate(); err != nil {
		return nil, fmt.Errorf("gltf: %w", err)
	}

	bounds := mesh.Bounds()
	vertexBytes := mesh.VertexCount() * vertexStride
	indexBytes := mesh.TriangleCount() * triangleStride

	return &Document{
		Asset: Asset{
			Version:   "2.0",
			Generator: e.generator(),
		},
		Scene:  0,
		Scenes: []Scene{{Nodes: []int{0}}},
		Nodes:  []Node{{Mesh: 0}},
		Meshes: []Mesh{{
			Primitives: []Primitive{{
				Attributes: map[string]int{AttributePosition: 0},
				Indices:    1,
			}},
		}},
		Accessors: []Accessor{
			{
				BufferView:    0,
				ByteOffset:    0,
				ComponentType: ComponentFloat,
				Count:         mesh.VertexCount(),
				Type:          TypeVec3,
				Max:           bounds.Max[:],
				Min:           bounds.Min[:],
			},
			{
				BufferView:    1,
				ByteOffset:    0,
				ComponentType: ComponentUnsignedInt,
				Count:         3 * mesh.TriangleCount(),
				Type:          TypeScalar,
			},
		},
		BufferViews: []BufferView{
			{
				Buffer:     0,
				ByteOffset: 0,
				ByteLength: vertexBytes,
				Target:     TargetArrayBuffer,
			},
			{
				Buffer:     0,
				ByteOffset: vertexBytes,
				ByteLength: indexBytes,
				Target:     TargetElementArrayBuffer,
			},
		},
		Buffers: []Buffer{{
			URI:        binURI,
			ByteLength: vertexBytes + indexBytes,
		}},
	}, nil
}

// WriteDocument writes the JSON descriptor for mesh to w.
func (e *Emitter) WriteDocument(w io.Writer, mesh *geom.Mesh, binURI string) error {
	doc, err := e.BuildDocument(mesh, binURI)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("gltf: marshal descriptor: %w", err)
	}
	data = append(data, '\n')

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("gltf: write descriptor: %w", err)
	}
	return nil
}

// WriteBuffer writes the binary payload for mesh to w: the vertex
// region (little-endian float32 x,y,z per vertex) directly followed by
// the index region (little-endian uint32 v0,v1,v2 per triangle).
func (e *Emitter) WriteBuffer(w io.Writer, mesh *geom.Mesh) error {
	if mesh.VertexCount() == 0 {
		return ErrEmptyMesh
	}

	bw := bufio.NewWriter(w)
	for _, v := range mesh.Vertices {
		if err := binary.Write(bw, binary.LittleEndian, v.F32()); err != nil {
			return fmt.Errorf("gltf: write vertex region: %w", err)
		}
	}
	for _, t := range mesh.Triangles {
		if err := binary.Write(bw, binary.LittleEndian, [3]uint32{t.V0, t.V1, t.V2}); err != nil {
			return fmt.Errorf("gltf: write index region: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("gltf: flush payload: %w", err)
	}
	return nil
}

// EmitMesh writes the descriptor to gltfPath and the payload to
// binPath. The buffer URI is the base name of binPath, so both files
// must land in the same directory for a viewer to resolve them.
// Either write failing fails the emission; partial files are left in
// place for the caller to deal with.
func (e *Emitter) EmitMesh(mesh *geom.Mesh, gltfPath, binPath string) error {
	err := writeFile(gltfPath, func(w io.Writer) error {
		return e.WriteDocument(w, mesh, filepath.Base(binPath))
	})
	if err != nil {
		return fmt.Errorf("emit descriptor: %w", err)
	}

	err = writeFile(binPath, func(w io.Writer) error {
		return e.WriteBuffer(w, mesh)
	})
	if err != nil {
		return fmt.Errorf("emit payload: %w", err)
	}
	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
