// Package gltf serializes triangle meshes as glTF 2.0 assets: a JSON
// descriptor paired with an external little-endian binary buffer.
package gltf

// Component types and buffer view targets from the glTF 2.0
// specification. Only the subset this emitter writes is listed.
const (
	ComponentFloat       = 5126
	ComponentUnsignedInt = 5125

	TargetArrayBuffer        = 34962
	TargetElementArrayBuffer = 34963

	TypeVec3   = "VEC3"
	TypeScalar = "SCALAR"

	AttributePosition = "POSITION"
)

// Document is the JSON descriptor of a glTF 2.0 asset, restricted to
// the mandatory top-level keys for a single-mesh scene.
type Document struct {
	Asset       Asset        `json:"asset"`
	Scene       int          `json:"scene"`
	Scenes      []Scene      `json:"scenes"`
	Nodes       []Node       `json:"nodes"`
	Meshes      []Mesh       `json:"meshes"`
	Accessors   []Accessor   `json:"accessors"`
	BufferViews []BufferView `json:"bufferViews"`
	Buffers     []Buffer     `json:"buffers"`
}

// Asset identifies the format version and the generating tool.
type Asset struct {
	Version   string `json:"version"`
	Generator string `json:"generator"`
}

// Scene lists the root nodes of a scene.
type Scene struct {
	Nodes []int `json:"nodes"`
}

// Node references a mesh.
type Node struct {
	Mesh int `json:"mesh"`
}

// Mesh holds the primitives of a renderable mesh.
type Mesh struct {
	Primitives []Primitive `json:"primitives"`
}

// Primitive maps vertex attributes and indices to accessors.
type Primitive struct {
	Attributes map[string]int `json:"attributes"`
	Indices    int            `json:"indices"`
}

// Accessor is a typed view into a buffer view. Min and Max are set
// only for the position accessor; they are float32 so that the JSON
// values round-trip to exactly the bytes in the buffer.
type Accessor struct {
	BufferView    int       `json:"bufferView"`
	ByteOffset    int       `json:"byteOffset"`
	ComponentType int       `json:"componentType"`
	Count         int       `json:"count"`
	Type          string    `json:"type"`
	Max           []float32 `json:"max,omitempty"`
	Min           []float32 `json:"min,omitempty"`
}

// BufferView is a contiguous byte range of a buffer tagged with its
// GPU usage target.
type BufferView struct {
	Buffer     int `json:"buffer"`
	ByteOffset int `json:"byteOffset"`
	ByteLength int `json:"byteLength"`
	Target     int `json:"target"`
}

// Buffer points at the external binary payload.
type Buffer struct {
	URI        string `json:"uri"`
	ByteLength int    `json:"byteLength"`
}
