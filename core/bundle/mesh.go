package bundle

import (
	"fmt"

	"scene-inspector/core/view"
)

// Primitive identifies the topology of one mesh level.
type Primitive uint8

const (
	// PrimitivePoints renders each vertex separately.
	PrimitivePoints Primitive = iota + 1
	// PrimitiveLines renders vertex pairs.
	PrimitiveLines
	// PrimitiveLineLoop renders a closed vertex chain.
	PrimitiveLineLoop
	// PrimitiveLineStrip renders an open vertex chain.
	PrimitiveLineStrip
	// PrimitiveTriangles renders vertex triples.
	PrimitiveTriangles
	// PrimitiveTriangleStrip renders a sliding-window triangle chain.
	PrimitiveTriangleStrip
	// PrimitiveTriangleFan renders triangles around the first vertex.
	PrimitiveTriangleFan
)

func (p Primitive) String() string {
	switch p {
	case PrimitivePoints:
		return "Points"
	case PrimitiveLines:
		return "Lines"
	case PrimitiveLineLoop:
		return "LineLoop"
	case PrimitiveLineStrip:
		return "LineStrip"
	case PrimitiveTriangles:
		return "Triangles"
	case PrimitiveTriangleStrip:
		return "TriangleStrip"
	case PrimitiveTriangleFan:
		return "TriangleFan"
	}
	return fmt.Sprintf("Primitive(%d)", uint8(p))
}

// MeshData describes one level of one mesh.
type MeshData struct {
	// Primitive is the topology the vertices assemble into.
	Primitive Primitive

	// Indices is the optional index view, nil for non-indexed meshes.
	Indices *view.View

	// Attributes holds the per-vertex attribute table; its index domain
	// is the vertex count.
	Attributes *view.Table
}

// Vertices returns the vertex count of the level.
func (m *MeshData) Vertices() int {
	return m.Attributes.Rows()
}
