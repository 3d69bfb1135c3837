package gltf

import (
	"context"
	"fmt"
	"strings"

	"scene-inspector/core/bundle"
	"scene-inspector/core/view"
)

// Mesh reads one primitive of mesh id as a vertex attribute table.
// Attribute order follows the builtin field ranking so repeated fetches
// line up, and joint influence attributes surface as fixed-width arrays.
func (imp *Importer) Mesh(ctx context.Context, id int, level int) (*bundle.MeshData, error) {
	if id < 0 || id >= len(imp.doc.Meshes) {
		return nil, fmt.Errorf("mesh %d out of range", id)
	}
	m := imp.doc.Meshes[id]
	if level < 0 || level >= len(m.Primitives) {
		return nil, fmt.Errorf("mesh %d has no level %d", id, level)
	}
	p := m.Primitives[level]

	prim, err := primitiveKind(p.Mode)
	if err != nil {
		return nil, fmt.Errorf("mesh %d level %d: %w", id, level, err)
	}

	semantics := sortedSemantics(p.Attributes)
	views := make([]view.View, len(semantics))
	identities := make([]view.Identity, len(semantics))
	vertices := 0
	for i, semantic := range semantics {
		shape := shapeDeclared
		if strings.HasPrefix(semantic, "JOINTS_") || strings.HasPrefix(semantic, "WEIGHTS_") {
			shape = shapeArray
		}
		data, err := imp.accessorView(p.Attributes[semantic], shape)
		if err != nil {
			return nil, fmt.Errorf("mesh %d level %d attribute %s: %w", id, level, semantic, err)
		}
		views[i] = data
		if field, ok := builtinAttribute(semantic); ok {
			identities[i] = view.Builtin(field)
		} else {
			identities[i] = view.Custom(imp.fields.id(semantic))
		}
		if i == 0 || semantic == "POSITION" {
			vertices = data.Count()
		}
	}

	table := view.NewTable(vertices)
	for i, data := range views {
		err := table.Add(view.Entry{
			Identity: identities[i],
			Mapping:  view.IdentityMapping(data.Count()),
			Data:     data,
			Ordered:  true,
		})
		if err != nil {
			return nil, fmt.Errorf("mesh %d level %d: %w", id, level, err)
		}
	}

	mesh := &bundle.MeshData{Primitive: prim, Attributes: table}
	if p.Indices != nil {
		indices, err := imp.accessorView(*p.Indices, shapeDeclared)
		if err != nil {
			return nil, fmt.Errorf("mesh %d level %d indices: %w", id, level, err)
		}
		if indices.Type().Shape() != view.ShapeScalar {
			return nil, fmt.Errorf("mesh %d level %d indices are not scalar", id, level)
		}
		mesh.Indices = &indices
	}
	return mesh, nil
}

func primitiveKind(mode *int) (bundle.Primitive, error) {
	if mode == nil {
		return bundle.PrimitiveTriangles, nil
	}
	switch *mode {
	case modePoints:
		return bundle.PrimitivePoints, nil
	case modeLines:
		return bundle.PrimitiveLines, nil
	case modeLineLoop:
		return bundle.PrimitiveLineLoop, nil
	case modeLineStrip:
		return bundle.PrimitiveLineStrip, nil
	case modeTriangles:
		return bundle.PrimitiveTriangles, nil
	case modeTriangleStrip:
		return bundle.PrimitiveTriangleStrip, nil
	case modeTriangleFan:
		return bundle.PrimitiveTriangleFan, nil
	}
	return 0, fmt.Errorf("unknown primitive mode %d", *mode)
}
