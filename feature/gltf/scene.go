package gltf

import (
	"context"
	"encoding/json"
	"fmt"

	"scene-inspector/core/bundle"
	"scene-inspector/core/view"
)

// Scene flattens scene id's node hierarchy into a field table over the
// document's object space.
//
// Fields appear in a fixed order: Parent first, then the transformation
// fields, mesh and material assignments, light and skin references, and
// finally custom fields collected from node extras. A mesh carrying
// multiple primitives with materials yields one MeshMaterial entry per
// level, all sharing the identity.
func (imp *Importer) Scene(ctx context.Context, id int) (*bundle.SceneData, error) {
	if id < 0 || id >= len(imp.doc.Scenes) {
		return nil, fmt.Errorf("scene %d out of range", id)
	}
	sc := imp.doc.Scenes[id]

	type visit struct{ node, parent int }
	stack := make([]visit, 0, len(sc.Nodes))
	for i := len(sc.Nodes) - 1; i >= 0; i-- {
		stack = append(stack, visit{sc.Nodes[i], -1})
	}

	var order []visit
	seen := make(map[int]bool, len(imp.doc.Nodes))
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if v.node < 0 {
			return nil, fmt.Errorf("scene %d references node %d", id, v.node)
		}
		// Out-of-range children stay in the parent field so they surface
		// as findings; there is no node to descend into.
		if v.node >= len(imp.doc.Nodes) {
			order = append(order, v)
			continue
		}
		if seen[v.node] {
			return nil, fmt.Errorf("scene %d visits node %d twice", id, v.node)
		}
		seen[v.node] = true
		order = append(order, v)
		children := imp.doc.Nodes[v.node].Children
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, visit{children[i], v.node})
		}
	}

	var (
		parentMap []uint64
		parentVal []int64
		matrixMap []uint64
		matrixVal []float64
		transMap  []uint64
		transVal  []float64
		rotMap    []uint64
		rotVal    []float64
		scaleMap  []uint64
		scaleVal  []float64
		meshMap   []uint64
		meshVal   []uint64
		lightMap  []uint64
		lightVal  []uint64
		skinMap   []uint64
		skinVal   []uint64
	)
	type materialLevel struct{ mapping, vals []uint64 }
	var materials []materialLevel
	var extras []*extraField
	extraIndex := make(map[string]*extraField)

	for _, v := range order {
		object := uint64(v.node)
		parentMap = append(parentMap, object)
		parentVal = append(parentVal, int64(v.parent))
		if v.node >= len(imp.doc.Nodes) {
			continue
		}
		n := imp.doc.Nodes[v.node]

		if n.Matrix != nil {
			matrixMap = append(matrixMap, object)
			matrixVal = append(matrixVal, n.Matrix[:]...)
		}
		if n.Translation != nil {
			transMap = append(transMap, object)
			transVal = append(transVal, n.Translation[:]...)
		}
		if n.Rotation != nil {
			rotMap = append(rotMap, object)
			rotVal = append(rotVal, n.Rotation[:]...)
		}
		if n.Scale != nil {
			scaleMap = append(scaleMap, object)
			scaleVal = append(scaleVal, n.Scale[:]...)
		}
		if n.Mesh != nil {
			meshMap = append(meshMap, object)
			meshVal = append(meshVal, uint64(*n.Mesh))
			if *n.Mesh >= 0 && *n.Mesh < len(imp.doc.Meshes) {
				for level, p := range imp.doc.Meshes[*n.Mesh].Primitives {
					if p.Material == nil {
						continue
					}
					for len(materials) <= level {
						materials = append(materials, materialLevel{})
					}
					materials[level].mapping = append(materials[level].mapping, object)
					materials[level].vals = append(materials[level].vals, uint64(*p.Material))
				}
			}
		}
		if n.Extensions.LightsPunctual != nil {
			lightMap = append(lightMap, object)
			lightVal = append(lightVal, uint64(n.Extensions.LightsPunctual.Light))
		}
		if n.Skin != nil {
			skinMap = append(skinMap, object)
			skinVal = append(skinVal, uint64(*n.Skin))
		}

		for _, key := range sortedKeys(n.Extras) {
			value, ok := decodeExtra(n.Extras[key])
			if !ok || value.isStr {
				// Strings have no fixed element width across nodes.
				continue
			}
			f := extraIndex[key]
			if f == nil {
				f = &extraField{key: key, isFlag: value.isBool}
				extraIndex[key] = f
				extras = append(extras, f)
			}
			// The first value fixes the field's type; nodes disagreeing
			// with it drop out of the mapping.
			if value.isBool != f.isFlag {
				continue
			}
			f.mapping = append(f.mapping, object)
			if value.isBool {
				var bit uint64
				if value.flag {
					bit = 1
				}
				f.flags = append(f.flags, bit)
			} else {
				f.nums = append(f.nums, value.num)
			}
		}
	}

	b := &tableBuilder{table: view.NewTable(len(imp.doc.Nodes))}
	b.ints(view.Builtin(view.FieldParent), parentMap, parentVal)
	b.floats(view.Builtin(view.FieldTransformation), view.Matrix(view.Float32, 4, 4), matrixMap, matrixVal)
	b.floats(view.Builtin(view.FieldTranslation), view.Vector(view.Float32, 3), transMap, transVal)
	b.floats(view.Builtin(view.FieldRotation), view.Vector(view.Float32, 4), rotMap, rotVal)
	b.floats(view.Builtin(view.FieldScaling), view.Vector(view.Float32, 3), scaleMap, scaleVal)
	b.uints(view.Builtin(view.FieldMesh), meshMap, meshVal)
	for _, level := range materials {
		b.uints(view.Builtin(view.FieldMeshMaterial), level.mapping, level.vals)
	}
	b.uints(view.Builtin(view.FieldLight), lightMap, lightVal)
	b.uints(view.Builtin(view.FieldSkin), skinMap, skinVal)
	for _, f := range extras {
		identity := view.Custom(imp.fields.id(f.key))
		if f.isFlag {
			b.uintsOf(identity, view.Scalar(view.Uint8), f.mapping, f.flags)
		} else {
			b.floats(identity, view.Scalar(view.Float64), f.mapping, f.nums)
		}
	}
	if b.err != nil {
		return nil, fmt.Errorf("failed to assemble scene %d: %w", id, b.err)
	}
	return &bundle.SceneData{Fields: b.table}, nil
}

// Animation assembles animation id's tracks. Every channel contributes a
// Time entry followed by the value entry, both broadcast-mapped to the
// target object. Morph weight channels have no fixed element width and
// are not reported.
func (imp *Importer) Animation(ctx context.Context, id int) (*bundle.AnimationData, error) {
	if id < 0 || id >= len(imp.doc.Animations) {
		return nil, fmt.Errorf("animation %d out of range", id)
	}
	a := imp.doc.Animations[id]

	table := view.NewTable(len(imp.doc.Nodes))
	var start, end float64
	seen := false

	for ci, ch := range a.Channels {
		field, ok := trackField(ch.Target.Path)
		if !ok || ch.Target.Node == nil {
			continue
		}
		if ch.Sampler < 0 || ch.Sampler >= len(a.Samplers) {
			return nil, fmt.Errorf("animation %d channel %d sampler %d out of range", id, ci, ch.Sampler)
		}
		s := a.Samplers[ch.Sampler]

		times, err := imp.accessorView(s.Input, shapeDeclared)
		if err != nil {
			return nil, fmt.Errorf("animation %d channel %d times: %w", id, ci, err)
		}
		values, err := imp.accessorView(s.Output, shapeDeclared)
		if err != nil {
			return nil, fmt.Errorf("animation %d channel %d values: %w", id, ci, err)
		}

		target := uint64(*ch.Target.Node)
		if err := addTrack(table, view.Builtin(view.FieldTime), target, times, true); err != nil {
			return nil, fmt.Errorf("animation %d channel %d: %w", id, ci, err)
		}
		if err := addTrack(table, view.Builtin(field), target, values, false); err != nil {
			return nil, fmt.Errorf("animation %d channel %d: %w", id, ci, err)
		}

		for i := 0; i < times.Count(); i++ {
			at, err := times.Float(i)
			if err != nil {
				return nil, fmt.Errorf("animation %d channel %d time %d: %w", id, ci, i, err)
			}
			if !seen || at < start {
				start = at
			}
			if !seen || at > end {
				end = at
			}
			seen = true
		}
	}
	return &bundle.AnimationData{Tracks: table, Duration: [2]float64{start, end}}, nil
}

// addTrack appends one track entry mapped to a single target object.
// Cubic spline values carry more elements than keyframes; the broadcast
// mapping stretches to whatever the data holds.
func addTrack(table *view.Table, id view.Identity, target uint64, data view.View, ordered bool) error {
	if data.Count() == 0 {
		return nil
	}
	mapping, err := view.BroadcastUint(view.Uint32, target, data.Count())
	if err != nil {
		return err
	}
	return table.Add(view.Entry{Identity: id, Mapping: mapping, Data: data, Ordered: ordered})
}

func trackField(path string) (view.Field, bool) {
	switch path {
	case "translation":
		return view.FieldTranslation, true
	case "rotation":
		return view.FieldRotation, true
	case "scale":
		return view.FieldScaling, true
	}
	return 0, false
}

// Skin reads skin id's joint list. Absent inverse bind matrices read as
// identity, which is what the format defines for them.
func (imp *Importer) Skin(ctx context.Context, id int) (*bundle.SkinData, error) {
	if id < 0 || id >= len(imp.doc.Skins) {
		return nil, fmt.Errorf("skin %d out of range", id)
	}
	s := imp.doc.Skins[id]

	jointVals := make([]uint64, len(s.Joints))
	for i, j := range s.Joints {
		jointVals[i] = uint64(j)
	}
	joints, err := view.PackUints(view.Scalar(view.Uint32), jointVals...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack skin %d joints: %w", id, err)
	}

	var matrices view.View
	if s.InverseBindMatrices != nil {
		matrices, err = imp.accessorView(*s.InverseBindMatrices, shapeDeclared)
		if err != nil {
			return nil, fmt.Errorf("skin %d inverse bind matrices: %w", id, err)
		}
	} else {
		vals := make([]float64, 0, len(s.Joints)*16)
		for range s.Joints {
			for c := 0; c < 4; c++ {
				for r := 0; r < 4; r++ {
					if c == r {
						vals = append(vals, 1)
					} else {
						vals = append(vals, 0)
					}
				}
			}
		}
		matrices, err = view.PackFloats(view.Matrix(view.Float32, 4, 4), vals...)
		if err != nil {
			return nil, fmt.Errorf("failed to pack skin %d matrices: %w", id, err)
		}
	}
	return &bundle.SkinData{Joints: joints, InverseBindMatrices: matrices}, nil
}

// extraField accumulates one custom field's values across the nodes
// carrying it.
type extraField struct {
	key     string
	mapping []uint64
	nums    []float64
	flags   []uint64
	isFlag  bool
}

// extraValue is one decoded extras entry. Exactly one of the three
// variants is set.
type extraValue struct {
	num    float64
	flag   bool
	str    string
	isBool bool
	isStr  bool
}

// decodeExtra reads one extras entry. Only scalar JSON values can carry
// attribute data; objects and arrays are not representable.
func decodeExtra(raw json.RawMessage) (extraValue, bool) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return extraValue{}, false
	}
	switch x := v.(type) {
	case float64:
		return extraValue{num: x}, true
	case bool:
		return extraValue{flag: x, isBool: true}, true
	case string:
		return extraValue{str: x, isStr: true}, true
	}
	return extraValue{}, false
}

// tableBuilder accumulates field entries, keeping only the first error.
// Empty mappings add nothing: a field nothing carries has no entry.
type tableBuilder struct {
	table *view.Table
	err   error
}

func (b *tableBuilder) entry(id view.Identity, mapping, data view.View) {
	if b.err != nil {
		return
	}
	if err := b.table.Add(view.Entry{Identity: id, Mapping: mapping, Data: data}); err != nil {
		b.err = fmt.Errorf("field %s: %w", id, err)
	}
}

func (b *tableBuilder) uints(id view.Identity, mapping, vals []uint64) {
	b.uintsOf(id, view.Scalar(view.Uint32), mapping, vals)
}

func (b *tableBuilder) uintsOf(id view.Identity, elem view.ElementType, mapping, vals []uint64) {
	if b.err != nil || len(mapping) == 0 {
		return
	}
	mv, err := view.PackUints(view.Scalar(view.Uint32), mapping...)
	if err != nil {
		b.err = err
		return
	}
	dv, err := view.PackUints(elem, vals...)
	if err != nil {
		b.err = err
		return
	}
	b.entry(id, mv, dv)
}

func (b *tableBuilder) ints(id view.Identity, mapping []uint64, vals []int64) {
	if b.err != nil || len(mapping) == 0 {
		return
	}
	mv, err := view.PackUints(view.Scalar(view.Uint32), mapping...)
	if err != nil {
		b.err = err
		return
	}
	dv, err := view.PackInts(view.Scalar(view.Int32), vals...)
	if err != nil {
		b.err = err
		return
	}
	b.entry(id, mv, dv)
}

func (b *tableBuilder) floats(id view.Identity, elem view.ElementType, mapping []uint64, vals []float64) {
	if b.err != nil || len(mapping) == 0 {
		return
	}
	mv, err := view.PackUints(view.Scalar(view.Uint32), mapping...)
	if err != nil {
		b.err = err
		return
	}
	dv, err := view.PackFloats(elem, vals...)
	if err != nil {
		b.err = err
		return
	}
	b.entry(id, mv, dv)
}
