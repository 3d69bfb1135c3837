package gltf

import (
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"scene-inspector/core/bundle"
	"scene-inspector/core/view"
)

// Importer adapts one parsed glTF 2.0 document to the bundle contract.
// Accessor payloads become typed views over the document's buffer
// memory; the importer never copies vertex data out of the container.
//
// An Importer is immutable after Parse and safe for concurrent reads.
type Importer struct {
	doc     *document
	buffers [][]byte
	owned   []bool
	fields  *fieldRegistry
}

// Parse reads a glTF document from raw bytes, accepting both the JSON
// form and the GLB container. Buffers embedded as data: URIs are decoded
// up front; external file buffers stay unresolved and fail the entities
// that need them at fetch time.
func Parse(data []byte) (*Importer, error) {
	jsonDoc := data
	var payload []byte
	if len(data) >= 12 && binary.LittleEndian.Uint32(data) == glbMagic {
		var err error
		jsonDoc, payload, err = splitGLB(data)
		if err != nil {
			return nil, fmt.Errorf("failed to read glb container: %w", err)
		}
	}

	doc := &document{}
	if err := json.Unmarshal(jsonDoc, doc); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	if !strings.HasPrefix(doc.Asset.Version, "2.") {
		return nil, fmt.Errorf("unsupported glTF version %q", doc.Asset.Version)
	}

	imp := &Importer{doc: doc, fields: newFieldRegistry()}
	if err := imp.resolveBuffers(payload); err != nil {
		return nil, err
	}
	imp.registerCustomFields()
	return imp, nil
}

// splitGLB separates the JSON and BIN chunks of a GLB container.
func splitGLB(data []byte) (jsonChunk, binChunk []byte, err error) {
	version := binary.LittleEndian.Uint32(data[4:])
	if version != glbVersion {
		return nil, nil, fmt.Errorf("unsupported container version %d", version)
	}
	total := int(binary.LittleEndian.Uint32(data[8:]))
	if total > len(data) {
		return nil, nil, fmt.Errorf("container declares %d bytes, input has %d", total, len(data))
	}

	rest := data[12:total]
	for len(rest) >= 8 {
		length := int(binary.LittleEndian.Uint32(rest))
		kind := binary.LittleEndian.Uint32(rest[4:])
		if length > len(rest)-8 {
			return nil, nil, errors.New("chunk exceeds container")
		}
		chunk := rest[8 : 8+length]
		switch kind {
		case glbChunkJSON:
			if jsonChunk == nil {
				jsonChunk = chunk
			}
		case glbChunkBIN:
			if binChunk == nil {
				binChunk = chunk
			}
		}
		rest = rest[8+length:]
	}
	if jsonChunk == nil {
		return nil, nil, errors.New("container has no JSON chunk")
	}
	return jsonChunk, binChunk, nil
}

// resolveBuffers binds every buffer declaration to its payload. The GLB
// BIN chunk serves buffer 0 when that buffer has no URI.
func (imp *Importer) resolveBuffers(payload []byte) error {
	imp.buffers = make([][]byte, len(imp.doc.Buffers))
	imp.owned = make([]bool, len(imp.doc.Buffers))
	for i, b := range imp.doc.Buffers {
		switch {
		case b.URI == "":
			if i == 0 && payload != nil {
				imp.buffers[i] = payload
			}
		case strings.HasPrefix(b.URI, "data:"):
			decoded, err := decodeDataURI(b.URI)
			if err != nil {
				return fmt.Errorf("failed to decode buffer %d: %w", i, err)
			}
			imp.buffers[i] = decoded
			imp.owned[i] = true
		}
	}
	return nil
}

func decodeDataURI(uri string) ([]byte, error) {
	comma := strings.IndexByte(uri, ',')
	if comma < 0 {
		return nil, errors.New("data uri has no payload")
	}
	meta := uri[len("data:"):comma]
	if !strings.HasSuffix(meta, ";base64") {
		return nil, fmt.Errorf("unsupported data uri encoding %q", meta)
	}
	return base64.StdEncoding.DecodeString(uri[comma+1:])
}

// dataURIMime returns the declared media type of a data: URI.
func dataURIMime(uri string) string {
	meta := strings.TrimPrefix(uri, "data:")
	if comma := strings.IndexByte(meta, ','); comma >= 0 {
		meta = meta[:comma]
	}
	if semi := strings.IndexByte(meta, ';'); semi >= 0 {
		meta = meta[:semi]
	}
	return meta
}

// registerCustomFields assigns custom field ids in document order so
// that ids are stable regardless of which report sections run: node
// extras first, then non-builtin mesh attribute semantics, then
// material extras. Keys within one owner are visited alphabetically.
func (imp *Importer) registerCustomFields() {
	for _, n := range imp.doc.Nodes {
		for _, key := range sortedKeys(n.Extras) {
			imp.fields.id(key)
		}
	}
	for _, m := range imp.doc.Meshes {
		for _, p := range m.Primitives {
			for _, semantic := range sortedSemantics(p.Attributes) {
				if _, ok := builtinAttribute(semantic); !ok {
					imp.fields.id(semantic)
				}
			}
		}
	}
	for _, m := range imp.doc.Materials {
		for _, key := range sortedKeys(m.Extras) {
			imp.fields.id(key)
		}
	}
}

// Count returns the number of entities of a kind. Objects are the
// document's node space, shared by every scene.
func (imp *Importer) Count(kind bundle.Kind) int {
	switch kind {
	case bundle.KindScene:
		return len(imp.doc.Scenes)
	case bundle.KindObject:
		return len(imp.doc.Nodes)
	case bundle.KindAnimation:
		return len(imp.doc.Animations)
	case bundle.KindSkin:
		return len(imp.doc.Skins)
	case bundle.KindLight:
		if imp.doc.Extensions.LightsPunctual == nil {
			return 0
		}
		return len(imp.doc.Extensions.LightsPunctual.Lights)
	case bundle.KindMaterial:
		return len(imp.doc.Materials)
	case bundle.KindMesh:
		return len(imp.doc.Meshes)
	case bundle.KindTexture:
		return len(imp.doc.Textures)
	case bundle.KindImage:
		return len(imp.doc.Images)
	}
	return 0
}

// Name returns an entity's display name, empty when the document names
// it nothing.
func (imp *Importer) Name(kind bundle.Kind, id int) string {
	if id < 0 || id >= imp.Count(kind) {
		return ""
	}
	switch kind {
	case bundle.KindScene:
		return imp.doc.Scenes[id].Name
	case bundle.KindObject:
		return imp.doc.Nodes[id].Name
	case bundle.KindAnimation:
		return imp.doc.Animations[id].Name
	case bundle.KindSkin:
		return imp.doc.Skins[id].Name
	case bundle.KindLight:
		return imp.doc.Extensions.LightsPunctual.Lights[id].Name
	case bundle.KindMaterial:
		return imp.doc.Materials[id].Name
	case bundle.KindMesh:
		return imp.doc.Meshes[id].Name
	case bundle.KindTexture:
		return imp.doc.Textures[id].Name
	case bundle.KindImage:
		return imp.doc.Images[id].Name
	}
	return ""
}

// FieldName resolves a custom field id assigned at parse time.
func (imp *Importer) FieldName(id uint32) string {
	return imp.fields.name(id)
}

// MeshLevelCount returns the number of primitives of a mesh; each
// primitive is reported as one mesh level.
func (imp *Importer) MeshLevelCount(id int) int {
	if id < 0 || id >= len(imp.doc.Meshes) {
		return 0
	}
	return len(imp.doc.Meshes[id].Primitives)
}

// accessorShape selects how an accessor's declared layout becomes an
// element type.
type accessorShape uint8

const (
	// shapeDeclared keeps the accessor's own scalar/vector/matrix shape.
	shapeDeclared accessorShape = iota
	// shapeArray reinterprets a vector accessor as a scalar array of the
	// same width; joint id and weight attributes use this form.
	shapeArray
)

// accessorElement maps an accessor's component and element declarations
// to a view element type.
func accessorElement(a accessor) (view.ElementType, error) {
	var t view.ScalarType
	switch a.ComponentType {
	case componentByte:
		t = view.Int8
	case componentUnsignedByte:
		t = view.Uint8
	case componentShort:
		t = view.Int16
	case componentUnsignedShort:
		t = view.Uint16
	case componentUnsignedInt:
		t = view.Uint32
	case componentFloat:
		t = view.Float32
	default:
		return view.ElementType{}, fmt.Errorf("unknown component type %d", a.ComponentType)
	}
	switch a.Type {
	case "SCALAR":
		return view.Scalar(t), nil
	case "VEC2":
		return view.Vector(t, 2), nil
	case "VEC3":
		return view.Vector(t, 3), nil
	case "VEC4":
		return view.Vector(t, 4), nil
	case "MAT2":
		return view.Matrix(t, 2, 2), nil
	case "MAT3":
		return view.Matrix(t, 3, 3), nil
	case "MAT4":
		return view.Matrix(t, 4, 4), nil
	}
	return view.ElementType{}, fmt.Errorf("unknown accessor type %q", a.Type)
}

// accessorView builds a typed view over one accessor's run of buffer
// memory. GLB payload views borrow the caller's input; decoded data: URI
// buffers yield owned views. Accessors without a buffer view read as
// zeroes per the format's contract.
func (imp *Importer) accessorView(index int, shape accessorShape) (view.View, error) {
	if index < 0 || index >= len(imp.doc.Accessors) {
		return view.View{}, fmt.Errorf("accessor %d out of range", index)
	}
	a := imp.doc.Accessors[index]
	if a.Sparse != nil {
		return view.View{}, fmt.Errorf("accessor %d is sparse", index)
	}

	elem, err := accessorElement(a)
	if err != nil {
		return view.View{}, fmt.Errorf("accessor %d: %w", index, err)
	}
	if shape == shapeArray {
		if elem.Shape() != view.ShapeVector {
			return view.View{}, fmt.Errorf("accessor %d: array layout needs a vector accessor, got %s", index, elem)
		}
		elem = view.Array(elem.ScalarType(), elem.Rank())
	}

	if a.BufferView == nil {
		return view.Own(elem, make([]byte, a.Count*elem.Size()), a.Count, elem.Size())
	}
	if *a.BufferView < 0 || *a.BufferView >= len(imp.doc.Views) {
		return view.View{}, fmt.Errorf("accessor %d buffer view %d out of range", index, *a.BufferView)
	}
	bv := imp.doc.Views[*a.BufferView]
	if bv.Buffer < 0 || bv.Buffer >= len(imp.buffers) {
		return view.View{}, fmt.Errorf("buffer view %d buffer %d out of range", *a.BufferView, bv.Buffer)
	}
	data := imp.buffers[bv.Buffer]
	if data == nil {
		return view.View{}, fmt.Errorf("buffer %d is external and was not loaded", bv.Buffer)
	}
	if bv.ByteOffset < 0 || bv.ByteLength < 0 || bv.ByteOffset+bv.ByteLength > len(data) {
		return view.View{}, fmt.Errorf("buffer view %d exceeds buffer %d", *a.BufferView, bv.Buffer)
	}
	run := data[bv.ByteOffset : bv.ByteOffset+bv.ByteLength]
	if a.ByteOffset < 0 || a.ByteOffset > len(run) {
		return view.View{}, fmt.Errorf("accessor %d offset exceeds its buffer view", index)
	}
	run = run[a.ByteOffset:]

	stride := elem.Size()
	if bv.ByteStride != nil {
		stride = *bv.ByteStride
	}
	if imp.owned[bv.Buffer] {
		return view.Own(elem, run, a.Count, stride)
	}
	return view.Borrow(elem, run, a.Count, stride, false)
}

// fieldRegistry assigns stable numeric ids to custom field names.
type fieldRegistry struct {
	names []string
	ids   map[string]uint32
}

func newFieldRegistry() *fieldRegistry {
	return &fieldRegistry{ids: make(map[string]uint32)}
}

func (r *fieldRegistry) id(name string) uint32 {
	if id, ok := r.ids[name]; ok {
		return id
	}
	id := uint32(len(r.names))
	r.names = append(r.names, name)
	r.ids[name] = id
	return id
}

func (r *fieldRegistry) name(id uint32) string {
	if int(id) >= len(r.names) {
		return ""
	}
	return r.names[id]
}

func sortedKeys(m map[string]json.RawMessage) []string {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// builtinAttribute maps a primitive attribute semantic to its builtin
// field. Repeated texture coordinate or color sets map to the same
// identity and surface as duplicates.
func builtinAttribute(semantic string) (view.Field, bool) {
	switch {
	case semantic == "POSITION":
		return view.FieldPosition, true
	case semantic == "NORMAL":
		return view.FieldNormal, true
	case semantic == "TANGENT":
		return view.FieldTangent, true
	case semantic == "_OBJECT_ID":
		return view.FieldObjectID, true
	case strings.HasPrefix(semantic, "TEXCOORD_"):
		return view.FieldTextureCoordinates, true
	case strings.HasPrefix(semantic, "COLOR_"):
		return view.FieldColor, true
	case strings.HasPrefix(semantic, "JOINTS_"):
		return view.FieldJointIDs, true
	case strings.HasPrefix(semantic, "WEIGHTS_"):
		return view.FieldWeights, true
	}
	return 0, false
}

// semanticRank fixes the report order of primitive attributes: builtin
// geometry first, then per-set attributes, then custom semantics, names
// breaking ties.
func semanticRank(semantic string) int {
	field, ok := builtinAttribute(semantic)
	if !ok {
		return int(view.FieldWeights) + 1
	}
	return int(field)
}

func sortedSemantics(attributes map[string]int) []string {
	semantics := make([]string, 0, len(attributes))
	for s := range attributes {
		semantics = append(semantics, s)
	}
	sort.Slice(semantics, func(i, j int) bool {
		ri, rj := semanticRank(semantics[i]), semanticRank(semantics[j])
		if ri != rj {
			return ri < rj
		}
		return semantics[i] < semantics[j]
	})
	return semantics
}
