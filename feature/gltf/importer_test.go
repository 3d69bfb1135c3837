package gltf

import (
	"context"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"scene-inspector/core/bundle"
	"scene-inspector/core/view"
)

// dataURI encodes raw bytes as an embedded buffer URI.
func dataURI(data []byte) string {
	return "data:application/octet-stream;base64," + base64.StdEncoding.EncodeToString(data)
}

func floatBytes(vals ...float32) []byte {
	buf := make([]byte, 4*len(vals))
	for i, v := range vals {
		binary.LittleEndian.PutUint32(buf[4*i:], math.Float32bits(v))
	}
	return buf
}

func u16Bytes(vals ...uint16) []byte {
	buf := make([]byte, 2*len(vals))
	for i, v := range vals {
		binary.LittleEndian.PutUint16(buf[2*i:], v)
	}
	return buf
}

func parseDoc(t *testing.T, doc string) *Importer {
	t.Helper()
	imp, err := Parse([]byte(doc))
	assert.NoError(t, err)
	if imp == nil {
		t.FailNow()
	}
	return imp
}

// glbContainer assembles a binary container around a JSON document and
// an optional payload chunk.
func glbContainer(t *testing.T, doc string, payload []byte) []byte {
	t.Helper()
	jsonChunk := []byte(doc)
	for len(jsonChunk)%4 != 0 {
		jsonChunk = append(jsonChunk, ' ')
	}
	binChunk := append([]byte(nil), payload...)
	for len(binChunk)%4 != 0 {
		binChunk = append(binChunk, 0)
	}

	total := 12 + 8 + len(jsonChunk)
	if payload != nil {
		total += 8 + len(binChunk)
	}
	out := make([]byte, 0, total)
	out = binary.LittleEndian.AppendUint32(out, glbMagic)
	out = binary.LittleEndian.AppendUint32(out, glbVersion)
	out = binary.LittleEndian.AppendUint32(out, uint32(total))
	out = binary.LittleEndian.AppendUint32(out, uint32(len(jsonChunk)))
	out = binary.LittleEndian.AppendUint32(out, glbChunkJSON)
	out = append(out, jsonChunk...)
	if payload != nil {
		out = binary.LittleEndian.AppendUint32(out, uint32(len(binChunk)))
		out = binary.LittleEndian.AppendUint32(out, glbChunkBIN)
		out = append(out, binChunk...)
	}
	return out
}

func findField(tbl *view.Table, id view.Identity) (view.Entry, bool) {
	for _, e := range tbl.Entries() {
		if e.Identity == id {
			return e, true
		}
	}
	return view.Entry{}, false
}

// TestParse_VersionCheck tests that documents declaring another major
// version are rejected.
func TestParse_VersionCheck(t *testing.T) {
	_, err := Parse([]byte(`{"asset":{"version":"1.0"}}`))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported glTF version")

	imp, err := Parse([]byte(`{"asset":{"version":"2.0"}}`))
	assert.NoError(t, err)
	assert.NotNil(t, imp)
}

// TestParse_GLBContainer tests that the binary container is split into
// its JSON document and payload chunk, and that accessor views over the
// payload borrow the caller's memory.
func TestParse_GLBContainer(t *testing.T) {
	positions := floatBytes(
		0, 0, 0,
		1, 0, 0,
		0, 1, 0,
	)
	doc := fmt.Sprintf(`{
		"asset": {"version": "2.0"},
		"meshes": [{"primitives": [{"attributes": {"POSITION": 0}}]}],
		"accessors": [{"bufferView": 0, "componentType": 5126, "count": 3, "type": "VEC3"}],
		"bufferViews": [{"buffer": 0, "byteLength": %d}],
		"buffers": [{"byteLength": %d}]
	}`, len(positions), len(positions))

	imp, err := Parse(glbContainer(t, doc, positions))
	assert.NoError(t, err)

	mesh, err := imp.Mesh(context.Background(), 0, 0)
	assert.NoError(t, err)
	assert.Equal(t, 3, mesh.Vertices())
	assert.Equal(t, bundle.PrimitiveTriangles, mesh.Primitive)

	pos, ok := findField(mesh.Attributes, view.Builtin(view.FieldPosition))
	assert.True(t, ok)
	assert.Equal(t, view.BorrowedImmutable, pos.Data.Ownership())

	x, err := pos.Data.Component(1, 0)
	assert.NoError(t, err)
	assert.Equal(t, 1.0, x)
	y, err := pos.Data.Component(2, 1)
	assert.NoError(t, err)
	assert.Equal(t, 1.0, y)
}

// TestParse_GLBErrors tests that malformed containers are rejected with
// a container-level error.
func TestParse_GLBErrors(t *testing.T) {
	valid := glbContainer(t, `{"asset":{"version":"2.0"}}`, nil)

	wrongVersion := append([]byte(nil), valid...)
	binary.LittleEndian.PutUint32(wrongVersion[4:], 1)

	truncated := append([]byte(nil), valid...)
	binary.LittleEndian.PutUint32(truncated[12:], uint32(len(valid)))

	noJSON := make([]byte, 0, 20)
	noJSON = binary.LittleEndian.AppendUint32(noJSON, glbMagic)
	noJSON = binary.LittleEndian.AppendUint32(noJSON, glbVersion)
	noJSON = binary.LittleEndian.AppendUint32(noJSON, 20)
	noJSON = binary.LittleEndian.AppendUint32(noJSON, 0)
	noJSON = binary.LittleEndian.AppendUint32(noJSON, glbChunkBIN)

	tests := []struct {
		name      string
		data      []byte
		expectErr string
	}{
		{name: "wrong container version", data: wrongVersion, expectErr: "unsupported container version"},
		{name: "chunk past container end", data: truncated, expectErr: "chunk exceeds container"},
		{name: "payload chunk only", data: noJSON, expectErr: "no JSON chunk"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.data)
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectErr)
		})
	}
}

// TestParse_DataURIBuffer tests that embedded buffers are decoded at
// parse time and yield owned views.
func TestParse_DataURIBuffer(t *testing.T) {
	positions := floatBytes(2, 4, 8)
	doc := fmt.Sprintf(`{
		"asset": {"version": "2.0"},
		"meshes": [{"primitives": [{"attributes": {"POSITION": 0}}]}],
		"accessors": [{"bufferView": 0, "componentType": 5126, "count": 1, "type": "VEC3"}],
		"bufferViews": [{"buffer": 0, "byteLength": %d}],
		"buffers": [{"uri": %q, "byteLength": %d}]
	}`, len(positions), dataURI(positions), len(positions))

	imp := parseDoc(t, doc)
	mesh, err := imp.Mesh(context.Background(), 0, 0)
	assert.NoError(t, err)

	pos, ok := findField(mesh.Attributes, view.Builtin(view.FieldPosition))
	assert.True(t, ok)
	assert.Equal(t, view.Owned, pos.Data.Ownership())
	z, err := pos.Data.Component(0, 2)
	assert.NoError(t, err)
	assert.Equal(t, 8.0, z)
}

// TestImporter_Counts tests the per-kind entity counts, including lights
// living in the extension block.
func TestImporter_Counts(t *testing.T) {
	imp := parseDoc(t, `{
		"asset": {"version": "2.0"},
		"scenes": [{"nodes": []}],
		"nodes": [{}, {}, {}],
		"meshes": [{"name": "hull", "primitives": [{"attributes": {}}, {"attributes": {}}]}],
		"materials": [{}, {}],
		"extensions": {"KHR_lights_punctual": {"lights": [{"type": "point"}]}}
	}`)

	assert.Equal(t, 1, imp.Count(bundle.KindScene))
	assert.Equal(t, 3, imp.Count(bundle.KindObject))
	assert.Equal(t, 1, imp.Count(bundle.KindMesh))
	assert.Equal(t, 2, imp.Count(bundle.KindMaterial))
	assert.Equal(t, 1, imp.Count(bundle.KindLight))
	assert.Equal(t, 0, imp.Count(bundle.KindTexture))

	assert.Equal(t, "hull", imp.Name(bundle.KindMesh, 0))
	assert.Equal(t, "", imp.Name(bundle.KindMesh, 7))
	assert.Equal(t, 2, imp.MeshLevelCount(0))
	assert.Equal(t, 0, imp.MeshLevelCount(3))
}

// TestImporter_SceneHierarchy tests that the node tree flattens into
// parent, transformation and reference fields in visit order.
func TestImporter_SceneHierarchy(t *testing.T) {
	imp := parseDoc(t, `{
		"asset": {"version": "2.0"},
		"scenes": [{"nodes": [0]}],
		"nodes": [
			{"children": [1, 2]},
			{"mesh": 0, "translation": [1, 2, 3]},
			{"children": [3]},
			{"skin": 0}
		],
		"meshes": [{"primitives": [{"attributes": {}, "material": 0}]}],
		"materials": [{}],
		"skins": [{"joints": [1]}]
	}`)

	data, err := imp.Scene(context.Background(), 0)
	assert.NoError(t, err)
	assert.Equal(t, 4, data.Objects())

	parent, ok := findField(data.Fields, view.Builtin(view.FieldParent))
	assert.True(t, ok)
	assert.Equal(t, 4, parent.Mapping.Count())
	wantObjects := []uint64{0, 1, 2, 3}
	wantParents := []int64{-1, 0, 0, 2}
	for i := range wantObjects {
		object, err := parent.Mapping.Uint(i)
		assert.NoError(t, err)
		assert.Equal(t, wantObjects[i], object)
		p, err := parent.Data.Index(i)
		assert.NoError(t, err)
		assert.Equal(t, wantParents[i], p)
	}

	trans, ok := findField(data.Fields, view.Builtin(view.FieldTranslation))
	assert.True(t, ok)
	assert.Equal(t, 1, trans.Mapping.Count())
	object, err := trans.Mapping.Uint(0)
	assert.NoError(t, err)
	assert.Equal(t, uint64(1), object)
	ty, err := trans.Data.Component(0, 1)
	assert.NoError(t, err)
	assert.Equal(t, 2.0, ty)

	meshField, ok := findField(data.Fields, view.Builtin(view.FieldMesh))
	assert.True(t, ok)
	assert.Equal(t, 1, meshField.Mapping.Count())

	matField, ok := findField(data.Fields, view.Builtin(view.FieldMeshMaterial))
	assert.True(t, ok)
	object, err = matField.Mapping.Uint(0)
	assert.NoError(t, err)
	assert.Equal(t, uint64(1), object)

	skinField, ok := findField(data.Fields, view.Builtin(view.FieldSkin))
	assert.True(t, ok)
	object, err = skinField.Mapping.Uint(0)
	assert.NoError(t, err)
	assert.Equal(t, uint64(3), object)
}

// TestImporter_SceneRevisit tests that a node reachable twice fails the
// scene instead of looping.
func TestImporter_SceneRevisit(t *testing.T) {
	imp := parseDoc(t, `{
		"asset": {"version": "2.0"},
		"scenes": [{"nodes": [0]}],
		"nodes": [{"children": [1]}, {"children": [0]}]
	}`)

	_, err := imp.Scene(context.Background(), 0)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "visits node 0 twice")
}

// TestImporter_SceneDanglingChild tests that an out-of-range child keeps
// its parent entry so the reference surfaces downstream instead of
// failing the whole scene.
func TestImporter_SceneDanglingChild(t *testing.T) {
	imp := parseDoc(t, `{
		"asset": {"version": "2.0"},
		"scenes": [{"nodes": [0]}],
		"nodes": [{"children": [9]}]
	}`)

	data, err := imp.Scene(context.Background(), 0)
	assert.NoError(t, err)

	parent, ok := findField(data.Fields, view.Builtin(view.FieldParent))
	assert.True(t, ok)
	assert.Equal(t, 2, parent.Mapping.Count())
	object, err := parent.Mapping.Uint(1)
	assert.NoError(t, err)
	assert.Equal(t, uint64(9), object)
}

// TestImporter_SceneNodeExtras tests that scalar node extras become
// custom fields typed by their first value.
func TestImporter_SceneNodeExtras(t *testing.T) {
	imp := parseDoc(t, `{
		"asset": {"version": "2.0"},
		"scenes": [{"nodes": [0, 1]}],
		"nodes": [
			{"extras": {"score": 1.5, "label": "alpha"}},
			{"extras": {"score": 2, "visible": true}}
		]
	}`)

	data, err := imp.Scene(context.Background(), 0)
	assert.NoError(t, err)

	var score, visible view.Entry
	var foundScore, foundVisible bool
	for _, e := range data.Fields.Entries() {
		if !e.Identity.IsCustom() {
			continue
		}
		switch imp.FieldName(e.Identity.CustomID()) {
		case "score":
			score, foundScore = e, true
		case "visible":
			visible, foundVisible = e, true
		case "label":
			t.Errorf("string extras must not become scene fields")
		}
	}

	assert.True(t, foundScore)
	assert.Equal(t, 2, score.Data.Count())
	assert.Equal(t, view.Scalar(view.Float64), score.Data.Type())
	v, err := score.Data.Float(1)
	assert.NoError(t, err)
	assert.Equal(t, 2.0, v)

	assert.True(t, foundVisible)
	assert.Equal(t, 1, visible.Data.Count())
	assert.Equal(t, view.Scalar(view.Uint8), visible.Data.Type())
	bit, err := visible.Data.Uint(0)
	assert.NoError(t, err)
	assert.Equal(t, uint64(1), bit)
}

// TestImporter_MeshAttributes tests attribute ordering, joint array
// reshaping and index decoding over a shared embedded buffer.
func TestImporter_MeshAttributes(t *testing.T) {
	positions := floatBytes(
		0, 0, 0,
		1, 0, 0,
		0, 1, 0,
	)
	uv := floatBytes(0, 0, 1, 0, 0, 1)
	joints := []byte{
		0, 1, 2, 3,
		0, 0, 0, 0,
		1, 1, 1, 1,
	}
	temperature := floatBytes(21.5, 22, 19)
	indices := u16Bytes(0, 1, 2)

	var buf []byte
	buf = append(buf, positions...)
	buf = append(buf, uv...)
	buf = append(buf, joints...)
	buf = append(buf, temperature...)
	buf = append(buf, indices...)

	doc := fmt.Sprintf(`{
		"asset": {"version": "2.0"},
		"meshes": [{"primitives": [{
			"attributes": {"_TEMPERATURE": 3, "JOINTS_0": 2, "TEXCOORD_0": 1, "POSITION": 0},
			"indices": 4,
			"mode": 1
		}]}],
		"accessors": [
			{"bufferView": 0, "componentType": 5126, "count": 3, "type": "VEC3"},
			{"bufferView": 1, "componentType": 5126, "count": 3, "type": "VEC2"},
			{"bufferView": 2, "componentType": 5121, "count": 3, "type": "VEC4"},
			{"bufferView": 3, "componentType": 5126, "count": 3, "type": "SCALAR"},
			{"bufferView": 4, "componentType": 5123, "count": 3, "type": "SCALAR"}
		],
		"bufferViews": [
			{"buffer": 0, "byteOffset": 0, "byteLength": 36},
			{"buffer": 0, "byteOffset": 36, "byteLength": 24},
			{"buffer": 0, "byteOffset": 60, "byteLength": 12},
			{"buffer": 0, "byteOffset": 72, "byteLength": 12},
			{"buffer": 0, "byteOffset": 84, "byteLength": 6}
		],
		"buffers": [{"uri": %q, "byteLength": %d}]
	}`, dataURI(buf), len(buf))

	imp := parseDoc(t, doc)
	mesh, err := imp.Mesh(context.Background(), 0, 0)
	assert.NoError(t, err)

	assert.Equal(t, bundle.PrimitiveLines, mesh.Primitive)
	assert.Equal(t, 3, mesh.Vertices())

	entries := mesh.Attributes.Entries()
	assert.Len(t, entries, 4)
	assert.Equal(t, view.Builtin(view.FieldPosition), entries[0].Identity)
	assert.Equal(t, view.Builtin(view.FieldTextureCoordinates), entries[1].Identity)
	assert.Equal(t, view.Builtin(view.FieldJointIDs), entries[2].Identity)
	assert.True(t, entries[3].Identity.IsCustom())
	assert.Equal(t, "_TEMPERATURE", imp.FieldName(entries[3].Identity.CustomID()))

	jointsEntry := entries[2]
	assert.Equal(t, view.ShapeArray, jointsEntry.Data.Type().Shape())
	assert.Equal(t, 4, jointsEntry.Data.Type().Arity())
	assert.Equal(t, view.Uint8, jointsEntry.Data.Type().ScalarType())

	assert.NotNil(t, mesh.Indices)
	assert.Equal(t, view.Uint16, mesh.Indices.Type().ScalarType())
	last, err := mesh.Indices.Index(2)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), last)
}

// TestImporter_MeshSparseAccessor tests that sparse accessors fail the
// entity that reads them.
func TestImporter_MeshSparseAccessor(t *testing.T) {
	imp := parseDoc(t, `{
		"asset": {"version": "2.0"},
		"meshes": [{"primitives": [{"attributes": {"POSITION": 0}}]}],
		"accessors": [{"componentType": 5126, "count": 3, "type": "VEC3", "sparse": {"count": 1}}]
	}`)

	_, err := imp.Mesh(context.Background(), 0, 0)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "sparse")
}

// TestImporter_ExternalBuffer tests that accessors over file buffers
// fail at fetch time rather than at parse time.
func TestImporter_ExternalBuffer(t *testing.T) {
	imp := parseDoc(t, `{
		"asset": {"version": "2.0"},
		"meshes": [{"primitives": [{"attributes": {"POSITION": 0}}]}],
		"accessors": [{"bufferView": 0, "componentType": 5126, "count": 3, "type": "VEC3"}],
		"bufferViews": [{"buffer": 0, "byteLength": 36}],
		"buffers": [{"uri": "mesh.bin", "byteLength": 36}]
	}`)

	_, err := imp.Mesh(context.Background(), 0, 0)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "external")
}

// TestImporter_MaterialLayers tests the base layer, the clear coat
// layer and custom attributes from extras.
func TestImporter_MaterialLayers(t *testing.T) {
	imp := parseDoc(t, `{
		"asset": {"version": "2.0"},
		"materials": [{
			"doubleSided": true,
			"pbrMetallicRoughness": {
				"baseColorFactor": [1, 0.5, 0, 1],
				"roughnessFactor": 0.25,
				"baseColorTexture": {"index": 2}
			},
			"extras": {"tier": 3},
			"extensions": {"KHR_materials_clearcoat": {
				"clearcoatFactor": 0.5,
				"clearcoatRoughnessFactor": 0.75
			}}
		}]
	}`)

	data, err := imp.Material(context.Background(), 0)
	assert.NoError(t, err)
	assert.Equal(t, 2, data.Layers())
	assert.Equal(t, bundle.MaterialPbrMetallicRoughness|bundle.MaterialPbrClearCoat, data.Types)

	layerOf := func(e view.Entry) uint64 {
		layer, err := e.Mapping.Uint(0)
		assert.NoError(t, err)
		return layer
	}

	doubleSided, ok := findField(data.Attributes, view.Builtin(view.FieldDoubleSided))
	assert.True(t, ok)
	assert.Equal(t, uint64(0), layerOf(doubleSided))

	baseColor, ok := findField(data.Attributes, view.Builtin(view.FieldBaseColor))
	assert.True(t, ok)
	g, err := baseColor.Data.Component(0, 1)
	assert.NoError(t, err)
	assert.Equal(t, 0.5, g)

	texture, ok := findField(data.Attributes, view.Builtin(view.FieldBaseColorTexture))
	assert.True(t, ok)
	ref, err := texture.Data.Uint(0)
	assert.NoError(t, err)
	assert.Equal(t, uint64(2), ref)

	layerName, ok := findField(data.Attributes, view.Builtin(view.FieldLayerName))
	assert.True(t, ok)
	assert.Equal(t, uint64(1), layerOf(layerName))
	name, err := layerName.Data.Text(0)
	assert.NoError(t, err)
	assert.Equal(t, "ClearCoat", name)

	// Roughness appears on both layers with distinct values.
	var roughness []view.Entry
	for _, e := range data.Attributes.Entries() {
		if e.Identity == view.Builtin(view.FieldRoughness) {
			roughness = append(roughness, e)
		}
	}
	assert.Len(t, roughness, 2)
	base, err := roughness[0].Data.Float(0)
	assert.NoError(t, err)
	assert.InDelta(t, 0.25, base, 1e-6)
	coat, err := roughness[1].Data.Float(0)
	assert.NoError(t, err)
	assert.InDelta(t, 0.75, coat, 1e-6)
	assert.Equal(t, uint64(0), layerOf(roughness[0]))
	assert.Equal(t, uint64(1), layerOf(roughness[1]))

	var tier view.Entry
	found := false
	for _, e := range data.Attributes.Entries() {
		if e.Identity.IsCustom() && imp.FieldName(e.Identity.CustomID()) == "tier" {
			tier, found = e, true
		}
	}
	assert.True(t, found)
	v, err := tier.Data.Float(0)
	assert.NoError(t, err)
	assert.Equal(t, 3.0, v)
}

// TestImporter_MaterialUnlit tests that the unlit extension replaces the
// metallic/roughness model with flat shading.
func TestImporter_MaterialUnlit(t *testing.T) {
	imp := parseDoc(t, `{
		"asset": {"version": "2.0"},
		"materials": [{"extensions": {"KHR_materials_unlit": {}}}]
	}`)

	data, err := imp.Material(context.Background(), 0)
	assert.NoError(t, err)
	assert.Equal(t, bundle.MaterialFlat, data.Types)
	assert.Equal(t, 1, data.Layers())
}

// TestImporter_Lights tests punctual light defaults and the spot cone.
func TestImporter_Lights(t *testing.T) {
	imp := parseDoc(t, `{
		"asset": {"version": "2.0"},
		"extensions": {"KHR_lights_punctual": {"lights": [
			{"type": "point"},
			{"type": "spot", "range": 4, "intensity": 20, "spot": {"outerConeAngle": 1}},
			{"type": "area"}
		]}}
	}`)

	point, err := imp.Light(context.Background(), 0)
	assert.NoError(t, err)
	assert.Equal(t, bundle.LightPoint, point.Type)
	assert.Equal(t, [3]float64{1, 1, 1}, point.Color)
	assert.Equal(t, 1.0, point.Intensity)
	assert.True(t, math.IsInf(point.Range, 1))
	assert.Equal(t, [3]float64{1, 0, 1}, point.Attenuation)

	spot, err := imp.Light(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, bundle.LightSpot, spot.Type)
	assert.Equal(t, 4.0, spot.Range)
	assert.Equal(t, 20.0, spot.Intensity)
	assert.Equal(t, 0.0, spot.InnerAngle)
	assert.Equal(t, 1.0, spot.OuterAngle)

	_, err = imp.Light(context.Background(), 2)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown type")
}

// TestImporter_TextureSampler tests sampler defaults and the filter and
// wrap code translation.
func TestImporter_TextureSampler(t *testing.T) {
	imp := parseDoc(t, `{
		"asset": {"version": "2.0"},
		"textures": [
			{"source": 0},
			{"source": 1, "sampler": 0},
			{}
		],
		"samplers": [{"magFilter": 9728, "minFilter": 9984, "wrapS": 33071}],
		"images": [{"uri": "a.png"}, {"uri": "b.png"}]
	}`)

	plain, err := imp.Texture(context.Background(), 0)
	assert.NoError(t, err)
	assert.Equal(t, bundle.Texture2D, plain.Type)
	assert.Equal(t, bundle.FilterLinear, plain.MinFilter)
	assert.Equal(t, bundle.FilterLinear, plain.MagFilter)
	assert.Equal(t, bundle.MipmapLinear, plain.Mipmap)
	assert.Equal(t, [3]bundle.Wrapping{bundle.WrapRepeat, bundle.WrapRepeat, bundle.WrapRepeat}, plain.Wrapping)
	assert.Equal(t, 0, plain.Image)

	sampled, err := imp.Texture(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, bundle.FilterNearest, sampled.MagFilter)
	assert.Equal(t, bundle.FilterNearest, sampled.MinFilter)
	assert.Equal(t, bundle.MipmapNearest, sampled.Mipmap)
	assert.Equal(t, bundle.WrapClampToEdge, sampled.Wrapping[0])
	assert.Equal(t, bundle.WrapRepeat, sampled.Wrapping[1])
	assert.Equal(t, 1, sampled.Image)

	_, err = imp.Texture(context.Background(), 2)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no image source")
}

// TestImporter_Images tests the three payload locations an image can
// declare.
func TestImporter_Images(t *testing.T) {
	payload := []byte{0x89, 'P', 'N', 'G', 0, 1, 2}
	doc := fmt.Sprintf(`{
		"asset": {"version": "2.0"},
		"images": [
			{"uri": %q},
			{"bufferView": 0, "mimeType": "image/ktx2"},
			{"uri": "textures/wood.jpg", "mimeType": "image/jpeg"}
		],
		"bufferViews": [{"buffer": 0, "byteLength": 512}],
		"buffers": [{"uri": "big.bin", "byteLength": 1024}]
	}`, "data:image/png;base64,"+base64.StdEncoding.EncodeToString(payload))

	imp := parseDoc(t, doc)

	embedded, err := imp.Image(context.Background(), 0)
	assert.NoError(t, err)
	assert.Equal(t, len(payload), embedded.ByteLength)
	assert.Equal(t, "image/png", embedded.MimeType)

	inBuffer, err := imp.Image(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, 512, inBuffer.ByteLength)
	assert.Equal(t, "image/ktx2", inBuffer.MimeType)

	external, err := imp.Image(context.Background(), 2)
	assert.NoError(t, err)
	assert.Equal(t, 0, external.ByteLength)
	assert.Equal(t, "image/jpeg", external.MimeType)
}

// TestImporter_AnimationTracks tests that channels become paired time
// and value entries and that morph weight channels are skipped.
func TestImporter_AnimationTracks(t *testing.T) {
	times := floatBytes(0, 1, 2)
	values := floatBytes(
		0, 0, 0,
		1, 1, 1,
		2, 2, 2,
	)
	var buf []byte
	buf = append(buf, times...)
	buf = append(buf, values...)

	doc := fmt.Sprintf(`{
		"asset": {"version": "2.0"},
		"nodes": [{}, {}],
		"animations": [{
			"channels": [
				{"sampler": 0, "target": {"node": 1, "path": "translation"}},
				{"sampler": 0, "target": {"node": 1, "path": "weights"}}
			],
			"samplers": [{"input": 0, "output": 1}]
		}],
		"accessors": [
			{"bufferView": 0, "componentType": 5126, "count": 3, "type": "SCALAR"},
			{"bufferView": 1, "componentType": 5126, "count": 3, "type": "VEC3"}
		],
		"bufferViews": [
			{"buffer": 0, "byteOffset": 0, "byteLength": 12},
			{"buffer": 0, "byteOffset": 12, "byteLength": 36}
		],
		"buffers": [{"uri": %q, "byteLength": %d}]
	}`, dataURI(buf), len(buf))

	imp := parseDoc(t, doc)
	data, err := imp.Animation(context.Background(), 0)
	assert.NoError(t, err)
	assert.Equal(t, [2]float64{0, 2}, data.Duration)

	entries := data.Tracks.Entries()
	assert.Len(t, entries, 2)

	timeEntry := entries[0]
	assert.Equal(t, view.Builtin(view.FieldTime), timeEntry.Identity)
	assert.True(t, timeEntry.Ordered)
	assert.True(t, timeEntry.Mapping.Broadcast())
	target, err := timeEntry.Mapping.Uint(2)
	assert.NoError(t, err)
	assert.Equal(t, uint64(1), target)

	valueEntry := entries[1]
	assert.Equal(t, view.Builtin(view.FieldTranslation), valueEntry.Identity)
	assert.Equal(t, 3, valueEntry.Data.Count())
	y, err := valueEntry.Data.Component(2, 1)
	assert.NoError(t, err)
	assert.Equal(t, 2.0, y)
}

// TestImporter_SkinMatrices tests the identity fallback for absent
// inverse bind matrices and the accessor path when they are present.
func TestImporter_SkinMatrices(t *testing.T) {
	matrix := make([]float32, 32)
	matrix[0] = 5
	for i := 16; i < 32; i += 5 {
		matrix[i] = 1
	}
	raw := floatBytes(matrix...)

	doc := fmt.Sprintf(`{
		"asset": {"version": "2.0"},
		"skins": [
			{"joints": [0, 1]},
			{"joints": [0, 1], "inverseBindMatrices": 0}
		],
		"accessors": [{"bufferView": 0, "componentType": 5126, "count": 2, "type": "MAT4"}],
		"bufferViews": [{"buffer": 0, "byteLength": %d}],
		"buffers": [{"uri": %q, "byteLength": %d}]
	}`, len(raw), dataURI(raw), len(raw))

	imp := parseDoc(t, doc)

	synthesized, err := imp.Skin(context.Background(), 0)
	assert.NoError(t, err)
	assert.Equal(t, 2, synthesized.Joints.Count())
	assert.Equal(t, 2, synthesized.InverseBindMatrices.Count())
	diag, err := synthesized.InverseBindMatrices.Component(1, 5)
	assert.NoError(t, err)
	assert.Equal(t, 1.0, diag)
	tbl, err := synthesized.Table()
	assert.NoError(t, err)
	assert.Equal(t, 2, tbl.Len())

	stored, err := imp.Skin(context.Background(), 1)
	assert.NoError(t, err)
	first, err := stored.InverseBindMatrices.Component(0, 0)
	assert.NoError(t, err)
	assert.Equal(t, 5.0, first)
}

// TestImporter_CustomFieldIDs tests that custom ids are assigned at
// parse time in document order, before any section is fetched.
func TestImporter_CustomFieldIDs(t *testing.T) {
	imp := parseDoc(t, `{
		"asset": {"version": "2.0"},
		"nodes": [{"extras": {"score": 1}}],
		"meshes": [{"primitives": [{"attributes": {"_TEMPERATURE": 0}}]}],
		"materials": [{"extras": {"tier": 2}}]
	}`)

	assert.Equal(t, "score", imp.FieldName(0))
	assert.Equal(t, "_TEMPERATURE", imp.FieldName(1))
	assert.Equal(t, "tier", imp.FieldName(2))
	assert.Equal(t, "", imp.FieldName(3))
}

// TestImporter_StridedBufferView tests that interleaved vertex layouts
// honor the declared byte stride.
func TestImporter_StridedBufferView(t *testing.T) {
	// Two vertices interleaved as position (12 bytes) then uv (8 bytes).
	var buf []byte
	buf = append(buf, floatBytes(1, 2, 3, 10, 20)...)
	buf = append(buf, floatBytes(4, 5, 6, 30, 40)...)

	doc := fmt.Sprintf(`{
		"asset": {"version": "2.0"},
		"meshes": [{"primitives": [{"attributes": {"POSITION": 0, "TEXCOORD_0": 1}}]}],
		"accessors": [
			{"bufferView": 0, "byteOffset": 0, "componentType": 5126, "count": 2, "type": "VEC3"},
			{"bufferView": 0, "byteOffset": 12, "componentType": 5126, "count": 2, "type": "VEC2"}
		],
		"bufferViews": [{"buffer": 0, "byteLength": %d, "byteStride": 20}],
		"buffers": [{"uri": %q, "byteLength": %d}]
	}`, len(buf), dataURI(buf), len(buf))

	imp := parseDoc(t, doc)
	mesh, err := imp.Mesh(context.Background(), 0, 0)
	assert.NoError(t, err)

	pos, ok := findField(mesh.Attributes, view.Builtin(view.FieldPosition))
	assert.True(t, ok)
	assert.Equal(t, 20, pos.Data.Stride())
	x, err := pos.Data.Component(1, 0)
	assert.NoError(t, err)
	assert.Equal(t, 4.0, x)

	uv, ok := findField(mesh.Attributes, view.Builtin(view.FieldTextureCoordinates))
	assert.True(t, ok)
	v, err := uv.Data.Component(1, 1)
	assert.NoError(t, err)
	assert.Equal(t, 40.0, v)
}
