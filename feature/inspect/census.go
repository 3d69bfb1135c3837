package inspect

import (
	"fmt"

	"scene-inspector/core/bundle"
	"scene-inspector/core/view"
)

// Edge identifies one directed cross-reference edge kind.
type Edge uint8

const (
	// EdgeSceneObject counts scene field mappings per object.
	EdgeSceneObject Edge = iota + 1
	// EdgeObjectMesh counts scene Mesh field values per mesh.
	EdgeObjectMesh
	// EdgeObjectMaterial counts scene MeshMaterial field values per
	// material.
	EdgeObjectMaterial
	// EdgeObjectLight counts scene Light field values per light.
	EdgeObjectLight
	// EdgeObjectSkin counts scene Skin field values per skin.
	EdgeObjectSkin
	// EdgeMaterialTexture counts material texture attributes per
	// texture.
	EdgeMaterialTexture
	// EdgeTextureImage counts texture image references per image.
	EdgeTextureImage
)

func (e Edge) String() string {
	switch e {
	case EdgeSceneObject:
		return "scene-object"
	case EdgeObjectMesh:
		return "object-mesh"
	case EdgeObjectMaterial:
		return "object-material"
	case EdgeObjectLight:
		return "object-light"
	case EdgeObjectSkin:
		return "object-skin"
	case EdgeMaterialTexture:
		return "material-texture"
	case EdgeTextureImage:
		return "texture-image"
	}
	return fmt.Sprintf("Edge(%d)", uint8(e))
}

// MarshalText renders the edge as its name in JSON output.
func (e Edge) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// Target returns the entity kind the edge's values refer to.
func (e Edge) Target() bundle.Kind {
	switch e {
	case EdgeSceneObject:
		return bundle.KindObject
	case EdgeObjectMesh:
		return bundle.KindMesh
	case EdgeObjectMaterial:
		return bundle.KindMaterial
	case EdgeObjectLight:
		return bundle.KindLight
	case EdgeObjectSkin:
		return bundle.KindSkin
	case EdgeMaterialTexture:
		return bundle.KindTexture
	case EdgeTextureImage:
		return bundle.KindImage
	}
	return 0
}

// OutOfRangeRef records one reference value outside its target id
// range. The value is a census finding, not an error; it was reported
// and never dereferenced.
type OutOfRangeRef struct {
	// Edge is the reference edge the value was found on.
	Edge Edge `json:"edge"`

	// Value is the raw reference value.
	Value int64 `json:"value"`

	// Targets is the target kind's entity count at walk time.
	Targets int `json:"targets"`

	// Source describes where the value was found.
	Source string `json:"source"`
}

// ObjectRef is one object's appearance count in one scene field.
type ObjectRef struct {
	Scene int
	Field view.Identity
	Count int
}

// sceneRefEdges maps scene fields whose data references another kind to
// their census edge.
var sceneRefEdges = map[view.Field]Edge{
	view.FieldMesh:         EdgeObjectMesh,
	view.FieldMeshMaterial: EdgeObjectMaterial,
	view.FieldLight:        EdgeObjectLight,
	view.FieldSkin:         EdgeObjectSkin,
}

// materialTextureRefs is the builtin whitelist of texture-reference
// material attributes.
var materialTextureRefs = map[view.Field]struct{}{
	view.FieldBaseColorTexture:         {},
	view.FieldDiffuseTexture:           {},
	view.FieldNormalTexture:            {},
	view.FieldEmissiveTexture:          {},
	view.FieldOcclusionTexture:         {},
	view.FieldRoughnessTexture:         {},
	view.FieldMetallicRoughnessTexture: {},
	view.FieldLayerFactorTexture:       {},
}

// Census accumulates cross-reference counts over one bundle walk. A
// value inside [0, target count) increments its target's count; any
// other value becomes an out-of-range finding and counts nothing. The
// walk is single-threaded; the census is read back only after it ends.
type Census struct {
	targets   map[bundle.Kind]int
	refFields map[uint32]struct{}
	counts    map[Edge]map[int]int
	oob       []OutOfRangeRef
	objects   map[int][]ObjectRef
}

// NewCensus returns an empty census over a bundle with the given
// per-kind entity counts. refFields lists custom material field ids
// that participate in the material-texture edge.
func NewCensus(targets map[bundle.Kind]int, refFields []uint32) *Census {
	c := &Census{
		targets:   targets,
		refFields: make(map[uint32]struct{}, len(refFields)),
		counts:    make(map[Edge]map[int]int),
		objects:   make(map[int][]ObjectRef),
	}
	for _, f := range refFields {
		c.refFields[f] = struct{}{}
	}
	return c
}

// AddScene walks one scene's field table. Every mapping value counts on
// the scene-object edge; the data of mesh, material, light and skin
// fields counts on the matching object edge.
func (c *Census) AddScene(id int, data *bundle.SceneData) error {
	for _, e := range data.Fields.Entries() {
		edge, isRef := sceneRefEdges[e.Identity.Field()]
		for i := 0; i < e.Mapping.Count(); i++ {
			source := fmt.Sprintf("scene %d field %s row %d", id, e.Identity, i)

			obj, err := e.Mapping.Index(i)
			if err != nil {
				return fmt.Errorf("scene %d field %s mapping: %w", id, e.Identity, err)
			}
			c.add(EdgeSceneObject, obj, source)
			if obj >= 0 && obj < int64(c.targets[bundle.KindObject]) {
				c.noteObject(int(obj), id, e.Identity)
			}

			if !isRef {
				continue
			}
			val, err := e.Data.Index(i)
			if err != nil {
				return fmt.Errorf("scene %d field %s data: %w", id, e.Identity, err)
			}
			c.add(edge, val, source)
		}
	}
	return nil
}

// AddMaterial walks one material's attributes and counts texture
// references: builtin texture attributes always, custom attributes only
// when opted in and typed as an unsigned scalar.
func (c *Census) AddMaterial(id int, data *bundle.MaterialData) error {
	for _, e := range data.Attributes.Entries() {
		if !c.isTextureRef(e) {
			continue
		}
		for i := 0; i < e.Data.Count(); i++ {
			val, err := e.Data.Index(i)
			if err != nil {
				return fmt.Errorf("material %d attribute %s: %w", id, e.Identity, err)
			}
			c.add(EdgeMaterialTexture, val, fmt.Sprintf("material %d attribute %s", id, e.Identity))
		}
	}
	return nil
}

// AddTexture counts one texture's image reference.
func (c *Census) AddTexture(id int, data *bundle.TextureData) {
	c.add(EdgeTextureImage, int64(data.Image), fmt.Sprintf("texture %d", id))
}

// Count returns the accumulated reference count for a target id.
func (c *Census) Count(edge Edge, target int) int {
	return c.counts[edge][target]
}

// Total returns the number of valid reference occurrences on an edge.
func (c *Census) Total(edge Edge) int {
	total := 0
	for _, n := range c.counts[edge] {
		total += n
	}
	return total
}

// OutOfRange returns all findings in walk order.
func (c *Census) OutOfRange() []OutOfRangeRef {
	return c.oob
}

// ObjectReferenced reports whether any scene field maps object id.
func (c *Census) ObjectReferenced(id int) bool {
	return c.counts[EdgeSceneObject][id] > 0
}

// ObjectRefs returns one object's per-scene, per-field occurrence
// details in walk order.
func (c *Census) ObjectRefs(id int) []ObjectRef {
	return c.objects[id]
}

func (c *Census) add(edge Edge, value int64, source string) {
	if value >= 0 && value < int64(c.targets[edge.Target()]) {
		m := c.counts[edge]
		if m == nil {
			m = make(map[int]int)
			c.counts[edge] = m
		}
		m[int(value)]++
		return
	}
	c.oob = append(c.oob, OutOfRangeRef{
		Edge:    edge,
		Value:   value,
		Targets: c.targets[edge.Target()],
		Source:  source,
	})
}

func (c *Census) noteObject(object, scene int, field view.Identity) {
	refs := c.objects[object]
	for i := range refs {
		if refs[i].Scene == scene && refs[i].Field == field {
			refs[i].Count++
			return
		}
	}
	c.objects[object] = append(refs, ObjectRef{Scene: scene, Field: field, Count: 1})
}

func (c *Census) isTextureRef(e view.Entry) bool {
	if e.Identity.IsCustom() {
		if _, ok := c.refFields[e.Identity.CustomID()]; !ok {
			return false
		}
		t := e.Data.Type()
		return t.Shape() == view.ShapeScalar && t.ScalarType().IsUnsigned()
	}
	_, ok := materialTextureRefs[e.Identity.Field()]
	return ok
}
