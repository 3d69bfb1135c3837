package inspect

import (
	"fmt"
	"strconv"
	"strings"

	"scene-inspector/core/bundle"
	"scene-inspector/core/view"
)

// Failure marks one entity the importer could not produce. Failures are
// recorded in kind-then-id order and precede every section in rendered
// output.
type Failure struct {
	Kind bundle.Kind `json:"kind"`
	ID   int         `json:"id"`

	// Level is the failed mesh level, zero otherwise.
	Level int `json:"level,omitempty"`
}

// String returns the failure's display line.
func (f Failure) String() string {
	if f.Kind == bundle.KindMesh && f.Level > 0 {
		return fmt.Sprintf("Can't import %s %d level %d", f.Kind, f.ID, f.Level)
	}
	return fmt.Sprintf("Can't import %s %d", f.Kind, f.ID)
}

// FieldSummary describes one attribute entry of one entity.
type FieldSummary struct {
	// Name is the resolved display name; unnamed custom identities
	// render as Custom(n).
	Name string `json:"name"`

	// Custom holds the raw id for custom identities, nil for builtins.
	Custom *uint32 `json:"custom,omitempty"`

	// MappingType is the mapping view's element type display form.
	MappingType string `json:"mapping_type,omitempty"`

	// Type is the data element type display form, e.g. "Vector3".
	Type string `json:"type"`

	// Count is the entry's value count.
	Count int `json:"count"`

	// Arity is the array size for array attributes, zero otherwise.
	Arity int `json:"arity,omitempty"`

	// Duplicate is the entry's ordinal among entries sharing its
	// identity, zero for the first.
	Duplicate int `json:"duplicate,omitempty"`

	// Ordered marks entries whose mapping is monotonic.
	Ordered bool `json:"ordered,omitempty"`

	// Value renders single-value attributes, empty otherwise.
	Value string `json:"value,omitempty"`

	// Min and Max hold component-wise bounds when bounds computation ran
	// for the attribute.
	Min []float64 `json:"min,omitempty"`
	Max []float64 `json:"max,omitempty"`
}

// SceneRecord reports one scene.
type SceneRecord struct {
	ID   int    `json:"id"`
	Name string `json:"name,omitempty"`

	// Objects is the scene's object mapping bound.
	Objects int `json:"objects"`

	Fields []FieldSummary `json:"fields"`
}

// ObjectFieldRef is one field's occurrence count for an object.
type ObjectFieldRef struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// ObjectSceneRefs describes one object's appearances in one scene's
// fields.
type ObjectSceneRefs struct {
	Scene  int              `json:"scene"`
	Fields []ObjectFieldRef `json:"fields"`
}

// ObjectRecord reports one object of the bundle's object id space.
type ObjectRecord struct {
	ID   int    `json:"id"`
	Name string `json:"name,omitempty"`

	// Scenes lists the object's per-scene field references.
	Scenes []ObjectSceneRefs `json:"scenes,omitempty"`

	// Unreferenced marks objects no scene field maps.
	Unreferenced bool `json:"unreferenced,omitempty"`
}

// AnimationRecord reports one animation.
type AnimationRecord struct {
	ID   int    `json:"id"`
	Name string `json:"name,omitempty"`

	// Duration is the playback start and end in seconds.
	Duration [2]float64 `json:"duration"`

	Tracks []FieldSummary `json:"tracks"`
}

// SkinRecord reports one skin.
type SkinRecord struct {
	ID   int    `json:"id"`
	Name string `json:"name,omitempty"`

	// Joints is the skin's joint count.
	Joints int `json:"joints"`

	Fields []FieldSummary `json:"fields"`

	// ReferencedBy counts objects using the skin, nil when the walk did
	// not observe every referencing kind.
	ReferencedBy *int `json:"referenced_by,omitempty"`
}

// LightRecord reports one light.
type LightRecord struct {
	ID   int    `json:"id"`
	Name string `json:"name,omitempty"`

	Type        string     `json:"type"`
	Color       [3]float64 `json:"color"`
	Intensity   float64    `json:"intensity"`
	Attenuation [3]float64 `json:"attenuation"`

	// Range is the distance cutoff, nil when unbounded.
	Range *float64 `json:"range,omitempty"`

	InnerAngle float64 `json:"inner_angle,omitempty"`
	OuterAngle float64 `json:"outer_angle,omitempty"`

	ReferencedBy *int `json:"referenced_by,omitempty"`
}

// MaterialRecord reports one material.
type MaterialRecord struct {
	ID   int    `json:"id"`
	Name string `json:"name,omitempty"`

	Types []string `json:"types"`

	// Layers is the layer count including the base layer.
	Layers int `json:"layers"`

	Attributes []FieldSummary `json:"attributes"`

	ReferencedBy *int `json:"referenced_by,omitempty"`
}

// MeshLevelRecord reports one level of a mesh.
type MeshLevelRecord struct {
	Level     int    `json:"level"`
	Primitive string `json:"primitive"`
	Vertices  int    `json:"vertices"`

	// Indices summarizes the index view, nil for non-indexed levels.
	Indices *FieldSummary `json:"indices,omitempty"`

	Attributes []FieldSummary `json:"attributes"`
}

// MeshRecord reports one mesh with every level that imported.
type MeshRecord struct {
	ID   int    `json:"id"`
	Name string `json:"name,omitempty"`

	Levels []MeshLevelRecord `json:"levels"`

	ReferencedBy *int `json:"referenced_by,omitempty"`
}

// TextureRecord reports one texture.
type TextureRecord struct {
	ID   int    `json:"id"`
	Name string `json:"name,omitempty"`

	Type      string    `json:"type"`
	MinFilter string    `json:"min_filter"`
	MagFilter string    `json:"mag_filter"`
	Mipmap    string    `json:"mipmap"`
	Wrapping  [3]string `json:"wrapping"`

	// Image is the referenced image id, valid or not.
	Image int `json:"image"`

	ReferencedBy *int `json:"referenced_by,omitempty"`
}

// ImageRecord reports one image.
type ImageRecord struct {
	ID   int    `json:"id"`
	Name string `json:"name,omitempty"`

	MimeType   string `json:"mime_type,omitempty"`
	ByteLength int    `json:"byte_length"`

	ReferencedBy *int `json:"referenced_by,omitempty"`
}

// Report is the complete structured output of one inspection run. The
// renderer and the HTTP surface both consume it as-is.
type Report struct {
	// Failures lists entities the importer declined to produce, in
	// kind-then-id order.
	Failures []Failure `json:"failures,omitempty"`

	// Counts holds per-kind entity counts for the bundle.
	Counts map[string]int `json:"counts"`

	Scenes     []SceneRecord     `json:"scenes,omitempty"`
	Objects    []ObjectRecord    `json:"objects,omitempty"`
	Animations []AnimationRecord `json:"animations,omitempty"`
	Skins      []SkinRecord      `json:"skins,omitempty"`
	Lights     []LightRecord     `json:"lights,omitempty"`
	Materials  []MaterialRecord  `json:"materials,omitempty"`
	Meshes     []MeshRecord      `json:"meshes,omitempty"`
	Textures   []TextureRecord   `json:"textures,omitempty"`
	Images     []ImageRecord     `json:"images,omitempty"`

	// OutOfRange lists census findings in walk order.
	OutOfRange []OutOfRangeRef `json:"out_of_range,omitempty"`
}

// Failed reports whether at least one entity fetch failed.
func (r *Report) Failed() bool {
	return len(r.Failures) > 0
}

// displayName resolves an identity, falling back to the numeric
// placeholder for unnamed custom fields.
func displayName(id view.Identity, names view.NameResolver) string {
	if name := view.ResolveName(id, names); name != "" {
		return name
	}
	return id.String()
}

// summarizeTable renders one table's entries as field summaries.
func summarizeTable(t *view.Table, names view.NameResolver) []FieldSummary {
	out := make([]FieldSummary, 0, t.Len())
	for i, e := range t.Entries() {
		s := FieldSummary{
			Name:        displayName(e.Identity, names),
			MappingType: e.Mapping.Type().String(),
			Type:        e.Data.Type().String(),
			Count:       e.Data.Count(),
			Arity:       e.Data.Type().Arity(),
			Duplicate:   t.Duplicate(i),
			Ordered:     e.Ordered,
		}
		if e.Identity.IsCustom() {
			id := e.Identity.CustomID()
			s.Custom = &id
		}
		out = append(out, s)
	}
	return out
}

// formatValue renders one single-value attribute for material records.
func formatValue(e view.Entry) (string, error) {
	if e.Data.Count() != 1 {
		return "", nil
	}
	t := e.Data.Type()

	if e.Identity == view.Builtin(view.FieldDoubleSided) &&
		t.Shape() == view.ShapeScalar && t.ScalarType().IsUnsigned() {
		v, err := e.Data.Uint(0)
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(v != 0), nil
	}

	switch {
	case t.Shape() == view.ShapeArray && t.ScalarType() == view.Uint8:
		return e.Data.Text(0)
	case t.Shape() == view.ShapeScalar && t.ScalarType().IsFloat():
		v, err := e.Data.Float(0)
		if err != nil {
			return "", err
		}
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	case t.Shape() == view.ShapeScalar && t.ScalarType().IsSigned():
		v, err := e.Data.Int(0)
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(v, 10), nil
	case t.Shape() == view.ShapeScalar:
		v, err := e.Data.Uint(0)
		if err != nil {
			return "", err
		}
		return strconv.FormatUint(v, 10), nil
	default:
		// Vectors, matrices and non-string arrays render as a component
		// tuple.
		parts := make([]string, t.Components())
		for c := range parts {
			v, err := e.Data.Component(0, c)
			if err != nil {
				return "", err
			}
			parts[c] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		return "(" + strings.Join(parts, ", ") + ")", nil
	}
}
