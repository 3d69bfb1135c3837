package bundle

import (
	"strings"

	"scene-inspector/core/view"
)

// MaterialTypes is a bitset of the shading models a material satisfies.
type MaterialTypes uint8

const (
	// MaterialFlat is unshaded color or texture.
	MaterialFlat MaterialTypes = 1 << iota
	// MaterialPhong is classic Phong shading.
	MaterialPhong
	// MaterialPbrMetallicRoughness is the metallic/roughness PBR model.
	MaterialPbrMetallicRoughness
	// MaterialPbrSpecularGlossiness is the specular/glossiness PBR model.
	MaterialPbrSpecularGlossiness
	// MaterialPbrClearCoat is a clear-coat PBR layer.
	MaterialPbrClearCoat
)

var materialTypeNames = []struct {
	bit  MaterialTypes
	name string
}{
	{MaterialFlat, "Flat"},
	{MaterialPhong, "Phong"},
	{MaterialPbrMetallicRoughness, "PbrMetallicRoughness"},
	{MaterialPbrSpecularGlossiness, "PbrSpecularGlossiness"},
	{MaterialPbrClearCoat, "PbrClearCoat"},
}

// Labels returns the names of all set bits in declaration order.
func (t MaterialTypes) Labels() []string {
	var labels []string
	for _, e := range materialTypeNames {
		if t&e.bit != 0 {
			labels = append(labels, e.name)
		}
	}
	return labels
}

func (t MaterialTypes) String() string {
	labels := t.Labels()
	if len(labels) == 0 {
		return "None"
	}
	return strings.Join(labels, "|")
}

// MaterialData describes one material as a typed attribute table whose
// mapping assigns each attribute to a layer. The table's index domain is
// the layer count; layer 0 is the base material.
type MaterialData struct {
	Types      MaterialTypes
	Attributes *view.Table
}

// Layers returns the material's layer count including the base layer.
func (m *MaterialData) Layers() int {
	return m.Attributes.Rows()
}

// MaterialAttribute returns a table entry binding one attribute value to
// a material layer. The data view must hold exactly one element.
func MaterialAttribute(layer int, id view.Identity, data view.View) (view.Entry, error) {
	mapping, err := view.PackUints(view.Scalar(view.Uint32), uint64(layer))
	if err != nil {
		return view.Entry{}, err
	}
	return view.Entry{Identity: id, Mapping: mapping, Data: data, Ordered: true}, nil
}
