package inspect

import "scene-inspector/core/bundle"

// Options selects report sections and census behavior for one run.
// Info selects every section; otherwise each section flag stands alone.
type Options struct {
	// Info selects all sections.
	Info bool `json:"info"`

	// Scenes selects the scene section.
	Scenes bool `json:"scenes"`

	// Objects selects the object section. Walking it implies walking
	// scenes, since object references are discovered there.
	Objects bool `json:"objects"`

	// Animations selects the animation section.
	Animations bool `json:"animations"`

	// Skins selects the skin section.
	Skins bool `json:"skins"`

	// Lights selects the light section.
	Lights bool `json:"lights"`

	// Materials selects the material section.
	Materials bool `json:"materials"`

	// Meshes selects the mesh section.
	Meshes bool `json:"meshes"`

	// Textures selects the texture section.
	Textures bool `json:"textures"`

	// Images selects the image section.
	Images bool `json:"images"`

	// Bounds enables per-attribute min/max computation when mesh
	// sections run.
	Bounds bool `json:"bounds"`

	// TextureRefFields lists custom material field ids the census counts
	// as texture references in addition to the builtin attributes.
	TextureRefFields []uint32 `json:"texture_ref_fields,omitempty"`
}

// All returns options selecting every section.
func All() Options {
	return Options{Info: true}
}

// Any reports whether at least one section is selected.
func (o Options) Any() bool {
	return o.Info || o.Scenes || o.Objects || o.Animations || o.Skins ||
		o.Lights || o.Materials || o.Meshes || o.Textures || o.Images
}

// wants reports whether a kind's section is part of the output.
func (o Options) wants(kind bundle.Kind) bool {
	if o.Info {
		return true
	}
	switch kind {
	case bundle.KindScene:
		return o.Scenes
	case bundle.KindObject:
		return o.Objects
	case bundle.KindAnimation:
		return o.Animations
	case bundle.KindSkin:
		return o.Skins
	case bundle.KindLight:
		return o.Lights
	case bundle.KindMaterial:
		return o.Materials
	case bundle.KindMesh:
		return o.Meshes
	case bundle.KindTexture:
		return o.Textures
	case bundle.KindImage:
		return o.Images
	}
	return false
}

// walkScenes reports whether scenes must be fetched: either for their
// own section or to resolve object references.
func (o Options) walkScenes() bool {
	return o.Info || o.Scenes || o.Objects
}

// annotateRefs reports whether reference-count annotations are complete
// enough to publish. Only a full walk observes every referencing kind.
func (o Options) annotateRefs() bool {
	return o.Info
}
