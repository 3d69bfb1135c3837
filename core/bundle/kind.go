package bundle

import "fmt"

// Kind identifies one entity kind of a bundle.
type Kind uint8

const (
	// KindScene is a scene graph over the object id space.
	KindScene Kind = iota + 1
	// KindObject is a node of the object id space. Objects have no fetch
	// of their own; their data lives in scene fields.
	KindObject
	// KindAnimation is a keyframed animation clip.
	KindAnimation
	// KindSkin is a joint set with inverse bind matrices.
	KindSkin
	// KindLight is a light source.
	KindLight
	// KindMaterial is a surface material.
	KindMaterial
	// KindMesh is vertex/index geometry, possibly multi-level.
	KindMesh
	// KindTexture is a sampler plus image reference.
	KindTexture
	// KindImage is an encoded image payload.
	KindImage
)

func (k Kind) String() string {
	switch k {
	case KindScene:
		return "scene"
	case KindObject:
		return "object"
	case KindAnimation:
		return "animation"
	case KindSkin:
		return "skin"
	case KindLight:
		return "light"
	case KindMaterial:
		return "material"
	case KindMesh:
		return "mesh"
	case KindTexture:
		return "texture"
	case KindImage:
		return "image"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// MarshalText renders the kind as its lowercase name in JSON output.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
