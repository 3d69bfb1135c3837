package bundle

import "fmt"

// LightType identifies the emission shape of a light source.
type LightType uint8

const (
	// LightDirectional emits parallel rays without falloff.
	LightDirectional LightType = iota + 1
	// LightPoint emits in all directions from a position.
	LightPoint
	// LightSpot emits a cone bounded by inner and outer angles.
	LightSpot
)

func (t LightType) String() string {
	switch t {
	case LightDirectional:
		return "Directional"
	case LightPoint:
		return "Point"
	case LightSpot:
		return "Spot"
	}
	return fmt.Sprintf("LightType(%d)", uint8(t))
}

// LightData describes one light source. Lights are scalar records, not
// tables; their fields are fixed and never ragged.
type LightData struct {
	Type LightType

	// Color is the RGB emission color.
	Color [3]float64

	// Intensity scales the color, in candela or lux by type.
	Intensity float64

	// Attenuation holds the constant, linear and quadratic falloff
	// terms.
	Attenuation [3]float64

	// Range is the distance cutoff, +Inf when unbounded.
	Range float64

	// InnerAngle and OuterAngle bound the spot cone in radians. They are
	// meaningful for spot lights only.
	InnerAngle float64
	OuterAngle float64
}

// Filter identifies a texture magnification/minification filter.
type Filter uint8

const (
	// FilterNearest picks the closest texel.
	FilterNearest Filter = iota + 1
	// FilterLinear interpolates neighboring texels.
	FilterLinear
)

func (f Filter) String() string {
	switch f {
	case FilterNearest:
		return "Nearest"
	case FilterLinear:
		return "Linear"
	}
	return fmt.Sprintf("Filter(%d)", uint8(f))
}

// Mipmap identifies the mip level selection mode.
type Mipmap uint8

const (
	// MipmapBase samples the base level only.
	MipmapBase Mipmap = iota + 1
	// MipmapNearest samples the closest mip level.
	MipmapNearest
	// MipmapLinear interpolates between mip levels.
	MipmapLinear
)

func (m Mipmap) String() string {
	switch m {
	case MipmapBase:
		return "Base"
	case MipmapNearest:
		return "Nearest"
	case MipmapLinear:
		return "Linear"
	}
	return fmt.Sprintf("Mipmap(%d)", uint8(m))
}

// Wrapping identifies coordinate behavior outside [0, 1].
type Wrapping uint8

const (
	// WrapRepeat tiles the texture.
	WrapRepeat Wrapping = iota + 1
	// WrapMirroredRepeat tiles with alternating mirroring.
	WrapMirroredRepeat
	// WrapClampToEdge clamps to the border texels.
	WrapClampToEdge
	// WrapMirrorClampToEdge mirrors once, then clamps.
	WrapMirrorClampToEdge
)

func (w Wrapping) String() string {
	switch w {
	case WrapRepeat:
		return "Repeat"
	case WrapMirroredRepeat:
		return "MirroredRepeat"
	case WrapClampToEdge:
		return "ClampToEdge"
	case WrapMirrorClampToEdge:
		return "MirrorClampToEdge"
	}
	return fmt.Sprintf("Wrapping(%d)", uint8(w))
}

// TextureType identifies the sampled texture shape.
type TextureType uint8

const (
	// Texture1D samples a single row.
	Texture1D TextureType = iota + 1
	// Texture2D samples a flat image.
	Texture2D
	// Texture3D samples a volume.
	Texture3D
	// TextureCubeMap samples six faces by direction.
	TextureCubeMap
)

func (t TextureType) String() string {
	switch t {
	case Texture1D:
		return "1D"
	case Texture2D:
		return "2D"
	case Texture3D:
		return "3D"
	case TextureCubeMap:
		return "CubeMap"
	}
	return fmt.Sprintf("TextureType(%d)", uint8(t))
}

// TextureData describes one texture's sampler state and image reference.
type TextureData struct {
	Type TextureType

	MinFilter Filter
	MagFilter Filter
	Mipmap    Mipmap

	// Wrapping holds the per-axis coordinate behavior.
	Wrapping [3]Wrapping

	// Image is the referenced image id.
	Image int
}

// ImageData describes one image's encoded payload without decoding
// pixels.
type ImageData struct {
	// MimeType is the declared encoding, empty when unknown.
	MimeType string

	// ByteLength is the encoded payload size in bytes, zero when the
	// payload lives outside the bundle.
	ByteLength int
}
