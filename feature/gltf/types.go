package gltf

import "encoding/json"

// The types below mirror the glTF 2.0 JSON schema, reduced to the parts
// the inspector reads. Index references between them stay raw ints and
// are validated by the census, not the parser.

type document struct {
	Asset      asset       `json:"asset"`
	Scene      *int        `json:"scene,omitempty"`
	Scenes     []scene     `json:"scenes,omitempty"`
	Nodes      []node      `json:"nodes,omitempty"`
	Meshes     []mesh      `json:"meshes,omitempty"`
	Accessors  []accessor  `json:"accessors,omitempty"`
	Views      []bufferRun `json:"bufferViews,omitempty"`
	Buffers    []buffer    `json:"buffers,omitempty"`
	Materials  []material  `json:"materials,omitempty"`
	Textures   []texture   `json:"textures,omitempty"`
	Images     []image     `json:"images,omitempty"`
	Samplers   []sampler   `json:"samplers,omitempty"`
	Skins      []skin      `json:"skins,omitempty"`
	Animations []animation `json:"animations,omitempty"`

	Extensions documentExtensions `json:"extensions,omitempty"`
}

type asset struct {
	Version    string `json:"version"`
	MinVersion string `json:"minVersion,omitempty"`
	Generator  string `json:"generator,omitempty"`
}

type scene struct {
	Name  string `json:"name,omitempty"`
	Nodes []int  `json:"nodes,omitempty"`
}

type node struct {
	Name        string       `json:"name,omitempty"`
	Children    []int        `json:"children,omitempty"`
	Mesh        *int         `json:"mesh,omitempty"`
	Skin        *int         `json:"skin,omitempty"`
	Matrix      *[16]float64 `json:"matrix,omitempty"`
	Translation *[3]float64  `json:"translation,omitempty"`
	Rotation    *[4]float64  `json:"rotation,omitempty"`
	Scale       *[3]float64  `json:"scale,omitempty"`

	Extensions nodeExtensions `json:"extensions,omitempty"`

	// Extras carries application-specific values; the importer exposes
	// numeric and boolean entries as custom scene fields.
	Extras map[string]json.RawMessage `json:"extras,omitempty"`
}

type mesh struct {
	Name       string      `json:"name,omitempty"`
	Primitives []primitive `json:"primitives"`
}

type primitive struct {
	// Attributes maps semantic names (POSITION, NORMAL, TEXCOORD_0, ...)
	// to accessor indices.
	Attributes map[string]int `json:"attributes"`
	Indices    *int           `json:"indices,omitempty"`
	Material   *int           `json:"material,omitempty"`
	Mode       *int           `json:"mode,omitempty"`
}

type accessor struct {
	Name          string  `json:"name,omitempty"`
	BufferView    *int    `json:"bufferView,omitempty"`
	ByteOffset    int     `json:"byteOffset,omitempty"`
	ComponentType int     `json:"componentType"`
	Normalized    bool    `json:"normalized,omitempty"`
	Count         int     `json:"count"`
	Type          string  `json:"type"`
	Sparse        *sparse `json:"sparse,omitempty"`
}

// sparse is kept only to detect sparse accessors, which the importer
// rejects per entity rather than silently misreading.
type sparse struct {
	Count int `json:"count"`
}

type bufferRun struct {
	Buffer     int  `json:"buffer"`
	ByteOffset int  `json:"byteOffset,omitempty"`
	ByteLength int  `json:"byteLength"`
	ByteStride *int `json:"byteStride,omitempty"`
}

type buffer struct {
	URI        string `json:"uri,omitempty"`
	ByteLength int    `json:"byteLength"`
}

type material struct {
	Name             string                `json:"name,omitempty"`
	Pbr              *pbrMetallicRoughness `json:"pbrMetallicRoughness,omitempty"`
	NormalTexture    *normalTextureRef     `json:"normalTexture,omitempty"`
	OcclusionTexture *occlusionTextureRef  `json:"occlusionTexture,omitempty"`
	EmissiveTexture  *textureRef           `json:"emissiveTexture,omitempty"`
	EmissiveFactor   *[3]float64           `json:"emissiveFactor,omitempty"`
	DoubleSided      bool                  `json:"doubleSided,omitempty"`

	Extensions materialExtensions `json:"extensions,omitempty"`

	Extras map[string]json.RawMessage `json:"extras,omitempty"`
}

type pbrMetallicRoughness struct {
	BaseColorFactor          *[4]float64 `json:"baseColorFactor,omitempty"`
	BaseColorTexture         *textureRef `json:"baseColorTexture,omitempty"`
	MetallicFactor           *float64    `json:"metallicFactor,omitempty"`
	RoughnessFactor          *float64    `json:"roughnessFactor,omitempty"`
	MetallicRoughnessTexture *textureRef `json:"metallicRoughnessTexture,omitempty"`
}

type textureRef struct {
	Index    int `json:"index"`
	TexCoord int `json:"texCoord,omitempty"`
}

type normalTextureRef struct {
	textureRef
	Scale *float64 `json:"scale,omitempty"`
}

type occlusionTextureRef struct {
	textureRef
	Strength *float64 `json:"strength,omitempty"`
}

type texture struct {
	Name    string `json:"name,omitempty"`
	Sampler *int   `json:"sampler,omitempty"`
	Source  *int   `json:"source,omitempty"`
}

type image struct {
	Name       string `json:"name,omitempty"`
	URI        string `json:"uri,omitempty"`
	MimeType   string `json:"mimeType,omitempty"`
	BufferView *int   `json:"bufferView,omitempty"`
}

type sampler struct {
	Name      string `json:"name,omitempty"`
	MagFilter *int   `json:"magFilter,omitempty"`
	MinFilter *int   `json:"minFilter,omitempty"`
	WrapS     *int   `json:"wrapS,omitempty"`
	WrapT     *int   `json:"wrapT,omitempty"`
}

type skin struct {
	Name                string `json:"name,omitempty"`
	InverseBindMatrices *int   `json:"inverseBindMatrices,omitempty"`
	Joints              []int  `json:"joints"`
}

type animation struct {
	Name     string        `json:"name,omitempty"`
	Channels []animChannel `json:"channels"`
	Samplers []animSampler `json:"samplers"`
}

type animChannel struct {
	Sampler int        `json:"sampler"`
	Target  animTarget `json:"target"`
}

type animTarget struct {
	Node *int   `json:"node,omitempty"`
	Path string `json:"path"`
}

type animSampler struct {
	Input         int    `json:"input"`
	Output        int    `json:"output"`
	Interpolation string `json:"interpolation,omitempty"`
}

type documentExtensions struct {
	LightsPunctual *lightsPunctual `json:"KHR_lights_punctual,omitempty"`
}

type nodeExtensions struct {
	LightsPunctual *nodeLightRef `json:"KHR_lights_punctual,omitempty"`
}

type nodeLightRef struct {
	Light int `json:"light"`
}

// lightsPunctual is the document-level KHR_lights_punctual payload.
type lightsPunctual struct {
	Lights []punctualLight `json:"lights"`
}

type punctualLight struct {
	Name      string      `json:"name,omitempty"`
	Type      string      `json:"type"`
	Color     *[3]float64 `json:"color,omitempty"`
	Intensity *float64    `json:"intensity,omitempty"`
	Range     *float64    `json:"range,omitempty"`
	Spot      *spotCone   `json:"spot,omitempty"`
}

type spotCone struct {
	InnerConeAngle *float64 `json:"innerConeAngle,omitempty"`
	OuterConeAngle *float64 `json:"outerConeAngle,omitempty"`
}

type materialExtensions struct {
	ClearCoat *clearCoat `json:"KHR_materials_clearcoat,omitempty"`
	Unlit     *struct{}  `json:"KHR_materials_unlit,omitempty"`
}

type clearCoat struct {
	Factor           *float64    `json:"clearcoatFactor,omitempty"`
	Texture          *textureRef `json:"clearcoatTexture,omitempty"`
	RoughnessFactor  *float64    `json:"clearcoatRoughnessFactor,omitempty"`
	RoughnessTexture *textureRef `json:"clearcoatRoughnessTexture,omitempty"`
}

// Component type codes of accessors.
const (
	componentByte          = 5120
	componentUnsignedByte  = 5121
	componentShort         = 5122
	componentUnsignedShort = 5123
	componentUnsignedInt   = 5125
	componentFloat         = 5126
)

// Primitive topology codes.
const (
	modePoints = iota
	modeLines
	modeLineLoop
	modeLineStrip
	modeTriangles
	modeTriangleStrip
	modeTriangleFan
)

// Sampler filter and wrap codes.
const (
	filterNearest              = 9728
	filterLinear               = 9729
	filterNearestMipmapNearest = 9984
	filterLinearMipmapNearest  = 9985
	filterNearestMipmapLinear  = 9986
	filterLinearMipmapLinear   = 9987

	wrapClampToEdge    = 33071
	wrapMirroredRepeat = 33648
	wrapRepeat         = 10497
)

// GLB container framing.
const (
	glbMagic     = 0x46546C67
	glbVersion   = 2
	glbChunkJSON = 0x4E4F534A
	glbChunkBIN  = 0x004E4942
)
