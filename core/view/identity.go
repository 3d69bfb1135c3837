package view

import "fmt"

// Field enumerates the builtin attribute identities. The set is closed;
// anything a source stores beyond it travels through the custom id space.
type Field uint16

const (
	// FieldParent holds per-object parent object ids, -1 for roots.
	FieldParent Field = iota + 1
	// FieldTransformation holds per-object transformation matrices.
	FieldTransformation
	// FieldTranslation holds per-object translation vectors.
	FieldTranslation
	// FieldRotation holds per-object rotation quaternions.
	FieldRotation
	// FieldScaling holds per-object scaling vectors.
	FieldScaling
	// FieldMesh holds per-object mesh ids.
	FieldMesh
	// FieldMeshMaterial holds per-object material ids for mesh fields.
	FieldMeshMaterial
	// FieldLight holds per-object light ids.
	FieldLight
	// FieldSkin holds per-object skin ids.
	FieldSkin
	// FieldImporterState holds opaque per-object importer payloads.
	FieldImporterState

	// FieldPosition holds per-vertex positions.
	FieldPosition
	// FieldNormal holds per-vertex normals.
	FieldNormal
	// FieldTangent holds per-vertex tangents.
	FieldTangent
	// FieldBitangent holds per-vertex bitangents.
	FieldBitangent
	// FieldTextureCoordinates holds per-vertex texture coordinates.
	FieldTextureCoordinates
	// FieldColor holds per-vertex colors.
	FieldColor
	// FieldObjectID holds per-vertex object ids.
	FieldObjectID
	// FieldJointIDs holds per-vertex skin joint id arrays.
	FieldJointIDs
	// FieldWeights holds per-vertex skin weight arrays.
	FieldWeights

	// FieldJoints holds per-joint object ids of a skin.
	FieldJoints
	// FieldInverseBindMatrices holds per-joint inverse bind matrices.
	FieldInverseBindMatrices

	// FieldTime holds animation keyframe times.
	FieldTime

	// FieldBaseColor holds a material base color.
	FieldBaseColor
	// FieldDiffuseColor holds a material diffuse color.
	FieldDiffuseColor
	// FieldEmissiveColor holds a material emissive color.
	FieldEmissiveColor
	// FieldMetalness holds a material metalness factor.
	FieldMetalness
	// FieldRoughness holds a material roughness factor.
	FieldRoughness
	// FieldDoubleSided holds a material double-sided flag.
	FieldDoubleSided
	// FieldLayerName holds a material layer name.
	FieldLayerName
	// FieldLayerFactor holds a material layer blend factor.
	FieldLayerFactor
	// FieldBaseColorTexture holds a base color texture id.
	FieldBaseColorTexture
	// FieldDiffuseTexture holds a diffuse texture id.
	FieldDiffuseTexture
	// FieldNormalTexture holds a normal texture id.
	FieldNormalTexture
	// FieldEmissiveTexture holds an emissive texture id.
	FieldEmissiveTexture
	// FieldOcclusionTexture holds an occlusion texture id.
	FieldOcclusionTexture
	// FieldRoughnessTexture holds a roughness texture id.
	FieldRoughnessTexture
	// FieldMetallicRoughnessTexture holds a combined metallic/roughness
	// texture id.
	FieldMetallicRoughnessTexture
	// FieldLayerFactorTexture holds a layer blend factor texture id.
	FieldLayerFactorTexture
)

var fieldNames = map[Field]string{
	FieldParent:                   "Parent",
	FieldTransformation:           "Transformation",
	FieldTranslation:              "Translation",
	FieldRotation:                 "Rotation",
	FieldScaling:                  "Scaling",
	FieldMesh:                     "Mesh",
	FieldMeshMaterial:             "MeshMaterial",
	FieldLight:                    "Light",
	FieldSkin:                     "Skin",
	FieldImporterState:            "ImporterState",
	FieldPosition:                 "Position",
	FieldNormal:                   "Normal",
	FieldTangent:                  "Tangent",
	FieldBitangent:                "Bitangent",
	FieldTextureCoordinates:       "TextureCoordinates",
	FieldColor:                    "Color",
	FieldObjectID:                 "ObjectID",
	FieldJointIDs:                 "JointIDs",
	FieldWeights:                  "Weights",
	FieldJoints:                   "Joints",
	FieldInverseBindMatrices:      "InverseBindMatrices",
	FieldTime:                     "Time",
	FieldBaseColor:                "BaseColor",
	FieldDiffuseColor:             "DiffuseColor",
	FieldEmissiveColor:            "EmissiveColor",
	FieldMetalness:                "Metalness",
	FieldRoughness:                "Roughness",
	FieldDoubleSided:              "DoubleSided",
	FieldLayerName:                "LayerName",
	FieldLayerFactor:              "LayerFactor",
	FieldBaseColorTexture:         "BaseColorTexture",
	FieldDiffuseTexture:           "DiffuseTexture",
	FieldNormalTexture:            "NormalTexture",
	FieldEmissiveTexture:          "EmissiveTexture",
	FieldOcclusionTexture:         "OcclusionTexture",
	FieldRoughnessTexture:         "RoughnessTexture",
	FieldMetallicRoughnessTexture: "MetallicRoughnessTexture",
	FieldLayerFactorTexture:       "LayerFactorTexture",
}

func (f Field) String() string {
	if name, ok := fieldNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Field(%d)", uint16(f))
}

// Identity identifies one attribute of a table: either a builtin Field
// or an importer-specific custom numeric id. Identities are comparable
// with ==; two identities are equal iff same variant and same payload.
type Identity struct {
	field    Field
	custom   uint32
	isCustom bool
}

// Builtin returns the identity of a builtin field.
func Builtin(f Field) Identity {
	return Identity{field: f}
}

// Custom returns an identity in the open custom id space.
func Custom(id uint32) Identity {
	return Identity{custom: id, isCustom: true}
}

// IsCustom reports whether the identity is a custom id.
func (id Identity) IsCustom() bool {
	return id.isCustom
}

// Field returns the builtin field, zero for custom identities.
func (id Identity) Field() Field {
	if id.isCustom {
		return 0
	}
	return id.field
}

// CustomID returns the custom id, zero for builtin identities.
func (id Identity) CustomID() uint32 {
	if !id.isCustom {
		return 0
	}
	return id.custom
}

// Less orders identities totally: all builtins by field value first,
// then all customs by id.
func (id Identity) Less(other Identity) bool {
	if id.isCustom != other.isCustom {
		return !id.isCustom
	}
	if id.isCustom {
		return id.custom < other.custom
	}
	return id.field < other.field
}

// String returns the builtin field name or "Custom(n)".
func (id Identity) String() string {
	if id.isCustom {
		return fmt.Sprintf("Custom(%d)", id.custom)
	}
	return id.field.String()
}

// NameResolver resolves custom field ids to display names. Importers
// implement it next to their entity fetching surface.
type NameResolver interface {
	// FieldName returns the display name for a custom field id, empty
	// when the id has none.
	FieldName(id uint32) string
}

// ResolveName returns the display name for an identity: the builtin name
// for builtin fields, the resolver's answer for custom ids. An empty
// result means the identity is unnamed.
func ResolveName(id Identity, names NameResolver) string {
	if !id.IsCustom() {
		return id.Field().String()
	}
	if names == nil {
		return ""
	}
	return names.FieldName(id.CustomID())
}
