package bundle

import (
	"context"

	"scene-inspector/core/view"
)

// Importer supplies entity data on demand. Implementations wrap a
// concrete container format (glTF, a test fixture, a network source);
// the inspection pipeline stays agnostic of where the bytes come from.
//
// Counts must be stable for the duration of one report invocation and
// id spaces are contiguous in [0, Count(kind)). A fetch returning an
// error marks that single entity as failed; callers record the failure
// and continue with the next id.
type Importer interface {
	view.NameResolver

	// Count returns the number of entities of a kind.
	Count(kind Kind) int

	// Name returns an entity's display name, empty when unnamed.
	Name(kind Kind, id int) string

	// MeshLevelCount returns the number of levels mesh id provides.
	// Valid meshes have at least one level.
	MeshLevelCount(id int) int

	// Scene returns scene id's field table.
	Scene(ctx context.Context, id int) (*SceneData, error)

	// Animation returns animation id's track table.
	Animation(ctx context.Context, id int) (*AnimationData, error)

	// Skin returns skin id's joints and inverse bind matrices.
	Skin(ctx context.Context, id int) (*SkinData, error)

	// Light returns light id's scalar record.
	Light(ctx context.Context, id int) (*LightData, error)

	// Material returns material id's attribute table.
	Material(ctx context.Context, id int) (*MaterialData, error)

	// Mesh returns one level of mesh id.
	Mesh(ctx context.Context, id int, level int) (*MeshData, error)

	// Texture returns texture id's scalar record.
	Texture(ctx context.Context, id int) (*TextureData, error)

	// Image returns image id's scalar record.
	Image(ctx context.Context, id int) (*ImageData, error)
}
