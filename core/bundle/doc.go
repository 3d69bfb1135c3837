// Package bundle defines the entity model of a loaded 3D-asset bundle
// and the Importer contract that supplies it.
//
// A bundle consists of nine entity kinds: scenes, objects, animations,
// skins, lights, materials, meshes, textures and images. Scene graphs,
// animation tracks, skins, mesh vertex data and material attributes all
// reuse the view.Table model; lights, textures and images are fixed
// scalar records since their fields are never ragged.
//
// Entities are fetched lazily, one id at a time, through an Importer.
// The importer owns error reporting for its own parsing; a failed fetch
// for one id never prevents fetching the next. Nothing here caches or
// retains entity data: a record may be dropped as soon as its consumer
// extracted what it needed.
//
// # Reference fields
//
// Several fields encode references to other entity kinds: scene Mesh,
// MeshMaterial, Light and Skin fields, material texture attributes, and
// the texture's Image id. The census in feature/inspect walks exactly
// these to build reference counts.
package bundle
