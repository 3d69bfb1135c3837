// Package gltf reads glTF 2.0 documents as inspectable asset bundles.
//
// The package accepts both the JSON form and the GLB binary container
// and implements the bundle.Importer contract over the parsed document.
// Vertex and keyframe payloads are never converted up front: typed views
// point directly into the GLB payload chunk or into buffers decoded from
// data: URIs, and values are read lazily when a report asks for them.
//
// # Document Mapping
//
// The format's concepts map onto the bundle model as follows:
//
//  1. Scenes flatten their node hierarchy into field tables: Parent,
//     the transformation fields, Mesh, MeshMaterial, Light and Skin,
//     plus custom fields collected from node extras.
//
//  2. Mesh primitives become mesh levels; their attribute semantics map
//     to builtin vertex fields, with unknown semantics and extras keys
//     assigned stable custom field ids at parse time.
//
//  3. The punctual lights extension supplies light records, and the
//     clear coat extension adds a second material layer.
//
// External file buffers are left unresolved; entities whose accessors
// point into them fail individually at fetch time, which the inspection
// pipeline reports without aborting the rest of the document.
//
// # Caching
//
// Parsing a large document is expensive relative to one report request,
// so the package keeps a TTL-based document store with stampede
// protection. Service handlers go through GetOrParse and pass a fetch
// callback that loads the raw bytes only on a miss.
//
// # Usage Example
//
//	imp, err := gltf.Parse(data)
//	if err != nil {
//	    return err
//	}
//
//	report, err := inspect.Build(ctx, imp, inspect.Options{Info: true}, logger)
//
// Or through the store:
//
//	imp, err := gltf.GetOrParse(ctx, key, 5*time.Minute, func(ctx context.Context) ([]byte, error) {
//	    return fetchBundle(ctx, bucket, key)
//	})
package gltf
