// Package inspect builds structural reports over asset bundles: entity
// counts, per-entity records, a cross-reference census and bundle-level
// diagnostics, without decoding pixel or vertex payloads beyond what
// the report itself shows.
//
// The package is the read side of the service. It never mutates a
// bundle and never dereferences a broken id; out-of-range references
// become report findings instead of lookups.
//
// # Pipeline
//
// One report is one Build call over an importer:
//
//  1. Count every entity kind up front. Counts are the id spaces the
//     census validates references against.
//  2. Walk the selected sections in fixed order: scenes, animations,
//     skins, lights, materials, meshes, textures, images. Entities that
//     fail to import are logged and recorded, never fatal.
//  3. Annotate: object records are derived from the scene walk, and in
//     full-info mode every referenceable record gets the number of
//     references the census observed.
//
// The fixed walk order makes failure records naturally sorted by kind
// and id with no extra pass.
//
// # Census
//
// The census counts directed reference edges (scene to object, object
// to mesh, material to texture, texture to image and so on). A value
// counts only when it lies inside the target kind's id range; anything
// else is appended to the report as an OutOfRangeRef carrying the raw
// value, the range it missed and a human-readable source. Valid counts
// plus findings always equal the number of reference occurrences
// walked.
//
// # Usage Example
//
//	imp, err := gltf.Parse(bundleBytes)
//	if err != nil {
//	    return err
//	}
//
//	report, err := inspect.Build(ctx, imp, inspect.All(), log)
//	if err != nil {
//	    return err
//	}
//	if report.Failed() {
//	    // some entities did not import; report.Failures lists them
//	}
//
// Options select individual sections for cheaper partial runs; the
// census still validates every reference the selected sections walk.
package inspect
