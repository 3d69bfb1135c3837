package inspect

import (
	"context"
	"math"

	"scene-inspector/core/bundle"

	"go.uber.org/zap"
)

// walkOrder is the fixed section order of the pipeline. It matches the
// order failures and records are reported in; objects are annotated
// from the scene walk rather than fetched.
var walkOrder = []bundle.Kind{
	bundle.KindScene,
	bundle.KindAnimation,
	bundle.KindSkin,
	bundle.KindLight,
	bundle.KindMaterial,
	bundle.KindMesh,
	bundle.KindTexture,
	bundle.KindImage,
}

// allKinds covers every entity kind for the report's count summary.
var allKinds = []bundle.Kind{
	bundle.KindScene,
	bundle.KindObject,
	bundle.KindAnimation,
	bundle.KindSkin,
	bundle.KindLight,
	bundle.KindMaterial,
	bundle.KindMesh,
	bundle.KindTexture,
	bundle.KindImage,
}

// Build runs the inspection pipeline over an importer: fetch the
// selected sections in fixed order, accumulate the census while the
// entities stream through, then annotate records once every reference
// was observed. A fetch failure for one entity is logged, recorded and
// skipped; the walk always continues. The returned error reports broken
// extraction contracts (element type mismatches), never source data
// conditions.
func Build(ctx context.Context, imp bundle.Importer, opts Options, log *zap.Logger) (*Report, error) {
	if log == nil {
		log = zap.NewNop()
	}

	counts := make(map[bundle.Kind]int, len(allKinds))
	rep := &Report{Counts: make(map[string]int, len(allKinds))}
	for _, kind := range allKinds {
		counts[kind] = imp.Count(kind)
		rep.Counts[kind.String()] = counts[kind]
	}

	b := &builder{
		imp:    imp,
		opts:   opts,
		log:    log,
		counts: counts,
		census: NewCensus(counts, opts.TextureRefFields),
		rep:    rep,
	}

	steps := []func(context.Context) error{
		b.walkScenes,
		b.walkAnimations,
		b.walkSkins,
		b.walkLights,
		b.walkMaterials,
		b.walkMeshes,
		b.walkTextures,
		b.walkImages,
	}
	for _, step := range steps {
		if err := step(ctx); err != nil {
			return nil, err
		}
	}

	b.annotate()
	rep.OutOfRange = b.census.OutOfRange()
	return rep, nil
}

// builder carries the pipeline state of one Build invocation.
type builder struct {
	imp    bundle.Importer
	opts   Options
	log    *zap.Logger
	counts map[bundle.Kind]int
	census *Census
	rep    *Report
}

// fail records one fetch failure and keeps walking.
func (b *builder) fail(kind bundle.Kind, id, level int, err error) {
	fields := []zap.Field{
		zap.Stringer("kind", kind),
		zap.Int("id", id),
		zap.Error(err),
	}
	if kind == bundle.KindMesh {
		fields = append(fields, zap.Int("level", level))
	}
	b.log.Warn("failed to import entity", fields...)
	b.rep.Failures = append(b.rep.Failures, Failure{Kind: kind, ID: id, Level: level})
}

func (b *builder) walkScenes(ctx context.Context) error {
	if !b.opts.walkScenes() {
		return nil
	}
	want := b.opts.wants(bundle.KindScene)
	for id := 0; id < b.counts[bundle.KindScene]; id++ {
		data, err := b.imp.Scene(ctx, id)
		if err != nil {
			b.fail(bundle.KindScene, id, 0, err)
			continue
		}
		if err := b.census.AddScene(id, data); err != nil {
			return err
		}
		if want {
			b.rep.Scenes = append(b.rep.Scenes, SceneRecord{
				ID:      id,
				Name:    b.imp.Name(bundle.KindScene, id),
				Objects: data.Objects(),
				Fields:  summarizeTable(data.Fields, b.imp),
			})
		}
	}
	return nil
}

func (b *builder) walkAnimations(ctx context.Context) error {
	if !b.opts.wants(bundle.KindAnimation) {
		return nil
	}
	for id := 0; id < b.counts[bundle.KindAnimation]; id++ {
		data, err := b.imp.Animation(ctx, id)
		if err != nil {
			b.fail(bundle.KindAnimation, id, 0, err)
			continue
		}
		b.rep.Animations = append(b.rep.Animations, AnimationRecord{
			ID:       id,
			Name:     b.imp.Name(bundle.KindAnimation, id),
			Duration: data.Duration,
			Tracks:   summarizeTable(data.Tracks, b.imp),
		})
	}
	return nil
}

func (b *builder) walkSkins(ctx context.Context) error {
	if !b.opts.wants(bundle.KindSkin) {
		return nil
	}
	for id := 0; id < b.counts[bundle.KindSkin]; id++ {
		data, err := b.imp.Skin(ctx, id)
		if err != nil {
			b.fail(bundle.KindSkin, id, 0, err)
			continue
		}
		table, err := data.Table()
		if err != nil {
			// The source delivered a ragged skin; treat it like any
			// other unusable entity.
			b.fail(bundle.KindSkin, id, 0, err)
			continue
		}
		b.rep.Skins = append(b.rep.Skins, SkinRecord{
			ID:     id,
			Name:   b.imp.Name(bundle.KindSkin, id),
			Joints: data.Joints.Count(),
			Fields: summarizeTable(table, b.imp),
		})
	}
	return nil
}

func (b *builder) walkLights(ctx context.Context) error {
	if !b.opts.wants(bundle.KindLight) {
		return nil
	}
	for id := 0; id < b.counts[bundle.KindLight]; id++ {
		data, err := b.imp.Light(ctx, id)
		if err != nil {
			b.fail(bundle.KindLight, id, 0, err)
			continue
		}
		rec := LightRecord{
			ID:          id,
			Name:        b.imp.Name(bundle.KindLight, id),
			Type:        data.Type.String(),
			Color:       data.Color,
			Intensity:   data.Intensity,
			Attenuation: data.Attenuation,
			InnerAngle:  data.InnerAngle,
			OuterAngle:  data.OuterAngle,
		}
		if !math.IsInf(data.Range, 1) {
			r := data.Range
			rec.Range = &r
		}
		b.rep.Lights = append(b.rep.Lights, rec)
	}
	return nil
}

func (b *builder) walkMaterials(ctx context.Context) error {
	if !b.opts.wants(bundle.KindMaterial) {
		return nil
	}
	for id := 0; id < b.counts[bundle.KindMaterial]; id++ {
		data, err := b.imp.Material(ctx, id)
		if err != nil {
			b.fail(bundle.KindMaterial, id, 0, err)
			continue
		}
		if err := b.census.AddMaterial(id, data); err != nil {
			return err
		}
		attrs := summarizeTable(data.Attributes, b.imp)
		for i, e := range data.Attributes.Entries() {
			value, err := formatValue(e)
			if err != nil {
				return err
			}
			attrs[i].Value = value
		}
		b.rep.Materials = append(b.rep.Materials, MaterialRecord{
			ID:         id,
			Name:       b.imp.Name(bundle.KindMaterial, id),
			Types:      data.Types.Labels(),
			Layers:     data.Layers(),
			Attributes: attrs,
		})
	}
	return nil
}

func (b *builder) walkMeshes(ctx context.Context) error {
	if !b.opts.wants(bundle.KindMesh) {
		return nil
	}
	for id := 0; id < b.counts[bundle.KindMesh]; id++ {
		rec := MeshRecord{ID: id, Name: b.imp.Name(bundle.KindMesh, id)}
		for level := 0; level < b.imp.MeshLevelCount(id); level++ {
			data, err := b.imp.Mesh(ctx, id, level)
			if err != nil {
				b.fail(bundle.KindMesh, id, level, err)
				continue
			}
			lrec, err := b.meshLevelRecord(level, data)
			if err != nil {
				return err
			}
			rec.Levels = append(rec.Levels, lrec)
		}
		if len(rec.Levels) > 0 {
			b.rep.Meshes = append(b.rep.Meshes, rec)
		}
	}
	return nil
}

func (b *builder) meshLevelRecord(level int, data *bundle.MeshData) (MeshLevelRecord, error) {
	rec := MeshLevelRecord{
		Level:      level,
		Primitive:  data.Primitive.String(),
		Vertices:   data.Vertices(),
		Attributes: summarizeTable(data.Attributes, b.imp),
	}
	if data.Indices != nil {
		rec.Indices = &FieldSummary{
			Type:  data.Indices.Type().String(),
			Count: data.Indices.Count(),
		}
	}
	if !b.opts.Bounds {
		return rec, nil
	}
	for i, e := range data.Attributes.Entries() {
		if !wantsBounds(e.Identity) {
			continue
		}
		min, max, err := attributeBounds(e.Data)
		if err != nil {
			return rec, err
		}
		rec.Attributes[i].Min = min
		rec.Attributes[i].Max = max
	}
	return rec, nil
}

func (b *builder) walkTextures(ctx context.Context) error {
	if !b.opts.wants(bundle.KindTexture) {
		return nil
	}
	for id := 0; id < b.counts[bundle.KindTexture]; id++ {
		data, err := b.imp.Texture(ctx, id)
		if err != nil {
			b.fail(bundle.KindTexture, id, 0, err)
			continue
		}
		b.census.AddTexture(id, data)
		b.rep.Textures = append(b.rep.Textures, TextureRecord{
			ID:        id,
			Name:      b.imp.Name(bundle.KindTexture, id),
			Type:      data.Type.String(),
			MinFilter: data.MinFilter.String(),
			MagFilter: data.MagFilter.String(),
			Mipmap:    data.Mipmap.String(),
			Wrapping: [3]string{
				data.Wrapping[0].String(),
				data.Wrapping[1].String(),
				data.Wrapping[2].String(),
			},
			Image: data.Image,
		})
	}
	return nil
}

func (b *builder) walkImages(ctx context.Context) error {
	if !b.opts.wants(bundle.KindImage) {
		return nil
	}
	for id := 0; id < b.counts[bundle.KindImage]; id++ {
		data, err := b.imp.Image(ctx, id)
		if err != nil {
			b.fail(bundle.KindImage, id, 0, err)
			continue
		}
		b.rep.Images = append(b.rep.Images, ImageRecord{
			ID:         id,
			Name:       b.imp.Name(bundle.KindImage, id),
			MimeType:   data.MimeType,
			ByteLength: data.ByteLength,
		})
	}
	return nil
}

// annotate finishes the report once the census observed every walked
// reference: object records are built against the full scene walk, and
// in full-info mode every referenceable record gets its count.
func (b *builder) annotate() {
	if b.opts.wants(bundle.KindObject) {
		n := b.counts[bundle.KindObject]
		b.rep.Objects = make([]ObjectRecord, 0, n)
		for id := 0; id < n; id++ {
			b.rep.Objects = append(b.rep.Objects, b.objectRecord(id))
		}
	}

	if !b.opts.annotateRefs() {
		return
	}
	for i := range b.rep.Skins {
		b.rep.Skins[i].ReferencedBy = b.refCount(EdgeObjectSkin, b.rep.Skins[i].ID)
	}
	for i := range b.rep.Lights {
		b.rep.Lights[i].ReferencedBy = b.refCount(EdgeObjectLight, b.rep.Lights[i].ID)
	}
	for i := range b.rep.Materials {
		b.rep.Materials[i].ReferencedBy = b.refCount(EdgeObjectMaterial, b.rep.Materials[i].ID)
	}
	for i := range b.rep.Meshes {
		b.rep.Meshes[i].ReferencedBy = b.refCount(EdgeObjectMesh, b.rep.Meshes[i].ID)
	}
	for i := range b.rep.Textures {
		b.rep.Textures[i].ReferencedBy = b.refCount(EdgeMaterialTexture, b.rep.Textures[i].ID)
	}
	for i := range b.rep.Images {
		b.rep.Images[i].ReferencedBy = b.refCount(EdgeTextureImage, b.rep.Images[i].ID)
	}
}

func (b *builder) objectRecord(id int) ObjectRecord {
	rec := ObjectRecord{
		ID:           id,
		Name:         b.imp.Name(bundle.KindObject, id),
		Unreferenced: !b.census.ObjectReferenced(id),
	}
	for _, ref := range b.census.ObjectRefs(id) {
		i := len(rec.Scenes) - 1
		if i < 0 || rec.Scenes[i].Scene != ref.Scene {
			rec.Scenes = append(rec.Scenes, ObjectSceneRefs{Scene: ref.Scene})
			i++
		}
		rec.Scenes[i].Fields = append(rec.Scenes[i].Fields, ObjectFieldRef{
			Name:  displayName(ref.Field, b.imp),
			Count: ref.Count,
		})
	}
	return rec
}

func (b *builder) refCount(edge Edge, id int) *int {
	n := b.census.Count(edge, id)
	return &n
}
