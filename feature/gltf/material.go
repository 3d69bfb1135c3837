package gltf

import (
	"context"
	"fmt"
	"math"
	"strings"

	"scene-inspector/core/bundle"
	"scene-inspector/core/view"
)

// Light reads light id from the punctual lights extension block.
func (imp *Importer) Light(ctx context.Context, id int) (*bundle.LightData, error) {
	ext := imp.doc.Extensions.LightsPunctual
	if ext == nil || id < 0 || id >= len(ext.Lights) {
		return nil, fmt.Errorf("light %d out of range", id)
	}
	l := ext.Lights[id]

	data := &bundle.LightData{
		Color:     [3]float64{1, 1, 1},
		Intensity: 1,
		Range:     math.Inf(1),
	}
	switch l.Type {
	case "directional":
		data.Type = bundle.LightDirectional
		data.Attenuation = [3]float64{1, 0, 0}
	case "point":
		data.Type = bundle.LightPoint
		data.Attenuation = [3]float64{1, 0, 1}
	case "spot":
		data.Type = bundle.LightSpot
		data.Attenuation = [3]float64{1, 0, 1}
		data.OuterAngle = math.Pi / 4
		if l.Spot != nil {
			if l.Spot.InnerConeAngle != nil {
				data.InnerAngle = *l.Spot.InnerConeAngle
			}
			if l.Spot.OuterConeAngle != nil {
				data.OuterAngle = *l.Spot.OuterConeAngle
			}
		}
	default:
		return nil, fmt.Errorf("light %d has unknown type %q", id, l.Type)
	}
	if l.Color != nil {
		data.Color = *l.Color
	}
	if l.Intensity != nil {
		data.Intensity = *l.Intensity
	}
	if l.Range != nil && data.Type != bundle.LightDirectional {
		data.Range = *l.Range
	}
	return data, nil
}

// Material assembles material id's attribute table. Layer 0 holds the
// base model; a clear coat extension adds layer 1. Only attributes the
// document spells out become entries, so the table mirrors the source
// rather than the model's defaults.
func (imp *Importer) Material(ctx context.Context, id int) (*bundle.MaterialData, error) {
	if id < 0 || id >= len(imp.doc.Materials) {
		return nil, fmt.Errorf("material %d out of range", id)
	}
	m := imp.doc.Materials[id]
	cc := m.Extensions.ClearCoat

	layers := 1
	if cc != nil {
		layers = 2
	}
	attrs := &attributeList{table: view.NewTable(layers)}

	if m.DoubleSided {
		attrs.flag(0, view.Builtin(view.FieldDoubleSided), true)
	}
	if pbr := m.Pbr; pbr != nil {
		if pbr.BaseColorFactor != nil {
			attrs.floats(0, view.Builtin(view.FieldBaseColor), view.Vector(view.Float32, 4), pbr.BaseColorFactor[:]...)
		}
		if pbr.MetallicFactor != nil {
			attrs.floats(0, view.Builtin(view.FieldMetalness), view.Scalar(view.Float32), *pbr.MetallicFactor)
		}
		if pbr.RoughnessFactor != nil {
			attrs.floats(0, view.Builtin(view.FieldRoughness), view.Scalar(view.Float32), *pbr.RoughnessFactor)
		}
		if pbr.BaseColorTexture != nil {
			attrs.uint(0, view.Builtin(view.FieldBaseColorTexture), uint64(pbr.BaseColorTexture.Index))
		}
		if pbr.MetallicRoughnessTexture != nil {
			attrs.uint(0, view.Builtin(view.FieldMetallicRoughnessTexture), uint64(pbr.MetallicRoughnessTexture.Index))
		}
	}
	if m.NormalTexture != nil {
		attrs.uint(0, view.Builtin(view.FieldNormalTexture), uint64(m.NormalTexture.Index))
	}
	if m.OcclusionTexture != nil {
		attrs.uint(0, view.Builtin(view.FieldOcclusionTexture), uint64(m.OcclusionTexture.Index))
	}
	if m.EmissiveTexture != nil {
		attrs.uint(0, view.Builtin(view.FieldEmissiveTexture), uint64(m.EmissiveTexture.Index))
	}
	if m.EmissiveFactor != nil {
		attrs.floats(0, view.Builtin(view.FieldEmissiveColor), view.Vector(view.Float32, 3), m.EmissiveFactor[:]...)
	}
	for _, key := range sortedKeys(m.Extras) {
		value, ok := decodeExtra(m.Extras[key])
		if !ok {
			continue
		}
		identity := view.Custom(imp.fields.id(key))
		switch {
		case value.isStr:
			attrs.str(0, identity, value.str)
		case value.isBool:
			attrs.flag(0, identity, value.flag)
		default:
			attrs.floats(0, identity, view.Scalar(view.Float64), value.num)
		}
	}

	if cc != nil {
		attrs.str(1, view.Builtin(view.FieldLayerName), "ClearCoat")
		if cc.Factor != nil {
			attrs.floats(1, view.Builtin(view.FieldLayerFactor), view.Scalar(view.Float32), *cc.Factor)
		}
		if cc.Texture != nil {
			attrs.uint(1, view.Builtin(view.FieldLayerFactorTexture), uint64(cc.Texture.Index))
		}
		if cc.RoughnessFactor != nil {
			attrs.floats(1, view.Builtin(view.FieldRoughness), view.Scalar(view.Float32), *cc.RoughnessFactor)
		}
		if cc.RoughnessTexture != nil {
			attrs.uint(1, view.Builtin(view.FieldRoughnessTexture), uint64(cc.RoughnessTexture.Index))
		}
	}
	if attrs.err != nil {
		return nil, fmt.Errorf("failed to assemble material %d: %w", id, attrs.err)
	}

	types := bundle.MaterialPbrMetallicRoughness
	if m.Extensions.Unlit != nil {
		types = bundle.MaterialFlat
	}
	if cc != nil {
		types |= bundle.MaterialPbrClearCoat
	}
	return &bundle.MaterialData{Types: types, Attributes: attrs.table}, nil
}

// Texture reads texture id's sampler state. Absent samplers take the
// format's defaults: linear filtering, trilinear mip selection, repeat
// wrapping on every axis.
func (imp *Importer) Texture(ctx context.Context, id int) (*bundle.TextureData, error) {
	if id < 0 || id >= len(imp.doc.Textures) {
		return nil, fmt.Errorf("texture %d out of range", id)
	}
	t := imp.doc.Textures[id]
	if t.Source == nil {
		return nil, fmt.Errorf("texture %d has no image source", id)
	}

	data := &bundle.TextureData{
		Type:      bundle.Texture2D,
		MinFilter: bundle.FilterLinear,
		MagFilter: bundle.FilterLinear,
		Mipmap:    bundle.MipmapLinear,
		Wrapping:  [3]bundle.Wrapping{bundle.WrapRepeat, bundle.WrapRepeat, bundle.WrapRepeat},
		Image:     *t.Source,
	}
	if t.Sampler == nil {
		return data, nil
	}
	if *t.Sampler < 0 || *t.Sampler >= len(imp.doc.Samplers) {
		return nil, fmt.Errorf("texture %d sampler %d out of range", id, *t.Sampler)
	}
	s := imp.doc.Samplers[*t.Sampler]

	if s.MagFilter != nil {
		switch *s.MagFilter {
		case filterNearest:
			data.MagFilter = bundle.FilterNearest
		case filterLinear:
			data.MagFilter = bundle.FilterLinear
		default:
			return nil, fmt.Errorf("texture %d has unknown magnification filter %d", id, *s.MagFilter)
		}
	}
	if s.MinFilter != nil {
		switch *s.MinFilter {
		case filterNearest:
			data.MinFilter, data.Mipmap = bundle.FilterNearest, bundle.MipmapBase
		case filterLinear:
			data.MinFilter, data.Mipmap = bundle.FilterLinear, bundle.MipmapBase
		case filterNearestMipmapNearest:
			data.MinFilter, data.Mipmap = bundle.FilterNearest, bundle.MipmapNearest
		case filterLinearMipmapNearest:
			data.MinFilter, data.Mipmap = bundle.FilterLinear, bundle.MipmapNearest
		case filterNearestMipmapLinear:
			data.MinFilter, data.Mipmap = bundle.FilterNearest, bundle.MipmapLinear
		case filterLinearMipmapLinear:
			data.MinFilter, data.Mipmap = bundle.FilterLinear, bundle.MipmapLinear
		default:
			return nil, fmt.Errorf("texture %d has unknown minification filter %d", id, *s.MinFilter)
		}
	}
	var err error
	if data.Wrapping[0], err = wrapMode(s.WrapS); err != nil {
		return nil, fmt.Errorf("texture %d: %w", id, err)
	}
	if data.Wrapping[1], err = wrapMode(s.WrapT); err != nil {
		return nil, fmt.Errorf("texture %d: %w", id, err)
	}
	return data, nil
}

func wrapMode(code *int) (bundle.Wrapping, error) {
	if code == nil {
		return bundle.WrapRepeat, nil
	}
	switch *code {
	case wrapRepeat:
		return bundle.WrapRepeat, nil
	case wrapMirroredRepeat:
		return bundle.WrapMirroredRepeat, nil
	case wrapClampToEdge:
		return bundle.WrapClampToEdge, nil
	}
	return 0, fmt.Errorf("unknown wrapping mode %d", *code)
}

// Image reads image id's payload descriptor. Pixels are never decoded;
// the record carries the declared media type and the encoded size.
func (imp *Importer) Image(ctx context.Context, id int) (*bundle.ImageData, error) {
	if id < 0 || id >= len(imp.doc.Images) {
		return nil, fmt.Errorf("image %d out of range", id)
	}
	img := imp.doc.Images[id]
	data := &bundle.ImageData{MimeType: img.MimeType}

	switch {
	case img.BufferView != nil:
		if *img.BufferView < 0 || *img.BufferView >= len(imp.doc.Views) {
			return nil, fmt.Errorf("image %d buffer view %d out of range", id, *img.BufferView)
		}
		data.ByteLength = imp.doc.Views[*img.BufferView].ByteLength
	case strings.HasPrefix(img.URI, "data:"):
		decoded, err := decodeDataURI(img.URI)
		if err != nil {
			return nil, fmt.Errorf("failed to decode image %d: %w", id, err)
		}
		data.ByteLength = len(decoded)
		if data.MimeType == "" {
			data.MimeType = dataURIMime(img.URI)
		}
	}
	return data, nil
}

// attributeList accumulates single-value material attributes, keeping
// only the first error.
type attributeList struct {
	table *view.Table
	err   error
}

func (l *attributeList) push(layer int, id view.Identity, data view.View, err error) {
	if l.err != nil {
		return
	}
	if err != nil {
		l.err = fmt.Errorf("failed to pack %s: %w", id, err)
		return
	}
	e, err := bundle.MaterialAttribute(layer, id, data)
	if err != nil {
		l.err = err
		return
	}
	l.err = l.table.Add(e)
}

func (l *attributeList) floats(layer int, id view.Identity, elem view.ElementType, vals ...float64) {
	data, err := view.PackFloats(elem, vals...)
	l.push(layer, id, data, err)
}

func (l *attributeList) uint(layer int, id view.Identity, value uint64) {
	data, err := view.PackUints(view.Scalar(view.Uint32), value)
	l.push(layer, id, data, err)
}

func (l *attributeList) flag(layer int, id view.Identity, value bool) {
	var bit uint64
	if value {
		bit = 1
	}
	data, err := view.PackUints(view.Scalar(view.Uint8), bit)
	l.push(layer, id, data, err)
}

func (l *attributeList) str(layer int, id view.Identity, value string) {
	data, err := view.PackString(value)
	l.push(layer, id, data, err)
}
