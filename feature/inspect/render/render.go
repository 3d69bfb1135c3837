// Package render writes inspection reports as human-readable text.
//
// Rendering follows the report's own ordering guarantees: fetch
// failures first, then the sections in walk order, then the census
// findings. Styling uses lipgloss and is enabled per ColorMode, with
// auto mode keyed off the output being a terminal.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"scene-inspector/feature/inspect"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// ColorMode controls ANSI styling of rendered reports.
type ColorMode uint8

const (
	// ColorAuto enables styling when the output is a terminal.
	ColorAuto ColorMode = iota
	// ColorAlways forces styling on.
	ColorAlways
	// ColorNever renders plain text.
	ColorNever
)

// ParseColorMode reads a color mode flag value.
func ParseColorMode(s string) (ColorMode, error) {
	switch s {
	case "", "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	}
	return ColorAuto, fmt.Errorf("unknown color mode %q", s)
}

type styles struct {
	failure lipgloss.Style
	header  lipgloss.Style
	name    lipgloss.Style
	note    lipgloss.Style
	finding lipgloss.Style
}

func newStyles(enabled bool) styles {
	if !enabled {
		// Zero styles render text unchanged.
		return styles{}
	}
	return styles{
		failure: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		header:  lipgloss.NewStyle().Bold(true),
		name:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		note:    lipgloss.NewStyle().Faint(true),
		finding: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	}
}

// Renderer writes reports to one output.
type Renderer struct {
	w      io.Writer
	styles styles
	err    error
}

// New creates a renderer for w.
func New(w io.Writer, mode ColorMode) *Renderer {
	return &Renderer{w: w, styles: newStyles(colorEnabled(w, mode))}
}

func colorEnabled(w io.Writer, mode ColorMode) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// Render writes the report as text.
func (r *Renderer) Render(rep *inspect.Report) error {
	r.err = nil

	for _, f := range rep.Failures {
		r.line(0, r.styles.failure.Render(f.String()))
	}

	r.renderScenes(rep.Scenes)
	r.renderObjects(rep.Objects)
	r.renderAnimations(rep.Animations)
	r.renderSkins(rep.Skins)
	r.renderLights(rep.Lights)
	r.renderMaterials(rep.Materials)
	r.renderMeshes(rep.Meshes)
	r.renderTextures(rep.Textures)
	r.renderImages(rep.Images)
	r.renderOutOfRange(rep.OutOfRange)

	return r.err
}

func (r *Renderer) line(indent int, s string) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, "%s%s\n", strings.Repeat("  ", indent), s)
}

// header renders "Kind id: name (referenced by n refKinds)". name and
// refs are optional.
func (r *Renderer) header(kind string, id int, name string, refs *int, refKind string) string {
	s := r.styles.header.Render(fmt.Sprintf("%s %d", kind, id))
	if name != "" {
		s += ": " + r.styles.name.Render(name)
	}
	if refs != nil {
		s += " " + r.styles.note.Render(fmt.Sprintf("(referenced by %d %s)", *refs, plural(*refs, refKind)))
	}
	return s
}

func (r *Renderer) renderScenes(scenes []inspect.SceneRecord) {
	for _, s := range scenes {
		r.line(0, r.header("Scene", s.ID, s.Name, nil, ""))
		r.line(1, fmt.Sprintf("%d %s", s.Objects, plural(s.Objects, "object")))
		for _, f := range s.Fields {
			r.line(1, fieldLine(f, "entry", "entries", true))
		}
	}
}

func (r *Renderer) renderObjects(objects []inspect.ObjectRecord) {
	for _, o := range objects {
		h := r.header("Object", o.ID, o.Name, nil, "")
		if o.Unreferenced {
			h += " " + r.styles.finding.Render("(unreferenced)")
		}
		r.line(0, h)
		for _, s := range o.Scenes {
			parts := make([]string, 0, len(s.Fields))
			for _, f := range s.Fields {
				parts = append(parts, fmt.Sprintf("%s x%d", f.Name, f.Count))
			}
			r.line(1, fmt.Sprintf("scene %d: %s", s.Scene, strings.Join(parts, ", ")))
		}
	}
}

func (r *Renderer) renderAnimations(animations []inspect.AnimationRecord) {
	for _, a := range animations {
		r.line(0, r.header("Animation", a.ID, a.Name, nil, ""))
		r.line(1, fmt.Sprintf("duration [%g, %g]", a.Duration[0], a.Duration[1]))
		for _, f := range a.Tracks {
			r.line(1, fieldLine(f, "key", "keys", true))
		}
	}
}

func (r *Renderer) renderSkins(skins []inspect.SkinRecord) {
	for _, s := range skins {
		r.line(0, r.header("Skin", s.ID, s.Name, s.ReferencedBy, "object"))
		r.line(1, fmt.Sprintf("%d %s", s.Joints, plural(s.Joints, "joint")))
		for _, f := range s.Fields {
			r.line(1, fieldLine(f, "entry", "entries", true))
		}
	}
}

func (r *Renderer) renderLights(lights []inspect.LightRecord) {
	for _, l := range lights {
		r.line(0, r.header("Light", l.ID, l.Name, l.ReferencedBy, "object"))
		r.line(1, fmt.Sprintf("%s, color (%g, %g, %g), intensity %g",
			l.Type, l.Color[0], l.Color[1], l.Color[2], l.Intensity))
		r.line(1, fmt.Sprintf("attenuation (%g, %g, %g)",
			l.Attenuation[0], l.Attenuation[1], l.Attenuation[2]))
		if l.Range != nil {
			r.line(1, fmt.Sprintf("range %g", *l.Range))
		}
		if l.Type == "Spot" {
			r.line(1, fmt.Sprintf("cone angles [%g, %g]", l.InnerAngle, l.OuterAngle))
		}
	}
}

func (r *Renderer) renderMaterials(materials []inspect.MaterialRecord) {
	for _, m := range materials {
		r.line(0, r.header("Material", m.ID, m.Name, m.ReferencedBy, "object"))
		r.line(1, fmt.Sprintf("types %s, %d %s",
			strings.Join(m.Types, "|"), m.Layers, plural(m.Layers, "layer")))
		for _, a := range m.Attributes {
			r.line(1, fieldLine(a, "value", "values", a.Count != 1))
		}
	}
}

func (r *Renderer) renderMeshes(meshes []inspect.MeshRecord) {
	for _, m := range meshes {
		r.line(0, r.header("Mesh", m.ID, m.Name, m.ReferencedBy, "object"))
		for _, l := range m.Levels {
			head := fmt.Sprintf("level %d: %s, %d %s",
				l.Level, l.Primitive, l.Vertices, plural(l.Vertices, "vertex"))
			if l.Indices != nil {
				head += fmt.Sprintf(", indexed @ %s (%d %s)",
					l.Indices.Type, l.Indices.Count, plural(l.Indices.Count, "index"))
			}
			r.line(1, head)
			for _, a := range l.Attributes {
				// The vertex count already covers attributes; repeat it
				// only where an attribute disagrees.
				r.line(2, fieldLine(a, "entry", "entries", a.Count != l.Vertices))
				if len(a.Min) > 0 {
					r.line(3, fmt.Sprintf("bounds [(%s), (%s)]",
						joinFloats(a.Min), joinFloats(a.Max)))
				}
			}
		}
	}
}

func (r *Renderer) renderTextures(textures []inspect.TextureRecord) {
	for _, t := range textures {
		r.line(0, r.header("Texture", t.ID, t.Name, t.ReferencedBy, "material"))
		r.line(1, fmt.Sprintf("type %s, min %s, mag %s, mipmap %s",
			t.Type, t.MinFilter, t.MagFilter, t.Mipmap))
		r.line(1, fmt.Sprintf("wrapping (%s, %s, %s)",
			t.Wrapping[0], t.Wrapping[1], t.Wrapping[2]))
		r.line(1, fmt.Sprintf("image %d", t.Image))
	}
}

func (r *Renderer) renderImages(images []inspect.ImageRecord) {
	for _, i := range images {
		r.line(0, r.header("Image", i.ID, i.Name, i.ReferencedBy, "texture"))
		mime := i.MimeType
		if mime == "" {
			mime = "unknown type"
		}
		r.line(1, fmt.Sprintf("%s, %d %s", mime, i.ByteLength, plural(i.ByteLength, "byte")))
	}
}

func (r *Renderer) renderOutOfRange(refs []inspect.OutOfRangeRef) {
	if len(refs) == 0 {
		return
	}
	r.line(0, r.styles.finding.Render("Out-of-range references:"))
	for _, ref := range refs {
		r.line(1, r.styles.finding.Render(fmt.Sprintf("%s references %s %d, only %d present",
			ref.Source, ref.Edge.Target(), ref.Value, ref.Targets)))
	}
}

// fieldLine renders one attribute entry. The count clause is optional
// so single-value material attributes stay compact.
func fieldLine(f inspect.FieldSummary, unit, units string, withCount bool) string {
	s := fmt.Sprintf("%s @ %s", f.Name, f.Type)
	if withCount {
		clause := fmt.Sprintf("%d %s", f.Count, pluralUnit(f.Count, unit, units))
		if f.Ordered {
			clause += ", ordered"
		}
		if f.Duplicate > 0 {
			clause += fmt.Sprintf(", duplicate %d", f.Duplicate)
		}
		s += " (" + clause + ")"
	} else if f.Duplicate > 0 {
		s += fmt.Sprintf(" (duplicate %d)", f.Duplicate)
	}
	if f.Value != "" {
		s += " = " + f.Value
	}
	return s
}

func plural(n int, noun string) string {
	if n == 1 {
		return noun
	}
	switch noun {
	case "vertex":
		return "vertices"
	case "index":
		return "indices"
	}
	return noun + "s"
}

func pluralUnit(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}

func joinFloats(vals []float64) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprintf("%g", v)
	}
	return strings.Join(parts, ", ")
}
