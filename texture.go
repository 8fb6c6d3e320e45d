package gltfview

import "github.com/agentic-research/gltfview/raw"

// Sampler is a view over one sampler record, either document-backed
// or the default sampler.
type Sampler struct {
	doc   *Document
	index int // -1 for the default sampler
	raw   *raw.Sampler
}

// Index returns the sampler's position in the document, or ok=false
// for the default sampler. This is the only provenance signal views
// carry.
func (s Sampler) Index() (int, bool) {
	if s.index < 0 {
		return 0, false
	}
	return s.index, true
}

// Raw returns the underlying record.
func (s Sampler) Raw() *raw.Sampler {
	return s.raw
}

// MagFilter returns the magnification filter, or ok=false when the
// record leaves it unset.
func (s Sampler) MagFilter() (raw.MagFilter, bool) {
	if s.raw.MagFilter == nil {
		return 0, false
	}
	return *s.raw.MagFilter, true
}

// MinFilter returns the minification filter, or ok=false when the
// record leaves it unset.
func (s Sampler) MinFilter() (raw.MinFilter, bool) {
	if s.raw.MinFilter == nil {
		return 0, false
	}
	return *s.raw.MinFilter, true
}

// WrapS returns the S-axis wrapping mode. Always populated: the raw
// layer substitutes the schema default at decode time.
func (s Sampler) WrapS() raw.WrappingMode {
	return s.raw.WrapS
}

// WrapT returns the T-axis wrapping mode. Always populated.
func (s Sampler) WrapT() raw.WrappingMode {
	return s.raw.WrapT
}

// Extensions returns this sampler's extension payload wrapper.
func (s Sampler) Extensions() SamplerExtensions {
	return SamplerExtensions{doc: s.doc, raw: s.raw.Extensions}
}

// Extras returns the record's application-specific data, unexamined.
func (s Sampler) Extras() raw.Extras {
	return s.raw.Extras
}

// Texture is a view over one texture record.
type Texture struct {
	doc   *Document
	index int
	raw   *raw.Texture
}

// Index returns the texture's position in the document.
func (t Texture) Index() int {
	return t.index
}

// Raw returns the underlying record.
func (t Texture) Raw() *raw.Texture {
	return t.raw
}

// Sampler resolves the texture's sampler reference. A texture with no
// sampler reference resolves to the default sampler, whose Index
// reports ok=false.
func (t Texture) Sampler() Sampler {
	if t.raw.Sampler == nil {
		return DefaultSampler(t.doc)
	}
	i := *t.raw.Sampler
	return Sampler{doc: t.doc, index: i, raw: &t.doc.raw.Samplers[i]}
}

// Source resolves the texture's image reference. The reference is
// mandatory and was range-checked at construction, so this never
// falls back to a default.
func (t Texture) Source() Image {
	i := *t.raw.Source
	return Image{doc: t.doc, index: i, raw: &t.doc.raw.Images[i]}
}

// Extensions returns this texture's extension payload wrapper.
func (t Texture) Extensions() TextureExtensions {
	return TextureExtensions{doc: t.doc, raw: t.raw.Extensions}
}

// Extras returns the record's application-specific data, unexamined.
func (t Texture) Extras() raw.Extras {
	return t.raw.Extras
}

// Info couples a texture view with one usage site's metadata: which
// TEXCOORD attribute set the binding uses, plus usage-scoped
// extensions and extras. The embedded Texture promotes Index, Sampler,
// Source and the rest, so code needing only texture-level operations
// can take an Info where it takes a Texture. The texture's own
// extensions and extras stay reachable through the Texture field.
type Info struct {
	Texture
	raw *raw.TextureInfo
}

// NewInfo builds a usage view over an already-constructed texture
// view and the usage record that references it.
func NewInfo(texture Texture, rec *raw.TextureInfo) Info {
	return Info{Texture: texture, raw: rec}
}

// Raw returns the underlying usage record.
func (i Info) Raw() *raw.TextureInfo {
	return i.raw
}

// TexCoord returns the TEXCOORD attribute set index the usage binds
// to. The stored value is already concrete (schema default 0); no
// defaulting happens here.
func (i Info) TexCoord() int {
	return i.raw.TexCoord
}

// Extensions returns the usage record's extension wrapper. This is a
// different namespace from the texture's own extensions.
func (i Info) Extensions() InfoExtensions {
	return InfoExtensions{texture: i.Texture, raw: i.raw.Extensions}
}

// Extras returns the usage record's application-specific data, not
// the texture's.
func (i Info) Extras() raw.Extras {
	return i.raw.Extras
}

// NormalInfo is a normal-map usage view: an Info plus the scalar
// applied to the sampled normal.
type NormalInfo struct {
	Info
	raw *raw.NormalTextureInfo
}

// Scale returns the normal-map scale factor (schema default 1,
// substituted at decode time).
func (n NormalInfo) Scale() float64 {
	return *n.raw.Scale
}

// OcclusionInfo is an occlusion-map usage view: an Info plus the
// occlusion strength.
type OcclusionInfo struct {
	Info
	raw *raw.OcclusionTextureInfo
}

// Strength returns the occlusion strength factor (schema default 1,
// substituted at decode time).
func (o OcclusionInfo) Strength() float64 {
	return *o.raw.Strength
}
