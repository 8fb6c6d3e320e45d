package gltfview

import "github.com/agentic-research/gltfview/raw"

// Material is a view over one material record. Its texture accessors
// are where usage (Info) views come from: each returns the referenced
// texture view wrapped with that usage site's binding metadata.
type Material struct {
	doc   *Document
	index int
	raw   *raw.Material
}

// Index returns the material's position in the document.
func (m Material) Index() int {
	return m.index
}

// Raw returns the underlying record.
func (m Material) Raw() *raw.Material {
	return m.raw
}

// BaseColorTexture returns the base color usage view, or ok=false
// when the material has none.
func (m Material) BaseColorTexture() (Info, bool) {
	pbr := m.raw.PBRMetallicRoughness
	if pbr == nil || pbr.BaseColorTexture == nil {
		return Info{}, false
	}
	return m.info(pbr.BaseColorTexture), true
}

// MetallicRoughnessTexture returns the metallic-roughness usage view,
// or ok=false when the material has none.
func (m Material) MetallicRoughnessTexture() (Info, bool) {
	pbr := m.raw.PBRMetallicRoughness
	if pbr == nil || pbr.MetallicRoughnessTexture == nil {
		return Info{}, false
	}
	return m.info(pbr.MetallicRoughnessTexture), true
}

// EmissiveTexture returns the emissive usage view, or ok=false when
// the material has none.
func (m Material) EmissiveTexture() (Info, bool) {
	if m.raw.EmissiveTexture == nil {
		return Info{}, false
	}
	return m.info(m.raw.EmissiveTexture), true
}

// NormalTexture returns the normal-map usage view, or ok=false when
// the material has none.
func (m Material) NormalTexture() (NormalInfo, bool) {
	nt := m.raw.NormalTexture
	if nt == nil {
		return NormalInfo{}, false
	}
	rec := nt.AsTextureInfo()
	return NormalInfo{Info: m.info(&rec), raw: nt}, true
}

// OcclusionTexture returns the occlusion usage view, or ok=false when
// the material has none.
func (m Material) OcclusionTexture() (OcclusionInfo, bool) {
	ot := m.raw.OcclusionTexture
	if ot == nil {
		return OcclusionInfo{}, false
	}
	rec := ot.AsTextureInfo()
	return OcclusionInfo{Info: m.info(&rec), raw: ot}, true
}

// BaseColorFactor returns the base color multiplier (schema default
// [1,1,1,1]). Nil when the material carries no PBR block at all.
func (m Material) BaseColorFactor() []float64 {
	if m.raw.PBRMetallicRoughness == nil {
		return nil
	}
	return m.raw.PBRMetallicRoughness.BaseColorFactor
}

// MetallicFactor returns the metalness multiplier, defaulted to 1.
// ok=false when the material carries no PBR block.
func (m Material) MetallicFactor() (float64, bool) {
	if m.raw.PBRMetallicRoughness == nil {
		return 0, false
	}
	return *m.raw.PBRMetallicRoughness.MetallicFactor, true
}

// RoughnessFactor returns the roughness multiplier, defaulted to 1.
// ok=false when the material carries no PBR block.
func (m Material) RoughnessFactor() (float64, bool) {
	if m.raw.PBRMetallicRoughness == nil {
		return 0, false
	}
	return *m.raw.PBRMetallicRoughness.RoughnessFactor, true
}

// EmissiveFactor returns the emissive color (schema default [0,0,0],
// substituted at decode time).
func (m Material) EmissiveFactor() []float64 {
	return m.raw.EmissiveFactor
}

// Extensions returns this material's extension payload wrapper.
func (m Material) Extensions() MaterialExtensions {
	return MaterialExtensions{doc: m.doc, raw: m.raw.Extensions}
}

// Extras returns the record's application-specific data, unexamined.
func (m Material) Extras() raw.Extras {
	return m.raw.Extras
}

func (m Material) info(rec *raw.TextureInfo) Info {
	return NewInfo(m.texture(rec.Index), rec)
}

// texture resolves a validated texture index to its view.
func (m Material) texture(i int) Texture {
	return Texture{doc: m.doc, index: i, raw: &m.doc.raw.Textures[i]}
}
