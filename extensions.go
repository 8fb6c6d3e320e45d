package gltfview

import (
	"github.com/ohler55/ojg/alt"

	"github.com/agentic-research/gltfview/raw"
)

// Extension names this package knows how to interpret. Anything else
// in a record's extension payload is preserved but only reachable
// through Lookup.
const (
	ExtTextureWebP      = "EXT_texture_webp"
	ExtTextureBasisU    = "KHR_texture_basisu"
	ExtTextureTransform = "KHR_texture_transform"
)

// Each entity kind gets its own wrapper type over the raw extension
// payload. Wrappers hold two references and are built per call, so
// callers who never touch extensions pay nothing beyond that.

// SamplerExtensions wraps a sampler record's extension payload. No
// vendor extensions are interpreted for samplers; payloads pass
// through Lookup untouched.
type SamplerExtensions struct {
	doc *Document
	raw raw.Extensions
}

// Lookup returns the raw decoded payload for the named extension, or
// ok=false when the record does not carry it.
func (e SamplerExtensions) Lookup(name string) (any, bool) {
	v, ok := e.raw[name]
	return v, ok
}

// ImageExtensions wraps an image record's extension payload.
type ImageExtensions struct {
	doc *Document
	raw raw.Extensions
}

// Lookup returns the raw decoded payload for the named extension, or
// ok=false when the record does not carry it.
func (e ImageExtensions) Lookup(name string) (any, bool) {
	v, ok := e.raw[name]
	return v, ok
}

// MaterialExtensions wraps a material record's extension payload.
type MaterialExtensions struct {
	doc *Document
	raw raw.Extensions
}

// Lookup returns the raw decoded payload for the named extension, or
// ok=false when the record does not carry it.
func (e MaterialExtensions) Lookup(name string) (any, bool) {
	v, ok := e.raw[name]
	return v, ok
}

// TextureExtensions wraps a texture record's extension payload. It
// keeps the document back-reference because the interpreted texture
// extensions carry image cross-references of their own.
type TextureExtensions struct {
	doc *Document
	raw raw.Extensions
}

// Lookup returns the raw decoded payload for the named extension, or
// ok=false when the record does not carry it.
func (e TextureExtensions) Lookup(name string) (any, bool) {
	v, ok := e.raw[name]
	return v, ok
}

// Shells for decoding known extension payloads. These must be named
// types: the recomposer caches the composer per type name, and
// anonymous structs all share the empty name, so distinct shapes
// would overwrite each other's cache entry.
type extSourceShell struct {
	Source int
}

type extTransformShell struct {
	Offset   []float64
	Rotation float64
	Scale    []float64
	TexCoord int
}

// WebP returns the EXT_texture_webp payload, or ok=false when the
// extension is absent or its payload does not have the expected
// shape. A misshapen payload never fails the texture view itself.
func (e TextureExtensions) WebP() (TextureWebP, bool) {
	var shell extSourceShell
	if !recompose(e.raw[ExtTextureWebP], &shell) {
		return TextureWebP{}, false
	}
	return TextureWebP{doc: e.doc, source: shell.Source}, true
}

// BasisU returns the KHR_texture_basisu payload, or ok=false when the
// extension is absent or misshapen.
func (e TextureExtensions) BasisU() (TextureBasisU, bool) {
	var shell extSourceShell
	if !recompose(e.raw[ExtTextureBasisU], &shell) {
		return TextureBasisU{}, false
	}
	return TextureBasisU{doc: e.doc, source: shell.Source}, true
}

// TextureWebP is the EXT_texture_webp extension: an alternate image
// source holding WebP data.
type TextureWebP struct {
	doc    *Document
	source int
}

// Source resolves the extension's image reference. Extension payloads
// are outside the construction-time validation boundary, so a
// dangling index here reports ok=false instead of being trusted.
func (x TextureWebP) Source() (Image, bool) {
	return x.doc.Image(x.source)
}

// TextureBasisU is the KHR_texture_basisu extension: an alternate
// image source holding a Basis Universal compressed payload.
type TextureBasisU struct {
	doc    *Document
	source int
}

// Source resolves the extension's image reference, ok=false for a
// dangling index.
func (x TextureBasisU) Source() (Image, bool) {
	return x.doc.Image(x.source)
}

// InfoExtensions wraps a usage record's extension payload — a
// distinct namespace from the texture's own extensions. It holds a
// copy of the texture view so interpreted extensions can reach
// texture fields.
type InfoExtensions struct {
	texture Texture
	raw     raw.Extensions
}

// Lookup returns the raw decoded payload for the named extension, or
// ok=false when the record does not carry it.
func (e InfoExtensions) Lookup(name string) (any, bool) {
	v, ok := e.raw[name]
	return v, ok
}

// TextureTransform returns the KHR_texture_transform payload, or
// ok=false when the extension is absent or misshapen.
func (e InfoExtensions) TextureTransform() (TextureTransform, bool) {
	var shell extTransformShell
	payload := e.raw[ExtTextureTransform]
	if !recompose(payload, &shell) {
		return TextureTransform{}, false
	}
	if shell.Offset == nil {
		shell.Offset = []float64{0, 0}
	}
	if shell.Scale == nil {
		shell.Scale = []float64{1, 1}
	}
	if len(shell.Offset) != 2 || len(shell.Scale) != 2 {
		return TextureTransform{}, false
	}
	_, hasTexCoord := payload.(map[string]any)["texCoord"]
	return TextureTransform{
		texture:     e.texture,
		offset:      [2]float64{shell.Offset[0], shell.Offset[1]},
		rotation:    shell.Rotation,
		scale:       [2]float64{shell.Scale[0], shell.Scale[1]},
		texCoord:    shell.TexCoord,
		hasTexCoord: hasTexCoord,
	}, true
}

// TextureTransform is the KHR_texture_transform extension: a UV
// transform applied at one usage site. It carries the texture view it
// was read from.
type TextureTransform struct {
	texture     Texture
	offset      [2]float64
	rotation    float64
	scale       [2]float64
	texCoord    int
	hasTexCoord bool
}

// Texture returns the texture view this transform applies to.
func (x TextureTransform) Texture() Texture {
	return x.texture
}

// Offset returns the UV offset (default [0,0]).
func (x TextureTransform) Offset() [2]float64 {
	return x.offset
}

// Rotation returns the UV rotation in radians (default 0).
func (x TextureTransform) Rotation() float64 {
	return x.rotation
}

// Scale returns the UV scale (default [1,1]).
func (x TextureTransform) Scale() [2]float64 {
	return x.scale
}

// TexCoord returns the attribute-set override, ok=false when the
// transform keeps the usage record's own binding.
func (x TextureTransform) TexCoord() (int, bool) {
	return x.texCoord, x.hasTexCoord
}

// recompose fills shell from a decoded extension payload. A nil
// payload (extension absent), a non-object payload, or fields of the
// wrong type all report false.
func recompose(payload any, shell any) bool {
	if payload == nil {
		return false
	}
	if _, ok := payload.(map[string]any); !ok {
		return false
	}
	if _, err := alt.Recompose(payload, shell); err != nil {
		return false
	}
	return true
}
