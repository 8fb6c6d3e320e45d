// Package raw holds the flat, index-addressed record structures of one
// parsed glTF document. Records map one-to-one onto the glTF 2.0 JSON
// schema; positional index within a slice is a record's identity and is
// referenced by other records.
//
// The structures here are plain data. Defaulted resolution, reference
// traversal and extension access live in the parent gltfview package.
package raw

// Extras is free-form application-specific data. It is carried through
// decode untouched and never examined by this module.
type Extras = any

// Extensions is the per-record extension payload, keyed by extension
// name. Unknown extensions stay in the map as decoded JSON values.
type Extensions = map[string]any

// Document is the root of one parsed glTF asset. Slice order equals
// order of appearance in the source JSON and is semantically meaningful
// (indices in other records, re-serialization order).
type Document struct {
	Asset     Asset      `json:"asset"`
	Samplers  []Sampler  `json:"samplers,omitempty"`
	Textures  []Texture  `json:"textures,omitempty"`
	Images    []Image    `json:"images,omitempty"`
	Materials []Material `json:"materials,omitempty"`

	Extensions Extensions `json:"extensions,omitempty"`
	Extras     Extras     `json:"extras,omitempty"`
}

// Asset is the document metadata block. Version is the only required
// field in the glTF schema.
type Asset struct {
	Version    string `json:"version"`
	MinVersion string `json:"minVersion,omitempty"`
	Generator  string `json:"generator,omitempty"`
	Copyright  string `json:"copyright,omitempty"`
}

// Sampler holds texture filtering and wrapping modes.
//
// MagFilter and MinFilter are optional in the schema with no default.
// WrapS and WrapT default to REPEAT; Unmarshal substitutes the default
// so both are always populated once a document leaves this package.
type Sampler struct {
	MagFilter *MagFilter   `json:"magFilter,omitempty"`
	MinFilter *MinFilter   `json:"minFilter,omitempty"`
	WrapS     WrappingMode `json:"wrapS,omitempty"`
	WrapT     WrappingMode `json:"wrapT,omitempty"`

	Name       string     `json:"name,omitempty"`
	Extensions Extensions `json:"extensions,omitempty"`
	Extras     Extras     `json:"extras,omitempty"`
}

// Texture pairs an image with an optional sampler.
//
// Source is mandatory for this module (an imageless texture cannot be
// resolved); it is a pointer only because the JSON shape allows
// absence, which the validation boundary rejects. Sampler is genuinely
// optional — nil means "use the default sampler".
type Texture struct {
	Sampler *int `json:"sampler,omitempty"`
	Source  *int `json:"source,omitempty"`

	Name       string     `json:"name,omitempty"`
	Extensions Extensions `json:"extensions,omitempty"`
	Extras     Extras     `json:"extras,omitempty"`
}

// TextureInfo is a texture usage record: a reference to a texture plus
// the TEXCOORD attribute set it binds to. TexCoord's schema default is
// 0, which is the Go zero value, so absence needs no substitution.
type TextureInfo struct {
	Index    int `json:"index"`
	TexCoord int `json:"texCoord,omitempty"`

	Extensions Extensions `json:"extensions,omitempty"`
	Extras     Extras     `json:"extras,omitempty"`
}

// NormalTextureInfo is a TextureInfo with a normal-map scale factor.
// Scale defaults to 1; Unmarshal substitutes it when absent.
type NormalTextureInfo struct {
	Index    int      `json:"index"`
	TexCoord int      `json:"texCoord,omitempty"`
	Scale    *float64 `json:"scale,omitempty"`

	Extensions Extensions `json:"extensions,omitempty"`
	Extras     Extras     `json:"extras,omitempty"`
}

// AsTextureInfo returns the embedded plain usage record fields as a
// TextureInfo so the view layer can build one Info type over all
// usage-record variants.
func (n *NormalTextureInfo) AsTextureInfo() TextureInfo {
	return TextureInfo{
		Index:      n.Index,
		TexCoord:   n.TexCoord,
		Extensions: n.Extensions,
		Extras:     n.Extras,
	}
}

// OcclusionTextureInfo is a TextureInfo with an occlusion strength
// factor. Strength defaults to 1; Unmarshal substitutes it when absent.
type OcclusionTextureInfo struct {
	Index    int      `json:"index"`
	TexCoord int      `json:"texCoord,omitempty"`
	Strength *float64 `json:"strength,omitempty"`

	Extensions Extensions `json:"extensions,omitempty"`
	Extras     Extras     `json:"extras,omitempty"`
}

// AsTextureInfo returns the embedded plain usage record fields as a
// TextureInfo.
func (o *OcclusionTextureInfo) AsTextureInfo() TextureInfo {
	return TextureInfo{
		Index:      o.Index,
		TexCoord:   o.TexCoord,
		Extensions: o.Extensions,
		Extras:     o.Extras,
	}
}

// Image is an image resource referenced by textures. Either URI or
// BufferView identifies the payload; BufferView is carried opaquely —
// binary buffer decoding belongs to a different subsystem.
type Image struct {
	URI        string `json:"uri,omitempty"`
	MimeType   string `json:"mimeType,omitempty"`
	BufferView *int   `json:"bufferView,omitempty"`

	Name       string     `json:"name,omitempty"`
	Extensions Extensions `json:"extensions,omitempty"`
	Extras     Extras     `json:"extras,omitempty"`
}

// Material describes surface shading parameters and, for this module's
// purposes, is where texture usage records live.
type Material struct {
	PBRMetallicRoughness *PBRMetallicRoughness `json:"pbrMetallicRoughness,omitempty"`
	NormalTexture        *NormalTextureInfo    `json:"normalTexture,omitempty"`
	OcclusionTexture     *OcclusionTextureInfo `json:"occlusionTexture,omitempty"`
	EmissiveTexture      *TextureInfo          `json:"emissiveTexture,omitempty"`
	EmissiveFactor       []float64             `json:"emissiveFactor,omitempty"`

	Name       string     `json:"name,omitempty"`
	Extensions Extensions `json:"extensions,omitempty"`
	Extras     Extras     `json:"extras,omitempty"`
}

// PBRMetallicRoughness holds the metallic-roughness shading model
// parameters. Factor fields are pointers because 0 is a meaningful
// explicit value; Unmarshal substitutes the schema defaults
// (BaseColorFactor [1,1,1,1], MetallicFactor 1, RoughnessFactor 1)
// when absent.
type PBRMetallicRoughness struct {
	BaseColorFactor          []float64    `json:"baseColorFactor,omitempty"`
	BaseColorTexture         *TextureInfo `json:"baseColorTexture,omitempty"`
	MetallicFactor           *float64     `json:"metallicFactor,omitempty"`
	RoughnessFactor          *float64     `json:"roughnessFactor,omitempty"`
	MetallicRoughnessTexture *TextureInfo `json:"metallicRoughnessTexture,omitempty"`

	Extensions Extensions `json:"extensions,omitempty"`
	Extras     Extras     `json:"extras,omitempty"`
}
