// Package gltfview is a read-only accessor layer over a parsed glTF
// document. It wraps the flat, index-addressed records of the raw
// package in cheap view values that resolve cross-references on
// demand: a texture view hands out its sampler and image views, an
// optional sampler reference falls back to the canonical default
// sampler, and usage ("info") views layer binding metadata over a
// texture view by embedding.
//
// Views never copy record data. Each view borrows one raw record plus
// the Document it came from, and must not be used after the Document
// is released. Everything here is read-only, so any number of views
// may be used concurrently without coordination.
package gltfview

import (
	"iter"

	"github.com/agentic-research/gltfview/raw"
)

// Document is the root for one loaded glTF asset. Construct it with
// New or Parse; both run the reference validation boundary, so views
// handed out by a Document never encounter a dangling index.
type Document struct {
	raw *raw.Document
}

// New wraps an already-decoded raw document. It first runs the raw
// layer's default substitution, so hand-assembled documents behave
// like decoded ones (accessors that unwrap defaulted fields never
// see a nil), then validates every inter-record reference and
// enumeration up front and refuses the document with a
// *CorruptionError if any check fails: after New succeeds, accessor
// paths resolve without defensive checks.
func New(doc *raw.Document) (*Document, error) {
	doc.ApplyDefaults()
	if err := validate(doc); err != nil {
		return nil, err
	}
	return &Document{raw: doc}, nil
}

// Parse decodes glTF JSON and wraps it. Shorthand for raw.Unmarshal
// followed by New.
func Parse(data []byte) (*Document, error) {
	doc, err := raw.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return New(doc)
}

// Raw returns the underlying raw document.
func (d *Document) Raw() *raw.Document {
	return d.raw
}

// Texture returns the texture view at index i, or ok=false when i is
// out of range.
func (d *Document) Texture(i int) (Texture, bool) {
	if i < 0 || i >= len(d.raw.Textures) {
		return Texture{}, false
	}
	return Texture{doc: d, index: i, raw: &d.raw.Textures[i]}, true
}

// Sampler returns the sampler view at index i, or ok=false when i is
// out of range. For the default sampler use DefaultSampler.
func (d *Document) Sampler(i int) (Sampler, bool) {
	if i < 0 || i >= len(d.raw.Samplers) {
		return Sampler{}, false
	}
	return Sampler{doc: d, index: i, raw: &d.raw.Samplers[i]}, true
}

// Image returns the image view at index i, or ok=false when i is out
// of range.
func (d *Document) Image(i int) (Image, bool) {
	if i < 0 || i >= len(d.raw.Images) {
		return Image{}, false
	}
	return Image{doc: d, index: i, raw: &d.raw.Images[i]}, true
}

// Material returns the material view at index i, or ok=false when i
// is out of range.
func (d *Document) Material(i int) (Material, bool) {
	if i < 0 || i >= len(d.raw.Materials) {
		return Material{}, false
	}
	return Material{doc: d, index: i, raw: &d.raw.Materials[i]}, true
}

// Textures iterates the document's textures in index order.
func (d *Document) Textures() iter.Seq[Texture] {
	return func(yield func(Texture) bool) {
		for i := range d.raw.Textures {
			if !yield(Texture{doc: d, index: i, raw: &d.raw.Textures[i]}) {
				return
			}
		}
	}
}

// Samplers iterates the document's samplers in index order. The
// default sampler is not part of the document and does not appear.
func (d *Document) Samplers() iter.Seq[Sampler] {
	return func(yield func(Sampler) bool) {
		for i := range d.raw.Samplers {
			if !yield(Sampler{doc: d, index: i, raw: &d.raw.Samplers[i]}) {
				return
			}
		}
	}
}

// Images iterates the document's images in index order.
func (d *Document) Images() iter.Seq[Image] {
	return func(yield func(Image) bool) {
		for i := range d.raw.Images {
			if !yield(Image{doc: d, index: i, raw: &d.raw.Images[i]}) {
				return
			}
		}
	}
}

// Materials iterates the document's materials in index order.
func (d *Document) Materials() iter.Seq[Material] {
	return func(yield func(Material) bool) {
		for i := range d.raw.Materials {
			if !yield(Material{doc: d, index: i, raw: &d.raw.Materials[i]}) {
				return
			}
		}
	}
}
