package gltfview

import "github.com/agentic-research/gltfview/raw"

// defaultSampler is the one canonical record substituted when a
// texture has no sampler reference: filters unset, both wrap modes at
// the schema default. Package initialization makes the one-time
// construction race-free, and the value is never written afterwards,
// so every fallback path shares this same instance.
var defaultSampler = raw.Sampler{
	WrapS: raw.WrapRepeat,
	WrapT: raw.WrapRepeat,
}

// DefaultSampler returns the default sampler as a view scoped to doc.
// Its Index reports ok=false, which is how callers distinguish it
// from a document-backed sampler (e.g. when re-serializing).
func DefaultSampler(doc *Document) Sampler {
	return Sampler{doc: doc, index: -1, raw: &defaultSampler}
}
