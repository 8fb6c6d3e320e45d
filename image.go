package gltfview

import "github.com/agentic-research/gltfview/raw"

// Image is a view over one image record. The record only locates the
// image payload (URI or binary buffer slot); decoding the payload is a
// different subsystem's job.
type Image struct {
	doc   *Document
	index int
	raw   *raw.Image
}

// Index returns the image's position in the document.
func (im Image) Index() int {
	return im.index
}

// Raw returns the underlying record.
func (im Image) Raw() *raw.Image {
	return im.raw
}

// URI returns the image's URI, or ok=false when the image lives in a
// binary buffer instead.
func (im Image) URI() (string, bool) {
	if im.raw.URI == "" {
		return "", false
	}
	return im.raw.URI, true
}

// MimeType returns the declared media type, or ok=false when absent.
func (im Image) MimeType() (string, bool) {
	if im.raw.MimeType == "" {
		return "", false
	}
	return im.raw.MimeType, true
}

// BufferView returns the buffer view index holding the image bytes,
// or ok=false for URI-addressed images. The index is carried opaquely.
func (im Image) BufferView() (int, bool) {
	if im.raw.BufferView == nil {
		return 0, false
	}
	return *im.raw.BufferView, true
}

// Extensions returns this image's extension payload wrapper.
func (im Image) Extensions() ImageExtensions {
	return ImageExtensions{doc: im.doc, raw: im.raw.Extensions}
}

// Extras returns the record's application-specific data, unexamined.
func (im Image) Extras() raw.Extras {
	return im.raw.Extras
}
