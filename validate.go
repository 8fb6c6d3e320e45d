package gltfview

import (
	"errors"
	"fmt"

	"github.com/agentic-research/gltfview/raw"
)

// ErrCorrupt is wrapped by every *CorruptionError, so callers can
// match the whole class with errors.Is.
var ErrCorrupt = errors.New("corrupt gltf document")

// CorruptionError reports a reference or enumeration in the raw
// document that violates its own invariants: a dangling index, a
// missing mandatory field, or an out-of-vocabulary enum value.
type CorruptionError struct {
	Collection string // collection holding the bad record, e.g. "textures"
	Index      int    // position of the bad record in that collection
	Detail     string
}

func (e *CorruptionError) Error() string {
	return fmt.Sprintf("%s[%d]: %s", e.Collection, e.Index, e.Detail)
}

func (e *CorruptionError) Unwrap() error { return ErrCorrupt }

// validate is the single trust boundary between raw bytes and views.
// Documents may come from untrusted sources, so every inter-record
// reference and enum is checked here once; accessors then resolve
// without per-call checks.
func validate(doc *raw.Document) error {
	for i := range doc.Samplers {
		s := &doc.Samplers[i]
		if s.MagFilter != nil && !s.MagFilter.Valid() {
			return &CorruptionError{"samplers", i, fmt.Sprintf("invalid magFilter %d", *s.MagFilter)}
		}
		if s.MinFilter != nil && !s.MinFilter.Valid() {
			return &CorruptionError{"samplers", i, fmt.Sprintf("invalid minFilter %d", *s.MinFilter)}
		}
		if !s.WrapS.Valid() {
			return &CorruptionError{"samplers", i, fmt.Sprintf("invalid wrapS %d", s.WrapS)}
		}
		if !s.WrapT.Valid() {
			return &CorruptionError{"samplers", i, fmt.Sprintf("invalid wrapT %d", s.WrapT)}
		}
	}
	for i := range doc.Textures {
		t := &doc.Textures[i]
		if t.Source == nil {
			return &CorruptionError{"textures", i, "missing source"}
		}
		if *t.Source < 0 || *t.Source >= len(doc.Images) {
			return &CorruptionError{"textures", i, fmt.Sprintf("source %d out of range (%d images)", *t.Source, len(doc.Images))}
		}
		if t.Sampler != nil && (*t.Sampler < 0 || *t.Sampler >= len(doc.Samplers)) {
			return &CorruptionError{"textures", i, fmt.Sprintf("sampler %d out of range (%d samplers)", *t.Sampler, len(doc.Samplers))}
		}
	}
	for i := range doc.Materials {
		m := &doc.Materials[i]
		if pbr := m.PBRMetallicRoughness; pbr != nil {
			if err := checkInfo(doc, i, "baseColorTexture", pbr.BaseColorTexture); err != nil {
				return err
			}
			if err := checkInfo(doc, i, "metallicRoughnessTexture", pbr.MetallicRoughnessTexture); err != nil {
				return err
			}
		}
		if nt := m.NormalTexture; nt != nil {
			if err := checkInfoIndex(doc, i, "normalTexture", nt.Index); err != nil {
				return err
			}
		}
		if ot := m.OcclusionTexture; ot != nil {
			if err := checkInfoIndex(doc, i, "occlusionTexture", ot.Index); err != nil {
				return err
			}
		}
		if err := checkInfo(doc, i, "emissiveTexture", m.EmissiveTexture); err != nil {
			return err
		}
	}
	return nil
}

func checkInfo(doc *raw.Document, mat int, field string, info *raw.TextureInfo) error {
	if info == nil {
		return nil
	}
	return checkInfoIndex(doc, mat, field, info.Index)
}

func checkInfoIndex(doc *raw.Document, mat int, field string, index int) error {
	if index < 0 || index >= len(doc.Textures) {
		return &CorruptionError{"materials", mat, fmt.Sprintf("%s index %d out of range (%d textures)", field, index, len(doc.Textures))}
	}
	return nil
}
