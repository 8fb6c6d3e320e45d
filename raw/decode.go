package raw

import (
	"fmt"

	"github.com/ohler55/ojg/oj"
)

// Unmarshal parses glTF JSON into a Document and applies the schema's
// default substitutions, so every field this package documents as
// "always populated" holds a concrete value afterwards. It performs no
// reference validation; that is the view layer's construction boundary.
func Unmarshal(data []byte) (*Document, error) {
	var doc Document
	if err := oj.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode gltf: %w", err)
	}
	doc.ApplyDefaults()
	return &doc, nil
}

// ApplyDefaults fills in the glTF schema defaults for absent fields.
// JSON absence decodes to the zero value (or nil pointer); the schema
// assigns non-zero defaults to some of those fields. For the non-
// pointer wrap modes an explicit 0 in the source is indistinguishable
// from absence and is rewritten to REPEAT here rather than reaching
// the enum validation (0 is not a valid wrap value, so nothing legal
// is lost). Idempotent; safe on hand-assembled documents.
func (d *Document) ApplyDefaults() {
	for i := range d.Samplers {
		s := &d.Samplers[i]
		if s.WrapS == 0 {
			s.WrapS = WrapRepeat
		}
		if s.WrapT == 0 {
			s.WrapT = WrapRepeat
		}
	}
	for i := range d.Materials {
		m := &d.Materials[i]
		if pbr := m.PBRMetallicRoughness; pbr != nil {
			if pbr.BaseColorFactor == nil {
				pbr.BaseColorFactor = []float64{1, 1, 1, 1}
			}
			if pbr.MetallicFactor == nil {
				pbr.MetallicFactor = ptr(1.0)
			}
			if pbr.RoughnessFactor == nil {
				pbr.RoughnessFactor = ptr(1.0)
			}
		}
		if nt := m.NormalTexture; nt != nil && nt.Scale == nil {
			nt.Scale = ptr(1.0)
		}
		if ot := m.OcclusionTexture; ot != nil && ot.Strength == nil {
			ot.Strength = ptr(1.0)
		}
		if m.EmissiveFactor == nil {
			m.EmissiveFactor = []float64{0, 0, 0}
		}
	}
}

func ptr(f float64) *float64 { return &f }
