//go:build !nonames

package gltfview

// Name accessors are compiled out entirely with -tags nonames, for
// consumers who want the smaller API surface rather than accessors
// that always report absent.

// Name returns the sampler's user-defined name, ok=false when unset.
func (s Sampler) Name() (string, bool) {
	if s.raw.Name == "" {
		return "", false
	}
	return s.raw.Name, true
}

// Name returns the texture's user-defined name, ok=false when unset.
func (t Texture) Name() (string, bool) {
	if t.raw.Name == "" {
		return "", false
	}
	return t.raw.Name, true
}

// Name returns the image's user-defined name, ok=false when unset.
func (im Image) Name() (string, bool) {
	if im.raw.Name == "" {
		return "", false
	}
	return im.raw.Name, true
}

// Name returns the material's user-defined name, ok=false when unset.
func (m Material) Name() (string, bool) {
	if m.raw.Name == "" {
		return "", false
	}
	return m.raw.Name, true
}
