//go:build !nonames

package main

import "github.com/agentic-research/gltfview"

// Display labels use the optional name accessors, which only exist
// when the library is built with names enabled.

func textureLabel(t gltfview.Texture) string {
	if n, ok := t.Name(); ok {
		return " " + n
	}
	return ""
}

func materialLabel(m gltfview.Material) string {
	if n, ok := m.Name(); ok {
		return " " + n
	}
	return ""
}
