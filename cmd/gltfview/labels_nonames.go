//go:build nonames

package main

import "github.com/agentic-research/gltfview"

func textureLabel(gltfview.Texture) string { return "" }

func materialLabel(gltfview.Material) string { return "" }
