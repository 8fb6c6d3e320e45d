package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
	"github.com/spf13/cobra"

	"github.com/agentic-research/gltfview"
)

var queryPath string

func init() {
	inspectCmd.Flags().StringVarP(&queryPath, "query", "q", "", "JSONPath query to run against the raw document instead of the table view")
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect [file.gltf]",
	Short: "Print the resolved texture/sampler/image tables of a document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read document: %w", err)
		}

		if queryPath != "" {
			return runQuery(cmd, data, queryPath)
		}

		doc, err := gltfview.Parse(data)
		if err != nil {
			return fmt.Errorf("load document: %w", err)
		}

		out := cmd.OutOrStdout()
		for tex := range doc.Textures() {
			fmt.Fprintf(out, "texture[%d]%s\n", tex.Index(), textureLabel(tex))
			printSampler(out, tex.Sampler())
			printImage(out, tex.Source())
		}
		for mat := range doc.Materials() {
			fmt.Fprintf(out, "material[%d]%s\n", mat.Index(), materialLabel(mat))
			if info, ok := mat.BaseColorTexture(); ok {
				fmt.Fprintf(out, "  baseColor -> texture[%d] texCoord=%d\n", info.Index(), info.TexCoord())
			}
			if info, ok := mat.MetallicRoughnessTexture(); ok {
				fmt.Fprintf(out, "  metallicRoughness -> texture[%d] texCoord=%d\n", info.Index(), info.TexCoord())
			}
			if info, ok := mat.NormalTexture(); ok {
				fmt.Fprintf(out, "  normal -> texture[%d] texCoord=%d scale=%g\n", info.Index(), info.TexCoord(), info.Scale())
			}
			if info, ok := mat.OcclusionTexture(); ok {
				fmt.Fprintf(out, "  occlusion -> texture[%d] texCoord=%d strength=%g\n", info.Index(), info.TexCoord(), info.Strength())
			}
			if info, ok := mat.EmissiveTexture(); ok {
				fmt.Fprintf(out, "  emissive -> texture[%d] texCoord=%d\n", info.Index(), info.TexCoord())
			}
		}
		return nil
	},
}

// runQuery evaluates a JSONPath expression against the generically
// decoded document and prints each match as JSON, one per line.
func runQuery(cmd *cobra.Command, data []byte, path string) error {
	x, err := jp.ParseString(path)
	if err != nil {
		return fmt.Errorf("invalid jsonpath '%s': %w", path, err)
	}
	root, err := oj.Parse(data)
	if err != nil {
		return fmt.Errorf("decode document: %w", err)
	}
	for _, match := range x.Get(root) {
		fmt.Fprintln(cmd.OutOrStdout(), oj.JSON(match))
	}
	return nil
}

func printSampler(out io.Writer, s gltfview.Sampler) {
	provenance := "default"
	if i, ok := s.Index(); ok {
		provenance = fmt.Sprintf("sampler[%d]", i)
	}
	line := fmt.Sprintf("  %s wrapS=%s wrapT=%s", provenance, s.WrapS(), s.WrapT())
	if f, ok := s.MagFilter(); ok {
		line += " mag=" + f.String()
	}
	if f, ok := s.MinFilter(); ok {
		line += " min=" + f.String()
	}
	fmt.Fprintln(out, line)
}

func printImage(out io.Writer, im gltfview.Image) {
	desc := "embedded"
	if uri, ok := im.URI(); ok {
		desc = uri
	} else if bv, ok := im.BufferView(); ok {
		desc = fmt.Sprintf("bufferView[%d]", bv)
	}
	if mime, ok := im.MimeType(); ok {
		desc += " (" + mime + ")"
	}
	fmt.Fprintf(out, "  image[%d] %s\n", im.Index(), desc)
}
