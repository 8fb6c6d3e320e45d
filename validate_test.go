package gltfview

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentic-research/gltfview/raw"
)

func TestNew_RejectsDanglingReferences(t *testing.T) {
	t.Run("texture source out of range", func(t *testing.T) {
		_, err := New(&raw.Document{
			Textures: []raw.Texture{{Source: intp(3)}},
			Images:   []raw.Image{{URI: "a.png"}},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrCorrupt)

		var ce *CorruptionError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, "textures", ce.Collection)
		assert.Equal(t, 0, ce.Index)
	})

	t.Run("texture source missing", func(t *testing.T) {
		_, err := New(&raw.Document{
			Textures: []raw.Texture{{}},
			Images:   []raw.Image{{URI: "a.png"}},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrCorrupt)
	})

	t.Run("texture sampler out of range", func(t *testing.T) {
		_, err := New(&raw.Document{
			Textures: []raw.Texture{{Source: intp(0), Sampler: intp(1)}},
			Images:   []raw.Image{{URI: "a.png"}},
		})
		require.Error(t, err)

		var ce *CorruptionError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, "textures", ce.Collection)
	})

	t.Run("material usage index out of range", func(t *testing.T) {
		_, err := New(&raw.Document{
			Materials: []raw.Material{{
				EmissiveTexture: &raw.TextureInfo{Index: 7},
			}},
		})
		require.Error(t, err)

		var ce *CorruptionError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, "materials", ce.Collection)
		assert.Contains(t, ce.Detail, "emissiveTexture")
	})

	t.Run("normal texture index out of range", func(t *testing.T) {
		_, err := New(&raw.Document{
			Materials: []raw.Material{{
				NormalTexture: &raw.NormalTextureInfo{Index: 1},
			}},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrCorrupt)
	})
}

func TestNew_RejectsInvalidEnums(t *testing.T) {
	bad := raw.MagFilter(42)
	_, err := New(&raw.Document{
		Samplers: []raw.Sampler{{
			MagFilter: &bad,
			WrapS:     raw.WrapRepeat,
			WrapT:     raw.WrapRepeat,
		}},
	})
	require.Error(t, err)

	var ce *CorruptionError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "samplers", ce.Collection)
	assert.Contains(t, ce.Detail, "magFilter")
}

func TestNew_AcceptsValidDocument(t *testing.T) {
	doc, err := New(&raw.Document{
		Asset:    raw.Asset{Version: "2.0"},
		Textures: []raw.Texture{{Source: intp(0)}},
		Images:   []raw.Image{{URI: "a.png"}},
	})
	require.NoError(t, err)
	require.NotNil(t, doc)
}

func TestParse_CorruptJSONAndCorruptReferences(t *testing.T) {
	_, err := Parse([]byte(`{"asset": {`))
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrCorrupt), "malformed JSON is a decode error, not a reference corruption")

	_, err = Parse([]byte(`{
		"asset": {"version": "2.0"},
		"textures": [{"source": 0}]
	}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCorrupt, "decoded but dangling reference is corruption")
}
