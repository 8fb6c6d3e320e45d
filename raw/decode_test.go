package raw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshal_SamplerDefaults(t *testing.T) {
	doc, err := Unmarshal([]byte(`{
		"asset": {"version": "2.0"},
		"samplers": [
			{},
			{"magFilter": 9728, "minFilter": 9987, "wrapS": 33071, "wrapT": 33648}
		]
	}`))
	require.NoError(t, err)
	require.Len(t, doc.Samplers, 2)

	empty := doc.Samplers[0]
	assert.Nil(t, empty.MagFilter)
	assert.Nil(t, empty.MinFilter)
	assert.Equal(t, WrapRepeat, empty.WrapS, "absent wrapS substitutes REPEAT")
	assert.Equal(t, WrapRepeat, empty.WrapT, "absent wrapT substitutes REPEAT")

	full := doc.Samplers[1]
	require.NotNil(t, full.MagFilter)
	assert.Equal(t, MagNearest, *full.MagFilter)
	require.NotNil(t, full.MinFilter)
	assert.Equal(t, MinLinearMipmapLinear, *full.MinFilter)
	assert.Equal(t, WrapClampToEdge, full.WrapS)
	assert.Equal(t, WrapMirroredRepeat, full.WrapT)
}

func TestUnmarshal_TextureReferences(t *testing.T) {
	doc, err := Unmarshal([]byte(`{
		"asset": {"version": "2.0"},
		"textures": [
			{"sampler": 0, "source": 1, "name": "diffuse"},
			{"source": 0}
		]
	}`))
	require.NoError(t, err)
	require.Len(t, doc.Textures, 2)

	first := doc.Textures[0]
	require.NotNil(t, first.Sampler)
	assert.Equal(t, 0, *first.Sampler)
	require.NotNil(t, first.Source)
	assert.Equal(t, 1, *first.Source)
	assert.Equal(t, "diffuse", first.Name)

	second := doc.Textures[1]
	assert.Nil(t, second.Sampler, "absent sampler stays nil for the default-substitution path")
	require.NotNil(t, second.Source)
	assert.Equal(t, 0, *second.Source)
}

func TestUnmarshal_MaterialDefaults(t *testing.T) {
	doc, err := Unmarshal([]byte(`{
		"asset": {"version": "2.0"},
		"materials": [{
			"pbrMetallicRoughness": {
				"baseColorTexture": {"index": 0},
				"metallicFactor": 0
			},
			"normalTexture": {"index": 0},
			"occlusionTexture": {"index": 0, "strength": 0.25}
		}]
	}`))
	require.NoError(t, err)
	require.Len(t, doc.Materials, 1)

	m := doc.Materials[0]
	pbr := m.PBRMetallicRoughness
	require.NotNil(t, pbr)
	assert.Equal(t, []float64{1, 1, 1, 1}, pbr.BaseColorFactor)
	require.NotNil(t, pbr.MetallicFactor)
	assert.Equal(t, 0.0, *pbr.MetallicFactor, "explicit zero survives default substitution")
	require.NotNil(t, pbr.RoughnessFactor)
	assert.Equal(t, 1.0, *pbr.RoughnessFactor)

	require.NotNil(t, m.NormalTexture)
	require.NotNil(t, m.NormalTexture.Scale)
	assert.Equal(t, 1.0, *m.NormalTexture.Scale)
	assert.Equal(t, 0, m.NormalTexture.TexCoord)

	require.NotNil(t, m.OcclusionTexture)
	require.NotNil(t, m.OcclusionTexture.Strength)
	assert.Equal(t, 0.25, *m.OcclusionTexture.Strength)

	assert.Equal(t, []float64{0, 0, 0}, m.EmissiveFactor)
}

func TestUnmarshal_ExtrasAndExtensionsPassThrough(t *testing.T) {
	doc, err := Unmarshal([]byte(`{
		"asset": {"version": "2.0"},
		"samplers": [{
			"extras": {"note": "hand tuned", "revision": 3},
			"extensions": {"VENDOR_sampler_hint": {"bias": -0.5}}
		}]
	}`))
	require.NoError(t, err)
	require.Len(t, doc.Samplers, 1)

	s := doc.Samplers[0]
	extras, ok := s.Extras.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "hand tuned", extras["note"])

	hint, ok := s.Extensions["VENDOR_sampler_hint"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, -0.5, hint["bias"])
}

func TestUnmarshal_Malformed(t *testing.T) {
	_, err := Unmarshal([]byte(`{"asset":`))
	require.Error(t, err)
}

func TestUnmarshal_ImageFields(t *testing.T) {
	doc, err := Unmarshal([]byte(`{
		"asset": {"version": "2.0", "generator": "test"},
		"images": [
			{"uri": "a.png", "mimeType": "image/png"},
			{"bufferView": 4, "mimeType": "image/jpeg"}
		]
	}`))
	require.NoError(t, err)
	assert.Equal(t, "2.0", doc.Asset.Version)
	require.Len(t, doc.Images, 2)

	assert.Equal(t, "a.png", doc.Images[0].URI)
	assert.Nil(t, doc.Images[0].BufferView)
	require.NotNil(t, doc.Images[1].BufferView)
	assert.Equal(t, 4, *doc.Images[1].BufferView)
	assert.Equal(t, "image/jpeg", doc.Images[1].MimeType)
}
