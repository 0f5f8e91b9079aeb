package types_test

import (
	"testing"

	"texwire/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextureKindSlots(t *testing.T) {
	tests := []struct {
		kind        types.TextureKind
		slot        string
		implemented bool
	}{
		{types.BaseColor, "diffuse_color", true},
		{types.Metallic, "refl_metalness", true},
		{types.Normal, "bump_input", true},
		{types.Roughness, "refl_roughness", true},
		{types.Emissive, "", false},
		{types.Height, "", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			slot, ok := tt.kind.Slot()
			assert.Equal(t, tt.implemented, ok)
			assert.Equal(t, tt.slot, slot)
			assert.Equal(t, tt.implemented, tt.kind.Implemented())
		})
	}
}

func TestTextureKindRaw(t *testing.T) {
	// Only BaseColor carries color data
	assert.False(t, types.BaseColor.Raw())
	assert.True(t, types.Metallic.Raw())
	assert.True(t, types.Normal.Raw())
	assert.True(t, types.Roughness.Raw())
	assert.True(t, types.Emissive.Raw())
	assert.True(t, types.Height.Raw())
}

func TestParseTextureKind(t *testing.T) {
	k, ok := types.ParseTextureKind("BaseColor")
	require.True(t, ok)
	assert.Equal(t, types.BaseColor, k)

	// Exact match only
	_, ok = types.ParseTextureKind("basecolor")
	assert.False(t, ok)
	_, ok = types.ParseTextureKind("Foo")
	assert.False(t, ok)
	_, ok = types.ParseTextureKind("")
	assert.False(t, ok)
}

func TestKindFilterDefaults(t *testing.T) {
	f := types.NewKindFilter()

	assert.True(t, f.Enabled(types.BaseColor))
	assert.True(t, f.Enabled(types.Metallic))
	assert.True(t, f.Enabled(types.Normal))
	assert.True(t, f.Enabled(types.Roughness))

	// Permanently excluded kinds start disabled
	assert.False(t, f.Enabled(types.Emissive))
	assert.False(t, f.Enabled(types.Height))
}

func TestKindFilterToggle(t *testing.T) {
	f := types.NewKindFilter()

	f.Disable(types.Normal)
	assert.False(t, f.Enabled(types.Normal))

	require.NoError(t, f.Enable(types.Normal))
	assert.True(t, f.Enabled(types.Normal))

	f.Toggle(types.Roughness)
	assert.False(t, f.Enabled(types.Roughness))
	f.Toggle(types.Roughness)
	assert.True(t, f.Enabled(types.Roughness))
}

func TestKindFilterUnimplementedStaysDisabled(t *testing.T) {
	f := types.NewKindFilter()

	assert.Error(t, f.Enable(types.Emissive))
	assert.Error(t, f.Enable(types.Height))
	assert.False(t, f.Enabled(types.Emissive))

	// Toggle must not sneak an unimplemented kind in either
	f.Toggle(types.Height)
	assert.False(t, f.Enabled(types.Height))
}

func TestKindFilterKindsOrder(t *testing.T) {
	f := types.NewKindFilter()
	assert.Equal(t, []types.TextureKind{
		types.BaseColor, types.Metallic, types.Normal, types.Roughness,
	}, f.Kinds())
}
