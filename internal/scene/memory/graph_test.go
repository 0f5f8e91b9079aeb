package memory_test

import (
	"fmt"
	"testing"

	"texwire/internal/scene"
	"texwire/internal/scene/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateNodeUniquifies(t *testing.T) {
	g := memory.New()

	first, err := g.CreateNode("file", "tex", scene.ClassTexture)
	require.NoError(t, err)
	second, err := g.CreateNode("file", "tex", scene.ClassTexture)
	require.NoError(t, err)
	third, err := g.CreateNode("file", "tex", scene.ClassTexture)
	require.NoError(t, err)

	assert.Equal(t, scene.Node("tex"), first)
	assert.Equal(t, scene.Node("tex1"), second)
	assert.Equal(t, scene.Node("tex2"), third)

	rec, ok := g.Node("tex1")
	require.True(t, ok)
	assert.Equal(t, "file", rec.Type)
	assert.Equal(t, scene.ClassTexture, rec.Class)
}

func TestConnectRejectsUnknownEndpoints(t *testing.T) {
	g := memory.New()
	node, err := g.CreateNode("file", "tex", scene.ClassTexture)
	require.NoError(t, err)

	assert.Error(t, g.Connect("ghost.outColor", node.Attr("uv"), false))
	assert.Error(t, g.Connect(node.Attr("outColor"), "ghost.input", false))

	require.NoError(t, g.Connect(node.Attr("outColor"), node.Attr("uv"), true))
	assert.True(t, g.HasConnection("tex.outColor", "tex.uv"))
}

func TestAttrRecording(t *testing.T) {
	g := memory.New()
	node, err := g.CreateNode("RedshiftMaterial", "mat", scene.ClassShader)
	require.NoError(t, err)

	require.NoError(t, g.SetAttr(node, "refl_fresnel_mode", 2))
	require.NoError(t, g.SetStringAttr(node, "notes", "hello"))

	v, ok := g.IntAttr(node, "refl_fresnel_mode")
	require.True(t, ok)
	assert.Equal(t, 2, v)

	s, ok := g.StringAttr(node, "notes")
	require.True(t, ok)
	assert.Equal(t, "hello", s)

	assert.Error(t, g.SetAttr("ghost", "x", 1))
	assert.Error(t, g.SetStringAttr("ghost", "x", "y"))
}

func TestDefaultConnectPlain(t *testing.T) {
	g := memory.New()
	file, err := g.CreateNode("file", "tex", scene.ClassTexture)
	require.NoError(t, err)
	shader, err := g.CreateNode("RedshiftMaterial", "mat", scene.ClassShader)
	require.NoError(t, err)

	conv, err := g.DefaultConnect(file, shader.Attr("diffuse_color"))
	require.NoError(t, err)

	assert.Equal(t, scene.Node(""), conv)
	assert.True(t, g.HasConnection("tex.outColor", "mat.diffuse_color"))
}

func TestDefaultConnectConversion(t *testing.T) {
	g := memory.New()
	file, err := g.CreateNode("file", "tex", scene.ClassTexture)
	require.NoError(t, err)
	shader, err := g.CreateNode("RedshiftMaterial", "mat", scene.ClassShader)
	require.NoError(t, err)

	conv, err := g.DefaultConnect(file, shader.Attr("bump_input"))
	require.NoError(t, err)

	require.Equal(t, scene.Node("RedshiftBumpMap"), conv)
	assert.True(t, g.HasConnection("tex.outColor", "RedshiftBumpMap.input"))
	assert.True(t, g.HasConnection("RedshiftBumpMap.out", "mat.bump_input"))

	rec, ok := g.Node("RedshiftBumpMap")
	require.True(t, ok)
	assert.Equal(t, scene.ClassUtility, rec.Class)
}

func TestFailCreate(t *testing.T) {
	g := memory.New()
	g.FailCreate("bad", fmt.Errorf("denied"))

	_, err := g.CreateNode("file", "bad", scene.ClassTexture)
	assert.EqualError(t, err, "denied")

	_, err = g.CreateNode("file", "good", scene.ClassTexture)
	assert.NoError(t, err)
	assert.Len(t, g.Nodes(), 1)
}
