package mel_test

import (
	"bytes"
	"strings"
	"testing"

	"texwire/internal/scene"
	"texwire/internal/scene/mel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateNodeCommands(t *testing.T) {
	var buf bytes.Buffer
	g := mel.New(&buf)

	_, err := g.CreateNode("RedshiftMaterial", "Rock", scene.ClassShader)
	require.NoError(t, err)
	_, err = g.CreateNode("file", "Rock_BaseColor_file", scene.ClassTexture)
	require.NoError(t, err)
	_, err = g.CreateNode("place2dTexture", "Rock_BaseColor_texture", scene.ClassUtility)
	require.NoError(t, err)
	_, err = g.CreateNode("shadingEngine", "rsMaterial_Rock", scene.ClassShadingGroup)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, `shadingNode -asShader -name "Rock" RedshiftMaterial;`, lines[0])
	assert.Equal(t, `shadingNode -asTexture -name "Rock_BaseColor_file" file;`, lines[1])
	assert.Equal(t, `shadingNode -asUtility -name "Rock_BaseColor_texture" place2dTexture;`, lines[2])
	assert.Equal(t, `sets -renderable true -noSurfaceShader true -empty -name "rsMaterial_Rock";`, lines[3])
}

func TestCreateNodeUniquifiesLocally(t *testing.T) {
	var buf bytes.Buffer
	g := mel.New(&buf)

	first, err := g.CreateNode("RedshiftMaterial", "Rock", scene.ClassShader)
	require.NoError(t, err)
	second, err := g.CreateNode("RedshiftMaterial", "Rock", scene.ClassShader)
	require.NoError(t, err)

	assert.Equal(t, scene.Node("Rock"), first)
	assert.Equal(t, scene.Node("Rock1"), second)
	assert.Contains(t, buf.String(), `-name "Rock1"`)
}

func TestConnectCommands(t *testing.T) {
	var buf bytes.Buffer
	g := mel.New(&buf)

	require.NoError(t, g.Connect("a.outColor", "b.diffuse_color", false))
	require.NoError(t, g.Connect("p.coverage", "f.coverage", true))

	out := buf.String()
	assert.Contains(t, out, `connectAttr "a.outColor" "b.diffuse_color";`)
	assert.Contains(t, out, `connectAttr -force "p.coverage" "f.coverage";`)
}

func TestSetAttrCommands(t *testing.T) {
	var buf bytes.Buffer
	g := mel.New(&buf)

	require.NoError(t, g.SetAttr("Rock", "refl_fresnel_mode", 2))
	require.NoError(t, g.SetStringAttr("tex", "fileTextureName", "/tex/a.png"))

	out := buf.String()
	assert.Contains(t, out, `setAttr "Rock.refl_fresnel_mode" 2;`)
	assert.Contains(t, out, `setAttr -type "string" "tex.fileTextureName" "/tex/a.png";`)
}

func TestDefaultConnectEmitsConversion(t *testing.T) {
	var buf bytes.Buffer
	g := mel.New(&buf)

	conv, err := g.DefaultConnect("tex", "Rock.bump_input")
	require.NoError(t, err)
	require.Equal(t, scene.Node("RedshiftBumpMap"), conv)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, `shadingNode -asUtility -name "RedshiftBumpMap" RedshiftBumpMap;`, lines[0])
	assert.Equal(t, `connectAttr "tex.outColor" "RedshiftBumpMap.input";`, lines[1])
	assert.Equal(t, `connectAttr "RedshiftBumpMap.out" "Rock.bump_input";`, lines[2])
}

func TestDefaultConnectPlainSlot(t *testing.T) {
	var buf bytes.Buffer
	g := mel.New(&buf)

	conv, err := g.DefaultConnect("tex", "Rock.diffuse_color")
	require.NoError(t, err)
	assert.Equal(t, scene.Node(""), conv)
	assert.Equal(t, "connectAttr \"tex.outColor\" \"Rock.diffuse_color\";\n", buf.String())
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, assert.AnError
}

func TestWriteErrorsPropagate(t *testing.T) {
	g := mel.New(failWriter{})

	_, err := g.CreateNode("file", "tex", scene.ClassTexture)
	assert.Error(t, err)
	assert.Error(t, g.Connect("a.x", "b.y", false))
	assert.Error(t, g.SetAttr("n", "a", 1))
}
