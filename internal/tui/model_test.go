package tui_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"texwire/internal/catalog"
	"texwire/internal/tui"
	"texwire/pkg/types"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func testCatalog() *types.Catalog {
	cat := types.NewCatalog()
	cat.Add("Rock", "BaseColor", "/tex/Mesh_Rock_mat_BaseColor.png")
	cat.Add("Rock", "Metallic", "/tex/Mesh_Rock_mat_Metallic.png")
	cat.Add("Wood", "BaseColor", "/tex/Mesh_Wood_mat_BaseColor.png")
	return cat
}

func newTestModel(cat *types.Catalog, build tui.BuildFunc) *tui.Model {
	return tui.New(cat, catalog.New(), "/tex", types.NewKindFilter(), build)
}

func TestToggleMaterialInclude(t *testing.T) {
	cat := testCatalog()
	m := newTestModel(cat, nil)

	m.Update(tea.KeyMsg{Type: tea.KeySpace})

	rock, _ := cat.Material("Rock")
	assert.False(t, rock.Include)

	m.Update(tea.KeyMsg{Type: tea.KeySpace})
	assert.True(t, rock.Include)
}

func TestToggleTextureInclude(t *testing.T) {
	cat := testCatalog()
	m := newTestModel(cat, nil)

	// Switch to the textures pane, move to the second texture, toggle
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m.Update(keyPress('j'))
	m.Update(tea.KeyMsg{Type: tea.KeySpace})

	rock, _ := cat.Material("Rock")
	bc, _ := rock.Texture("BaseColor")
	metal, _ := rock.Texture("Metallic")
	assert.True(t, bc.Include)
	assert.False(t, metal.Include)
}

func TestCursorClamping(t *testing.T) {
	cat := testCatalog()
	m := newTestModel(cat, nil)

	// Moving past the last material keeps the selection on it
	m.Update(keyPress('j'))
	m.Update(keyPress('j'))
	m.Update(keyPress('j'))
	m.Update(tea.KeyMsg{Type: tea.KeySpace})

	wood, _ := cat.Material("Wood")
	assert.False(t, wood.Include)

	rock, _ := cat.Material("Rock")
	assert.True(t, rock.Include)
}

func TestKindFilterNumberKeys(t *testing.T) {
	m := newTestModel(testCatalog(), nil)

	// Kinds are listed in declaration order; 2 is Metallic
	m.Update(keyPress('2'))
	assert.False(t, m.Filter().Enabled(types.Metallic))

	m.Update(keyPress('2'))
	assert.True(t, m.Filter().Enabled(types.Metallic))
}

func TestKindFilterRejectsUnimplemented(t *testing.T) {
	m := newTestModel(testCatalog(), nil)

	// Emissive is permanently excluded; toggling it only sets a status
	kinds := types.AllKinds()
	for i, k := range kinds {
		if k == types.Emissive {
			m.Update(keyPress(rune('1' + i)))
		}
	}

	assert.False(t, m.Filter().Enabled(types.Emissive))
	assert.Contains(t, m.StatusMessage(), "not supported")
}

func TestBuildConfirmFlow(t *testing.T) {
	var got *types.Catalog
	build := func(cat *types.Catalog, filter types.KindFilter) ([]types.BuildResult, error) {
		got = cat
		return []types.BuildResult{
			{Material: "Rock", Built: true, TexturesWired: 2},
			{Material: "Wood", Built: true, TexturesWired: 1},
		}, nil
	}

	cat := testCatalog()
	m := newTestModel(cat, build)

	m.Update(keyPress('b'))
	require.True(t, m.Confirming())

	m.Update(keyPress('y'))
	assert.False(t, m.Confirming())
	assert.Same(t, cat, got)
	assert.Equal(t, "built 2 materials (3 textures)", m.StatusMessage())
}

func TestBuildCancel(t *testing.T) {
	called := false
	build := func(*types.Catalog, types.KindFilter) ([]types.BuildResult, error) {
		called = true
		return nil, nil
	}

	m := newTestModel(testCatalog(), build)
	m.Update(keyPress('b'))
	m.Update(keyPress('n'))

	assert.False(t, called)
	assert.Equal(t, "build cancelled", m.StatusMessage())
}

func TestBuildErrorReported(t *testing.T) {
	build := func(*types.Catalog, types.KindFilter) ([]types.BuildResult, error) {
		return nil, fmt.Errorf("script not writable")
	}

	m := newTestModel(testCatalog(), build)
	m.Update(keyPress('b'))
	m.Update(keyPress('y'))

	assert.Contains(t, m.StatusMessage(), "build failed")
}

func TestBuildWithEmptyCatalog(t *testing.T) {
	m := newTestModel(types.NewCatalog(), nil)

	m.Update(keyPress('b'))
	assert.False(t, m.Confirming())
	assert.Equal(t, "nothing to build", m.StatusMessage())
}

func TestRescan(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Mesh_Rock_mat_BaseColor.png"), []byte("x"), 0644))

	cat := types.NewCatalog()
	m := tui.New(cat, catalog.New(), dir, types.NewKindFilter(), nil)

	m.Update(keyPress('r'))
	assert.Equal(t, 1, cat.Len())
	assert.Contains(t, m.StatusMessage(), "rescanned")
}

func TestQuit(t *testing.T) {
	m := newTestModel(testCatalog(), nil)
	_, cmd := m.Update(keyPress('q'))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestViewRendersCatalog(t *testing.T) {
	m := newTestModel(testCatalog(), nil)
	view := m.View()

	assert.Contains(t, view, "Materials")
	assert.Contains(t, view, "Textures")
	assert.Contains(t, view, "Rock")
	assert.Contains(t, view, "Wood")
	assert.Contains(t, view, "BaseColor")
}

func TestViewShowsConfirmPrompt(t *testing.T) {
	m := newTestModel(testCatalog(), nil)
	m.Update(keyPress('b'))
	assert.Contains(t, m.View(), "Build selected materials?")
}
