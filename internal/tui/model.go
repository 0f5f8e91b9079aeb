// Package tui is the interactive material picker: a two-pane view of
// the scanned catalog where include flags and the kind filter are
// toggled before a build.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"texwire/internal/catalog"
	"texwire/pkg/types"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type pane int

const (
	materialsPane pane = iota
	texturesPane
)

// BuildFunc runs the assembly for the current catalog and filter. The
// TUI stays host-agnostic; the command layer decides where the build
// goes (script file, dry run).
type BuildFunc func(cat *types.Catalog, filter types.KindFilter) ([]types.BuildResult, error)

// Model is the bubbletea model for the picker.
type Model struct {
	catalog *types.Catalog
	scanner *catalog.Scanner
	dir     string
	filter  types.KindFilter
	build   BuildFunc

	pane       pane
	matCursor  int
	texCursor  int
	confirming bool
	statusMsg  string
	statusErr  bool

	keys keyMap
	help help.Model
}

// New creates a picker over an already scanned catalog.
func New(cat *types.Catalog, scanner *catalog.Scanner, dir string, filter types.KindFilter, build BuildFunc) *Model {
	return &Model{
		catalog: cat,
		scanner: scanner,
		dir:     dir,
		filter:  filter,
		build:   build,
		keys:    defaultKeyMap(),
		help:    help.New(),
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.confirming {
			return m.handleConfirmKeys(msg)
		}
		return m.handleKeys(msg)
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m *Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Switch):
		if m.pane == materialsPane {
			m.pane = texturesPane
			m.texCursor = 0
		} else {
			m.pane = materialsPane
		}

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)

	case key.Matches(msg, m.keys.Toggle):
		m.toggleInclude()

	case key.Matches(msg, m.keys.Rescan):
		if err := m.scanner.ScanInto(m.dir, m.catalog); err != nil {
			m.setStatus(fmt.Sprintf("rescan failed: %v", err), true)
		} else {
			m.setStatus(fmt.Sprintf("rescanned %s: %d materials", m.dir, m.catalog.Len()), false)
		}

	case key.Matches(msg, m.keys.Build):
		if m.catalog.Len() == 0 {
			m.setStatus("nothing to build", true)
		} else {
			m.confirming = true
		}

	default:
		// Number keys toggle the kind filter row
		if n, err := strconv.Atoi(msg.String()); err == nil {
			kinds := types.AllKinds()
			if n >= 1 && n <= len(kinds) {
				m.toggleKind(kinds[n-1])
			}
		}
	}
	return m, nil
}

func (m *Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		m.confirming = false
		m.runBuild()
	case "n", "N", "esc", "q":
		m.confirming = false
		m.setStatus("build cancelled", false)
	}
	return m, nil
}

func (m *Model) runBuild() {
	results, err := m.build(m.catalog, m.filter)
	if err != nil {
		m.setStatus(fmt.Sprintf("build failed: %v", err), true)
		return
	}
	built, wired, failed := 0, 0, 0
	for _, r := range results {
		if r.Built {
			built++
		}
		if r.Error != nil {
			failed++
		}
		wired += r.TexturesWired
	}
	if failed > 0 {
		m.setStatus(fmt.Sprintf("built %d materials (%d textures), %d failed", built, wired, failed), true)
	} else {
		m.setStatus(fmt.Sprintf("built %d materials (%d textures)", built, wired), false)
	}
}

func (m *Model) moveCursor(delta int) {
	if m.pane == materialsPane {
		m.matCursor = clamp(m.matCursor+delta, 0, m.catalog.Len()-1)
		m.texCursor = 0
		return
	}
	if mat, ok := m.selectedMaterial(); ok {
		m.texCursor = clamp(m.texCursor+delta, 0, mat.Len()-1)
	}
}

func (m *Model) toggleInclude() {
	mat, ok := m.selectedMaterial()
	if !ok {
		return
	}
	if m.pane == materialsPane {
		mat.Include = !mat.Include
		return
	}
	tokens := mat.Tokens()
	if m.texCursor < len(tokens) {
		if tex, ok := mat.Texture(tokens[m.texCursor]); ok {
			tex.Include = !tex.Include
		}
	}
}

func (m *Model) toggleKind(k types.TextureKind) {
	if !k.Implemented() {
		m.setStatus(fmt.Sprintf("%s textures are not supported", k), true)
		return
	}
	m.filter.Toggle(k)
}

func (m *Model) selectedMaterial() (*types.MaterialEntry, bool) {
	names := m.catalog.Names()
	if m.matCursor >= len(names) {
		return nil, false
	}
	return m.catalog.Material(names[m.matCursor])
}

func (m *Model) setStatus(msg string, isErr bool) {
	m.statusMsg = msg
	m.statusErr = isErr
}

// View implements tea.Model
func (m *Model) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("texwire: "+m.dir) + "\n\n")
	sb.WriteString(m.renderKindFilter() + "\n\n")

	panes := lipgloss.JoinHorizontal(lipgloss.Top, m.renderMaterials(), m.renderTextures())
	sb.WriteString(panes + "\n")

	if m.confirming {
		sb.WriteString(titleStyle.Render("Build selected materials? (y/n)") + "\n")
	} else if m.statusMsg != "" {
		style := statusStyle
		if m.statusErr {
			style = errorStyle
		}
		sb.WriteString(style.Render(m.statusMsg) + "\n")
	}

	sb.WriteString(m.help.View(m.keys))
	return appStyle.Render(sb.String())
}

func (m *Model) renderKindFilter() string {
	var cells []string
	for i, k := range types.AllKinds() {
		label := fmt.Sprintf("%d %s", i+1, k)
		switch {
		case !k.Implemented():
			cells = append(cells, kindDisabledStyle.Render(label))
		case m.filter.Enabled(k):
			cells = append(cells, kindOnStyle.Render(label))
		default:
			cells = append(cells, kindOffStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (m *Model) renderMaterials() string {
	var sb strings.Builder
	sb.WriteString(paneTitleStyle.Render("Materials") + "\n")

	names := m.catalog.Names()
	if len(names) == 0 {
		sb.WriteString(statusStyle.Render("(folder has no matching textures)"))
	}
	for i, name := range names {
		mat, _ := m.catalog.Material(name)
		line := checkbox(mat.Include) + " " + name
		if i == m.matCursor && m.pane == materialsPane {
			line = selectedStyle.Render(line)
		} else if !mat.Include {
			line = excludedStyle.Render(line)
		}
		sb.WriteString(line + "\n")
	}

	style := paneStyle
	if m.pane == materialsPane {
		style = activePaneStyle
	}
	return style.Width(32).Render(sb.String())
}

func (m *Model) renderTextures() string {
	var sb strings.Builder
	sb.WriteString(paneTitleStyle.Render("Textures") + "\n")

	if mat, ok := m.selectedMaterial(); ok {
		for i, token := range mat.Tokens() {
			tex, _ := mat.Texture(token)
			label := token
			if _, known := types.ParseTextureKind(token); !known {
				label = unknownStyle.Render(token + " (unknown)")
			}
			line := checkbox(tex.Include) + " " + label
			if i == m.texCursor && m.pane == texturesPane {
				line = selectedStyle.Render(line)
			} else if !tex.Include {
				line = excludedStyle.Render(line)
			}
			sb.WriteString(line + "\n")
		}
	}

	style := paneStyle
	if m.pane == texturesPane {
		style = activePaneStyle
	}
	return style.Width(32).Render(sb.String())
}

func checkbox(on bool) string {
	if on {
		return includedStyle.Render("[x]")
	}
	return excludedStyle.Render("[ ]")
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Catalog returns the catalog the picker is editing.
func (m *Model) Catalog() *types.Catalog {
	return m.catalog
}

// Filter returns the active kind filter.
func (m *Model) Filter() types.KindFilter {
	return m.filter
}

// Confirming reports whether the build confirmation prompt is showing.
func (m *Model) Confirming() bool {
	return m.confirming
}

// StatusMessage returns the current status line.
func (m *Model) StatusMessage() string {
	return m.statusMsg
}
