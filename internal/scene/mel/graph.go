// Package mel implements scene.Graph as a MEL command emitter. The
// resulting script is sourced in the host application, which then
// performs the node creation and wiring this tool planned.
package mel

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"texwire/internal/scene"
)

// Graph streams MEL commands to a writer. Node names are uniquified
// locally so the emitted script never collides with itself; collisions
// with pre-existing scene nodes are the host's to resolve.
type Graph struct {
	w    io.Writer
	used map[string]bool
}

// New returns a graph emitting MEL to w.
func New(w io.Writer) *Graph {
	return &Graph{w: w, used: make(map[string]bool)}
}

// CreateNode emits the creation command for a node. Shading groups are
// created as renderable sets; everything else goes through shadingNode
// with the flag matching its class.
func (g *Graph) CreateNode(nodeType, name string, class scene.NodeClass) (scene.Node, error) {
	unique := g.uniquify(name)

	var err error
	if class == scene.ClassShadingGroup {
		err = g.emit("sets -renderable true -noSurfaceShader true -empty -name %q;", unique)
	} else {
		err = g.emit("shadingNode %s -name %q %s;", classFlag(class), unique, nodeType)
	}
	if err != nil {
		return "", err
	}
	return scene.Node(unique), nil
}

// Connect emits a connectAttr command.
func (g *Graph) Connect(src, dst string, force bool) error {
	if force {
		return g.emit("connectAttr -force %q %q;", src, dst)
	}
	return g.emit("connectAttr %q %q;", src, dst)
}

// SetAttr emits a numeric setAttr command.
func (g *Graph) SetAttr(node scene.Node, attr string, value int) error {
	return g.emit("setAttr %q %d;", node.Attr(attr), value)
}

// SetStringAttr emits a string setAttr command.
func (g *Graph) SetStringAttr(node scene.Node, attr, value string) error {
	return g.emit("setAttr -type \"string\" %q %q;", node.Attr(attr), value)
}

// DefaultConnect emits the wiring for a default connection. Slots with
// a conversion node get the node created and wired explicitly, so the
// handle is known without querying the host's selection.
func (g *Graph) DefaultConnect(src scene.Node, dst string) (scene.Node, error) {
	attr := attrPart(dst)
	convType, needs := scene.ConversionForSlot(attr)
	if !needs {
		return "", g.Connect(src.Attr("outColor"), dst, false)
	}

	conv, err := g.CreateNode(convType, convType, scene.ClassUtility)
	if err != nil {
		return "", err
	}
	if err := g.Connect(src.Attr("outColor"), conv.Attr("input"), false); err != nil {
		return "", err
	}
	if err := g.Connect(conv.Attr("out"), dst, false); err != nil {
		return "", err
	}
	return conv, nil
}

func (g *Graph) emit(format string, args ...interface{}) error {
	if _, err := fmt.Fprintf(g.w, format+"\n", args...); err != nil {
		return fmt.Errorf("writing scene script: %w", err)
	}
	return nil
}

func (g *Graph) uniquify(name string) string {
	if !g.used[name] {
		g.used[name] = true
		return name
	}
	for i := 1; ; i++ {
		candidate := name + strconv.Itoa(i)
		if !g.used[candidate] {
			g.used[candidate] = true
			return candidate
		}
	}
}

func classFlag(class scene.NodeClass) string {
	switch class {
	case scene.ClassShader:
		return "-asShader"
	case scene.ClassTexture:
		return "-asTexture"
	default:
		return "-asUtility"
	}
}

func attrPart(endpoint string) string {
	if i := strings.IndexByte(endpoint, '.'); i >= 0 {
		return endpoint[i+1:]
	}
	return ""
}
