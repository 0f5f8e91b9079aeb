// Package memory implements scene.Graph as an in-memory recording.
// It backs dry runs and tests: every node, connection, and attribute
// write is kept and can be inspected afterwards.
package memory

import (
	"fmt"
	"strconv"
	"strings"

	"texwire/internal/scene"
)

// NodeRecord describes one created node.
type NodeRecord struct {
	Name  string
	Type  string
	Class scene.NodeClass
}

// Connection describes one attribute connection.
type Connection struct {
	Src   string
	Dst   string
	Force bool
}

// Graph records scene operations instead of performing them.
type Graph struct {
	nodes    []NodeRecord
	byName   map[string]NodeRecord
	conns    []Connection
	intAttrs map[string]int
	strAttrs map[string]string

	failCreates map[string]error
}

// New returns an empty recording graph.
func New() *Graph {
	return &Graph{
		byName:      make(map[string]NodeRecord),
		intAttrs:    make(map[string]int),
		strAttrs:    make(map[string]string),
		failCreates: make(map[string]error),
	}
}

// FailCreate makes the next CreateNode calls for the given requested
// name return an error. Used by tests to simulate a host refusing a
// node.
func (g *Graph) FailCreate(name string, err error) {
	g.failCreates[name] = err
}

// CreateNode records a node, uniquifying the name the way the host
// does when the requested name is taken.
func (g *Graph) CreateNode(nodeType, name string, class scene.NodeClass) (scene.Node, error) {
	if err, ok := g.failCreates[name]; ok {
		return "", err
	}
	unique := g.uniquify(name)
	rec := NodeRecord{Name: unique, Type: nodeType, Class: class}
	g.nodes = append(g.nodes, rec)
	g.byName[unique] = rec
	return scene.Node(unique), nil
}

// Connect records an attribute connection. Both endpoints must name
// nodes this graph created.
func (g *Graph) Connect(src, dst string, force bool) error {
	if err := g.checkEndpoint(src); err != nil {
		return err
	}
	if err := g.checkEndpoint(dst); err != nil {
		return err
	}
	g.conns = append(g.conns, Connection{Src: src, Dst: dst, Force: force})
	return nil
}

// SetAttr records a numeric attribute write.
func (g *Graph) SetAttr(node scene.Node, attr string, value int) error {
	if _, ok := g.byName[string(node)]; !ok {
		return fmt.Errorf("unknown node: %s", node)
	}
	g.intAttrs[node.Attr(attr)] = value
	return nil
}

// SetStringAttr records a string attribute write.
func (g *Graph) SetStringAttr(node scene.Node, attr, value string) error {
	if _, ok := g.byName[string(node)]; !ok {
		return fmt.Errorf("unknown node: %s", node)
	}
	g.strAttrs[node.Attr(attr)] = value
	return nil
}

// DefaultConnect records a default connection, inserting and returning
// a conversion node when the destination slot calls for one.
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

// Nodes returns every created node in creation order.
func (g *Graph) Nodes() []NodeRecord {
	out := make([]NodeRecord, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// NodesOfType returns the created nodes of one type, in creation order.
func (g *Graph) NodesOfType(nodeType string) []NodeRecord {
	var out []NodeRecord
	for _, n := range g.nodes {
		if n.Type == nodeType {
			out = append(out, n)
		}
	}
	return out
}

// Node returns the record for a node name.
func (g *Graph) Node(name string) (NodeRecord, bool) {
	rec, ok := g.byName[name]
	return rec, ok
}

// Connections returns every recorded connection.
func (g *Graph) Connections() []Connection {
	out := make([]Connection, len(g.conns))
	copy(out, g.conns)
	return out
}

// HasConnection reports whether src was connected to dst.
func (g *Graph) HasConnection(src, dst string) bool {
	for _, c := range g.conns {
		if c.Src == src && c.Dst == dst {
			return true
		}
	}
	return false
}

// IntAttr returns a recorded numeric attribute value.
func (g *Graph) IntAttr(node scene.Node, attr string) (int, bool) {
	v, ok := g.intAttrs[node.Attr(attr)]
	return v, ok
}

// StringAttr returns a recorded string attribute value.
func (g *Graph) StringAttr(node scene.Node, attr string) (string, bool) {
	v, ok := g.strAttrs[node.Attr(attr)]
	return v, ok
}

func (g *Graph) uniquify(name string) string {
	if _, taken := g.byName[name]; !taken {
		return name
	}
	for i := 1; ; i++ {
		candidate := name + strconv.Itoa(i)
		if _, taken := g.byName[candidate]; !taken {
			return candidate
		}
	}
}

func (g *Graph) checkEndpoint(endpoint string) error {
	node := nodePart(endpoint)
	if _, ok := g.byName[node]; !ok {
		return fmt.Errorf("unknown node in endpoint %s", endpoint)
	}
	return nil
}

func nodePart(endpoint string) string {
	if i := strings.IndexByte(endpoint, '.'); i >= 0 {
		return endpoint[:i]
	}
	return endpoint
}

func attrPart(endpoint string) string {
	if i := strings.IndexByte(endpoint, '.'); i >= 0 {
		return endpoint[i+1:]
	}
	return ""
}
