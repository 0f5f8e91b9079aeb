// Package scene defines the scene-graph capability the assembler
// drives. The host application owns the real graph; implementations
// either record operations in memory or emit a script the host runs.
package scene

// Node is a handle to a node in the scene graph. Handles are the
// node's unique name, the way the host addresses them.
type Node string

// Attr returns the "node.attribute" form of an attribute on this node.
func (n Node) Attr(name string) string {
	return string(n) + "." + name
}

// NodeClass tells the graph what role a new node plays, mirroring the
// host's shading-node classification flags.
type NodeClass int

const (
	ClassShader NodeClass = iota
	ClassTexture
	ClassUtility
	ClassShadingGroup
)

func (c NodeClass) String() string {
	switch c {
	case ClassShader:
		return "shader"
	case ClassTexture:
		return "texture"
	case ClassUtility:
		return "utility"
	case ClassShadingGroup:
		return "shadingGroup"
	}
	return "unknown"
}

// Graph is the capability interface over the host's scene graph.
//
// DefaultConnect mirrors the host's default-connection heuristic,
// which may create an intermediate conversion node between the source
// and the destination slot. Any such node is returned directly, so
// callers never have to query the host's selection to find it.
type Graph interface {
	// CreateNode creates a node of the given type. The returned handle
	// may differ from the requested name if the graph had to uniquify it.
	CreateNode(nodeType, name string, class NodeClass) (Node, error)

	// Connect wires src to dst, both in "node.attribute" form.
	Connect(src, dst string, force bool) error

	// SetAttr sets a numeric attribute on a node.
	SetAttr(node Node, attr string, value int) error

	// SetStringAttr sets a string attribute on a node.
	SetStringAttr(node Node, attr, value string) error

	// DefaultConnect connects a node's primary output to a destination
	// attribute in "node.attribute" form, inserting a conversion node
	// when the slot calls for one. Returns the conversion node handle,
	// or "" when the connection was direct.
	DefaultConnect(src Node, dst string) (Node, error)
}

// conversions maps destination slots to the conversion node type the
// host auto-inserts on a default connection. Bump slots take the file
// output through a bump-mapping node.
var conversions = map[string]string{
	"bump_input": "RedshiftBumpMap",
}

// ConversionForSlot returns the conversion node type a default
// connection to this attribute inserts, if any.
func ConversionForSlot(attr string) (string, bool) {
	t, ok := conversions[attr]
	return t, ok
}
