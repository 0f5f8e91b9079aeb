// Package assemble materializes catalog materials as shader networks
// by driving the scene-graph capability.
package assemble

import (
	"texwire/internal/config"
	"texwire/internal/errors"
	"texwire/internal/log"
	"texwire/internal/scene"
	"texwire/pkg/types"
)

// symmetricBinds are the place2d attributes connected to the file node
// attribute of the same name.
var symmetricBinds = []string{
	"coverage", "wrapU", "mirrorU", "mirrorV",
	"vertexUvOne", "vertexCameraOne", "rotateFrame", "offset",
	"repeatUV", "wrapV", "noiseUV", "stagger",
	"vertexUvTwo", "translateFrame", "vertexUvThree", "rotateUV",
}

// uniqueBinds are the place2d attributes whose file node counterpart
// has a different name.
var uniqueBinds = [][2]string{
	{"outUV", "uv"},
	{"outUvFilterSize", "uvFilterSize"},
}

// Fixup constants applied after slot connections.
const (
	// bumpInputTangentSpace selects tangent-space normals on the bump
	// conversion node.
	bumpInputTangentSpace = 1
	// fresnelModeMetalness switches the shader's fresnel handling to
	// use the metalness input.
	fresnelModeMetalness = 2
)

// Engine assembles shader networks from a catalog.
type Engine struct {
	graph  scene.Graph
	cfg    *config.Config
	filter types.KindFilter
}

// New creates an engine with default configuration.
func New(g scene.Graph) *Engine {
	return NewWithConfig(g, config.New())
}

// NewWithConfig creates an engine using cfg's node types and kind
// filter.
func NewWithConfig(g scene.Graph, cfg *config.Config) *Engine {
	return &Engine{
		graph:  g,
		cfg:    cfg,
		filter: cfg.KindFilter(),
	}
}

// SetFilter replaces the active texture-kind filter.
func (e *Engine) SetFilter(f types.KindFilter) {
	e.filter = f
}

// Filter returns the active texture-kind filter.
func (e *Engine) Filter() types.KindFilter {
	return e.filter
}

// BuildAll assembles every material in the catalog whose include flag
// is set, in catalog order. One material's failure never stops the
// rest; each result carries its own error.
func (e *Engine) BuildAll(cat *types.Catalog) []types.BuildResult {
	var results []types.BuildResult
	for _, name := range cat.Names() {
		mat, _ := cat.Material(name)
		if !mat.Include {
			continue
		}
		result, err := e.BuildMaterial(cat, name)
		if err != nil {
			log.Errorf("building material %s: %v", name, err)
		}
		results = append(results, result)
	}
	return results
}

// BuildMaterial creates one shader node plus shading group and wires
// every included texture of the named material to its shader slot.
// Calling it twice creates two independent networks; nothing is
// deduplicated.
func (e *Engine) BuildMaterial(cat *types.Catalog, name string) (types.BuildResult, error) {
	result := types.BuildResult{Material: name}

	mat, ok := cat.Material(name)
	if !ok {
		err := errors.NewSceneError("material not in catalog", errors.MaterialNotFound, nil).WithNode(name)
		result.Error = err
		return result, err
	}

	shader, err := e.graph.CreateNode(e.cfg.Shader.NodeType, name, scene.ClassShader)
	if err != nil {
		result.Error = errors.NewSceneError("creating shader node", errors.NodeCreateFailed, err).WithNode(name)
		return result, result.Error
	}

	group, err := e.graph.CreateNode("shadingEngine", e.cfg.Shader.GroupPrefix+string(shader), scene.ClassShadingGroup)
	if err != nil {
		result.Error = errors.NewSceneError("creating shading group", errors.NodeCreateFailed, err).WithNode(string(shader))
		return result, result.Error
	}
	if err := e.graph.Connect(shader.Attr("outColor"), group.Attr("surfaceShader"), false); err != nil {
		result.Error = errors.NewSceneError("binding shading group", errors.ConnectFailed, err).WithNode(string(group))
		return result, result.Error
	}

	for _, token := range mat.Tokens() {
		tex, _ := mat.Texture(token)
		if !tex.Include {
			continue
		}

		kind, known := types.ParseTextureKind(token)
		if !known {
			diag := errors.NewTextureError("texture type is not supported", name, token, tex.Path, errors.UnknownTextureKind)
			log.Warnf("%v", diag)
			result.SkippedTokens = append(result.SkippedTokens, token)
			continue
		}
		if !e.filter.Enabled(kind) {
			continue
		}

		if err := e.wireTexture(shader, name, kind, tex.Path); err != nil {
			result.Error = err
			return result, err
		}
		result.TexturesWired++
	}

	result.Built = true
	return result, nil
}

// wireTexture creates the sampling and coordinate nodes for one
// texture and connects them to the shader's slot for its kind.
func (e *Engine) wireTexture(shader scene.Node, material string, kind types.TextureKind, path string) error {
	base := material + "_" + string(kind)

	file, _, err := e.createTextureNodes(base, path, kind.Raw())
	if err != nil {
		return err
	}

	slot, _ := kind.Slot()
	intermediate, err := e.graph.DefaultConnect(file, shader.Attr(slot))
	if err != nil {
		return errors.NewSceneError("connecting texture to shader", errors.ConnectFailed, err).WithNode(string(file)).WithOp("defaultConnect")
	}

	switch kind {
	case types.Normal:
		if intermediate != "" {
			if err := e.graph.SetAttr(intermediate, "inputType", bumpInputTangentSpace); err != nil {
				return errors.NewSceneError("setting bump input type", errors.AttrSetFailed, err).WithNode(string(intermediate))
			}
		}
	case types.Metallic:
		if err := e.graph.SetAttr(shader, "refl_fresnel_mode", fresnelModeMetalness); err != nil {
			return errors.NewSceneError("setting fresnel mode", errors.AttrSetFailed, err).WithNode(string(shader))
		}
	}

	return nil
}

// createTextureNodes creates a file node plus its 2D placement node
// and binds the standard UV attribute pairs between them.
func (e *Engine) createTextureNodes(name, path string, raw bool) (file, place scene.Node, err error) {
	file, err = e.graph.CreateNode(e.cfg.Shader.FileNodeType, name+"_file", scene.ClassTexture)
	if err != nil {
		return "", "", errors.NewSceneError("creating file node", errors.NodeCreateFailed, err).WithNode(name)
	}
	place, err = e.graph.CreateNode(e.cfg.Shader.PlaceNodeType, name+"_texture", scene.ClassUtility)
	if err != nil {
		return "", "", errors.NewSceneError("creating placement node", errors.NodeCreateFailed, err).WithNode(name)
	}

	for _, attr := range symmetricBinds {
		if err := e.graph.Connect(place.Attr(attr), file.Attr(attr), true); err != nil {
			return "", "", errors.NewSceneError("binding placement attribute", errors.ConnectFailed, err).WithNode(string(place)).WithOp(attr)
		}
	}
	for _, pair := range uniqueBinds {
		if err := e.graph.Connect(place.Attr(pair[0]), file.Attr(pair[1]), false); err != nil {
			return "", "", errors.NewSceneError("binding placement attribute", errors.ConnectFailed, err).WithNode(string(place)).WithOp(pair[0])
		}
	}

	if err := e.graph.SetStringAttr(file, "fileTextureName", path); err != nil {
		return "", "", errors.NewSceneError("setting texture path", errors.AttrSetFailed, err).WithNode(string(file))
	}
	if raw {
		if err := e.graph.SetStringAttr(file, "colorSpace", e.cfg.Shader.RawColorSpace); err != nil {
			return "", "", errors.NewSceneError("setting colorspace", errors.AttrSetFailed, err).WithNode(string(file))
		}
	}

	return file, place, nil
}
