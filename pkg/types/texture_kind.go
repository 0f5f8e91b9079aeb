package types

// TextureKind is a semantic texture role parsed from a filename token.
// Each implemented kind maps to one shader input slot.
type TextureKind string

const (
	BaseColor TextureKind = "BaseColor"
	Metallic  TextureKind = "Metallic"
	Normal    TextureKind = "Normal"
	Roughness TextureKind = "Roughness"
	Emissive  TextureKind = "Emissive"
	Height    TextureKind = "Height"
)

// slots maps each texture kind to its shader input slot. Emissive and
// Height have no slot yet and are excluded from every build.
var slots = map[TextureKind]string{
	BaseColor: "diffuse_color",
	Metallic:  "refl_metalness",
	Normal:    "bump_input",
	Roughness: "refl_roughness",
}

// AllKinds returns every declared texture kind in a fixed order.
func AllKinds() []TextureKind {
	return []TextureKind{BaseColor, Metallic, Normal, Roughness, Emissive, Height}
}

// ParseTextureKind resolves a filename token to a texture kind by exact
// name match.
func ParseTextureKind(token string) (TextureKind, bool) {
	for _, k := range AllKinds() {
		if string(k) == token {
			return k, true
		}
	}
	return "", false
}

// Slot returns the shader input slot for this kind. The second return is
// false for kinds that have no slot mapping.
func (k TextureKind) Slot() (string, bool) {
	slot, ok := slots[k]
	return slot, ok
}

// Implemented reports whether this kind can be wired to a shader slot.
func (k TextureKind) Implemented() bool {
	_, ok := slots[k]
	return ok
}

// Raw reports whether textures of this kind carry non-color data and
// must be sampled without color management. Only BaseColor is color data.
func (k TextureKind) Raw() bool {
	return k != BaseColor
}

func (k TextureKind) String() string {
	return string(k)
}
