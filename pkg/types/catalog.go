package types

import "encoding/json"

// TextureEntry is one texture file found for a material. The include
// flag is toggled by the user before a build.
type TextureEntry struct {
	Path    string `json:"path"`
	Include bool   `json:"include"`
}

// MaterialEntry groups the textures parsed for one material name. Token
// insertion order is preserved so builds are reproducible.
type MaterialEntry struct {
	Include  bool
	textures map[string]*TextureEntry
	order    []string
}

// Add records a texture under its filename token. The first write for a
// token wins; later writes for the same token are ignored.
func (m *MaterialEntry) Add(token, path string) bool {
	if _, exists := m.textures[token]; exists {
		return false
	}
	m.textures[token] = &TextureEntry{Path: path, Include: true}
	m.order = append(m.order, token)
	return true
}

// Texture returns the entry recorded for a token.
func (m *MaterialEntry) Texture(token string) (*TextureEntry, bool) {
	e, ok := m.textures[token]
	return e, ok
}

// Tokens returns the texture tokens in insertion order.
func (m *MaterialEntry) Tokens() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// Len returns the number of textures recorded for this material.
func (m *MaterialEntry) Len() int {
	return len(m.order)
}

// SkippedFile records a directory entry the scanner could not parse.
type SkippedFile struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// Catalog is the in-memory result of scanning one export folder:
// material name -> its textures, plus the files that failed the naming
// schema. It lives for one session and is never persisted.
type Catalog struct {
	materials map[string]*MaterialEntry
	order     []string
	skipped   []SkippedFile
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{materials: make(map[string]*MaterialEntry)}
}

// Add records a texture file under (material, token). Creates the
// material entry on first sight; existing texture entries are never
// overwritten.
func (c *Catalog) Add(material, token, path string) {
	entry, ok := c.materials[material]
	if !ok {
		entry = &MaterialEntry{Include: true, textures: make(map[string]*TextureEntry)}
		c.materials[material] = entry
		c.order = append(c.order, material)
	}
	entry.Add(token, path)
}

// Material returns the entry for a material name.
func (c *Catalog) Material(name string) (*MaterialEntry, bool) {
	e, ok := c.materials[name]
	return e, ok
}

// Names returns the material names in insertion order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Len returns the number of materials in the catalog.
func (c *Catalog) Len() int {
	return len(c.order)
}

// AddSkipped records a file the scanner rejected.
func (c *Catalog) AddSkipped(name, reason string) {
	c.skipped = append(c.skipped, SkippedFile{Name: name, Reason: reason})
}

// Skipped returns the files rejected during scanning.
func (c *Catalog) Skipped() []SkippedFile {
	return c.skipped
}

type materialJSON struct {
	Include  bool                     `json:"include"`
	Textures map[string]*TextureEntry `json:"textures"`
}

// ToJSON renders the catalog as indented JSON with sorted keys.
func (c *Catalog) ToJSON() (string, error) {
	out := make(map[string]materialJSON, len(c.materials))
	for name, m := range c.materials {
		out[name] = materialJSON{Include: m.Include, Textures: m.textures}
	}
	data, err := json.MarshalIndent(out, "", "    ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
