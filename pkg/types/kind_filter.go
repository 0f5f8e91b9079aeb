package types

import "fmt"

// KindFilter is the set of texture kinds the assembler is allowed to
// wire. It is an explicit value handed to the engine rather than process
// state, so two builds can run with different filters.
type KindFilter struct {
	enabled map[TextureKind]bool
}

// NewKindFilter returns the default filter: every implemented kind
// enabled, Emissive and Height excluded.
func NewKindFilter() KindFilter {
	f := KindFilter{enabled: make(map[TextureKind]bool)}
	for _, k := range AllKinds() {
		if k.Implemented() {
			f.enabled[k] = true
		}
	}
	return f
}

// Enable adds a kind to the filter. Kinds without a slot mapping cannot
// be enabled.
func (f KindFilter) Enable(k TextureKind) error {
	if !k.Implemented() {
		return fmt.Errorf("texture kind %s has no shader slot and cannot be enabled", k)
	}
	f.enabled[k] = true
	return nil
}

// Disable removes a kind from the filter.
func (f KindFilter) Disable(k TextureKind) {
	delete(f.enabled, k)
}

// Toggle flips a kind's enabled state. Unimplemented kinds stay disabled.
func (f KindFilter) Toggle(k TextureKind) {
	if f.Enabled(k) {
		f.Disable(k)
	} else {
		_ = f.Enable(k)
	}
}

// Enabled reports whether the assembler may wire textures of this kind.
func (f KindFilter) Enabled(k TextureKind) bool {
	return f.enabled[k]
}

// Kinds returns the enabled kinds in declaration order.
func (f KindFilter) Kinds() []TextureKind {
	var out []TextureKind
	for _, k := range AllKinds() {
		if f.enabled[k] {
			out = append(out, k)
		}
	}
	return out
}
