package key

import "strings"

// Modifier is a bit-set of the modifier keys held during a key press.
type Modifier uint8

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModShift indicates the Shift key.
	ModShift Modifier = 1 << iota

	// ModCtrl indicates the Control key.
	ModCtrl

	// ModAlt indicates the Alt key (Option on macOS).
	ModAlt

	// ModMeta indicates the Meta key (Cmd on macOS, Super elsewhere).
	ModMeta
)

// modifierNames fixes the display order of String.
var modifierNames = []struct {
	bit  Modifier
	name string
}{
	{ModCtrl, "Ctrl"},
	{ModAlt, "Alt"},
	{ModShift, "Shift"},
	{ModMeta, "Meta"},
}

// Has returns true if m contains mod.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// HasShift returns true if Shift is held.
func (m Modifier) HasShift() bool {
	return m.Has(ModShift)
}

// HasCtrl returns true if Control is held.
func (m Modifier) HasCtrl() bool {
	return m.Has(ModCtrl)
}

// HasAlt returns true if Alt is held.
func (m Modifier) HasAlt() bool {
	return m.Has(ModAlt)
}

// HasMeta returns true if Meta is held.
func (m Modifier) HasMeta() bool {
	return m.Has(ModMeta)
}

// With returns m with mod added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// String renders the held modifiers joined by "+", e.g. "Ctrl+Alt".
// Empty for ModNone.
func (m Modifier) String() string {
	if m == ModNone {
		return ""
	}
	parts := make([]string, 0, 4)
	for _, mn := range modifierNames {
		if m.Has(mn.bit) {
			parts = append(parts, mn.name)
		}
	}
	return strings.Join(parts, "+")
}
