package key

import (
	"fmt"
	"strings"
	"unicode"
)

// Event represents a single decoded key press.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the printable character the key produced, or 0 when the
	// key produced none (special keys, shortcut chords).
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewRuneEvent creates an event for a printable character. The key
// identity is derived from the character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{
		Key:       ForRune(r),
		Rune:      r,
		Modifiers: mods,
	}
}

// NewSpecialEvent creates an event for a key with no printable
// character.
func NewSpecialEvent(key Key, mods Modifier) Event {
	return Event{
		Key:       key,
		Modifiers: mods,
	}
}

// Printable returns the printable character the key produced, if any.
func (e Event) Printable() (rune, bool) {
	if e.Rune != 0 && unicode.IsPrint(e.Rune) {
		return e.Rune, true
	}
	return 0, false
}

// Equals returns true if two events represent the same key press.
func (e Event) Equals(other Event) bool {
	return e.Key == other.Key &&
		e.Rune == other.Rune &&
		e.Modifiers == other.Modifiers
}

// String returns a canonical representation like "a", "Ctrl+A", or
// "Shift+Left".
func (e Event) String() string {
	var parts []string
	if mods := e.Modifiers.String(); mods != "" {
		parts = append(parts, mods)
	}

	if r, ok := e.Printable(); ok {
		if r == ' ' {
			parts = append(parts, "Space")
		} else {
			parts = append(parts, string(r))
		}
	} else {
		parts = append(parts, e.Key.String())
	}
	return strings.Join(parts, "+")
}

// GoString implements fmt.GoStringer for debugging.
func (e Event) GoString() string {
	return fmt.Sprintf("Event{Key: %s, Rune: %q, Modifiers: %s}",
		e.Key.String(), e.Rune, e.Modifiers.String())
}
