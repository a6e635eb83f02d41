package key

import "fmt"

// Key identifies a keyboard key independent of the character it may
// produce. Letter identities exist only for keys the dispatch table
// matches by identity under modifiers; any other character key uses
// KeyRune with the character in Event.Rune.
type Key uint16

const (
	// KeyNone represents no key.
	KeyNone Key = iota

	// Editing and navigation keys
	KeyEnter
	KeyKPEnter
	KeyBackspace
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Letter identities used by shortcut bindings
	KeyA
	KeyB
	KeyC
	KeyE
	KeyF
	KeyV

	// KeyRune is used for character keys without a dedicated identity.
	// The character is stored in Event.Rune.
	KeyRune
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyEnter:
		return "Enter"
	case KeyKPEnter:
		return "KPEnter"
	case KeyBackspace:
		return "Backspace"
	case KeyDelete:
		return "Delete"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	case KeyPageUp:
		return "PageUp"
	case KeyPageDown:
		return "PageDown"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyA:
		return "A"
	case KeyB:
		return "B"
	case KeyC:
		return "C"
	case KeyE:
		return "E"
	case KeyF:
		return "F"
	case KeyV:
		return "V"
	case KeyRune:
		return "Rune"
	default:
		return fmt.Sprintf("Key(%d)", k)
	}
}

// IsArrowKey returns true if this is an arrow key.
func (k Key) IsArrowKey() bool {
	return k >= KeyUp && k <= KeyRight
}

// IsNavigationKey returns true if this is a navigation key.
func (k Key) IsNavigationKey() bool {
	return k.IsArrowKey() || k == KeyHome || k == KeyEnd || k == KeyPageUp || k == KeyPageDown
}

// IsLetter returns true if this is a letter identity.
func (k Key) IsLetter() bool {
	return k >= KeyA && k <= KeyV
}

// ForRune returns the key identity for a character: one of the letter
// identities for the letters shortcut bindings care about, KeyRune for
// everything else.
func ForRune(r rune) Key {
	switch r {
	case 'a', 'A':
		return KeyA
	case 'b', 'B':
		return KeyB
	case 'c', 'C':
		return KeyC
	case 'e', 'E':
		return KeyE
	case 'f', 'F':
		return KeyF
	case 'v', 'V':
		return KeyV
	default:
		return KeyRune
	}
}
