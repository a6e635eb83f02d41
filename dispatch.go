package textinput

import (
	"runtime"

	"github.com/dshills/textinput/key"
)

// Reaction is the action the owner of a text input must take after the
// input has handled a key event.
type Reaction uint8

const (
	// Nothing indicates the event was not handled.
	Nothing Reaction = iota

	// TriggerDefaultAction asks the host to run its default action for
	// the event, e.g. submitting the enclosing form on Enter.
	TriggerDefaultAction

	// DispatchInput indicates the content may have changed and an
	// input notification should fire.
	DispatchInput

	// RedrawSelection indicates the caret or selection moved and needs
	// a redraw.
	RedrawSelection
)

// String returns a human-readable name for the reaction.
func (r Reaction) String() string {
	switch r {
	case TriggerDefaultAction:
		return "TriggerDefaultAction"
	case DispatchInput:
		return "DispatchInput"
	case RedrawSelection:
		return "RedrawSelection"
	default:
		return "Nothing"
	}
}

// Platform selects the keyboard shortcut conventions to dispatch with.
type Platform uint8

const (
	// PlatformGeneric uses Control as the primary shortcut modifier.
	PlatformGeneric Platform = iota

	// PlatformMac uses Meta (Cmd) as the primary shortcut modifier and
	// enables the Mac-specific Home/End and Ctrl-A/Ctrl-E bindings.
	PlatformMac
)

// DefaultPlatform returns the platform matching the running OS.
func DefaultPlatform() Platform {
	if runtime.GOOS == "darwin" {
		return PlatformMac
	}
	return PlatformGeneric
}

// String returns a human-readable name for the platform.
func (p Platform) String() string {
	if p == PlatformMac {
		return "mac"
	}
	return "generic"
}

// isPrimaryModifier reports whether mods carries the platform's primary
// shortcut modifier (Cmd on Mac, Ctrl elsewhere), exclusive of the
// other two non-Shift modifiers.
func (p Platform) isPrimaryModifier(mods key.Modifier) bool {
	if p == PlatformMac {
		return mods.HasMeta() && !mods.HasCtrl() && !mods.HasAlt()
	}
	return mods.HasCtrl() && !mods.HasMeta() && !mods.HasAlt()
}

// pageScrollLines is how many lines PageUp/PageDown move the caret.
const pageScrollLines = 28

// HandleKeydown processes a decoded key event and returns the action
// the host must take. Shift held during a navigation key extends the
// selection instead of collapsing it. First match wins.
func (t *TextInput) HandleKeydown(ev key.Event) Reaction {
	sel := NotSelected
	if ev.Modifiers.HasShift() {
		sel = Selected
	}

	printable, hasPrintable := ev.Printable()
	mods := ev.Modifiers
	ctrlAlt := mods.HasCtrl() && mods.HasAlt()
	mac := t.platform == PlatformMac

	switch {
	case ev.Key == key.KeyB && ctrlAlt:
		t.AdjustHorizontalByWord(DirectionBackward, sel)
		return RedrawSelection
	case ev.Key == key.KeyF && ctrlAlt:
		t.AdjustHorizontalByWord(DirectionForward, sel)
		return RedrawSelection
	case ev.Key == key.KeyA && ctrlAlt:
		t.AdjustHorizontalToLineEnd(DirectionBackward, sel)
		return RedrawSelection
	case ev.Key == key.KeyE && ctrlAlt:
		t.AdjustHorizontalToLineEnd(DirectionForward, sel)
		return RedrawSelection

	case mac && !hasPrintable && ev.Key == key.KeyA && mods == key.ModCtrl:
		t.AdjustHorizontalToLineEnd(DirectionBackward, sel)
		return RedrawSelection
	case mac && !hasPrintable && ev.Key == key.KeyE && mods == key.ModCtrl:
		t.AdjustHorizontalToLineEnd(DirectionForward, sel)
		return RedrawSelection

	case ev.Key == key.KeyA && t.platform.isPrimaryModifier(mods):
		t.SelectAll()
		return RedrawSelection
	case ev.Key == key.KeyC && t.platform.isPrimaryModifier(mods):
		if text, ok := t.SelectionText(); ok {
			t.clipboard.SetContents(text)
		}
		return DispatchInput
	case ev.Key == key.KeyV && t.platform.isPrimaryModifier(mods):
		t.InsertString(t.clipboard.Contents())
		return DispatchInput

	case hasPrintable:
		t.InsertChar(printable)
		return DispatchInput

	case ev.Key == key.KeyDelete:
		t.DeleteChar(DirectionForward)
		return DispatchInput
	case ev.Key == key.KeyBackspace:
		t.DeleteChar(DirectionBackward)
		return DispatchInput

	case mac && ev.Key == key.KeyLeft && mods.HasMeta():
		t.AdjustHorizontalToLineEnd(DirectionBackward, sel)
		return RedrawSelection
	case mac && ev.Key == key.KeyRight && mods.HasMeta():
		t.AdjustHorizontalToLineEnd(DirectionForward, sel)
		return RedrawSelection
	case mac && ev.Key == key.KeyUp && mods.HasMeta():
		t.AdjustHorizontalToLimit(DirectionBackward, sel, true)
		return RedrawSelection
	case mac && ev.Key == key.KeyDown && mods.HasMeta():
		t.AdjustHorizontalToLimit(DirectionForward, sel, true)
		return RedrawSelection

	case ev.Key == key.KeyLeft && mods.HasAlt():
		t.AdjustHorizontalByWord(DirectionBackward, sel)
		return RedrawSelection
	case ev.Key == key.KeyRight && mods.HasAlt():
		t.AdjustHorizontalByWord(DirectionForward, sel)
		return RedrawSelection

	case ev.Key == key.KeyLeft:
		t.AdjustHorizontalByOne(DirectionBackward, sel)
		return RedrawSelection
	case ev.Key == key.KeyRight:
		t.AdjustHorizontalByOne(DirectionForward, sel)
		return RedrawSelection
	case ev.Key == key.KeyUp:
		t.AdjustVertical(-1, sel)
		return RedrawSelection
	case ev.Key == key.KeyDown:
		t.AdjustVertical(1, sel)
		return RedrawSelection

	case ev.Key == key.KeyEnter || ev.Key == key.KeyKPEnter:
		return t.HandleReturn()

	case ev.Key == key.KeyHome:
		if !mac {
			t.AdjustHorizontalToLineEnd(DirectionBackward, sel)
		}
		return RedrawSelection
	case ev.Key == key.KeyEnd:
		if !mac {
			t.AdjustHorizontalToLineEnd(DirectionForward, sel)
		}
		return RedrawSelection

	case ev.Key == key.KeyPageUp:
		t.AdjustVertical(-pageScrollLines, sel)
		return RedrawSelection
	case ev.Key == key.KeyPageDown:
		t.AdjustVertical(pageScrollLines, sel)
		return RedrawSelection
	}

	return Nothing
}
