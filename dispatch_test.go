package textinput

import (
	"testing"

	"github.com/dshills/textinput/clipboard"
	"github.com/dshills/textinput/key"
)

// Printable input and editing keys

func TestKeydownPrintableInserts(t *testing.T) {
	in := newTestInput(LinesSingle, "ab")
	in.editPoint = TextPoint{Line: 0, Index: 2}

	if got := in.HandleKeydown(key.NewRuneEvent('c', key.ModNone)); got != DispatchInput {
		t.Errorf("reaction = %v, want DispatchInput", got)
	}
	if in.Content() != "abc" {
		t.Errorf("content = %q, want %q", in.Content(), "abc")
	}
}

func TestKeydownShiftedPrintableInserts(t *testing.T) {
	in := newTestInput(LinesSingle, "")
	in.HandleKeydown(key.NewRuneEvent('C', key.ModShift))
	if in.Content() != "C" {
		t.Errorf("content = %q, want %q", in.Content(), "C")
	}
}

func TestKeydownBackspaceAndDelete(t *testing.T) {
	in := newTestInput(LinesSingle, "abc")
	in.editPoint = TextPoint{Line: 0, Index: 2}

	if got := in.HandleKeydown(key.NewSpecialEvent(key.KeyBackspace, key.ModNone)); got != DispatchInput {
		t.Errorf("reaction = %v, want DispatchInput", got)
	}
	if in.Content() != "ac" {
		t.Errorf("content = %q, want %q", in.Content(), "ac")
	}

	if got := in.HandleKeydown(key.NewSpecialEvent(key.KeyDelete, key.ModNone)); got != DispatchInput {
		t.Errorf("reaction = %v, want DispatchInput", got)
	}
	if in.Content() != "a" {
		t.Errorf("content = %q, want %q", in.Content(), "a")
	}
}

func TestKeydownEnter(t *testing.T) {
	single := newTestInput(LinesSingle, "ab")
	if got := single.HandleKeydown(key.NewSpecialEvent(key.KeyEnter, key.ModNone)); got != TriggerDefaultAction {
		t.Errorf("single-line reaction = %v, want TriggerDefaultAction", got)
	}

	multi := newTestInput(LinesMultiple, "ab")
	if got := multi.HandleKeydown(key.NewSpecialEvent(key.KeyKPEnter, key.ModNone)); got != DispatchInput {
		t.Errorf("multiline reaction = %v, want DispatchInput", got)
	}
	if multi.Content() != "\nab" {
		t.Errorf("content = %q, want %q", multi.Content(), "\nab")
	}
}

// Clipboard shortcuts

func TestKeydownSelectAll(t *testing.T) {
	in := newTestInput(LinesSingle, "abcdef")
	if got := in.HandleKeydown(key.NewSpecialEvent(key.KeyA, key.ModCtrl)); got != RedrawSelection {
		t.Errorf("reaction = %v, want RedrawSelection", got)
	}
	if got := in.SortedSelectionOffsetsRange(); got != (Range{Start: 0, End: 6}) {
		t.Errorf("selection = %v, want [0, 6)", got)
	}
}

func TestKeydownCopyWritesClipboard(t *testing.T) {
	clip := clipboard.NewMemory("")
	in := New(LinesSingle, "hello world", clip, WithPlatform(PlatformGeneric))
	in.SetSelectionRange(0, 5, SelectionDirectionForward)

	if got := in.HandleKeydown(key.NewSpecialEvent(key.KeyC, key.ModCtrl)); got != DispatchInput {
		t.Errorf("reaction = %v, want DispatchInput", got)
	}
	if clip.Contents() != "hello" {
		t.Errorf("clipboard = %q, want %q", clip.Contents(), "hello")
	}
}

func TestKeydownCopyWithoutSelectionLeavesClipboard(t *testing.T) {
	clip := clipboard.NewMemory("keep")
	in := New(LinesSingle, "hello", clip, WithPlatform(PlatformGeneric))

	in.HandleKeydown(key.NewSpecialEvent(key.KeyC, key.ModCtrl))
	if clip.Contents() != "keep" {
		t.Errorf("clipboard = %q, want %q", clip.Contents(), "keep")
	}
}

func TestKeydownPasteInserts(t *testing.T) {
	clip := clipboard.NewMemory("abc")
	in := New(LinesSingle, "xy", clip, WithPlatform(PlatformGeneric))
	in.editPoint = TextPoint{Line: 0, Index: 1}

	if got := in.HandleKeydown(key.NewSpecialEvent(key.KeyV, key.ModCtrl)); got != DispatchInput {
		t.Errorf("reaction = %v, want DispatchInput", got)
	}
	if in.Content() != "xabcy" {
		t.Errorf("content = %q, want %q", in.Content(), "xabcy")
	}
}

func TestKeydownPrimaryModifierIsExclusive(t *testing.T) {
	// Ctrl+Alt+C is not a copy chord; with no other binding it must
	// fall through to Nothing.
	in := newTestInput(LinesSingle, "ab")
	in.SetSelectionRange(0, 2, SelectionDirectionForward)
	if got := in.HandleKeydown(key.NewSpecialEvent(key.KeyC, key.ModCtrl|key.ModAlt)); got != Nothing {
		t.Errorf("reaction = %v, want Nothing", got)
	}
}

func TestKeydownMacUsesMetaAsPrimary(t *testing.T) {
	clip := clipboard.NewMemory("")
	in := New(LinesSingle, "hello", clip, WithPlatform(PlatformMac))
	in.SetSelectionRange(0, 5, SelectionDirectionForward)

	// Ctrl+C is not the primary chord on Mac.
	in.HandleKeydown(key.NewSpecialEvent(key.KeyC, key.ModCtrl))
	if clip.Contents() != "" {
		t.Errorf("Ctrl+C copied on Mac: %q", clip.Contents())
	}

	in.SetSelectionRange(0, 5, SelectionDirectionForward)
	in.HandleKeydown(key.NewSpecialEvent(key.KeyC, key.ModMeta))
	if clip.Contents() != "hello" {
		t.Errorf("clipboard = %q, want %q", clip.Contents(), "hello")
	}
}

// Navigation keys

func TestKeydownArrowsMoveCaret(t *testing.T) {
	in := newTestInput(LinesMultiple, "abc\nde")

	if got := in.HandleKeydown(key.NewSpecialEvent(key.KeyRight, key.ModNone)); got != RedrawSelection {
		t.Errorf("reaction = %v, want RedrawSelection", got)
	}
	if in.EditPoint() != (TextPoint{Line: 0, Index: 1}) {
		t.Errorf("caret = %v, want 0:1", in.EditPoint())
	}

	in.HandleKeydown(key.NewSpecialEvent(key.KeyDown, key.ModNone))
	if in.EditPoint() != (TextPoint{Line: 1, Index: 1}) {
		t.Errorf("caret = %v, want 1:1", in.EditPoint())
	}

	in.HandleKeydown(key.NewSpecialEvent(key.KeyUp, key.ModNone))
	in.HandleKeydown(key.NewSpecialEvent(key.KeyLeft, key.ModNone))
	if in.EditPoint() != (TextPoint{Line: 0, Index: 0}) {
		t.Errorf("caret = %v, want 0:0", in.EditPoint())
	}
}

func TestKeydownShiftExtendsSelection(t *testing.T) {
	in := newTestInput(LinesSingle, "hello")
	in.editPoint = TextPoint{Line: 0, Index: 5}

	in.HandleKeydown(key.NewSpecialEvent(key.KeyLeft, key.ModShift))
	state := in.SelectionState()
	if state.Start != (TextPoint{Line: 0, Index: 4}) || state.End != (TextPoint{Line: 0, Index: 5}) {
		t.Errorf("selection = %v..%v", state.Start, state.End)
	}
	if state.Direction != SelectionDirectionBackward {
		t.Errorf("direction = %v, want backward", state.Direction)
	}
}

func TestKeydownShiftUpExtendsSelection(t *testing.T) {
	in := newTestInput(LinesMultiple, "abc\ndef")
	in.editPoint = TextPoint{Line: 1, Index: 1}

	if got := in.HandleKeydown(key.NewSpecialEvent(key.KeyUp, key.ModShift)); got != RedrawSelection {
		t.Errorf("reaction = %v, want RedrawSelection", got)
	}
	state := in.SelectionState()
	if state.Start != (TextPoint{Line: 0, Index: 1}) || state.End != (TextPoint{Line: 1, Index: 1}) {
		t.Errorf("selection = %v..%v, want 0:1..1:1", state.Start, state.End)
	}
	if state.Direction != SelectionDirectionBackward {
		t.Errorf("direction = %v, want backward", state.Direction)
	}
}

func TestKeydownAltArrowsMoveByWord(t *testing.T) {
	in := newTestInput(LinesSingle, "foo bar")
	in.editPoint = TextPoint{Line: 0, Index: 7}

	in.HandleKeydown(key.NewSpecialEvent(key.KeyLeft, key.ModAlt))
	if in.EditPoint().Index != 4 {
		t.Errorf("caret index = %d, want 4", in.EditPoint().Index)
	}
}

func TestKeydownControlAltWordAndLineBindings(t *testing.T) {
	in := newTestInput(LinesSingle, "foo bar")
	chord := key.ModCtrl | key.ModAlt

	in.HandleKeydown(key.NewSpecialEvent(key.KeyF, chord))
	if in.EditPoint().Index != 3 {
		t.Errorf("word forward: caret index = %d, want 3", in.EditPoint().Index)
	}

	in.HandleKeydown(key.NewSpecialEvent(key.KeyE, chord))
	if in.EditPoint().Index != 7 {
		t.Errorf("line end: caret index = %d, want 7", in.EditPoint().Index)
	}

	in.HandleKeydown(key.NewSpecialEvent(key.KeyB, chord))
	if in.EditPoint().Index != 4 {
		t.Errorf("word backward: caret index = %d, want 4", in.EditPoint().Index)
	}

	in.HandleKeydown(key.NewSpecialEvent(key.KeyA, chord))
	if in.EditPoint().Index != 0 {
		t.Errorf("line start: caret index = %d, want 0", in.EditPoint().Index)
	}
}

func TestKeydownHomeEndOnGenericPlatform(t *testing.T) {
	in := newTestInput(LinesMultiple, "abc\ndefg")
	in.editPoint = TextPoint{Line: 1, Index: 2}

	if got := in.HandleKeydown(key.NewSpecialEvent(key.KeyHome, key.ModNone)); got != RedrawSelection {
		t.Errorf("reaction = %v, want RedrawSelection", got)
	}
	if in.EditPoint() != (TextPoint{Line: 1, Index: 0}) {
		t.Errorf("caret = %v, want 1:0", in.EditPoint())
	}

	in.HandleKeydown(key.NewSpecialEvent(key.KeyEnd, key.ModNone))
	if in.EditPoint() != (TextPoint{Line: 1, Index: 4}) {
		t.Errorf("caret = %v, want 1:4", in.EditPoint())
	}
}

func TestKeydownHomeWithSelectionCollapses(t *testing.T) {
	in := newTestInput(LinesSingle, "abcdef")
	in.SetSelectionRange(2, 5, SelectionDirectionForward)

	in.HandleKeydown(key.NewSpecialEvent(key.KeyHome, key.ModNone))
	if in.HasSelection() {
		t.Fatal("selection should collapse")
	}
	if in.EditPoint() != (TextPoint{Line: 0, Index: 2}) {
		t.Errorf("caret = %v, want selection start 0:2", in.EditPoint())
	}

	in.HandleKeydown(key.NewRuneEvent('X', key.ModNone))
	if in.Content() != "abXcdef" {
		t.Errorf("content = %q, want %q", in.Content(), "abXcdef")
	}
}

func TestKeydownShiftHomeEndExtendSelection(t *testing.T) {
	in := newTestInput(LinesSingle, "abcdef")
	in.editPoint = TextPoint{Line: 0, Index: 4}

	in.HandleKeydown(key.NewSpecialEvent(key.KeyHome, key.ModShift))
	state := in.SelectionState()
	if state.Start != (TextPoint{Line: 0, Index: 0}) || state.End != (TextPoint{Line: 0, Index: 4}) {
		t.Errorf("selection = %v..%v, want 0:0..0:4", state.Start, state.End)
	}
	if state.Direction != SelectionDirectionBackward {
		t.Errorf("direction = %v, want backward", state.Direction)
	}

	in.HandleKeydown(key.NewSpecialEvent(key.KeyEnd, key.ModShift))
	state = in.SelectionState()
	if state.Start != (TextPoint{Line: 0, Index: 4}) || state.End != (TextPoint{Line: 0, Index: 6}) {
		t.Errorf("selection = %v..%v, want 0:4..0:6", state.Start, state.End)
	}
	if state.Direction != SelectionDirectionForward {
		t.Errorf("direction = %v, want forward", state.Direction)
	}
}

func TestKeydownHomeEndDoNothingOnMac(t *testing.T) {
	in := New(LinesMultiple, "abc\ndefg", clipboard.NewMemory(""), WithPlatform(PlatformMac))
	in.editPoint = TextPoint{Line: 1, Index: 2}

	in.HandleKeydown(key.NewSpecialEvent(key.KeyHome, key.ModNone))
	if in.EditPoint() != (TextPoint{Line: 1, Index: 2}) {
		t.Errorf("caret = %v, want unchanged 1:2", in.EditPoint())
	}
}

func TestKeydownMacMetaArrows(t *testing.T) {
	in := New(LinesMultiple, "abc\ndefg", clipboard.NewMemory(""), WithPlatform(PlatformMac))
	in.editPoint = TextPoint{Line: 1, Index: 2}

	in.HandleKeydown(key.NewSpecialEvent(key.KeyLeft, key.ModMeta))
	if in.EditPoint() != (TextPoint{Line: 1, Index: 0}) {
		t.Errorf("Meta+Left: caret = %v, want 1:0", in.EditPoint())
	}

	in.HandleKeydown(key.NewSpecialEvent(key.KeyUp, key.ModMeta))
	if in.EditPoint() != (TextPoint{Line: 0, Index: 0}) {
		t.Errorf("Meta+Up: caret = %v, want 0:0", in.EditPoint())
	}

	in.HandleKeydown(key.NewSpecialEvent(key.KeyDown, key.ModMeta))
	if in.EditPoint() != (TextPoint{Line: 1, Index: 4}) {
		t.Errorf("Meta+Down: caret = %v, want 1:4", in.EditPoint())
	}
}

func TestKeydownMacControlLineBindings(t *testing.T) {
	in := New(LinesSingle, "abcdef", clipboard.NewMemory(""), WithPlatform(PlatformMac))
	in.editPoint = TextPoint{Line: 0, Index: 3}

	in.HandleKeydown(key.NewSpecialEvent(key.KeyE, key.ModCtrl))
	if in.EditPoint().Index != 6 {
		t.Errorf("Ctrl+E: caret index = %d, want 6", in.EditPoint().Index)
	}

	in.HandleKeydown(key.NewSpecialEvent(key.KeyA, key.ModCtrl))
	if in.EditPoint().Index != 0 {
		t.Errorf("Ctrl+A: caret index = %d, want 0", in.EditPoint().Index)
	}
}

func TestKeydownPageKeysMoveTwentyEightLines(t *testing.T) {
	content := ""
	for i := 0; i < 40; i++ {
		content += "x\n"
	}
	in := newTestInput(LinesMultiple, content)

	in.HandleKeydown(key.NewSpecialEvent(key.KeyPageDown, key.ModNone))
	if in.EditPoint().Line != 28 {
		t.Errorf("PageDown: line = %d, want 28", in.EditPoint().Line)
	}

	in.HandleKeydown(key.NewSpecialEvent(key.KeyPageUp, key.ModNone))
	if in.EditPoint().Line != 0 {
		t.Errorf("PageUp: line = %d, want 0", in.EditPoint().Line)
	}
}

func TestKeydownUnmatchedIsNothing(t *testing.T) {
	in := newTestInput(LinesSingle, "ab")

	if got := in.HandleKeydown(key.NewSpecialEvent(key.KeyNone, key.ModNone)); got != Nothing {
		t.Errorf("reaction = %v, want Nothing", got)
	}
	// Ctrl+B without Alt has no binding.
	if got := in.HandleKeydown(key.NewSpecialEvent(key.KeyB, key.ModCtrl)); got != Nothing {
		t.Errorf("reaction = %v, want Nothing", got)
	}
	if in.Content() != "ab" {
		t.Errorf("content changed: %q", in.Content())
	}
}
