package textinput

import "strings"

// ReplaceSelection replaces the selected text with insert and moves the
// edit point to the end of the inserted text. No-op when there is no
// active selection; callers that insert at a bare caret establish a
// zero-width selection first.
//
// When a maximum length is set, insert is truncated to the number of
// UTF-16 code units still allowed after the selected text is deleted.
// If the content would already be at or over the limit after the
// deletion alone, nothing changes at all.
func (t *TextInput) ReplaceSelection(insert string) {
	if !t.HasSelection() {
		return
	}

	start, end := t.SortedSelectionBounds()

	if t.maxLength >= 0 {
		lenAfterSelectionDeleted := t.UTF16Len() - t.selectionUTF16Len()
		if lenAfterSelectionDeleted >= t.maxLength {
			return
		}
		allowed := t.maxLength - lenAfterSelectionDeleted
		insert = insert[:lenOfFirstNCodeUnits(insert, allowed)]
	}

	t.ClearSelection()

	prefix := t.lines[start.Line][:start.Index]
	suffix := t.lines[end.Line][end.Index:]

	var insertLines []string
	if t.multiline {
		insertLines = strings.Split(insert, "\n")
	} else {
		insertLines = []string{insert}
	}

	insertLines[0] = prefix + insertLines[0]

	last := len(insertLines) - 1
	t.editPoint.Line = start.Line + last
	t.editPoint.Index = len(insertLines[last])
	insertLines[last] += suffix

	newLines := make([]string, 0, start.Line+len(insertLines)+len(t.lines)-end.Line-1)
	newLines = append(newLines, t.lines[:start.Line]...)
	newLines = append(newLines, insertLines...)
	newLines = append(newLines, t.lines[end.Line+1:]...)
	t.lines = newLines

	t.assertOkSelection()
}

// DeleteChar removes one grapheme cluster next to the edit point in the
// given direction, or the selected text when a non-empty selection is
// active. Crossing a line boundary counts as a one-byte step.
func (t *TextInput) DeleteChar(dir Direction) {
	if t.selectionOrigin == nil || *t.selectionOrigin == t.editPoint {
		t.AdjustHorizontalByOne(dir, Selected)
	}
	t.ReplaceSelection("")
}

// InsertChar inserts a character at the current edit point.
func (t *TextInput) InsertChar(r rune) {
	t.InsertString(string(r))
}

// InsertString inserts a string at the current edit point, replacing
// the selection if one is active.
func (t *TextInput) InsertString(s string) {
	if t.selectionOrigin == nil {
		origin := t.editPoint
		t.selectionOrigin = &origin
	}
	t.ReplaceSelection(s)
}

// HandleReturn deals with a newline input: a multiline input inserts
// the newline, a single-line input asks the host to run its default
// action instead.
func (t *TextInput) HandleReturn() Reaction {
	if !t.multiline {
		return TriggerDefaultAction
	}
	t.InsertChar('\n')
	return DispatchInput
}
