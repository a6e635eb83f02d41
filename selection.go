package textinput

import "strings"

// SelectionState is a snapshot of the selection, usable by the host to
// detect whether the selection has changed across an operation.
type SelectionState struct {
	Start     TextPoint
	End       TextPoint
	Direction SelectionDirection
}

// HasSelection returns true if there is an active selection. The
// selection may be zero-length; an origin equal to the edit point is
// still a selection.
func (t *TextInput) HasSelection() bool {
	return t.selectionOrigin != nil
}

// SelectionDirection returns the direction of the active selection.
func (t *TextInput) SelectionDirection() SelectionDirection {
	return t.selectionDirection
}

// SelectionOriginOrEditPoint returns the selection origin, or the edit
// point if there is no selection. The origin may be after the edit
// point for a backward selection.
func (t *TextInput) SelectionOriginOrEditPoint() TextPoint {
	if t.selectionOrigin != nil {
		return *t.selectionOrigin
	}
	return t.editPoint
}

// SelectionStart returns the start of the selection, or the edit point
// if there is no selection. Always less than or equal to SelectionEnd,
// regardless of the selection direction.
func (t *TextInput) SelectionStart() TextPoint {
	if t.selectionDirection == SelectionDirectionBackward {
		return t.editPoint
	}
	return t.SelectionOriginOrEditPoint()
}

// SelectionStartOffset returns the byte offset of SelectionStart.
func (t *TextInput) SelectionStartOffset() int {
	return t.textPointToOffset(t.SelectionStart())
}

// SelectionEnd returns the end of the selection, or the edit point if
// there is no selection. Always greater than or equal to
// SelectionStart, regardless of the selection direction.
func (t *TextInput) SelectionEnd() TextPoint {
	if t.selectionDirection == SelectionDirectionBackward {
		return t.SelectionOriginOrEditPoint()
	}
	return t.editPoint
}

// SelectionEndOffset returns the byte offset of SelectionEnd.
func (t *TextInput) SelectionEndOffset() int {
	return t.textPointToOffset(t.SelectionEnd())
}

// SortedSelectionBounds returns the bounds of the current selection
// with start always less than or equal to end.
func (t *TextInput) SortedSelectionBounds() (start, end TextPoint) {
	return t.SelectionStart(), t.SelectionEnd()
}

// SortedSelectionOffsetsRange returns the selection as a half-open
// range of byte offsets from the start of the content. If there is no
// selection, the range is empty and sits at the edit point.
func (t *TextInput) SortedSelectionOffsetsRange() Range {
	return Range{Start: t.SelectionStartOffset(), End: t.SelectionEndOffset()}
}

// SelectionState returns a snapshot of the current selection.
func (t *TextInput) SelectionState() SelectionState {
	return SelectionState{
		Start:     t.SelectionStart(),
		End:       t.SelectionEnd(),
		Direction: t.selectionDirection,
	}
}

// SelectionText returns the selected text with lines joined by \n. The
// second return value is false when the selection is absent or empty.
func (t *TextInput) SelectionText() (string, bool) {
	var sb strings.Builder
	t.forEachSelectionSlice(func(slice string) {
		sb.WriteString(slice)
	})
	if sb.Len() == 0 {
		return "", false
	}
	return sb.String(), true
}

// selectionUTF16Len returns the length of the selected text in UTF-16
// code units.
func (t *TextInput) selectionUTF16Len() int {
	n := 0
	t.forEachSelectionSlice(func(slice string) {
		n += utf16Len(slice)
	})
	return n
}

// forEachSelectionSlice calls f on a series of slices that,
// concatenated, make up the selected text.
func (t *TextInput) forEachSelectionSlice(f func(slice string)) {
	if !t.HasSelection() {
		return
	}
	start, end := t.SortedSelectionBounds()

	if start.Line == end.Line {
		f(t.lines[start.Line][start.Index:end.Index])
		return
	}
	f(t.lines[start.Line][start.Index:])
	for _, line := range t.lines[start.Line+1 : end.Line] {
		f("\n")
		f(line)
	}
	f("\n")
	f(t.lines[end.Line][:end.Index])
}

// updateSelectionDirection re-derives the selection direction from the
// ordering of the edit point and the origin after a caret move. A
// selecting move records the direction it travels in, but a move that
// crosses back over its own origin leaves that recorded direction
// disagreeing with the actual point order; the ordering wins. A
// zero-width selection keeps the recorded direction.
func (t *TextInput) updateSelectionDirection() {
	origin := t.selectionOrigin
	if origin == nil {
		return
	}
	switch {
	case t.editPoint.Before(*origin):
		t.selectionDirection = SelectionDirectionBackward
	case origin.Before(t.editPoint):
		t.selectionDirection = SelectionDirectionForward
	}
}

// ClearSelection removes the current selection and resets the selection
// direction.
func (t *TextInput) ClearSelection() {
	t.selectionOrigin = nil
	t.selectionDirection = SelectionDirectionNone
}

// ClearSelectionToLimit removes the current selection and moves the
// edit point to the limit of the content in the given direction.
func (t *TextInput) ClearSelectionToLimit(dir Direction, updateCursor bool) {
	t.ClearSelection()
	t.AdjustHorizontalToLimit(dir, NotSelected, updateCursor)
}

// SelectAll selects the whole content and puts the edit point at the
// end.
func (t *TextInput) SelectAll() {
	origin := TextPoint{}
	t.selectionOrigin = &origin
	t.selectionDirection = SelectionDirectionForward
	last := len(t.lines) - 1
	t.editPoint = TextPoint{Line: last, Index: len(t.lines[last])}
	t.assertOkSelection()
}

// SetSelectionRange selects the half-open byte range [start, end) with
// the given direction. end is clamped to the content length and start
// is clamped to end. For a backward selection the caret sits at start;
// otherwise at end.
func (t *TextInput) SetSelectionRange(start, end uint32, direction SelectionDirection) {
	s, e := int(start), int(end)
	if textEnd := t.Len(); e > textEnd {
		e = textEnd
	}
	if s > e {
		s = e
	}

	t.selectionDirection = direction

	if direction == SelectionDirectionBackward {
		origin := t.offsetToTextPoint(e)
		t.selectionOrigin = &origin
		t.editPoint = t.offsetToTextPoint(s)
	} else {
		origin := t.offsetToTextPoint(s)
		t.selectionOrigin = &origin
		t.editPoint = t.offsetToTextPoint(e)
	}
	t.assertOkSelection()
}
