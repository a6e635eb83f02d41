package textinput

import (
	"unicode/utf8"

	"github.com/dshills/textinput/internal/segment"
)

// AdjustVertical moves the edit point by the given number of lines,
// keeping the resulting column as close to the original column as
// possible. Columns are measured in runes, so the caret re-lands on a
// code point boundary even when the target line has different byte
// widths. No-op on a single-line input.
func (t *TextInput) AdjustVertical(adjust int, sel Selection) {
	if !t.multiline {
		return
	}

	if sel == Selected {
		if t.selectionOrigin == nil {
			origin := t.editPoint
			t.selectionOrigin = &origin
		}
		if adjust < 0 {
			t.selectionDirection = SelectionDirectionBackward
		} else {
			t.selectionDirection = SelectionDirectionForward
		}
	} else {
		t.ClearSelection()
	}

	target := t.editPoint.Line + adjust

	switch {
	case target < 0:
		t.editPoint = TextPoint{}
	case target >= len(t.lines):
		t.editPoint.Line = len(t.lines) - 1
		t.editPoint.Index = t.CurrentLineLength()
	default:
		col := utf8.RuneCountInString(t.lines[t.editPoint.Line][:t.editPoint.Index])
		t.editPoint.Line = target
		t.editPoint.Index = lenOfFirstNChars(t.lines[target], col)
	}
	t.updateSelectionDirection()
	t.assertOkSelection()
}

// AdjustHorizontal moves the edit point by the given number of bytes.
// If the adjustment is larger than what is left on the current line,
// the edit point moves vertically and the walk repeats with the
// remaining adjustment, consuming one byte per line break crossed.
func (t *TextInput) AdjustHorizontal(adjust int, sel Selection) {
	dir := DirectionForward
	if adjust < 0 {
		dir = DirectionBackward
	}
	t.adjustHorizontal(adjust, dir, sel)
}

// adjustHorizontal is AdjustHorizontal with the direction fixed by the
// caller. The line-crossing recursion can produce a residual of zero
// whose sign no longer matches the original move, so the direction must
// travel with the adjustment instead of being re-derived.
func (t *TextInput) adjustHorizontal(adjust int, dir Direction, sel Selection) {
	if t.adjustSelectionForHorizontalChange(dir, sel) {
		return
	}
	t.performHorizontalAdjustment(adjust, dir, sel)
}

// AdjustHorizontalByOne moves the edit point by one grapheme cluster in
// the given direction, or by one byte at a line boundary to cross into
// the adjacent line.
func (t *TextInput) AdjustHorizontalByOne(dir Direction, sel Selection) {
	if t.adjustSelectionForHorizontalChange(dir, sel) {
		return
	}
	line := t.lines[t.editPoint.Line]

	var adjust int
	if dir == DirectionForward {
		if c := segment.FirstCluster(line[t.editPoint.Index:]); c != "" {
			adjust = len(c)
		} else {
			adjust = 1 // moving to the next line is a one byte step
		}
	} else {
		if c := segment.LastCluster(line[:t.editPoint.Index]); c != "" {
			adjust = -len(c)
		} else {
			adjust = -1 // moving to the previous line is a one byte step
		}
	}
	t.performHorizontalAdjustment(adjust, dir, sel)
}

// AdjustHorizontalByWord moves the edit point to the nearest word
// boundary in the given direction. Runs of whitespace and punctuation
// are skipped: the walk stops once a segment containing at least one
// alphanumeric character has been consumed. Starting at a line boundary
// first crosses into the neighboring line.
func (t *TextInput) AdjustHorizontalByWord(dir Direction, sel Selection) {
	if t.adjustSelectionForHorizontalChange(dir, sel) {
		return
	}

	var shift int
	if dir == DirectionBackward {
		input := t.lines[t.editPoint.Line][:t.editPoint.Index]
		newlineAdjustment := 0
		if t.editPoint.Index == 0 && t.editPoint.Line > 0 {
			input = t.lines[t.editPoint.Line-1]
			newlineAdjustment = 1
		}
		words := segment.Words(input)
		for i := len(words) - 1; i >= 0; i-- {
			shift -= len(words[i])
			if segment.HasAlphanumeric(words[i]) {
				break
			}
		}
		shift -= newlineAdjustment
	} else {
		remaining := t.CurrentLineLength() - t.editPoint.Index
		input := t.lines[t.editPoint.Line][t.editPoint.Index:]
		newlineAdjustment := 0
		if remaining == 0 && len(t.lines) > t.editPoint.Line+1 {
			input = t.lines[t.editPoint.Line+1]
			newlineAdjustment = 1
		}
		for _, w := range segment.Words(input) {
			shift += len(w)
			if segment.HasAlphanumeric(w) {
				break
			}
		}
		shift += newlineAdjustment
	}

	t.adjustHorizontal(shift, dir, sel)
}

// AdjustHorizontalToLineEnd moves the edit point to the start or end of
// the current line. Never crosses lines.
func (t *TextInput) AdjustHorizontalToLineEnd(dir Direction, sel Selection) {
	if t.adjustSelectionForHorizontalChange(dir, sel) {
		return
	}
	var shift int
	if dir == DirectionBackward {
		shift = -t.editPoint.Index
	} else {
		shift = t.CurrentLineLength() - t.editPoint.Index
	}
	t.performHorizontalAdjustment(shift, dir, sel)
}

// AdjustHorizontalToLimit moves the edit point to the start or end of
// the whole content. When updateCursor is false the edit point stays
// where it is.
func (t *TextInput) AdjustHorizontalToLimit(dir Direction, sel Selection, updateCursor bool) {
	if t.adjustSelectionForHorizontalChange(dir, sel) {
		return
	}
	if updateCursor {
		if dir == DirectionBackward {
			t.editPoint = TextPoint{}
		} else {
			last := len(t.lines) - 1
			t.editPoint = TextPoint{Line: last, Index: len(t.lines[last])}
		}
	}
	t.updateSelectionDirection()
	t.assertOkSelection()
}

// adjustSelectionForHorizontalChange prepares the selection for a caret
// move. For a selecting move it establishes the origin and records the
// direction. For a non-selecting move over an active selection it
// collapses the caret to the near edge of the selection and reports
// that the move itself must be cancelled.
func (t *TextInput) adjustSelectionForHorizontalChange(dir Direction, sel Selection) bool {
	if sel == Selected {
		if t.selectionOrigin == nil {
			origin := t.editPoint
			t.selectionOrigin = &origin
		}
		if dir == DirectionBackward {
			t.selectionDirection = SelectionDirectionBackward
		} else {
			t.selectionDirection = SelectionDirectionForward
		}
	} else if t.HasSelection() {
		if dir == DirectionBackward {
			t.editPoint = t.SelectionStart()
		} else {
			t.editPoint = t.SelectionEnd()
		}
		t.ClearSelection()
		return true
	}
	return false
}

// performHorizontalAdjustment distributes a signed byte delta across
// line boundaries, recursing with the residual after each line change.
func (t *TextInput) performHorizontalAdjustment(adjust int, dir Direction, sel Selection) {
	if adjust < 0 {
		remaining := t.editPoint.Index
		if -adjust > remaining && t.editPoint.Line > 0 {
			t.AdjustVertical(-1, sel)
			t.editPoint.Index = t.CurrentLineLength()
			// one step is consumed by the change of line, hence the +1
			t.adjustHorizontal(adjust+remaining+1, dir, sel)
		} else {
			index := t.editPoint.Index + adjust
			if index < 0 {
				index = 0
			}
			t.editPoint.Index = index
		}
	} else {
		remaining := t.CurrentLineLength() - t.editPoint.Index
		if adjust > remaining && len(t.lines) > t.editPoint.Line+1 {
			t.AdjustVertical(1, sel)
			t.editPoint.Index = 0
			// one step is consumed by the change of line, hence the -1
			t.adjustHorizontal(adjust-remaining-1, dir, sel)
		} else {
			index := t.editPoint.Index + adjust
			if index > t.CurrentLineLength() {
				index = t.CurrentLineLength()
			}
			t.editPoint.Index = index
		}
	}
	t.updateSelectionDirection()
	t.assertOkSelection()
}
