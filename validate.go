package textinput

import "fmt"

// assertOkSelection verifies the edit point and selection invariants.
// It runs after every mutating operation; a violation means a caller
// bypassed the mutation API and is a programming error, so it panics.
func (t *TextInput) assertOkSelection() {
	if origin := t.selectionOrigin; origin != nil {
		if origin.Line >= len(t.lines) {
			panic(fmt.Sprintf("textinput: selection origin %v outside %d lines", *origin, len(t.lines)))
		}
		if origin.Index > len(t.lines[origin.Line]) {
			panic(fmt.Sprintf("textinput: selection origin %v outside line of %d bytes", *origin, len(t.lines[origin.Line])))
		}

		if t.selectionDirection == SelectionDirectionBackward {
			if t.editPoint.After(*origin) {
				panic(fmt.Sprintf("textinput: backward selection with edit point %v after origin %v", t.editPoint, *origin))
			}
		} else if origin.After(t.editPoint) {
			panic(fmt.Sprintf("textinput: forward selection with origin %v after edit point %v", *origin, t.editPoint))
		}
	}

	if t.editPoint.Line >= len(t.lines) {
		panic(fmt.Sprintf("textinput: edit point %v outside %d lines", t.editPoint, len(t.lines)))
	}
	if t.editPoint.Index > len(t.lines[t.editPoint.Line]) {
		panic(fmt.Sprintf("textinput: edit point %v outside line of %d bytes", t.editPoint, len(t.lines[t.editPoint.Line])))
	}
}
