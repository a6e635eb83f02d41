package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/dshills/textinput"
)

// draw renders the input's lines with the selection highlighted, places
// the terminal cursor at the edit point, and prints a status line.
func draw(screen tcell.Screen, input *textinput.TextInput, last textinput.Reaction) {
	screen.Clear()

	selected := tcell.StyleDefault.Reverse(true)
	start, end := input.SortedSelectionBounds()
	hasSelection := input.HasSelection()

	for lineNo := 0; lineNo < input.LineCount(); lineNo++ {
		line := input.Line(lineNo)
		x := 0
		byteIdx := 0
		for _, r := range line {
			style := tcell.StyleDefault
			if hasSelection && inSelection(lineNo, byteIdx, start, end) {
				style = selected
			}
			screen.SetContent(x, lineNo, r, nil, style)
			x += runewidth.RuneWidth(r)
			byteIdx += len(string(r))
		}
		// Mark selected line breaks with a highlighted cell at EOL.
		if hasSelection && lineNo < end.Line && inSelection(lineNo, byteIdx, start, end) {
			screen.SetContent(x, lineNo, ' ', nil, selected)
		}
	}

	ep := input.EditPoint()
	screen.ShowCursor(runewidth.StringWidth(input.Line(ep.Line)[:ep.Index]), ep.Line)

	_, height := screen.Size()
	status := fmt.Sprintf("caret %d:%d  sel %v  len %d (utf16 %d)  last %s  Esc quits",
		ep.Line, ep.Index, input.SortedSelectionOffsetsRange(), input.Len(), input.UTF16Len(), last)
	x := 0
	for _, r := range status {
		screen.SetContent(x, height-1, r, nil, tcell.StyleDefault.Dim(true))
		x += runewidth.RuneWidth(r)
	}

	screen.Show()
}

// inSelection reports whether the byte at (line, idx) falls inside the
// half-open selection [start, end).
func inSelection(line, idx int, start, end textinput.TextPoint) bool {
	p := textinput.TextPoint{Line: line, Index: idx}
	return !p.Before(start) && p.Before(end)
}
