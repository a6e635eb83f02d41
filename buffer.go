package textinput

import (
	"strings"
	"unicode/utf8"

	"github.com/dshills/textinput/internal/segment"
)

// Content returns the current contents. Multiple lines are joined by \n.
func (t *TextInput) Content() string {
	return strings.Join(t.lines, "\n")
}

// SetContent replaces the contents of the input. A multiline input
// normalizes \r\n to \n and then splits on \n or \r to form lines; a
// single-line input stores the whole text as one line, line breaks
// included.
//
// Any active selection is dropped. If updateCursor is set, the edit
// point is clamped into the bounds of the new content; otherwise it is
// left untouched.
func (t *TextInput) SetContent(content string, updateCursor bool) {
	if t.multiline {
		// https://html.spec.whatwg.org/multipage/#textarea-line-break-normalisation-transformation
		content = strings.ReplaceAll(content, "\r\n", "\n")
		content = strings.ReplaceAll(content, "\r", "\n")
		t.lines = strings.Split(content, "\n")
	} else {
		t.lines = []string{content}
	}
	if updateCursor {
		if t.editPoint.Line > len(t.lines)-1 {
			t.editPoint.Line = len(t.lines) - 1
		}
		if t.editPoint.Index > t.CurrentLineLength() {
			t.editPoint.Index = t.CurrentLineLength()
		}
	}
	t.selectionOrigin = nil
	t.assertOkSelection()
}

// SingleLineContent returns the contents of a single-line input.
// Panics if the input is multiline.
func (t *TextInput) SingleLineContent() string {
	if t.multiline {
		panic("textinput: SingleLineContent on a multiline input")
	}
	return t.lines[0]
}

// LineCount returns the number of lines.
func (t *TextInput) LineCount() int {
	return len(t.lines)
}

// Line returns the text of a specific line (without newline).
func (t *TextInput) Line(i int) string {
	return t.lines[i]
}

// CurrentLineLength returns the byte length of the line under the edit
// point.
func (t *TextInput) CurrentLineLength() int {
	return len(t.lines[t.editPoint.Line])
}

// IsEmpty returns true if the content is empty.
func (t *TextInput) IsEmpty() bool {
	return len(t.lines) <= 1 && (len(t.lines) == 0 || t.lines[0] == "")
}

// Len returns the length of the content in UTF-8 bytes, counting one
// byte per inter-line \n.
func (t *TextInput) Len() int {
	n := 0
	for _, line := range t.lines {
		n += len(line) + 1 // + 1 for the '\n'
	}
	return n - 1
}

// UTF16Len returns the length of the content in UTF-16 code units,
// counting one unit per inter-line \n.
func (t *TextInput) UTF16Len() int {
	n := 0
	for _, line := range t.lines {
		n += utf16Len(line) + 1 // + 1 for the '\n'
	}
	return n - 1
}

// CharCount returns the length of the content in Unicode scalar values,
// counting one per inter-line \n.
func (t *TextInput) CharCount() int {
	n := 0
	for _, line := range t.lines {
		n += utf8.RuneCountInString(line) + 1 // + 1 for the '\n'
	}
	return n - 1
}

// SetEditPointIndex places the caret after the first index grapheme
// clusters of the current line.
func (t *TextInput) SetEditPointIndex(index int) {
	line := t.lines[t.editPoint.Line]
	t.editPoint.Index = segment.ClusterPrefixLen(line, index)
}

// textPointToOffset converts a TextPoint into a byte offset from the
// start of the content.
func (t *TextInput) textPointToOffset(point TextPoint) int {
	offset := point.Index
	for i := 0; i < point.Line; i++ {
		offset += len(t.lines[i]) + 1 // +1 for the \n
	}
	return offset
}

// offsetToTextPoint converts a byte offset from the start of the
// content into a TextPoint. The walk never passes the last line, so
// offsets at or beyond the end of the content land on the last line.
func (t *TextInput) offsetToTextPoint(offset int) TextPoint {
	index := offset
	line := 0
	for line < len(t.lines)-1 && index > len(t.lines[line]) {
		index -= len(t.lines[line]) + 1
		line++
	}
	return TextPoint{Line: line, Index: index}
}

// utf16Len counts UTF-16 code units in a string.
func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		if r >= 0x10000 {
			n += 2 // surrogate pair (characters outside the BMP)
		} else {
			n++
		}
	}
	return n
}

// lenOfFirstNChars returns the length in bytes of the first n runes of
// s. If s has fewer than n runes, returns the length of the whole
// string.
func lenOfFirstNChars(s string, n int) int {
	for i := range s {
		if n == 0 {
			return i
		}
		n--
	}
	return len(s)
}

// lenOfFirstNCodeUnits returns the length in bytes of the longest
// prefix of s that fits in n UTF-16 code units. The cut always lands on
// a code point boundary, so a surrogate pair is never split.
func lenOfFirstNCodeUnits(s string, n int) int {
	utf8Len := 0
	units := 0
	for _, r := range s {
		if r >= 0x10000 {
			units += 2
		} else {
			units++
		}
		if units > n {
			break
		}
		utf8Len += utf8.RuneLen(r)
	}
	return utf8Len
}
