package textinput

import "fmt"

// TextPoint identifies a position in the content: a 0-based line number
// and a 0-based byte index within that line. The index always lies on a
// UTF-8 code point boundary. TextPoint is an immutable value type,
// totally ordered lexicographically by (line, index).
type TextPoint struct {
	Line  int
	Index int
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other.
func (p TextPoint) Compare(other TextPoint) int {
	if p.Line != other.Line {
		if p.Line < other.Line {
			return -1
		}
		return 1
	}
	if p.Index < other.Index {
		return -1
	}
	if p.Index > other.Index {
		return 1
	}
	return 0
}

// Before returns true if p is before other.
func (p TextPoint) Before(other TextPoint) bool {
	return p.Compare(other) < 0
}

// After returns true if p is after other.
func (p TextPoint) After(other TextPoint) bool {
	return p.Compare(other) > 0
}

// String returns a string representation of the point.
func (p TextPoint) String() string {
	return fmt.Sprintf("TextPoint(%d:%d)", p.Line, p.Index)
}

// Range is a half-open range of byte offsets into the content.
type Range struct {
	Start int
	End   int
}

// Len returns the length of the range in bytes.
func (r Range) Len() int {
	return r.End - r.Start
}

// IsEmpty returns true if the range covers no bytes.
func (r Range) IsEmpty() bool {
	return r.Start >= r.End
}

// String returns a string representation of the range.
func (r Range) String() string {
	return fmt.Sprintf("[%d, %d)", r.Start, r.End)
}
