package textinput

// Lines controls whether an input allows multiple lines.
type Lines uint8

const (
	// LinesSingle restricts the input to exactly one line.
	LinesSingle Lines = iota

	// LinesMultiple allows the input to hold any number of lines.
	LinesMultiple
)

// Direction is the direction of a caret move or deletion.
type Direction int8

const (
	// DirectionForward moves toward the end of the content.
	DirectionForward Direction = iota

	// DirectionBackward moves toward the start of the content.
	DirectionBackward
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	if d == DirectionBackward {
		return "backward"
	}
	return "forward"
}

// Selection controls whether a caret move extends the active selection.
type Selection uint8

const (
	// NotSelected moves the caret, collapsing any active selection.
	NotSelected Selection = iota

	// Selected extends the selection while moving the caret.
	Selected
)

// SelectionDirection records which way an active selection was made.
type SelectionDirection uint8

const (
	// SelectionDirectionNone indicates a directionless selection.
	SelectionDirectionNone SelectionDirection = iota

	// SelectionDirectionForward indicates the caret trails the origin.
	SelectionDirectionForward

	// SelectionDirectionBackward indicates the caret precedes the origin.
	SelectionDirectionBackward
)

// String returns the serialized form used for attribute reflection:
// "forward", "backward", or "none".
func (d SelectionDirection) String() string {
	switch d {
	case SelectionDirectionForward:
		return "forward"
	case SelectionDirectionBackward:
		return "backward"
	default:
		return "none"
	}
}

// SelectionDirectionFromString parses a serialized selection direction.
// Unrecognized input maps to SelectionDirectionNone.
func SelectionDirectionFromString(s string) SelectionDirection {
	switch s {
	case "forward":
		return SelectionDirectionForward
	case "backward":
		return SelectionDirectionBackward
	default:
		return SelectionDirectionNone
	}
}
