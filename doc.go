// Package textinput implements the editable text state of a single- or
// multi-line text control: the edit point (caret), an optional selection,
// and the underlying line-structured content, together with Unicode-aware
// navigation and keyboard dispatch.
//
// # Architecture
//
// A TextInput owns its content as a sequence of lines that never contain
// line terminators. All state changes flow through its methods; the host
// widget never splices lines directly. The core is split across a few
// concerns:
//
//   - content and offset conversion (buffer.go)
//   - selection derivation and snapshots (selection.go)
//   - insert/delete/replace honoring length limits (edit.go)
//   - caret navigation by byte, grapheme, word, line, and document
//     (move.go)
//   - keyboard-to-action dispatch (dispatch.go)
//
// Grapheme-cluster and word segmentation follow UAX #29 via
// github.com/rivo/uniseg.
//
// # Basic Usage
//
// Create an input, feed it key events, and read back content:
//
//	in := textinput.New(textinput.LinesMultiple, "hello", clip)
//	in.HandleKeydown(key.NewRuneEvent('!', key.ModNone))
//	text := in.Content() // "hello!"
//
// HandleKeydown returns a Reaction telling the host whether to fire a
// default action, dispatch an input notification, redraw the selection,
// or do nothing.
//
// # Positions and Lengths
//
// Positions are TextPoint values: a 0-based line number and a 0-based
// UTF-8 byte index within that line. Indexes always lie on code point
// boundaries. Length limits (MaxLength) are measured in UTF-16 code
// units, matching the HTML maxlength attribute.
//
// # Concurrency
//
// A TextInput is single-threaded state exclusively owned by its host;
// none of its methods are safe for concurrent use.
package textinput
