// Package key defines the decoded keyboard event consumed by the
// textinput core: a symbolic key identity, an optional printable
// character, and a modifier bit-set.
//
// The package does not talk to any input backend. Hosts translate
// their own keyboard events (terminal, GUI toolkit, DOM) into Event
// values; see cmd/textinput-demo for a tcell translation.
package key
