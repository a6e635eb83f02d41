// Package clipboard provides ready-made clipboard providers for the
// textinput core: a system-backed provider and an in-memory one for
// tests and headless hosts.
package clipboard

import (
	atotto "github.com/atotto/clipboard"
)

// Memory is an in-process clipboard. The zero value is ready to use.
type Memory struct {
	contents string
}

// NewMemory creates an in-memory clipboard with initial contents.
func NewMemory(contents string) *Memory {
	return &Memory{contents: contents}
}

// Contents returns the stored text.
func (m *Memory) Contents() string {
	return m.contents
}

// SetContents replaces the stored text.
func (m *Memory) SetContents(text string) {
	m.contents = text
}

// System reads and writes the operating system clipboard through
// github.com/atotto/clipboard. Read or write failures degrade to an
// empty read and a dropped write; the text input core has no error
// channel for clipboard traffic.
type System struct{}

// Contents returns the system clipboard text, or "" when it cannot be
// read.
func (System) Contents() string {
	text, err := atotto.ReadAll()
	if err != nil {
		return ""
	}
	return text
}

// SetContents replaces the system clipboard text.
func (System) SetContents(text string) {
	_ = atotto.WriteAll(text)
}
