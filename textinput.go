package textinput

// ClipboardProvider is the narrow clipboard capability a TextInput
// consumes. Implementations are injected at construction; see the
// clipboard subpackage for a system-backed and an in-memory provider.
type ClipboardProvider interface {
	// Contents returns the current clipboard text.
	Contents() string

	// SetContents replaces the clipboard text.
	SetContents(text string)
}

// TextInput is the encapsulated keyboard-input state of a single- or
// multi-line text control. It is not safe for concurrent use.
type TextInput struct {
	// Content split across lines. Entries carry no line terminator.
	// Never empty: an input with no content has one empty line.
	lines []string

	// The caret.
	editPoint TextPoint

	// The selection goes from the origin to the edit point. The origin
	// may be after the edit point for a backward selection. A nil
	// origin means no active selection.
	selectionOrigin *TextPoint

	multiline bool
	clipboard ClipboardProvider

	// Length limits in UTF-16 code units. Negative means no limit.
	maxLength int
	minLength int

	selectionDirection SelectionDirection
	platform           Platform
}

// Option configures a TextInput during creation.
type Option func(*TextInput)

// WithMaxLength sets the maximum content length in UTF-16 code units.
func WithMaxLength(n int) Option {
	return func(t *TextInput) {
		t.maxLength = n
	}
}

// WithMinLength sets the minimum content length in UTF-16 code units.
// The limit is reflected to the host; the core does not enforce it.
func WithMinLength(n int) Option {
	return func(t *TextInput) {
		t.minLength = n
	}
}

// WithSelectionDirection sets the initial selection direction.
func WithSelectionDirection(dir SelectionDirection) Option {
	return func(t *TextInput) {
		t.selectionDirection = dir
	}
}

// WithPlatform overrides the platform used for keyboard dispatch.
func WithPlatform(p Platform) Option {
	return func(t *TextInput) {
		t.platform = p
	}
}

// New creates a text input control with the given initial content.
// The initial content passes through the same line-splitting rule as
// SetContent.
func New(lines Lines, initial string, provider ClipboardProvider, opts ...Option) *TextInput {
	t := &TextInput{
		lines:     []string{""},
		multiline: lines == LinesMultiple,
		clipboard: provider,
		maxLength: -1,
		minLength: -1,
		platform:  DefaultPlatform(),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.SetContent(initial, false)
	return t
}

// Multiline returns true if this input allows multiple lines.
func (t *TextInput) Multiline() bool {
	return t.multiline
}

// EditPoint returns the current caret position.
func (t *TextInput) EditPoint() TextPoint {
	return t.editPoint
}

// MaxLength returns the maximum length in UTF-16 code units, if set.
func (t *TextInput) MaxLength() (int, bool) {
	if t.maxLength < 0 {
		return 0, false
	}
	return t.maxLength, true
}

// SetMaxLength sets the maximum length in UTF-16 code units.
// A negative value removes the limit.
func (t *TextInput) SetMaxLength(n int) {
	t.maxLength = n
}

// MinLength returns the minimum length in UTF-16 code units, if set.
func (t *TextInput) MinLength() (int, bool) {
	if t.minLength < 0 {
		return 0, false
	}
	return t.minLength, true
}

// SetMinLength sets the minimum length in UTF-16 code units.
// A negative value removes the limit.
func (t *TextInput) SetMinLength(n int) {
	t.minLength = n
}
