package brackets

import (
	"errors"
	"fmt"
)

var (
	// ErrUnexpectedCloser indicates a closing bracket with no open bracket to close.
	ErrUnexpectedCloser = errors.New("brackets: closing bracket without opener")

	// ErrMismatchedCloser indicates a closing bracket of a different kind
	// than the most recently opened one.
	ErrMismatchedCloser = errors.New("brackets: closing bracket does not match opener")

	// ErrUnclosedOpener indicates input ended while brackets were still open.
	ErrUnclosedOpener = errors.New("brackets: unclosed opening bracket")

	// ErrNegativePairs is returned by Generate for n < 0.
	ErrNegativePairs = errors.New("brackets: number of pairs must be non-negative")
)

// MismatchError locates the first violation found by Check.
type MismatchError struct {
	// Offset is the byte offset of the offending rune. For ErrUnclosedOpener
	// it is the offset of the innermost unclosed opener.
	Offset int

	// Got is the offending rune.
	Got rune

	// Want is the closer that would have been accepted, or 0 when no
	// bracket was open.
	Want rune

	// Kind is one of ErrUnexpectedCloser, ErrMismatchedCloser, ErrUnclosedOpener.
	Kind error
}

func (e *MismatchError) Error() string {
	if e.Want == 0 || errors.Is(e.Kind, ErrUnclosedOpener) {
		return fmt.Sprintf("%v: %q at offset %d", e.Kind, e.Got, e.Offset)
	}

	return fmt.Sprintf("%v: got %q at offset %d, want %q", e.Kind, e.Got, e.Offset, e.Want)
}

// Unwrap exposes Kind to errors.Is.
func (e *MismatchError) Unwrap() error { return e.Kind }

// pairs maps each closer to its opener.
var pairs = map[rune]rune{
	')': '(',
	']': '[',
	'}': '{',
}

// closers maps each opener to its closer.
var closers = map[rune]rune{
	'(': ')',
	'[': ']',
	'{': '}',
}
