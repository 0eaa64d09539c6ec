package brackets

// opened records an opener on the stack together with where it was seen.
type opened struct {
	r      rune
	offset int
}

// IsValid reports whether the bracket runes of s are properly nested and closed.
//
// Openers are pushed onto a stack. A closer must find its matching opener on
// top; an empty stack or a different opener stops the walk with false.
// Non-bracket runes do not touch the stack. s is valid iff the stack is
// empty at the end.
func IsValid(s string) bool {
	return Check(s) == nil
}

// Check is IsValid with a diagnosis: it returns nil for a valid string and
// a *MismatchError describing the first violation otherwise.
func Check(s string) error {
	stack := make([]opened, 0, 16)

	for i, r := range s {
		if _, ok := closers[r]; ok {
			stack = append(stack, opened{r: r, offset: i})
			continue
		}
		want, ok := pairs[r]
		if !ok {
			continue // not a bracket
		}
		if len(stack) == 0 {
			return &MismatchError{Offset: i, Got: r, Kind: ErrUnexpectedCloser}
		}
		top := stack[len(stack)-1]
		if top.r != want {
			return &MismatchError{Offset: i, Got: r, Want: closers[top.r], Kind: ErrMismatchedCloser}
		}
		stack = stack[:len(stack)-1]
	}

	if len(stack) > 0 {
		top := stack[len(stack)-1]
		return &MismatchError{Offset: top.offset, Got: top.r, Want: closers[top.r], Kind: ErrUnclosedOpener}
	}

	return nil
}
