package twosum

import "errors"

// DuplicatePolicy decides which index is remembered when a value occurs
// more than once before its complement shows up.
//
//   - KeepFirst  — the earliest index wins; later copies never overwrite it.
//   - KeepLatest — every occurrence overwrites the stored index.
//
// Both policies look the complement up before storing the current value,
// so an element can never pair with itself.
type DuplicatePolicy int

const (
	// KeepFirst remembers the earliest index of each value.
	KeepFirst DuplicatePolicy = iota

	// KeepLatest remembers the most recent index of each value.
	KeepLatest
)

// String implements fmt.Stringer.
func (p DuplicatePolicy) String() string {
	switch p {
	case KeepFirst:
		return "keep-first"
	case KeepLatest:
		return "keep-latest"
	default:
		return "unknown"
	}
}

// ErrOptionViolation is returned by FindPairE when an invalid Option is supplied.
var ErrOptionViolation = errors.New("twosum: invalid option supplied")

// Option configures FindPair via functional arguments.
type Option func(*Options)

// Options holds the tunables of FindPair.
type Options struct {
	// Policy selects how repeated values are indexed. Default KeepFirst.
	Policy DuplicatePolicy

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with Policy = KeepFirst.
func DefaultOptions() Options {
	return Options{Policy: KeepFirst}
}

// WithDuplicatePolicy selects the duplicate policy.
// Unknown values are recorded and surfaced as ErrOptionViolation by FindPairE.
func WithDuplicatePolicy(p DuplicatePolicy) Option {
	return func(o *Options) {
		if p != KeepFirst && p != KeepLatest {
			o.err = ErrOptionViolation
			return
		}
		o.Policy = p
	}
}
