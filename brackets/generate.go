package brackets

import "fmt"

// Generate returns every well-formed string made of n pairs of "()",
// in lexicographic order ('(' sorts before ')').
//
// Backtracking: an opener may be placed while fewer than n are used, a
// closer while it would not exceed the openers placed so far. The result
// has Catalan(n) entries. Generate(0) returns [""].
//
// Complexity: O(4ⁿ/√n) time and output size.
func Generate(n int) ([]string, error) {
	if n < 0 {
		return nil, fmt.Errorf("Generate(%d): %w", n, ErrNegativePairs)
	}

	var out []string
	buf := make([]byte, 0, 2*n)
	var walk func(open, closed int)
	walk = func(open, closed int) {
		if len(buf) == 2*n {
			out = append(out, string(buf))
			return
		}
		if open < n {
			buf = append(buf, '(')
			walk(open+1, closed)
			buf = buf[:len(buf)-1]
		}
		if closed < open {
			buf = append(buf, ')')
			walk(open, closed+1)
			buf = buf[:len(buf)-1]
		}
	}
	walk(0, 0)

	return out, nil
}
