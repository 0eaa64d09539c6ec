// Package brackets validates and generates bracket sequences.
//
// A string is valid when every closing bracket matches the most recently
// opened, still-unclosed bracket of the same kind and no opener is left
// unclosed. Only ( ) [ ] { } are meaningful; every other rune is skipped.
//
//	IsValid("{[]}")  // true
//	IsValid("([)]")  // false
//	IsValid("a(b)c") // true
//
// Check performs the same walk but explains a failure with a *MismatchError.
// Generate enumerates every well-formed sequence of n "()" pairs.
//
// Complexity: O(len(s)) time, O(nesting depth) memory.
package brackets
