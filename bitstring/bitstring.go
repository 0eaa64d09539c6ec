// Package bitstring adds non-negative integers written as strings of '0'
// and '1' without converting them to machine integers, so operands may be
// arbitrarily long.
package bitstring

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDigit is returned when an operand contains a rune other than '0' or '1'.
var ErrInvalidDigit = errors.New("bitstring: invalid binary digit")

// Add returns a + b in binary. An empty operand counts as "0". The result
// carries no leading zeros ("0" for zero).
//
// Digits are summed from the right with a carry:
//
//	a b carry | sum carry'
//	0 0 0     | 0   0
//	1 0 0     | 1   0
//	1 1 0     | 0   1
//	1 1 1     | 1   1
//
// Complexity: O(max(len(a), len(b))).
func Add(a, b string) (string, error) {
	if err := check("a", a); err != nil {
		return "", err
	}
	if err := check("b", b); err != nil {
		return "", err
	}

	out := make([]byte, max(len(a), len(b))+1)
	i, j, k := len(a)-1, len(b)-1, len(out)-1
	carry := byte(0)
	for ; i >= 0 || j >= 0 || carry > 0; k-- {
		sum := carry
		if i >= 0 {
			sum += a[i] - '0'
			i--
		}
		if j >= 0 {
			sum += b[j] - '0'
			j--
		}
		out[k] = '0' + sum%2
		carry = sum / 2
	}
	// pad the unused prefix so TrimLeft sees digits only
	for ; k >= 0; k-- {
		out[k] = '0'
	}

	res := strings.TrimLeft(string(out), "0")
	if res == "" {
		return "0", nil
	}

	return res, nil
}

func check(name, s string) error {
	for i := 0; i < len(s); i++ {
		if s[i] != '0' && s[i] != '1' {
			return fmt.Errorf("%w: operand %s has %q at offset %d", ErrInvalidDigit, name, s[i], i)
		}
	}

	return nil
}
