package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// parseInts converts each argument to an int.
func parseInts(args []string) ([]int, error) {
	out := make([]int, 0, len(args))
	for _, a := range args {
		v, err := strconv.Atoi(strings.TrimSpace(a))
		if err != nil {
			return nil, WrapExitError(ExitCommandError, fmt.Sprintf("invalid integer %q", a), err)
		}
		out = append(out, v)
	}
	return out, nil
}

// parseList converts a comma-separated list such as "1,2,4" to ints.
// The empty string is the empty list.
func parseList(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return []int{}, nil
	}
	return parseInts(strings.Split(s, ","))
}
