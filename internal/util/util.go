package util

import "strings"

// JoinNames renders names as a natural-language list with an Oxford comma,
// e.g. "A", "A and B", or "A, B, and C" -- used to describe the non-terminals
// participating in a cycle or left-recursion path without exposing a raw
// slice to the caller. Does not mutate names.
func JoinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + " and " + names[1]
	default:
		head := names[:len(names)-1]
		last := names[len(names)-1]
		return strings.Join(head, ", ") + ", and " + last
	}
}
