package strparse

import (
	"unicode/utf8"
)

// ByteCount consumes exactly N bytes. It fails when the input is
// shorter than N bytes or when byte N is not a character boundary.
// ByteCount{N: 0} always succeeds with an empty prefix.
type ByteCount struct {
	N int
}

// Name implements Rule.
func (r ByteCount) Name() string { return "ByteCount" }

// Apply implements FlowRule.
func (r ByteCount) Apply(input string) (string, bool, string) {
	if r.N > len(input) {
		return "", false, input
	}
	if r.N < len(input) && !utf8.RuneStart(input[r.N]) {
		return "", false, input
	}
	return input[:r.N], true, input[r.N:]
}

// CharCount consumes exactly N characters. It fails when the input has
// fewer than N characters. CharCount{N: 0} always succeeds with an
// empty prefix.
type CharCount struct {
	N int
}

// Name implements Rule.
func (r CharCount) Name() string { return "CharCount" }

// Apply implements FlowRule.
func (r CharCount) Apply(input string) (string, bool, string) {
	if r.N == 0 {
		return "", true, input
	}
	seen := 0
	for i := range input {
		if seen == r.N {
			return input[:i], true, input[i:]
		}
		seen++
	}
	// The loop yields the index of each character start, so a string of
	// exactly N characters exits the loop with seen == N.
	if seen == r.N {
		return input, true, ""
	}
	return "", false, input
}
