package strparse

import (
	"unicode/utf8"
)

// Char consumes the first character of the input when it equals C.
type Char struct {
	C rune
}

// Name implements Rule.
func (r Char) Name() string { return "Char" }

// Apply implements FlowRule.
func (r Char) Apply(input string) (rune, bool, string) {
	c, size := utf8.DecodeRuneInString(input)
	if size == 0 || c != r.C {
		return 0, false, input
	}
	return c, true, input[size:]
}

// OneOf consumes the first character of the input when the filter
// accepts it.
type OneOf struct {
	Set Filter
}

// Name implements Rule.
func (r OneOf) Name() string { return "OneOf" }

// Apply implements FlowRule.
func (r OneOf) Apply(input string) (rune, bool, string) {
	c, size := utf8.DecodeRuneInString(input)
	if size == 0 || !r.Set.Accepts(c) {
		return 0, false, input
	}
	return c, true, input[size:]
}

// NInCharSet consumes exactly N leading characters, all of which must
// be accepted by the filter. It fails without consuming anything when a
// rejected character appears among the first N, or when the input is
// shorter than N characters.
type NInCharSet struct {
	N   int
	Set Filter
}

// Name implements Rule.
func (r NInCharSet) Name() string { return "NInCharSet" }

// Apply implements FlowRule.
func (r NInCharSet) Apply(input string) (string, bool, string) {
	count := 0
	for i, c := range input {
		if !r.Set.Accepts(c) {
			return "", false, input
		}
		count++
		if count == r.N {
			end := i + utf8.RuneLen(c)
			return input[:end], true, input[end:]
		}
	}
	return "", false, input
}
