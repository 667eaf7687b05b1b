package strparse

import (
	"fmt"
	"unicode/utf8"
)

// Filter is a predicate over a single character. Filters are immutable
// values, typically package-level constants, shared freely.
type Filter interface {
	// Name identifies the filter kind in diagnostics.
	Name() string
	// Accepts reports whether r belongs to the class.
	Accepts(r rune) bool
}

// CharSet is a fixed list of allowed characters. Membership is a linear
// scan, which beats fancier structures for the small sets the sentence
// grammar needs (a handful of delimiters, the decimal digits).
type CharSet struct {
	table []rune
}

// NewCharSet builds a CharSet from s, which must contain exactly size
// characters. The size parameter makes the expected cardinality part of
// the call site, mirroring how the rule constants state their arity.
func NewCharSet(s string, size int) (*CharSet, error) {
	n := utf8.RuneCountInString(s)
	if n != size {
		return nil, fmt.Errorf("charset size mismatch: expected %d characters, got %d", size, n)
	}
	table := make([]rune, 0, size)
	for _, r := range s {
		table = append(table, r)
	}
	return &CharSet{table: table}, nil
}

// MustCharSet is like NewCharSet but panics on error. Intended for
// package-level constants known to be valid.
func MustCharSet(s string, size int) *CharSet {
	cs, err := NewCharSet(s, size)
	if err != nil {
		panic("strparse: MustCharSet(" + s + "): " + err.Error())
	}
	return cs
}

// Name implements Filter.
func (c *CharSet) Name() string { return "CharSet" }

// Accepts implements Filter.
func (c *CharSet) Accepts(r rune) bool {
	for _, t := range c.table {
		if t == r {
			return true
		}
	}
	return false
}

// Len returns the number of characters in the set.
func (c *CharSet) Len() int { return len(c.table) }

// asciiPair reports the set's two members when it holds exactly two
// ASCII characters, enabling the SWAR fast path in UntilOneInCharSet.
func (c *CharSet) asciiPair() (byte, byte, bool) {
	if len(c.table) != 2 || c.table[0] >= 0x80 || c.table[1] >= 0x80 {
		return 0, 0, false
	}
	return byte(c.table[0]), byte(c.table[1]), true
}

var (
	// Digits accepts the decimal digits 0-9.
	Digits = MustCharSet("0123456789", 10)

	// ASCIILetters accepts the 52 upper- and lowercase ASCII letters.
	ASCIILetters = MustCharSet(
		"ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz", 52)

	// ASCIILettersDigits accepts ASCII letters and decimal digits.
	ASCIILettersDigits = MustCharSet(
		"0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz", 62)
)
