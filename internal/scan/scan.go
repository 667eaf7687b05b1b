// Package scan provides pure Go byte-scanning primitives for the rule
// engine.
//
// The Until* rules spend nearly all of their time locating a delimiter
// byte, so the search is done with SWAR (SIMD Within A Register): eight
// haystack bytes are examined per uint64 operation using the zero-byte
// detection formula from Hacker's Delight. There is no assembly and no
// CPU-feature dispatch; the SWAR path is the only path.
package scan

import (
	"math/bits"
)

const (
	lo8 = 0x0101010101010101
	hi8 = 0x8080808080808080
)

// load64 reads 8 bytes of s starting at i as a little-endian word.
func load64(s string, i int) uint64 {
	return uint64(s[i]) | uint64(s[i+1])<<8 | uint64(s[i+2])<<16 |
		uint64(s[i+3])<<24 | uint64(s[i+4])<<32 | uint64(s[i+5])<<40 |
		uint64(s[i+6])<<48 | uint64(s[i+7])<<56
}

// IndexByte returns the index of the first occurrence of needle in s,
// or -1 if needle is not present.
//
// Inputs shorter than one word are scanned byte-by-byte; the SWAR setup
// only pays for itself beyond that.
func IndexByte(s string, needle byte) int {
	n := len(s)
	if n < 8 {
		for i := 0; i < n; i++ {
			if s[i] == needle {
				return i
			}
		}
		return -1
	}

	// Broadcast the needle into every byte of a word, then XOR each
	// chunk against it: a matching byte becomes 0x00 and the zero-byte
	// formula lights its high bit.
	mask := uint64(needle) * lo8

	i := 0
	for i+8 <= n {
		chunk := load64(s, i)
		x := chunk ^ mask
		if z := (x - lo8) & ^x & hi8; z != 0 {
			return i + bits.TrailingZeros64(z)/8
		}
		i += 8
	}
	for ; i < n; i++ {
		if s[i] == needle {
			return i
		}
	}
	return -1
}

// IndexByte2 returns the index of the first occurrence of either needle
// in s, or -1 if neither is present. Both needles are checked in
// parallel within each 8-byte chunk.
func IndexByte2(s string, needle1, needle2 byte) int {
	n := len(s)
	if n < 8 {
		for i := 0; i < n; i++ {
			if s[i] == needle1 || s[i] == needle2 {
				return i
			}
		}
		return -1
	}

	mask1 := uint64(needle1) * lo8
	mask2 := uint64(needle2) * lo8

	i := 0
	for i+8 <= n {
		chunk := load64(s, i)
		x1 := chunk ^ mask1
		x2 := chunk ^ mask2
		z := ((x1 - lo8) & ^x1 & hi8) | ((x2 - lo8) & ^x2 & hi8)
		if z != 0 {
			return i + bits.TrailingZeros64(z)/8
		}
		i += 8
	}
	for ; i < n; i++ {
		if s[i] == needle1 || s[i] == needle2 {
			return i
		}
	}
	return -1
}
