package strparse

import (
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"github.com/coregx/nmea/internal/scan"
)

// split cuts input around a delimiter that starts at byte i and spans
// dlen bytes, placing the delimiter according to mode.
func split(input string, i, dlen int, mode UntilMode) (string, string) {
	switch mode {
	case KeepLeft:
		return input[:i+dlen], input[i+dlen:]
	case KeepRight:
		return input[:i], input[i:]
	default: // Discard
		return input[:i], input[i+dlen:]
	}
}

// UntilChar consumes everything up to the first occurrence of C. The
// tie-break mode decides where C itself lands. Fails when C does not
// occur.
type UntilChar struct {
	C    rune
	Mode UntilMode
}

// Name implements Rule.
func (r UntilChar) Name() string { return "UntilChar" }

// Apply implements FlowRule.
func (r UntilChar) Apply(input string) (string, bool, string) {
	var i int
	if r.C < utf8.RuneSelf {
		i = scan.IndexByte(input, byte(r.C))
	} else {
		i = strings.IndexRune(input, r.C)
	}
	if i < 0 {
		return "", false, input
	}
	prefix, rest := split(input, i, utf8.RuneLen(r.C), r.Mode)
	log.Trace().Str("rule", r.Name()).Str("prefix", prefix).Str("rest", rest).Msg("matched")
	return prefix, true, rest
}

// UntilStr consumes everything up to the first occurrence of Pattern.
// Fails when Pattern does not occur.
type UntilStr struct {
	Pattern string
	Mode    UntilMode
}

// Name implements Rule.
func (r UntilStr) Name() string { return "UntilStr" }

// Apply implements FlowRule.
func (r UntilStr) Apply(input string) (string, bool, string) {
	i := strings.Index(input, r.Pattern)
	if i < 0 {
		return "", false, input
	}
	prefix, rest := split(input, i, len(r.Pattern), r.Mode)
	log.Trace().Str("rule", r.Name()).Str("prefix", prefix).Str("rest", rest).Msg("matched")
	return prefix, true, rest
}

// UntilOneInCharSet consumes everything up to the first character the
// filter accepts. Fails when no accepted character occurs.
type UntilOneInCharSet struct {
	Set  *CharSet
	Mode UntilMode
}

// Name implements Rule.
func (r UntilOneInCharSet) Name() string { return "UntilOneInCharSet" }

// Apply implements FlowRule.
func (r UntilOneInCharSet) Apply(input string) (string, bool, string) {
	// Two-byte ASCII sets (comma-or-star is the workhorse) go through
	// the SWAR scanner.
	if b1, b2, ok := r.Set.asciiPair(); ok {
		i := scan.IndexByte2(input, b1, b2)
		if i < 0 {
			return "", false, input
		}
		prefix, rest := split(input, i, 1, r.Mode)
		return prefix, true, rest
	}
	for i, c := range input {
		if r.Set.Accepts(c) {
			prefix, rest := split(input, i, utf8.RuneLen(c), r.Mode)
			return prefix, true, rest
		}
	}
	return "", false, input
}

// UntilNotInCharSet consumes everything up to the first character the
// filter rejects. Fails when every character is accepted.
type UntilNotInCharSet struct {
	Set  *CharSet
	Mode UntilMode
}

// Name implements Rule.
func (r UntilNotInCharSet) Name() string { return "UntilNotInCharSet" }

// Apply implements FlowRule.
func (r UntilNotInCharSet) Apply(input string) (string, bool, string) {
	for i, c := range input {
		if !r.Set.Accepts(c) {
			prefix, rest := split(input, i, utf8.RuneLen(c), r.Mode)
			return prefix, true, rest
		}
	}
	return "", false, input
}

// UntilNInCharSet consumes everything up to the N-th character the
// filter accepts; the N-th match plays the role of the delimiter for
// the tie-break mode. Fails when fewer than N accepted characters
// occur.
type UntilNInCharSet struct {
	N    int
	Set  *CharSet
	Mode UntilMode
}

// Name implements Rule.
func (r UntilNInCharSet) Name() string { return "UntilNInCharSet" }

// Apply implements FlowRule.
func (r UntilNInCharSet) Apply(input string) (string, bool, string) {
	remaining := r.N
	for i, c := range input {
		if !r.Set.Accepts(c) {
			continue
		}
		remaining--
		if remaining == 0 {
			prefix, rest := split(input, i, utf8.RuneLen(c), r.Mode)
			return prefix, true, rest
		}
	}
	return "", false, input
}
