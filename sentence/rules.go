package sentence

import (
	"strconv"

	"github.com/coregx/nmea/strparse"
)

// Shared tokenizer rules for the comma-delimited field grammar. All of
// them discard the delimiter: the field separators never belong to a
// token.
var (
	untilComma   = strparse.UntilChar{C: ',', Mode: strparse.Discard}
	untilStar    = strparse.UntilChar{C: '*', Mode: strparse.Discard}
	untilNewline = strparse.UntilChar{C: '\n', Mode: strparse.Discard}

	// commaOrStar terminates the fields that may be either mid-sentence
	// or last, depending on the receiver's firmware vintage.
	commaOrStar = strparse.UntilOneInCharSet{
		Set:  strparse.MustCharSet(",*", 2),
		Mode: strparse.Discard,
	}
)

// opt boxes a rule result: a failed take becomes nil.
func opt[T any](v T, ok bool) *T {
	if !ok {
		return nil
	}
	return &v
}

// The numeric field helpers mirror the non-strict decoding policy:
// an absent or unparsable field is nil, never an error.

func optF64(s string, ok bool) *float64 {
	if !ok {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func optU8(s string, ok bool) *uint8 {
	if !ok {
		return nil
	}
	v, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return nil
	}
	out := uint8(v)
	return &out
}

func optU16(s string, ok bool) *uint16 {
	if !ok {
		return nil
	}
	v, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return nil
	}
	out := uint16(v)
	return &out
}

func optI8(s string, ok bool) *int8 {
	if !ok {
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 8)
	if err != nil {
		return nil
	}
	out := int8(v)
	return &out
}

func optStr(s string, ok bool) *string {
	if !ok || s == "" {
		return nil
	}
	out := s
	return &out
}

// enumField reads one token and decodes it through parse. An absent or
// empty field is nil; an unrecognized value is a typed error, per the
// enum decoding policy.
func enumField[T any](c *strparse.Context, r strparse.FlowRule[string], parse func(string) (T, error)) (*T, error) {
	s, ok := strparse.Take(c, r)
	if !ok || s == "" {
		return nil, nil
	}
	v, err := parse(s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
