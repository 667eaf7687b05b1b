// Package strparse provides a composable, zero-copy string tokenizer.
//
// The engine is built from three pieces:
//
//   - Filters: character-class predicates (see CharSet and the Digits,
//     ASCIILetters, ASCIILettersDigits constants).
//   - Rules: small combinators that each consume a prefix of the input
//     and return the remainder. Flow rules advance a cursor; global
//     rules validate the full input.
//   - Context: a cursor over an owned input string. Rules are applied
//     through the verbs Take, TakeStrict, Skip, SkipStrict and Global.
//
// Rules never allocate for tokens: every produced token is a substring
// of the input, sharing its backing storage. A token stays valid until
// the context's input is replaced with Init.
//
// Basic usage:
//
//	ctx := strparse.NewContext()
//	ctx.Init("a,b,c")
//	comma := strparse.UntilChar{C: ',', Mode: strparse.Discard}
//	field, ok := strparse.Take(ctx, comma)
//	// field == "a", ok == true, ctx.Rest() == "b,c"
package strparse

import "fmt"

// Rule is the common surface of every parsing step. Rules are immutable
// values and can be shared freely across goroutines.
type Rule interface {
	// Name identifies the rule kind in diagnostics and errors.
	Name() string
}

// FlowRule is a parsing step that consumes a prefix of the input.
//
// Apply returns the produced value, whether the rule matched, and the
// remainder of the input. On failure (ok == false) the rules of this
// package return the input unchanged; a rule that reads several fields
// (such as the sentence package's coordinate and time rules) may
// instead return the remainder after the fields it consumed. rest is
// always a suffix of input, sharing its backing storage.
type FlowRule[T any] interface {
	Rule
	Apply(input string) (out T, ok bool, rest string)
}

// GlobalRule is a parsing step that inspects the entire input without
// advancing a cursor. Checksum validation is the canonical example.
type GlobalRule[T any] interface {
	Rule
	Apply(input string) T
}

// UntilMode is the tie-break policy for rules that split on a delimiter:
// it dictates which side of the split the delimiter lands on.
type UntilMode uint8

const (
	// Discard removes the delimiter from both the prefix and the
	// remainder.
	Discard UntilMode = iota
	// KeepLeft appends the delimiter to the prefix; the remainder
	// starts after it.
	KeepLeft
	// KeepRight leaves the delimiter as the first character of the
	// remainder.
	KeepRight
)

func (m UntilMode) String() string {
	switch m {
	case Discard:
		return "Discard"
	case KeepLeft:
		return "KeepLeft"
	case KeepRight:
		return "KeepRight"
	default:
		return fmt.Sprintf("UntilMode(%d)", uint8(m))
	}
}
