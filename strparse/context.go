package strparse

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// Context owns an input string and a cursor over it. The cursor only
// moves forward over the lifetime of one parse; Reset rewinds it and
// Init replaces the input.
//
// Reusing a single Context across many sentences is the expected
// pattern: Init keeps the allocation profile flat, which is why the
// sentence decoders take the context rather than a plain string.
//
// A Context is exclusively owned by one caller at a time; it is not
// safe for concurrent use.
type Context struct {
	full string
	off  int
}

// NewContext returns an empty context. Call Init before applying rules.
func NewContext() *Context {
	return &Context{}
}

// Init replaces the owned input with s and rewinds the cursor. Any
// tokens produced from the previous input remain valid strings but no
// longer relate to this context.
func (c *Context) Init(s string) *Context {
	c.full = s
	c.off = 0
	return c
}

// Reset rewinds the cursor to the start of the owned input.
func (c *Context) Reset() *Context {
	c.off = 0
	return c
}

// Full returns the entire owned input.
func (c *Context) Full() string { return c.full }

// Rest returns the unconsumed suffix of the input.
func (c *Context) Rest() string { return c.full[c.off:] }

// advance moves the cursor so that Rest() == rest. rest must be a
// suffix of the owned input, which every conforming rule guarantees.
func (c *Context) advance(rest string) {
	c.off = len(c.full) - len(rest)
}

// VerbError reports that a strict verb could not advance because its
// rule failed to match.
type VerbError struct {
	Verb string
	Rule string
}

// Error implements the error interface.
func (e *VerbError) Error() string {
	return fmt.Sprintf("%s: rule %s did not match", e.Verb, e.Rule)
}

// Take applies a flow rule at the cursor and returns its output. The
// cursor advances to the rule's remainder whether or not the rule
// matched; a failed rule leaves the remainder untouched, but rules that
// consume fields before failing (the sentence field rules do) still
// move the cursor past them. Downstream decoders rely on this to treat
// an empty field as absent while skipping its separator.
func Take[T any](c *Context, r FlowRule[T]) (T, bool) {
	out, ok, rest := r.Apply(c.Rest())
	c.advance(rest)
	return out, ok
}

// TakeStrict is Take for structurally mandatory fields: a rule failure
// becomes a *VerbError instead of a missing value.
func TakeStrict[T any](c *Context, r FlowRule[T]) (T, error) {
	out, ok := Take(c, r)
	if !ok {
		log.Warn().Str("rule", r.Name()).Msg("TakeStrict: rule did not match")
		return out, &VerbError{Verb: "TakeStrict", Rule: r.Name()}
	}
	return out, nil
}

// Skip applies a flow rule and discards its output, returning the
// context for chaining.
func Skip[T any](c *Context, r FlowRule[T]) *Context {
	Take(c, r)
	return c
}

// SkipStrict is Skip for structurally mandatory fields.
func SkipStrict[T any](c *Context, r FlowRule[T]) (*Context, error) {
	if _, ok := Take(c, r); !ok {
		log.Warn().Str("rule", r.Name()).Msg("SkipStrict: rule did not match")
		return c, &VerbError{Verb: "SkipStrict", Rule: r.Name()}
	}
	return c, nil
}

// Global applies a global rule to the full owned input, regardless of
// the cursor position.
func Global[T any](c *Context, r GlobalRule[T]) T {
	return r.Apply(c.full)
}
