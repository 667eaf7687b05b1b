package strparse

import (
	"errors"
	"testing"
)

func TestContextTakeAdvances(t *testing.T) {
	ctx := NewContext().Init("a,b,c")
	comma := UntilChar{C: ',', Mode: Discard}

	out, ok := Take(ctx, comma)
	if !ok || out != "a" {
		t.Fatalf("Take = (%q, %v), want (%q, true)", out, ok, "a")
	}
	if ctx.Rest() != "b,c" {
		t.Fatalf("Rest() = %q, want %q", ctx.Rest(), "b,c")
	}

	out, ok = Take(ctx, comma)
	if !ok || out != "b" {
		t.Fatalf("Take = (%q, %v), want (%q, true)", out, ok, "b")
	}

	// No comma left: the rule fails and the cursor stays put.
	out, ok = Take(ctx, comma)
	if ok || out != "" {
		t.Fatalf("Take = (%q, %v), want failure", out, ok)
	}
	if ctx.Rest() != "c" {
		t.Fatalf("Rest() = %q, want %q", ctx.Rest(), "c")
	}
}

func TestContextReset(t *testing.T) {
	ctx := NewContext().Init("x,y")
	comma := UntilChar{C: ',', Mode: Discard}

	Take(ctx, comma)
	if ctx.Rest() != "y" {
		t.Fatalf("Rest() = %q, want %q", ctx.Rest(), "y")
	}
	ctx.Reset()
	if ctx.Rest() != "x,y" {
		t.Fatalf("after Reset, Rest() = %q, want full input", ctx.Rest())
	}
	if ctx.Full() != "x,y" {
		t.Fatalf("Full() = %q, want %q", ctx.Full(), "x,y")
	}
}

func TestContextInitReplacesInput(t *testing.T) {
	ctx := NewContext().Init("first")
	Skip(ctx, ByteCount{N: 3})
	ctx.Init("second,rest")
	if ctx.Rest() != "second,rest" {
		t.Fatalf("after Init, Rest() = %q", ctx.Rest())
	}
}

func TestTakeStrict(t *testing.T) {
	ctx := NewContext().Init("header,body")
	comma := UntilChar{C: ',', Mode: Discard}

	out, err := TakeStrict(ctx, comma)
	if err != nil || out != "header" {
		t.Fatalf("TakeStrict = (%q, %v), want (%q, nil)", out, err, "header")
	}

	// "body" holds no comma: strict verbs must surface the failure.
	_, err = TakeStrict(ctx, comma)
	if err == nil {
		t.Fatal("TakeStrict on missing delimiter: expected error")
	}
	var verbErr *VerbError
	if !errors.As(err, &verbErr) {
		t.Fatalf("error %v is not a *VerbError", err)
	}
	if verbErr.Verb != "TakeStrict" || verbErr.Rule != "UntilChar" {
		t.Errorf("VerbError = %+v", verbErr)
	}
}

func TestSkipStrict(t *testing.T) {
	ctx := NewContext().Init("a,b")
	comma := UntilChar{C: ',', Mode: Discard}

	if _, err := SkipStrict(ctx, comma); err != nil {
		t.Fatalf("SkipStrict = %v, want nil", err)
	}
	if ctx.Rest() != "b" {
		t.Fatalf("Rest() = %q, want %q", ctx.Rest(), "b")
	}
	if _, err := SkipStrict(ctx, comma); err == nil {
		t.Fatal("SkipStrict on missing delimiter: expected error")
	}
}

func TestSkipChaining(t *testing.T) {
	ctx := NewContext().Init("one,two,three")
	comma := UntilChar{C: ',', Mode: Discard}

	out, ok := Take(Skip(Skip(ctx, comma), comma), UntilChar{C: 'e', Mode: KeepLeft})
	if !ok || out != "thre" {
		t.Fatalf("chained take = (%q, %v)", out, ok)
	}
}

type validateAll struct{}

func (validateAll) Name() string           { return "validateAll" }
func (validateAll) Apply(input string) int { return len(input) }

func TestGlobalSeesFullInput(t *testing.T) {
	ctx := NewContext().Init("abcdef")
	Skip(ctx, ByteCount{N: 4})
	// The cursor sits at "ef" but Global must still see all six bytes.
	if got := Global(ctx, validateAll{}); got != 6 {
		t.Fatalf("Global = %d, want 6", got)
	}
}
