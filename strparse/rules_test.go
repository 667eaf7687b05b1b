package strparse

import (
	"strings"
	"testing"
)

func TestByteCount(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		input    string
		wantOut  string
		wantOK   bool
		wantRest string
	}{
		{"exact length", 4, "test", "test", true, ""},
		{"less than length", 2, "hello", "he", true, "llo"},
		{"more than length", 10, "short", "", false, "short"},
		{"zero count", 0, "abc", "", true, "abc"},
		{"zero count empty input", 0, "", "", true, ""},
		{"split inside multibyte char", 2, "你好世界", "", false, "你好世界"},
		{"split on multibyte boundary", 3, "你好", "你", true, "好"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, ok, rest := ByteCount{N: tt.n}.Apply(tt.input)
			if out != tt.wantOut || ok != tt.wantOK || rest != tt.wantRest {
				t.Errorf("ByteCount{%d}.Apply(%q) = (%q, %v, %q), want (%q, %v, %q)",
					tt.n, tt.input, out, ok, rest, tt.wantOut, tt.wantOK, tt.wantRest)
			}
		})
	}
}

func TestCharCount(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		input    string
		wantOut  string
		wantOK   bool
		wantRest string
	}{
		{"exact length", 4, "test", "test", true, ""},
		{"less than length", 2, "hello", "he", true, "llo"},
		{"more than length", 10, "short", "", false, "short"},
		{"zero count", 0, "abc", "", true, "abc"},
		{"zero count empty input", 0, "", "", true, ""},
		{"multibyte chars", 2, "你好世界", "你好", true, "世界"},
		{"multibyte exact", 2, "你好", "你好", true, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, ok, rest := CharCount{N: tt.n}.Apply(tt.input)
			if out != tt.wantOut || ok != tt.wantOK || rest != tt.wantRest {
				t.Errorf("CharCount{%d}.Apply(%q) = (%q, %v, %q), want (%q, %v, %q)",
					tt.n, tt.input, out, ok, rest, tt.wantOut, tt.wantOK, tt.wantRest)
			}
		})
	}
}

func TestChar(t *testing.T) {
	tests := []struct {
		name     string
		c        rune
		input    string
		wantOut  rune
		wantOK   bool
		wantRest string
	}{
		{"match", 'a', "a123", 'a', true, "123"},
		{"no match", 'd', "abc", 0, false, "abc"},
		{"empty input", 'a', "", 0, false, ""},
		{"multibyte match", '你', "你好", '你', true, "好"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, ok, rest := Char{C: tt.c}.Apply(tt.input)
			if out != tt.wantOut || ok != tt.wantOK || rest != tt.wantRest {
				t.Errorf("Char{%q}.Apply(%q) = (%q, %v, %q), want (%q, %v, %q)",
					tt.c, tt.input, out, ok, rest, tt.wantOut, tt.wantOK, tt.wantRest)
			}
		})
	}
}

func TestOneOf(t *testing.T) {
	tests := []struct {
		name     string
		set      *CharSet
		input    string
		wantOut  rune
		wantOK   bool
		wantRest string
	}{
		{"letter matches", ASCIILettersDigits, "a123", 'a', true, "123"},
		{"digit set rejects letter", Digits, "abc", 0, false, "abc"},
		{"empty input", Digits, "", 0, false, ""},
		{"digit matches", Digits, "7x", '7', true, "x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, ok, rest := OneOf{Set: tt.set}.Apply(tt.input)
			if out != tt.wantOut || ok != tt.wantOK || rest != tt.wantRest {
				t.Errorf("OneOf.Apply(%q) = (%q, %v, %q), want (%q, %v, %q)",
					tt.input, out, ok, rest, tt.wantOut, tt.wantOK, tt.wantRest)
			}
		})
	}
}

func TestNInCharSet(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		input    string
		wantOut  string
		wantOK   bool
		wantRest string
	}{
		{"all digits", 3, "123abc", "123", true, "abc"},
		{"rejected char before n", 3, "12a3", "", false, "12a3"},
		{"input too short", 5, "123", "", false, "123"},
		{"exact", 3, "456", "456", true, ""},
		{"empty input", 1, "", "", false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, ok, rest := NInCharSet{N: tt.n, Set: Digits}.Apply(tt.input)
			if out != tt.wantOut || ok != tt.wantOK || rest != tt.wantRest {
				t.Errorf("NInCharSet{%d}.Apply(%q) = (%q, %v, %q), want (%q, %v, %q)",
					tt.n, tt.input, out, ok, rest, tt.wantOut, tt.wantOK, tt.wantRest)
			}
		})
	}
}

func TestUntilChar(t *testing.T) {
	tests := []struct {
		name     string
		mode     UntilMode
		input    string
		wantOut  string
		wantOK   bool
		wantRest string
	}{
		{"discard", Discard, "abc;def", "abc", true, "def"},
		{"keep left", KeepLeft, "abc;def", "abc;", true, "def"},
		{"keep right", KeepRight, "abc;def", "abc", true, ";def"},
		{"delimiter first", Discard, ";abcdef", "", true, "abcdef"},
		{"delimiter first keep left", KeepLeft, ";abcdef", ";", true, "abcdef"},
		{"no delimiter", Discard, "abcdef", "", false, "abcdef"},
		{"empty input", Discard, "", "", false, ""},
		{"long input swar path", Discard, strings.Repeat("x", 30) + ";tail", strings.Repeat("x", 30), true, "tail"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, ok, rest := UntilChar{C: ';', Mode: tt.mode}.Apply(tt.input)
			if out != tt.wantOut || ok != tt.wantOK || rest != tt.wantRest {
				t.Errorf("UntilChar{';', %v}.Apply(%q) = (%q, %v, %q), want (%q, %v, %q)",
					tt.mode, tt.input, out, ok, rest, tt.wantOut, tt.wantOK, tt.wantRest)
			}
		})
	}
}

func TestUntilStr(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		mode     UntilMode
		input    string
		wantOut  string
		wantOK   bool
		wantRest string
	}{
		{"discard", "--", Discard, "abc--def", "abc", true, "def"},
		{"keep left", "--", KeepLeft, "abc--def", "abc--", true, "def"},
		{"keep right", "--", KeepRight, "abc--def", "abc", true, "--def"},
		{"no pattern", "--", Discard, "abcdef", "", false, "abcdef"},
		{"empty input", "--", Discard, "", "", false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, ok, rest := UntilStr{Pattern: tt.pattern, Mode: tt.mode}.Apply(tt.input)
			if out != tt.wantOut || ok != tt.wantOK || rest != tt.wantRest {
				t.Errorf("UntilStr{%q, %v}.Apply(%q) = (%q, %v, %q), want (%q, %v, %q)",
					tt.pattern, tt.mode, tt.input, out, ok, rest, tt.wantOut, tt.wantOK, tt.wantRest)
			}
		})
	}
}

func TestUntilOneInCharSet(t *testing.T) {
	commaStar := MustCharSet(",*", 2)
	tests := []struct {
		name     string
		set      *CharSet
		mode     UntilMode
		input    string
		wantOut  string
		wantOK   bool
		wantRest string
	}{
		{"digit discard", Digits, Discard, "abc1def", "abc", true, "def"},
		{"digit keep left", Digits, KeepLeft, "abc1def", "abc1", true, "def"},
		{"digit keep right", Digits, KeepRight, "abc1def", "abc", true, "1def"},
		{"match at start keep right", ASCIILetters, KeepRight, "a123", "", true, "a123"},
		{"no match", Digits, Discard, "abcdef", "", false, "abcdef"},
		{"empty input", Digits, Discard, "", "", false, ""},
		{"pair fast path comma", commaStar, Discard, "12.3,rest", "12.3", true, "rest"},
		{"pair fast path star", commaStar, Discard, "12.3*55", "12.3", true, "55"},
		{"pair fast path miss", commaStar, Discard, "123456789", "", false, "123456789"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, ok, rest := UntilOneInCharSet{Set: tt.set, Mode: tt.mode}.Apply(tt.input)
			if out != tt.wantOut || ok != tt.wantOK || rest != tt.wantRest {
				t.Errorf("UntilOneInCharSet{%v}.Apply(%q) = (%q, %v, %q), want (%q, %v, %q)",
					tt.mode, tt.input, out, ok, rest, tt.wantOut, tt.wantOK, tt.wantRest)
			}
		})
	}
}

func TestUntilNotInCharSet(t *testing.T) {
	tests := []struct {
		name     string
		mode     UntilMode
		input    string
		wantOut  string
		wantOK   bool
		wantRest string
	}{
		{"discard", Discard, "123abc", "123", true, "bc"},
		{"keep left", KeepLeft, "123abc", "123a", true, "bc"},
		{"keep right", KeepRight, "123abc", "123", true, "abc"},
		{"all in set", Discard, "12345", "", false, "12345"},
		{"empty input", Discard, "", "", false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, ok, rest := UntilNotInCharSet{Set: Digits, Mode: tt.mode}.Apply(tt.input)
			if out != tt.wantOut || ok != tt.wantOK || rest != tt.wantRest {
				t.Errorf("UntilNotInCharSet{%v}.Apply(%q) = (%q, %v, %q), want (%q, %v, %q)",
					tt.mode, tt.input, out, ok, rest, tt.wantOut, tt.wantOK, tt.wantRest)
			}
		})
	}
}

func TestUntilNInCharSet(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		mode     UntilMode
		input    string
		wantOut  string
		wantOK   bool
		wantRest string
	}{
		{"second digit discard", 2, Discard, "a1b2c3", "a1b", true, "c3"},
		{"second digit keep left", 2, KeepLeft, "a1b2c3", "a1b2", true, "c3"},
		{"second digit keep right", 2, KeepRight, "a1b2c3", "a1b", true, "2c3"},
		{"exactly n matches", 3, Discard, "1a2b3", "1a2b", true, ""},
		{"n minus one matches", 3, Discard, "1a2b", "", false, "1a2b"},
		{"empty input", 1, Discard, "", "", false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, ok, rest := UntilNInCharSet{N: tt.n, Set: Digits, Mode: tt.mode}.Apply(tt.input)
			if out != tt.wantOut || ok != tt.wantOK || rest != tt.wantRest {
				t.Errorf("UntilNInCharSet{%d, %v}.Apply(%q) = (%q, %v, %q), want (%q, %v, %q)",
					tt.n, tt.mode, tt.input, out, ok, rest, tt.wantOut, tt.wantOK, tt.wantRest)
			}
		})
	}
}

// Every flow rule must return the input unchanged on failure, and a
// remainder that is a suffix of the input on success.
func TestFailureLeavesInputUnchanged(t *testing.T) {
	inputs := []string{"", "abc", "no delimiters here", "你好"}
	for _, input := range inputs {
		if _, ok, rest := (UntilChar{C: ';', Mode: Discard}).Apply(input); ok || rest != input {
			t.Errorf("UntilChar failure on %q returned rest %q", input, rest)
		}
		if _, ok, rest := (UntilStr{Pattern: "@@", Mode: Discard}).Apply(input); ok || rest != input {
			t.Errorf("UntilStr failure on %q returned rest %q", input, rest)
		}
		if _, ok, rest := (ByteCount{N: 100}).Apply(input); ok || rest != input {
			t.Errorf("ByteCount failure on %q returned rest %q", input, rest)
		}
		if _, ok, rest := (CharCount{N: 100}).Apply(input); ok || rest != input {
			t.Errorf("CharCount failure on %q returned rest %q", input, rest)
		}
	}
}

func TestSuccessRestIsSuffix(t *testing.T) {
	input := "field1,field2,field3"
	out, ok, rest := UntilChar{C: ',', Mode: Discard}.Apply(input)
	if !ok {
		t.Fatal("expected match")
	}
	if !strings.HasSuffix(input, rest) {
		t.Errorf("rest %q is not a suffix of %q", rest, input)
	}
	// Discard mode drops exactly the delimiter between prefix and rest.
	if out+","+rest != input {
		t.Errorf("prefix %q + delimiter + rest %q does not reassemble %q", out, rest, input)
	}
}
