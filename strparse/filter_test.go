package strparse

import "testing"

func TestNewCharSet(t *testing.T) {
	tests := []struct {
		name    string
		s       string
		size    int
		wantErr bool
	}{
		{"exact size", "abc", 3, false},
		{"too long", "abcd", 3, true},
		{"too short", "ab", 3, true},
		{"empty string nonzero size", "", 3, true},
		{"unicode exact", "あいう", 3, false},
		{"unicode too long", "あいうえ", 3, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs, err := NewCharSet(tt.s, tt.size)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewCharSet(%q, %d) error = %v, wantErr %v", tt.s, tt.size, err, tt.wantErr)
			}
			if err == nil && cs.Len() != tt.size {
				t.Errorf("Len() = %d, want %d", cs.Len(), tt.size)
			}
		})
	}
}

func TestCharSetAccepts(t *testing.T) {
	cs := MustCharSet("abc", 3)
	for _, r := range "abc" {
		if !cs.Accepts(r) {
			t.Errorf("Accepts(%q) = false, want true", r)
		}
	}
	for _, r := range "d1あ" {
		if cs.Accepts(r) {
			t.Errorf("Accepts(%q) = true, want false", r)
		}
	}
}

func TestBuiltinSets(t *testing.T) {
	if Digits.Len() != 10 || ASCIILetters.Len() != 52 || ASCIILettersDigits.Len() != 62 {
		t.Fatalf("builtin set sizes = %d/%d/%d", Digits.Len(), ASCIILetters.Len(), ASCIILettersDigits.Len())
	}
	for _, r := range "0123456789" {
		if !Digits.Accepts(r) || !ASCIILettersDigits.Accepts(r) {
			t.Errorf("digit %q rejected", r)
		}
		if ASCIILetters.Accepts(r) {
			t.Errorf("ASCIILetters accepted digit %q", r)
		}
	}
	if !ASCIILetters.Accepts('Q') || !ASCIILetters.Accepts('q') {
		t.Error("ASCIILetters rejected a letter")
	}
}

func TestMustCharSetPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustCharSet with wrong size did not panic")
		}
	}()
	MustCharSet("ab", 3)
}
