package mnemonic

import (
	"errors"
	"testing"
)

// The two Japanese spellings below are the same text in different Unicode
// encodings: composed kana versus base kana plus combining dakuten. The third
// form is the canonical output, rejoined with the ideographic space.
const (
	jaComposed   = "るいじ りんご"
	jaDecomposed = "るいじ りんご"
	jaCanonical  = "るいじ　りんご"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		lang string
		in   string
		want string
	}{
		{"clean input", "en", "awesome ball", "awesome ball"},
		{"collapses runs", "en", "  awesome \t ball\n", "awesome ball"},
		{"ideographic space input", "en", "awesome　ball", "awesome ball"},
		{"japanese rejoined with ideographic space", "ja", jaComposed, jaCanonical},
		{"japanese decomposed input", "ja", jaDecomposed, jaCanonical},
		{"empty", "en", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.lang, tt.in)
			if err != nil {
				t.Fatalf("Normalize(%q, %q) error: %v", tt.lang, tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Normalize(%q, %q) = %q, want %q", tt.lang, tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalize_EquivalentEncodings(t *testing.T) {
	composed, err := Normalize("ja", jaComposed)
	if err != nil {
		t.Fatalf("Normalize() error: %v", err)
	}
	decomposed, err := Normalize("ja", jaDecomposed)
	if err != nil {
		t.Fatalf("Normalize() error: %v", err)
	}
	if composed != decomposed {
		t.Errorf("normalized forms differ: %q vs %q", composed, decomposed)
	}
}

func TestNormalize_UnknownLanguage(t *testing.T) {
	if _, err := Normalize("xx", "awesome ball"); !errors.Is(err, ErrLanguageNotSupported) {
		t.Fatalf("Normalize(\"xx\", ...) error = %v, want ErrLanguageNotSupported", err)
	}
}
