package mnemonic

import (
	"sort"
	"testing"
)

func TestLanguages(t *testing.T) {
	got := Languages()
	want := []string{"en", "es", "fr", "it", "ja", "pt"}

	if len(got) != len(want) {
		t.Fatalf("Languages() returned %d codes, want %d", len(got), len(want))
	}
	if !sort.StringsAreSorted(got) {
		t.Errorf("Languages() = %v, not sorted", got)
	}
	for i, code := range want {
		if got[i] != code {
			t.Errorf("Languages()[%d] = %q, want %q", i, got[i], code)
		}
	}
}

func TestLanguageDelimiters(t *testing.T) {
	for code, info := range languages {
		want := " "
		if code == Japanese {
			want = ideographicSpace
		}
		if info.delimiter != want {
			t.Errorf("delimiter for %q = %q, want %q", code, info.delimiter, want)
		}
	}
}
