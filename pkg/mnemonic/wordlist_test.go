package mnemonic

import (
	"errors"
	"sync"
	"testing"
)

func TestLoadWordlist(t *testing.T) {
	for _, lang := range Languages() {
		t.Run(lang, func(t *testing.T) {
			wl, err := LoadWordlist(lang)
			if err != nil {
				t.Fatalf("LoadWordlist(%q) error: %v", lang, err)
			}
			if wl.Language() != lang {
				t.Errorf("Language() = %q, want %q", wl.Language(), lang)
			}

			words := wl.Words()
			if len(words) != WordlistSize {
				t.Fatalf("word count = %d, want %d", len(words), WordlistSize)
			}
			seen := make(map[string]struct{}, len(words))
			for _, word := range words {
				if word == "" {
					t.Fatal("wordlist contains an empty word")
				}
				if _, dup := seen[word]; dup {
					t.Fatalf("duplicate word %q", word)
				}
				seen[word] = struct{}{}
			}
		})
	}
}

func TestLoadWordlist_UnknownLanguage(t *testing.T) {
	wl, err := LoadWordlist("xx")
	if !errors.Is(err, ErrLanguageNotSupported) {
		t.Fatalf("LoadWordlist(\"xx\") error = %v, want ErrLanguageNotSupported", err)
	}
	if wl != nil {
		t.Errorf("LoadWordlist(\"xx\") = %v, want nil", wl)
	}
}

func TestLoadWordlist_Shared(t *testing.T) {
	first, err := LoadWordlist(English)
	if err != nil {
		t.Fatalf("LoadWordlist() error: %v", err)
	}
	second, err := LoadWordlist(English)
	if err != nil {
		t.Fatalf("LoadWordlist() error: %v", err)
	}
	if first != second {
		t.Error("repeated loads returned distinct instances")
	}
}

func TestLoadWordlist_Concurrent(t *testing.T) {
	const goroutines = 16

	results := make([]*Wordlist, goroutines)
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			wl, err := LoadWordlist(Japanese)
			if err != nil {
				t.Errorf("LoadWordlist() error: %v", err)
				return
			}
			results[i] = wl
		}(i)
	}
	wg.Wait()

	for i := 1; i < goroutines; i++ {
		if results[i] != results[0] {
			t.Fatal("concurrent loads returned distinct instances")
		}
	}
}

func TestWordlist_Index(t *testing.T) {
	wl, err := LoadWordlist(English)
	if err != nil {
		t.Fatalf("LoadWordlist() error: %v", err)
	}

	tests := []struct {
		word  string
		index int
	}{
		{"abandon", 0},
		{"about", 3},
		{"awesome", 132},
		{"ball", 143},
		{"zoo", 2047},
	}
	for _, tt := range tests {
		i, ok := wl.Index(tt.word)
		if !ok {
			t.Errorf("Index(%q) not found", tt.word)
			continue
		}
		if i != tt.index {
			t.Errorf("Index(%q) = %d, want %d", tt.word, i, tt.index)
		}
		if got := wl.Word(tt.index); got != tt.word {
			t.Errorf("Word(%d) = %q, want %q", tt.index, got, tt.word)
		}
	}

	if _, ok := wl.Index("awesomeball"); ok {
		t.Error("Index(\"awesomeball\") found, want missing")
	}
}

func TestWordlist_WordsCopy(t *testing.T) {
	wl, err := LoadWordlist(English)
	if err != nil {
		t.Fatalf("LoadWordlist() error: %v", err)
	}

	words := wl.Words()
	words[0] = "tampered"
	if got := wl.Word(0); got != "abandon" {
		t.Errorf("Word(0) = %q after mutating Words() copy, want %q", got, "abandon")
	}
}
