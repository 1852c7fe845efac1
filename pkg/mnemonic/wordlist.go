package mnemonic

import (
	"bufio"
	"embed"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/unicode/norm"
)

// WordlistSize is the number of words in every language's wordlist. Each word
// encodes one 11-bit group, so the list covers index values 0-2047 exactly.
const WordlistSize = 2048

//go:embed wordlists/*.txt
var wordlistFS embed.FS

// Wordlist is an immutable, ordered word table for one language. Words are
// stored NFKD-normalized so lookups of normalized input always match.
type Wordlist struct {
	lang  string
	words []string
	index map[string]int
}

// Language returns the wordlist's language code.
func (w *Wordlist) Language() string {
	return w.lang
}

// Word returns the word at index i (0-2047).
func (w *Wordlist) Word(i int) string {
	return w.words[i]
}

// Index returns the index of word, which must already be in normalized form.
func (w *Wordlist) Index(word string) (int, bool) {
	i, ok := w.index[word]
	return i, ok
}

// Words returns a copy of the full word table in index order.
func (w *Wordlist) Words() []string {
	return append([]string(nil), w.words...)
}

// listEntry holds the lazily loaded wordlist for one language. The entry map
// is fixed at init, so concurrent callers only ever touch the sync.Once.
type listEntry struct {
	once sync.Once
	wl   *Wordlist
	err  error
}

var lists = func() map[string]*listEntry {
	m := make(map[string]*listEntry, len(languages))
	for code := range languages {
		m[code] = &listEntry{}
	}
	return m
}()

// LoadWordlist returns the wordlist for a language code, loading it from the
// bundled data on first use. The returned table is shared and immutable;
// repeated calls return the same instance. Unknown codes fail with
// ErrLanguageNotSupported, and corrupted bundled data (wrong word count,
// duplicate words) fails loading outright.
func LoadWordlist(lang string) (*Wordlist, error) {
	entry, ok := lists[lang]
	if !ok {
		return nil, fmt.Errorf("%q: %w", lang, ErrLanguageNotSupported)
	}
	entry.once.Do(func() {
		entry.wl, entry.err = readWordlist(lang)
	})
	return entry.wl, entry.err
}

// readWordlist parses a bundled word file: one word per line, exactly
// WordlistSize pairwise-distinct entries after normalization.
func readWordlist(lang string) (*Wordlist, error) {
	file := languages[lang].file
	f, err := wordlistFS.Open(file)
	if err != nil {
		return nil, fmt.Errorf("open wordlist %s: %w", file, err)
	}
	defer f.Close()

	words := make([]string, 0, WordlistSize)
	index := make(map[string]int, WordlistSize)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := norm.NFKD.String(strings.TrimSpace(scanner.Text()))
		if word == "" {
			continue
		}
		if _, dup := index[word]; dup {
			return nil, fmt.Errorf("wordlist %s: duplicate word %q", file, word)
		}
		index[word] = len(words)
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read wordlist %s: %w", file, err)
	}
	if len(words) != WordlistSize {
		return nil, fmt.Errorf("wordlist %s: %d words, want %d", file, len(words), WordlistSize)
	}
	return &Wordlist{lang: lang, words: words, index: index}, nil
}
