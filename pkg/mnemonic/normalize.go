package mnemonic

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalize canonicalizes phrase text for a language: Unicode NFKD, whitespace
// runs collapsed, words rejoined with the language's delimiter. Two
// canonically equivalent encodings of the same phrase normalize to identical
// bytes.
func Normalize(lang, text string) (string, error) {
	info, ok := languages[lang]
	if !ok {
		return "", fmt.Errorf("%q: %w", lang, ErrLanguageNotSupported)
	}
	return strings.Join(splitWords(text), info.delimiter), nil
}

// normalizeText is the language-agnostic form used by seed derivation, which
// takes no language argument. Words are rejoined with an ASCII space.
func normalizeText(text string) string {
	return strings.Join(splitWords(text), " ")
}

// splitWords applies NFKD and splits on whitespace. NFKD folds the
// ideographic space to U+0020, so Japanese phrases split like any other.
func splitWords(text string) []string {
	return strings.Fields(norm.NFKD.String(text))
}
