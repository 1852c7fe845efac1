// Package mnemonic implements multi-language recovery phrases: entropy-to-word
// encoding with checksums, normalization-tolerant validation, and seed
// derivation.
package mnemonic

// minPhraseWords is the shortest accepted phrase. Single words carry too
// little material to be a recovery phrase and are rejected outright.
const minPhraseWords = 2

// GeneratePhrase creates a new recovery phrase in the given language from
// DefaultEntropyBits of secure randomness.
func GeneratePhrase(lang string) (string, error) {
	entropy, err := NewEntropy(DefaultEntropyBits)
	if err != nil {
		return "", err
	}
	return PhraseFromEntropy(lang, entropy)
}

// IsPhraseValid reports whether phrase is an acceptable recovery phrase for
// the given language. It is a total check: unsupported languages, unknown
// words, malformed input, and checksum failures all yield false, never an
// error or panic. Canonically equivalent Unicode encodings of the same phrase
// yield the same result.
//
// Phrases of a checksummed length (12, 15, 18, 21 or 24 words) must carry a
// correct checksum. Other lengths exist in wallets created before checksums
// were enforced and validate by wordlist membership alone.
func IsPhraseValid(lang, phrase string) bool {
	wl, err := LoadWordlist(lang)
	if err != nil {
		return false
	}
	words := splitWords(phrase)
	if len(words) < minPhraseWords {
		return false
	}
	for _, word := range words {
		if _, ok := wl.index[word]; !ok {
			return false
		}
	}
	if _, strict := checksummedCounts[len(words)]; strict {
		_, err := entropyFromWords(wl, words)
		return err == nil
	}
	return true
}
