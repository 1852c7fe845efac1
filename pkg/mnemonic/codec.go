package mnemonic

import (
	"crypto/sha256"
	"fmt"
	"math/big"
	"strings"
)

// wordBits is the index width of one word: 2048 words cover 11 bits.
const wordBits = 11

// checksummedCounts maps each checksummed phrase length to its entropy size
// in bits. The checksum is entropy/32 bits, so total bits divide by wordBits.
var checksummedCounts = map[int]int{
	12: 128,
	15: 160,
	18: 192,
	21: 224,
	24: 256,
}

// PhraseFromEntropy encodes entropy and its checksum as a recovery phrase.
// The checksum is the leading len(entropy)*8/32 bits of SHA-256(entropy),
// appended to the entropy bits before splitting into 11-bit word indexes.
func PhraseFromEntropy(lang string, entropy []byte) (string, error) {
	wl, err := LoadWordlist(lang)
	if err != nil {
		return "", err
	}
	entBits := len(entropy) * 8
	if err := checkEntropyBits(entBits); err != nil {
		return "", err
	}
	csBits := entBits / 32
	wordCount := (entBits + csBits) / wordBits

	sum := sha256.Sum256(entropy)
	checksum := new(big.Int).SetBytes(sum[:])
	checksum.Rsh(checksum, uint(len(sum)*8-csBits))

	bits := new(big.Int).SetBytes(entropy)
	bits.Lsh(bits, uint(csBits))
	bits.Or(bits, checksum)

	// Peel 11-bit groups off the low end, filling words back to front.
	words := make([]string, wordCount)
	groupMask := big.NewInt(1<<wordBits - 1)
	group := new(big.Int)
	for i := wordCount - 1; i >= 0; i-- {
		group.And(bits, groupMask)
		words[i] = wl.words[group.Int64()]
		bits.Rsh(bits, wordBits)
	}
	return strings.Join(words, languages[lang].delimiter), nil
}

// entropyFromWords reassembles the entropy encoded by a checksummed phrase
// and verifies the embedded checksum. words must already be normalized.
func entropyFromWords(wl *Wordlist, words []string) ([]byte, error) {
	entBits, ok := checksummedCounts[len(words)]
	if !ok {
		return nil, fmt.Errorf("%d words: %w", len(words), errWordCount)
	}
	csBits := entBits / 32

	bits := new(big.Int)
	group := new(big.Int)
	for _, word := range words {
		i, ok := wl.index[word]
		if !ok {
			return nil, fmt.Errorf("%q: %w", word, errUnknownWord)
		}
		bits.Lsh(bits, wordBits)
		bits.Or(bits, group.SetInt64(int64(i)))
	}

	got := new(big.Int).And(bits, big.NewInt(1<<csBits-1))
	entropy := new(big.Int).Rsh(bits, uint(csBits)).FillBytes(make([]byte, entBits/8))

	sum := sha256.Sum256(entropy)
	want := new(big.Int).SetBytes(sum[:])
	want.Rsh(want, uint(len(sum)*8-csBits))
	if got.Cmp(want) != 0 {
		return nil, errChecksum
	}
	return entropy, nil
}
