package mnemonic

import "errors"

// Sentinel errors reported by wordlist and entropy operations.
var (
	// ErrLanguageNotSupported is returned for language codes outside Languages().
	ErrLanguageNotSupported = errors.New("language not supported")

	// ErrInvalidEntropyLength is returned when an entropy size is not a
	// multiple of 32 bits within [MinEntropyBits, MaxEntropyBits].
	ErrInvalidEntropyLength = errors.New("invalid entropy length")
)

// Strict decode failures. These stay internal to validation: IsPhraseValid
// reports them as a plain false.
var (
	errWordCount   = errors.New("word count has no checksum layout")
	errUnknownWord = errors.New("word not in wordlist")
	errChecksum    = errors.New("checksum mismatch")
)
