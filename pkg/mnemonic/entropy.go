package mnemonic

import (
	"crypto/rand"
	"fmt"
)

// Supported entropy sizes. Sizes are multiples of 32 bits so the checksum
// length (size/32) keeps the combined bit string divisible into 11-bit groups.
const (
	MinEntropyBits = 128
	MaxEntropyBits = 256

	// DefaultEntropyBits is the size used by GeneratePhrase: 12 words.
	DefaultEntropyBits = 128
)

// NewEntropy returns bits/8 bytes from the system's secure random source.
// bits must be a multiple of 32 between MinEntropyBits and MaxEntropyBits.
func NewEntropy(bits int) ([]byte, error) {
	if err := checkEntropyBits(bits); err != nil {
		return nil, err
	}
	buf := make([]byte, bits/8)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("read random entropy: %w", err)
	}
	return buf, nil
}

func checkEntropyBits(bits int) error {
	if bits < MinEntropyBits || bits > MaxEntropyBits || bits%32 != 0 {
		return fmt.Errorf("%d bits: %w", bits, ErrInvalidEntropyLength)
	}
	return nil
}
