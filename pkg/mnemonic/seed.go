package mnemonic

import (
	"crypto/sha512"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// SeedSize is the byte length of a derived seed.
	SeedSize = 64

	// seedIterations is the PBKDF2 round count.
	seedIterations = 2048

	// seedSaltPrefix is fixed by seeds already derived in deployed wallets.
	// It differs from BIP-39's "mnemonic" prefix on purpose: changing it
	// would silently re-key every existing wallet.
	seedSaltPrefix = "lbryum"
)

// Seed derives the 64-byte master seed from a recovery phrase and an optional
// passphrase using PBKDF2-HMAC-SHA512. Both inputs are canonicalized first,
// so equivalent Unicode encodings of the same phrase derive the same seed.
//
// Seed is total and deterministic. It accepts arbitrary text and does not
// check phrase validity; callers wanting validation run IsPhraseValid first.
func Seed(phrase, passphrase string) []byte {
	password := []byte(normalizeText(phrase))
	salt := []byte(seedSaltPrefix + normalizeText(passphrase))
	return pbkdf2.Key(password, salt, seedIterations, SeedSize, sha512.New)
}
