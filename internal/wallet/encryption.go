package wallet

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

// SaltSize is the length of the random Argon2 salt stored with each record.
const SaltSize = 32

// A sealed record is laid out as
//
//	salt(32) | memory(4) | iterations(4) | parallelism(1) | nonce(24) | ciphertext
//
// with the integers little-endian. headerSize covers the fields before the
// nonce.
const headerSize = SaltSize + 4 + 4 + 1

// EncryptionParams holds Argon2id cost parameters. Memory is in KiB.
type EncryptionParams struct {
	Memory      uint32
	Iterations  uint32
	Parallelism uint8
}

// DefaultParams returns the Argon2id cost used for new records: 64 MiB,
// 3 passes, 4 lanes.
func DefaultParams() EncryptionParams {
	return EncryptionParams{
		Memory:      64 * 1024,
		Iterations:  3,
		Parallelism: 4,
	}
}

func deriveKey(password, salt []byte, params EncryptionParams) []byte {
	return argon2.IDKey(
		password,
		salt,
		params.Iterations,
		params.Memory,
		params.Parallelism,
		chacha20poly1305.KeySize,
	)
}

func zeroKey(key []byte) {
	for i := range key {
		key[i] = 0
	}
}

// Encrypt seals data under a password with Argon2id key stretching and
// XChaCha20-Poly1305. The cost parameters are embedded in the record header,
// so records written under an older default remain decryptable after the
// default changes.
func Encrypt(data, password []byte, params EncryptionParams) ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}

	key := deriveKey(password, salt, params)
	defer zeroKey(key)

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	sealed := aead.Seal(nil, nonce, data, nil)

	record := make([]byte, 0, headerSize+len(nonce)+len(sealed))
	record = append(record, salt...)
	record = binary.LittleEndian.AppendUint32(record, params.Memory)
	record = binary.LittleEndian.AppendUint32(record, params.Iterations)
	record = append(record, params.Parallelism)
	record = append(record, nonce...)
	record = append(record, sealed...)
	return record, nil
}

// Decrypt opens a record produced by Encrypt, reading the Argon2 cost from
// the record header. A failed authentication, whether from a bad password or
// a tampered record, yields ErrWrongPassword.
func Decrypt(record, password []byte) ([]byte, error) {
	nonceSize := chacha20poly1305.NonceSizeX
	minSize := headerSize + nonceSize + chacha20poly1305.Overhead
	if len(record) < minSize {
		return nil, fmt.Errorf("sealed record too short: %d bytes, need at least %d", len(record), minSize)
	}

	salt := record[:SaltSize]
	params := EncryptionParams{
		Memory:      binary.LittleEndian.Uint32(record[SaltSize:]),
		Iterations:  binary.LittleEndian.Uint32(record[SaltSize+4:]),
		Parallelism: record[SaltSize+8],
	}
	nonce := record[headerSize : headerSize+nonceSize]
	ciphertext := record[headerSize+nonceSize:]

	key := deriveKey(password, salt, params)
	defer zeroKey(key)

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrWrongPassword
	}
	return plaintext, nil
}
