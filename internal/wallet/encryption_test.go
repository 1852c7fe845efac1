package wallet

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/Klingon-tech/klingnet-wallet/pkg/mnemonic"
)

// fastParams returns minimal Argon2 cost so key stretching does not dominate
// test time.
func fastParams() EncryptionParams {
	return EncryptionParams{
		Memory:      64, // KiB
		Iterations:  1,
		Parallelism: 1,
	}
}

// testSeed derives the 64-byte seed the keystore actually protects.
func testSeed(t *testing.T) []byte {
	t.Helper()
	phrase := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	return mnemonic.Seed(phrase, "")
}

func TestEncryptDecrypt_Seed(t *testing.T) {
	seed := testSeed(t)
	password := []byte("correct horse battery staple")

	sealed, err := Encrypt(seed, password, fastParams())
	if err != nil {
		t.Fatalf("Encrypt() error: %v", err)
	}
	opened, err := Decrypt(sealed, password)
	if err != nil {
		t.Fatalf("Decrypt() error: %v", err)
	}
	if !bytes.Equal(opened, seed) {
		t.Error("decrypted seed differs from the original")
	}
}

func TestEncryptDecrypt_EmptyPassword(t *testing.T) {
	// An empty password is weak but not invalid at this layer.
	sealed, err := Encrypt(testSeed(t), []byte{}, fastParams())
	if err != nil {
		t.Fatalf("Encrypt() error: %v", err)
	}
	if _, err := Decrypt(sealed, []byte{}); err != nil {
		t.Errorf("Decrypt() with empty password error: %v", err)
	}
	if _, err := Decrypt(sealed, []byte("anything")); !errors.Is(err, ErrWrongPassword) {
		t.Errorf("Decrypt() error = %v, want ErrWrongPassword", err)
	}
}

func TestEncryptDecrypt_EmptyPlaintext(t *testing.T) {
	sealed, err := Encrypt(nil, []byte("pw"), fastParams())
	if err != nil {
		t.Fatalf("Encrypt() error: %v", err)
	}
	opened, err := Decrypt(sealed, []byte("pw"))
	if err != nil {
		t.Fatalf("Decrypt() error: %v", err)
	}
	if len(opened) != 0 {
		t.Errorf("Decrypt() of empty plaintext returned %d bytes", len(opened))
	}
}

func TestDecrypt_WrongPassword(t *testing.T) {
	sealed, err := Encrypt(testSeed(t), []byte("right"), fastParams())
	if err != nil {
		t.Fatalf("Encrypt() error: %v", err)
	}
	if _, err := Decrypt(sealed, []byte("wrong")); !errors.Is(err, ErrWrongPassword) {
		t.Errorf("Decrypt() error = %v, want ErrWrongPassword", err)
	}
}

func TestDecrypt_Tampered(t *testing.T) {
	password := []byte("pw")
	sealed, err := Encrypt(testSeed(t), password, fastParams())
	if err != nil {
		t.Fatalf("Encrypt() error: %v", err)
	}

	// Any bit flip in the ciphertext or tag must fail authentication.
	sealed[len(sealed)-1] ^= 0x01
	if _, err := Decrypt(sealed, password); !errors.Is(err, ErrWrongPassword) {
		t.Errorf("Decrypt() of tampered record error = %v, want ErrWrongPassword", err)
	}
}

func TestDecrypt_ShortRecord(t *testing.T) {
	if _, err := Decrypt([]byte("truncated"), []byte("pw")); err == nil {
		t.Error("Decrypt() of a truncated record should fail")
	}
}

func TestEncrypt_FreshSaltAndNonce(t *testing.T) {
	seed := testSeed(t)
	password := []byte("pw")

	first, err := Encrypt(seed, password, fastParams())
	if err != nil {
		t.Fatalf("Encrypt() error: %v", err)
	}
	second, err := Encrypt(seed, password, fastParams())
	if err != nil {
		t.Fatalf("Encrypt() error: %v", err)
	}

	if bytes.Equal(first[:SaltSize], second[:SaltSize]) {
		t.Error("two encryptions reused a salt")
	}
	if bytes.Equal(first, second) {
		t.Error("two encryptions of the same seed are identical")
	}

	for _, sealed := range [][]byte{first, second} {
		opened, err := Decrypt(sealed, password)
		if err != nil {
			t.Fatalf("Decrypt() error: %v", err)
		}
		if !bytes.Equal(opened, seed) {
			t.Error("decryption does not recover the seed")
		}
	}
}

// The record layout is salt(32) | memory(4) | iterations(4) | parallelism(1) |
// nonce(24) | ciphertext. Parameters are little-endian so records written with
// one cost setting stay readable after defaults change.
func TestEncrypt_RecordLayout(t *testing.T) {
	seed := testSeed(t)
	params := fastParams()

	sealed, err := Encrypt(seed, []byte("pw"), params)
	if err != nil {
		t.Fatalf("Encrypt() error: %v", err)
	}

	wantLen := headerSize + 24 + len(seed) + 16
	if len(sealed) != wantLen {
		t.Errorf("record length = %d, want %d", len(sealed), wantLen)
	}

	if got := binary.LittleEndian.Uint32(sealed[SaltSize:]); got != params.Memory {
		t.Errorf("embedded memory = %d, want %d", got, params.Memory)
	}
	if got := binary.LittleEndian.Uint32(sealed[SaltSize+4:]); got != params.Iterations {
		t.Errorf("embedded iterations = %d, want %d", got, params.Iterations)
	}
	if got := sealed[SaltSize+8]; got != params.Parallelism {
		t.Errorf("embedded parallelism = %d, want %d", got, params.Parallelism)
	}
}

// Records carry their own cost parameters, so a record written with one
// setting decrypts even when the caller's current default is another.
func TestDecrypt_ParamsFromRecord(t *testing.T) {
	seed := testSeed(t)
	password := []byte("pw")

	sealed, err := Encrypt(seed, password, EncryptionParams{Memory: 128, Iterations: 2, Parallelism: 2})
	if err != nil {
		t.Fatalf("Encrypt() error: %v", err)
	}
	opened, err := Decrypt(sealed, password)
	if err != nil {
		t.Fatalf("Decrypt() error: %v", err)
	}
	if !bytes.Equal(opened, seed) {
		t.Error("decryption with record-carried params does not recover the seed")
	}
}

func TestDefaultParams(t *testing.T) {
	p := DefaultParams()
	if p.Memory != 64*1024 {
		t.Errorf("Memory = %d KiB, want %d", p.Memory, 64*1024)
	}
	if p.Iterations != 3 {
		t.Errorf("Iterations = %d, want 3", p.Iterations)
	}
	if p.Parallelism != 4 {
		t.Errorf("Parallelism = %d, want 4", p.Parallelism)
	}
}
