// Package wallet manages encrypted wallet storage and lifecycle.
package wallet

import (
	"encoding/hex"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/zeebo/blake3"

	"github.com/Klingon-tech/klingnet-wallet/internal/log"
	"github.com/Klingon-tech/klingnet-wallet/internal/storage"
	"github.com/Klingon-tech/klingnet-wallet/pkg/mnemonic"
)

// Manager owns the wallet lifecycle: creating wallets from fresh recovery
// phrases, importing existing phrases, and unlocking stored seeds. Only the
// encrypted seed is persisted; the phrase is handed to the caller once at
// creation and never stored or logged.
type Manager struct {
	mu     sync.Mutex
	ks     *Keystore
	params EncryptionParams
}

// NewManager creates a manager storing wallets in db with the given
// encryption parameters.
func NewManager(db storage.DB, params EncryptionParams) *Manager {
	return &Manager{ks: NewKeystore(db), params: params}
}

// Info describes a stored wallet without exposing key material.
type Info struct {
	Name        string
	Language    string
	CreatedAt   time.Time
	Fingerprint string
}

// Create makes a new wallet: it generates a recovery phrase in the given
// language, derives the seed, and stores the encrypted seed under name.
// The phrase is returned for one-time display to the user.
func (m *Manager) Create(name, lang string, password []byte) (string, error) {
	if name == "" {
		return "", fmt.Errorf("wallet name must not be empty")
	}
	phrase, err := mnemonic.GeneratePhrase(lang)
	if err != nil {
		return "", fmt.Errorf("generate recovery phrase: %w", err)
	}
	log.Mnemonic.Debug().Str("language", lang).Msg("generated recovery phrase")

	rec, err := m.seal(phrase, "", lang, password)
	if err != nil {
		return "", err
	}
	if err := m.store(name, rec); err != nil {
		return "", err
	}

	log.Wallet.Info().
		Str("wallet", name).
		Str("language", lang).
		Str("fingerprint", rec.Fingerprint).
		Msg("wallet created")
	return phrase, nil
}

// Import stores a wallet from an existing recovery phrase. The phrase must
// validate for lang; variable-length legacy phrases are accepted. An optional
// passphrase hardens the derived seed.
func (m *Manager) Import(name, lang, phrase, passphrase string, password []byte) error {
	if name == "" {
		return fmt.Errorf("wallet name must not be empty")
	}
	if _, err := mnemonic.LoadWordlist(lang); err != nil {
		return fmt.Errorf("import wallet %q: %w", name, err)
	}
	if !mnemonic.IsPhraseValid(lang, phrase) {
		log.Mnemonic.Debug().Str("language", lang).Msg("rejected recovery phrase")
		return fmt.Errorf("import wallet %q: %w", name, ErrInvalidPhrase)
	}

	rec, err := m.seal(phrase, passphrase, lang, password)
	if err != nil {
		return err
	}
	if err := m.store(name, rec); err != nil {
		return err
	}

	log.Wallet.Info().
		Str("wallet", name).
		Str("language", lang).
		Str("fingerprint", rec.Fingerprint).
		Msg("wallet imported")
	return nil
}

// Unlock decrypts and returns the seed of a stored wallet. The caller owns
// the returned slice and should zero it when done with it.
func (m *Manager) Unlock(name string, password []byte) ([]byte, error) {
	m.mu.Lock()
	rec, err := m.ks.Get(name)
	m.mu.Unlock()
	if err != nil {
		return nil, err
	}

	seed, err := Decrypt(rec.EncryptedSeed, password)
	if err != nil {
		log.Wallet.Warn().Str("wallet", name).Msg("unlock failed")
		return nil, fmt.Errorf("unlock wallet %q: %w", name, err)
	}
	log.Wallet.Debug().Str("wallet", name).Msg("wallet unlocked")
	return seed, nil
}

// List returns the stored wallets sorted by name.
func (m *Manager) List() ([]Info, error) {
	m.mu.Lock()
	records, err := m.ks.List()
	m.mu.Unlock()
	if err != nil {
		return nil, err
	}

	infos := make([]Info, 0, len(records))
	for name, rec := range records {
		infos = append(infos, Info{
			Name:        name,
			Language:    rec.Language,
			CreatedAt:   rec.CreatedAt,
			Fingerprint: rec.Fingerprint,
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos, nil
}

// Delete removes a stored wallet. The seed is unrecoverable afterwards unless
// the user still holds the recovery phrase.
func (m *Manager) Delete(name string) error {
	m.mu.Lock()
	err := m.ks.Delete(name)
	m.mu.Unlock()
	if err != nil {
		return err
	}
	log.Wallet.Info().Str("wallet", name).Msg("wallet deleted")
	return nil
}

// Fingerprint returns a short non-secret identifier for a seed: the first
// 8 bytes of BLAKE3-256(seed), hex-encoded. Equal seeds always map to equal
// fingerprints, so re-imports of the same phrase are recognizable.
func Fingerprint(seed []byte) string {
	sum := blake3.Sum256(seed)
	return hex.EncodeToString(sum[:8])
}

// seal derives the seed for a phrase and builds an encrypted record. Seed
// derivation and Argon2 are CPU-heavy, so seal runs outside the manager lock.
func (m *Manager) seal(phrase, passphrase, lang string, password []byte) (*Record, error) {
	defer log.Benchmark("seal seed")()

	seed := mnemonic.Seed(phrase, passphrase)
	fingerprint := Fingerprint(seed)

	encrypted, err := Encrypt(seed, password, m.params)

	// Zero the seed copy regardless of the encryption outcome.
	for i := range seed {
		seed[i] = 0
	}
	if err != nil {
		return nil, fmt.Errorf("encrypt seed: %w", err)
	}

	return &Record{
		Version:       keystoreVersion,
		CreatedAt:     time.Now().UTC(),
		Language:      lang,
		Fingerprint:   fingerprint,
		EncryptedSeed: encrypted,
	}, nil
}

// store writes a record under name, failing if the name is taken. The
// exists check and write happen under one lock acquisition.
func (m *Manager) store(name string, rec *Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	ok, err := m.ks.Has(name)
	if err != nil {
		return fmt.Errorf("check wallet %q: %w", name, err)
	}
	if ok {
		return fmt.Errorf("wallet %q: %w", name, ErrWalletExists)
	}
	return m.ks.Save(name, rec)
}
