package wallet

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Klingon-tech/klingnet-wallet/internal/storage"
)

// keystorePrefix namespaces wallet records within the shared database.
var keystorePrefix = []byte("w/")

// keystoreVersion is the current wallet record format version.
const keystoreVersion = 1

// Record is the stored form of one wallet. It carries the encrypted seed and
// public metadata only; the recovery phrase is never stored in any form.
type Record struct {
	Version       int       `json:"version"`
	CreatedAt     time.Time `json:"created_at"`
	Language      string    `json:"language"`
	Fingerprint   string    `json:"fingerprint"`
	EncryptedSeed []byte    `json:"encrypted_seed"`
}

// Keystore persists wallet records in their own namespace of a DB.
type Keystore struct {
	db storage.DB
}

// NewKeystore creates a keystore over db. All records live under the wallet
// key prefix, so the database can be shared with other data.
func NewKeystore(db storage.DB) *Keystore {
	return &Keystore{db: storage.NewPrefixDB(db, keystorePrefix)}
}

// Save stores a record under name, overwriting any previous record.
func (ks *Keystore) Save(name string, rec *Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal wallet record: %w", err)
	}
	if err := ks.db.Put([]byte(name), data); err != nil {
		return fmt.Errorf("store wallet %q: %w", name, err)
	}
	return nil
}

// Get returns the record stored under name.
func (ks *Keystore) Get(name string) (*Record, error) {
	data, err := ks.db.Get([]byte(name))
	if errors.Is(err, storage.ErrKeyNotFound) {
		return nil, fmt.Errorf("wallet %q: %w", name, ErrWalletNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load wallet %q: %w", name, err)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parse wallet %q: %w", name, err)
	}
	if rec.Version != keystoreVersion {
		return nil, fmt.Errorf("wallet %q: unsupported record version %d", name, rec.Version)
	}
	return &rec, nil
}

// Has checks whether a record exists under name.
func (ks *Keystore) Has(name string) (bool, error) {
	return ks.db.Has([]byte(name))
}

// List returns all stored records keyed by wallet name.
func (ks *Keystore) List() (map[string]*Record, error) {
	records := make(map[string]*Record)
	err := ks.db.ForEach(nil, func(key, value []byte) error {
		var rec Record
		if err := json.Unmarshal(value, &rec); err != nil {
			return fmt.Errorf("parse wallet %q: %w", key, err)
		}
		records[string(key)] = &rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Delete removes the record stored under name.
func (ks *Keystore) Delete(name string) error {
	ok, err := ks.db.Has([]byte(name))
	if err != nil {
		return fmt.Errorf("check wallet %q: %w", name, err)
	}
	if !ok {
		return fmt.Errorf("wallet %q: %w", name, ErrWalletNotFound)
	}
	if err := ks.db.Delete([]byte(name)); err != nil {
		return fmt.Errorf("delete wallet %q: %w", name, err)
	}
	return nil
}
