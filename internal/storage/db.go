// Package storage provides key-value persistence for wallet data.
package storage

import "errors"

// ErrKeyNotFound is returned by Get when a key has no stored value.
var ErrKeyNotFound = errors.New("key not found")

// DB is the store the keystore writes wallet records to. BadgerDB is the
// on-disk implementation; MemoryDB serves tests.
type DB interface {
	Get(key []byte) ([]byte, error)
	Put(key, value []byte) error
	Delete(key []byte) error
	Has(key []byte) (bool, error)
	// ForEach iterates over all keys with the given prefix.
	// The key is a copy; the value is only valid for the duration of
	// the callback. Return a non-nil error from fn to stop iteration early.
	ForEach(prefix []byte, fn func(key, value []byte) error) error
	Close() error
}
