package wallet

import "errors"

// Sentinel errors for wallet lifecycle operations.
var (
	// ErrWalletExists is returned when creating or importing over a name
	// that is already stored.
	ErrWalletExists = errors.New("wallet already exists")

	// ErrWalletNotFound is returned for operations on unknown wallet names.
	ErrWalletNotFound = errors.New("wallet not found")

	// ErrInvalidPhrase is returned by Import when the recovery phrase does
	// not validate for the given language.
	ErrInvalidPhrase = errors.New("invalid recovery phrase")

	// ErrWrongPassword is returned when decryption fails. The cipher cannot
	// tell a bad password from corrupted data, so both report this error.
	ErrWrongPassword = errors.New("wrong password or corrupted data")
)
