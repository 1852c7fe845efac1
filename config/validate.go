package config

import (
	"fmt"

	"github.com/Klingon-tech/klingnet-wallet/pkg/mnemonic"
)

// Validate checks wallet config for obvious operator mistakes. Empty fields
// fall back to their defaults.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if cfg.DataDir == "" {
		return fmt.Errorf("datadir must not be empty")
	}

	if cfg.Wallet.KeystoreDir == "" {
		cfg.Wallet.KeystoreDir = DefaultKeystoreDir
	}
	if cfg.Wallet.Language == "" {
		cfg.Wallet.Language = DefaultLanguage
	}
	if _, err := mnemonic.LoadWordlist(cfg.Wallet.Language); err != nil {
		return fmt.Errorf("wallet.language: %w", err)
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return nil
}
