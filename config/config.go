// Package config defines the wallet's runtime settings.
//
// Settings load from a plain conf file (key = value) under the data
// directory and fall back to built-in defaults. Nothing here is secret;
// key material never passes through configuration.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Config holds runtime wallet settings.
type Config struct {
	// Core
	DataDir string `conf:"datadir"`

	// Wallet
	Wallet WalletConfig

	// Logging
	Log LogConfig
}

// WalletConfig selects the recovery-phrase language and keystore location.
type WalletConfig struct {
	// Language is the default recovery-phrase language for new wallets.
	Language string `conf:"wallet.language"`
	// KeystoreDir is the keystore directory, relative to the data
	// directory unless absolute.
	KeystoreDir string `conf:"wallet.keystore"`
}

// LogConfig controls log level and output destinations.
type LogConfig struct {
	Level string `conf:"log.level"`
	File  string `conf:"log.file"`
	JSON  bool   `conf:"log.json"`
}

// =============================================================================
// Paths
// =============================================================================

// DefaultDataDir picks the data directory for the current platform:
//
//	Linux:   ~/.klingnet-wallet
//	macOS:   ~/Library/Application Support/KlingnetWallet
//	Windows: %APPDATA%\KlingnetWallet
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".klingnet-wallet"
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "KlingnetWallet")
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData != "" {
			return filepath.Join(appData, "KlingnetWallet")
		}
		return filepath.Join(home, "AppData", "Roaming", "KlingnetWallet")
	default:
		return filepath.Join(home, ".klingnet-wallet")
	}
}

// KeystoreDir resolves the keystore location against the data directory.
func (c *Config) KeystoreDir() string {
	if filepath.IsAbs(c.Wallet.KeystoreDir) {
		return c.Wallet.KeystoreDir
	}
	return filepath.Join(c.DataDir, c.Wallet.KeystoreDir)
}

// LogsDir is where the log file lands when log.file is unset.
func (c *Config) LogsDir() string {
	return filepath.Join(c.DataDir, "logs")
}

// ConfigFile is the conf file location inside the data directory.
func (c *Config) ConfigFile() string {
	return filepath.Join(c.DataDir, "klingnet-wallet.conf")
}
