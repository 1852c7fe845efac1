package config

// DefaultKeystoreDir is the keystore directory name under the data directory.
const DefaultKeystoreDir = "keystore"

// DefaultLanguage is the recovery-phrase language used when none is configured.
const DefaultLanguage = "en"

// Default returns the default wallet configuration.
func Default() *Config {
	return &Config{
		DataDir: DefaultDataDir(),
		Wallet: WalletConfig{
			Language:    DefaultLanguage,
			KeystoreDir: DefaultKeystoreDir,
		},
		Log: LogConfig{
			Level: "info",
			JSON:  false,
		},
	}
}
