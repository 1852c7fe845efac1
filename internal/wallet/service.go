package wallet

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/Klingon-tech/klingnet-wallet/config"
	"github.com/Klingon-tech/klingnet-wallet/internal/log"
	"github.com/Klingon-tech/klingnet-wallet/internal/storage"
)

// Service wires configuration, logging, and the keystore database into a
// ready Manager. It is the entry point for embedding applications.
type Service struct {
	cfg     *config.Config
	logger  zerolog.Logger
	db      storage.DB
	manager *Manager
}

// Open validates cfg and brings up the wallet service. It performs all setup
// steps (logger, directories, keystore database) and leaves the service ready
// for wallet operations. Call Close when done.
func Open(cfg *config.Config) (*Service, error) {
	// ── 1. Check configuration ──────────────────────────────────────
	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	// ── 2. Logging ──────────────────────────────────────────────────
	logFile := cfg.Log.File
	if logFile == "" {
		logsDir := cfg.LogsDir()
		if err := os.MkdirAll(logsDir, 0755); err != nil {
			return nil, fmt.Errorf("create logs dir: %w", err)
		}
		logFile = logsDir + "/klingnet-wallet.log"
	}
	if err := log.Init(cfg.Log.Level, cfg.Log.JSON, logFile); err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}
	logger := log.WithComponent("wallet")

	// ── 3. Keystore database ────────────────────────────────────────
	keystoreDir := cfg.KeystoreDir()
	if err := os.MkdirAll(keystoreDir, 0700); err != nil {
		return nil, fmt.Errorf("create keystore dir: %w", err)
	}
	db, err := storage.NewBadger(keystoreDir)
	if err != nil {
		return nil, fmt.Errorf("open keystore at %s: %w", keystoreDir, err)
	}

	logger.Info().
		Str("path", keystoreDir).
		Str("language", cfg.Wallet.Language).
		Msg("Keystore opened")

	// ── 4. Wallet manager ───────────────────────────────────────────
	manager := NewManager(db, DefaultParams())

	return &Service{
		cfg:     cfg,
		logger:  logger,
		db:      db,
		manager: manager,
	}, nil
}

// Manager returns the wallet manager.
func (s *Service) Manager() *Manager {
	return s.manager
}

// Create makes a new wallet in the configured default language.
func (s *Service) Create(name string, password []byte) (string, error) {
	return s.manager.Create(name, s.cfg.Wallet.Language, password)
}

// Close releases the keystore database.
func (s *Service) Close() error {
	s.logger.Debug().Msg("Keystore closed")
	return s.db.Close()
}
