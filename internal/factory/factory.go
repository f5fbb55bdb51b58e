package factory

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/Ch1mpleo/ninjaorigin-go/internal/auth"
	"github.com/Ch1mpleo/ninjaorigin-go/internal/dependencies/clock"
	"github.com/Ch1mpleo/ninjaorigin-go/internal/identity"
	"github.com/Ch1mpleo/ninjaorigin-go/internal/storage"
	filestorage "github.com/Ch1mpleo/ninjaorigin-go/internal/storage/file"
	"github.com/Ch1mpleo/ninjaorigin-go/internal/storage/memory"
	redisstorage "github.com/Ch1mpleo/ninjaorigin-go/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeFile   = "file"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Store

	// External dependencies
	Clock clock.Clock
	IDs   identity.Generator

	// Auth core
	Hasher      auth.PasswordHasher
	Credentials *auth.CredentialStore
	Sessions    *auth.SessionManager
}

// SeedAccount describes a development account to create at startup if
// it does not exist yet
type SeedAccount struct {
	Username string
	Password string
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory", "file" or "redis")
	// If empty, defaults to "file"
	StorageType string
	// SaveDir is the save-data directory (required if StorageType is "file")
	SaveDir string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// Seed, if set, creates a development account at startup
	Seed *SeedAccount
}

// New creates a new application with all dependencies wired
func New(ctx context.Context, cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeFile
	}

	var store storage.Store
	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeFile:
		if cfg.SaveDir == "" {
			return nil, errors.New("SaveDir required when StorageType is file")
		}
		fileStore, err := filestorage.New(cfg.SaveDir)
		if err != nil {
			return nil, err
		}
		store = fileStore
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory', 'file' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	ids := identity.New(clk)

	app, err := newWithDependencies(ctx, store, clk, ids, auth.NewArgon2idHasher(), logger)
	if err != nil {
		return nil, err
	}

	if cfg.Seed != nil {
		if err := app.ensureSeedAccount(ctx, cfg.Seed, logger); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(ctx context.Context, store storage.Store, clk clock.Clock, ids identity.Generator, hasher auth.PasswordHasher, logger *slog.Logger) (*App, error) {
	creds, err := auth.NewCredentialStore(ctx, store, hasher, ids, clk, logger)
	if err != nil {
		return nil, err
	}
	sessions := auth.NewSessionManager(creds, store, clk, logger)

	return &App{
		Storage:     store,
		Clock:       clk,
		IDs:         ids,
		Hasher:      hasher,
		Credentials: creds,
		Sessions:    sessions,
	}, nil
}

// ensureSeedAccount registers the development account if it is absent.
// An existing account of the same name is left alone.
func (a *App) ensureSeedAccount(ctx context.Context, seed *SeedAccount, logger *slog.Logger) error {
	if a.Credentials.Exists(seed.Username) {
		logger.Debug("seed account already exists", slog.String("username", seed.Username))
		return nil
	}

	account, err := a.Credentials.Register(ctx, seed.Username, seed.Password)
	if err != nil {
		return err
	}

	logger.Info("seed account created",
		slog.String("username", account.Username),
		slog.String("player_id", string(account.PlayerID)))
	return nil
}
