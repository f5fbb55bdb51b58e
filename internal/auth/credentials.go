package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/Ch1mpleo/ninjaorigin-go/internal/dependencies/clock"
	"github.com/Ch1mpleo/ninjaorigin-go/internal/identity"
	"github.com/Ch1mpleo/ninjaorigin-go/internal/model"
	"github.com/Ch1mpleo/ninjaorigin-go/internal/storage"
)

// CredentialStore owns the durable registry of accounts and the
// password-verification primitives.
//
// The full account set is loaded once at construction and kept in
// memory; every successful registration rewrites the durable slot.
type CredentialStore struct {
	store  storage.Store
	hasher PasswordHasher
	ids    identity.Generator
	clock  clock.Clock
	logger *slog.Logger

	mu       sync.RWMutex
	accounts []*model.Account
}

// NewCredentialStore loads the account set and returns the store.
// A missing accounts slot yields an empty registry; a failing storage
// read is fatal and reported as a storage error.
func NewCredentialStore(ctx context.Context, store storage.Store, hasher PasswordHasher, ids identity.Generator, clk clock.Clock, logger *slog.Logger) (*CredentialStore, error) {
	accounts, err := store.LoadAccounts(ctx)
	if err != nil {
		logger.Error("loading accounts failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: loading accounts: %v", model.ErrStorage, err)
	}

	logger.Info("accounts loaded", slog.Int("count", len(accounts)))

	return &CredentialStore{
		store:    store,
		hasher:   hasher,
		ids:      ids,
		clock:    clk,
		logger:   logger,
		accounts: accounts,
	}, nil
}

// Exists reports whether a username is registered (case-insensitive).
// No side effects.
func (s *CredentialStore) Exists(username string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.find(username) != nil
}

// Count returns the number of registered accounts
func (s *CredentialStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.accounts)
}

// Register creates a new account with a fresh salt, password digest and
// player id, writes the player's default profile, and persists the full
// account set. The new account's record is returned.
func (s *CredentialStore) Register(ctx context.Context, username, password string) (*model.Account, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, model.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.find(username) != nil {
		return nil, model.ErrUsernameTaken
	}

	salt, err := s.hasher.GenerateSalt()
	if err != nil {
		return nil, err
	}

	account := &model.Account{
		PlayerID:     s.ids.NewPlayerID(),
		Username:     username,
		Salt:         salt,
		PasswordHash: s.hasher.Hash(salt, password),
		CreatedAt:    s.clock.Now(),
	}

	// The default profile goes in first so a registered account always
	// has a profile slot. If the account write below fails, the orphan
	// profile is unreachable: its id is never issued again.
	profile := model.DefaultProfile(account.PlayerID)
	profile.Username = account.Username
	if err := s.store.SaveProfile(ctx, profile); err != nil {
		s.logger.Error("writing default profile failed",
			slog.String("player_id", string(account.PlayerID)),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: writing default profile: %v", model.ErrStorage, err)
	}

	next := append(append([]*model.Account(nil), s.accounts...), account)
	if err := s.store.SaveAccounts(ctx, next); err != nil {
		s.logger.Error("persisting accounts failed",
			slog.String("username", username),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: persisting accounts: %v", model.ErrStorage, err)
	}
	s.accounts = next

	s.logger.Info("account registered",
		slog.String("username", username),
		slog.String("player_id", string(account.PlayerID)))

	return account.Clone(), nil
}

// Authenticate verifies a username/password pair and returns the
// matching account. The hash comparison runs in constant time.
func (s *CredentialStore) Authenticate(username, password string) (*model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account := s.find(username)
	if account == nil {
		s.logger.Debug("authentication failed: unknown user", slog.String("username", username))
		return nil, model.ErrUserNotFound
	}

	computed := s.hasher.Hash(account.Salt, password)
	if !s.hasher.Compare(account.PasswordHash, computed) {
		s.logger.Debug("authentication failed: password mismatch", slog.String("username", username))
		return nil, model.ErrInvalidPassword
	}

	return account.Clone(), nil
}

// find returns the account for a username, or nil. Callers hold s.mu.
func (s *CredentialStore) find(username string) *model.Account {
	for _, a := range s.accounts {
		if model.UsernameEqual(a.Username, username) {
			return a
		}
	}
	return nil
}
