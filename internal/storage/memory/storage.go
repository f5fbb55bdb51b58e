package memory

import (
	"context"
	"sync"

	"github.com/Ch1mpleo/ninjaorigin-go/internal/model"
	"github.com/Ch1mpleo/ninjaorigin-go/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// Values are deep-copied on the way in and out so callers can never
// mutate stored state through a retained pointer.
type Storage struct {
	mu sync.RWMutex

	accounts []*model.Account
	profiles map[model.PlayerID]*model.PlayerProfile
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		profiles: make(map[model.PlayerID]*model.PlayerProfile),
	}
}

// Ensure Storage implements the interface
var _ storage.Store = (*Storage)(nil)

// Account operations

func (s *Storage) SaveAccounts(ctx context.Context, accounts []*model.Account) error {
	copied := make([]*model.Account, len(accounts))
	for i, a := range accounts {
		copied[i] = a.Clone()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts = copied
	return nil
}

func (s *Storage) LoadAccounts(ctx context.Context) ([]*model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	copied := make([]*model.Account, len(s.accounts))
	for i, a := range s.accounts {
		copied[i] = a.Clone()
	}
	return copied, nil
}

// Profile operations

func (s *Storage) SaveProfile(ctx context.Context, profile *model.PlayerProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[profile.ID] = profile.Clone()
	return nil
}

func (s *Storage) GetProfile(ctx context.Context, id model.PlayerID) (*model.PlayerProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile, ok := s.profiles[id]
	if !ok {
		return nil, model.ErrProfileNotFound
	}
	return profile.Clone(), nil
}

// ProfileCount reports how many profiles have been saved. Test helper.
func (s *Storage) ProfileCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.profiles)
}
