package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/Ch1mpleo/ninjaorigin-go/internal/model"
	"github.com/Ch1mpleo/ninjaorigin-go/internal/storage"
)

const (
	accountsFile  = "accounts.json"
	profilePrefix = "player_"
)

// Storage is a file-backed implementation of the storage interface.
// Each slot is one JSON file inside the save directory: accounts.json
// for the account set and player_<id>.json per profile.
type Storage struct {
	fs  afero.Fs
	dir string
}

// New creates a file storage rooted at dir on the OS filesystem.
func New(dir string) (*Storage, error) {
	return NewWithFs(afero.NewOsFs(), dir)
}

// NewWithFs creates a file storage on the given filesystem (for testing).
func NewWithFs(fs afero.Fs, dir string) (*Storage, error) {
	if err := fs.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("creating save directory: %w", err)
	}
	return &Storage{fs: fs, dir: dir}, nil
}

// Ensure Storage implements the interface
var _ storage.Store = (*Storage)(nil)

func (s *Storage) accountsPath() string {
	return filepath.Join(s.dir, accountsFile)
}

func (s *Storage) profilePath(id model.PlayerID) string {
	return filepath.Join(s.dir, profilePrefix+string(id)+".json")
}

// Account operations

func (s *Storage) SaveAccounts(ctx context.Context, accounts []*model.Account) error {
	return s.writeJSON(s.accountsPath(), accounts)
}

func (s *Storage) LoadAccounts(ctx context.Context) ([]*model.Account, error) {
	data, err := afero.ReadFile(s.fs, s.accountsPath())
	if err != nil {
		if os.IsNotExist(err) {
			// No save file yet: empty account set, not an error
			return nil, nil
		}
		return nil, fmt.Errorf("reading accounts file: %w", err)
	}

	var accounts []*model.Account
	if err := json.Unmarshal(data, &accounts); err != nil {
		return nil, fmt.Errorf("parsing accounts file: %w", err)
	}
	return accounts, nil
}

// Profile operations

func (s *Storage) SaveProfile(ctx context.Context, profile *model.PlayerProfile) error {
	return s.writeJSON(s.profilePath(profile.ID), profile)
}

func (s *Storage) GetProfile(ctx context.Context, id model.PlayerID) (*model.PlayerProfile, error) {
	data, err := afero.ReadFile(s.fs, s.profilePath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, model.ErrProfileNotFound
		}
		return nil, fmt.Errorf("reading profile file: %w", err)
	}

	var profile model.PlayerProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("parsing profile file: %w", err)
	}
	return &profile, nil
}

func (s *Storage) writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", filepath.Base(path), err)
	}

	// Write via a temp file so a crash mid-write cannot corrupt the slot
	tmp := path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	if err := s.fs.Rename(tmp, path); err != nil {
		return fmt.Errorf("replacing %s: %w", filepath.Base(path), err)
	}
	return nil
}
