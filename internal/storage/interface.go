package storage

import (
	"context"

	"github.com/Ch1mpleo/ninjaorigin-go/internal/model"
)

// Store defines the interface for durable save-slot persistence.
//
// Two slot families exist: a single slot holding the full account set,
// and one slot per player profile. Absence of a slot is distinguishable
// from a read/write failure: LoadAccounts returns an empty slice for a
// missing slot, GetProfile returns model.ErrProfileNotFound. Any other
// error means the store itself failed.
type Store interface {
	// Account operations
	SaveAccounts(ctx context.Context, accounts []*model.Account) error
	LoadAccounts(ctx context.Context) ([]*model.Account, error)

	// Profile operations
	SaveProfile(ctx context.Context, profile *model.PlayerProfile) error
	GetProfile(ctx context.Context, id model.PlayerID) (*model.PlayerProfile, error)
}
