package identity_test

import (
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ch1mpleo/ninjaorigin-go/internal/dependencies/mocks"
	"github.com/Ch1mpleo/ninjaorigin-go/internal/identity"
)

func TestNewPlayerIDIsValidULID(t *testing.T) {
	gen := identity.New(mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)))

	id := gen.NewPlayerID()
	parsed, err := ulid.ParseStrict(string(id))
	require.NoError(t, err)
	assert.Equal(t, ulid.Timestamp(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)), parsed.Time())
}

func TestNewPlayerIDsAreUnique(t *testing.T) {
	gen := identity.New(mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)))

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := string(gen.NewPlayerID())
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
