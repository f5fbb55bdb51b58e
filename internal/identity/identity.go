package identity

import (
	"crypto/rand"
	"io"
	"sync"

	"github.com/oklog/ulid/v2"

	"github.com/Ch1mpleo/ninjaorigin-go/internal/dependencies/clock"
	"github.com/Ch1mpleo/ninjaorigin-go/internal/model"
)

// Generator produces player identifiers. Implementations must never
// return the same id twice.
type Generator interface {
	NewPlayerID() model.PlayerID
}

// ULIDGenerator implements Generator using ULIDs: lexicographically
// sortable, collision-free without coordination, and opaque enough to
// serve as a stable profile key.
type ULIDGenerator struct {
	clock clock.Clock

	mu      sync.Mutex
	entropy io.Reader
}

// New creates a ULIDGenerator seeded from crypto/rand
func New(clk clock.Clock) *ULIDGenerator {
	return NewWithEntropy(clk, rand.Reader)
}

// NewWithEntropy creates a ULIDGenerator with the given entropy source
// (for testing)
func NewWithEntropy(clk clock.Clock, entropy io.Reader) *ULIDGenerator {
	return &ULIDGenerator{clock: clk, entropy: ulid.Monotonic(entropy, 0)}
}

// Ensure ULIDGenerator implements Generator
var _ Generator = (*ULIDGenerator)(nil)

// NewPlayerID returns a fresh player id
func (g *ULIDGenerator) NewPlayerID() model.PlayerID {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := ulid.MustNew(ulid.Timestamp(g.clock.Now()), g.entropy)
	return model.PlayerID(id.String())
}
