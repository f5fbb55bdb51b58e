package mocks

import (
	"fmt"

	"github.com/Ch1mpleo/ninjaorigin-go/internal/identity"
	"github.com/Ch1mpleo/ninjaorigin-go/internal/model"
)

// MockIDGenerator is a mock implementation of identity.Generator for
// testing. It returns queued ids first, then falls back to a counter so
// tests that don't care about ids still get distinct ones.
type MockIDGenerator struct {
	// IDResults is a queue of ids to return from NewPlayerID
	IDResults []model.PlayerID
	idIndex   int
	counter   int
}

// Ensure MockIDGenerator implements Generator
var _ identity.Generator = (*MockIDGenerator)(nil)

// NewMockIDGenerator creates a new MockIDGenerator
func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

// NewPlayerID returns the next queued id, or a generated sequential one
func (g *MockIDGenerator) NewPlayerID() model.PlayerID {
	if g.idIndex < len(g.IDResults) {
		result := g.IDResults[g.idIndex]
		g.idIndex++
		return result
	}
	g.counter++
	return model.PlayerID(fmt.Sprintf("mock-player-%d", g.counter))
}

// QueueID adds ids to the result queue
func (g *MockIDGenerator) QueueID(ids ...model.PlayerID) {
	g.IDResults = append(g.IDResults, ids...)
}

// Reset clears all queued results
func (g *MockIDGenerator) Reset() {
	g.IDResults = nil
	g.idIndex = 0
	g.counter = 0
}
