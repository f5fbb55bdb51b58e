package factory

import (
	"context"
	"fmt"
	"time"

	"github.com/Ch1mpleo/ninjaorigin-go/internal/auth"
	"github.com/Ch1mpleo/ninjaorigin-go/internal/dependencies/mocks"
	"github.com/Ch1mpleo/ninjaorigin-go/internal/storage/memory"
	"github.com/Ch1mpleo/ninjaorigin-go/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	Store     *memory.Storage
	MockClock *mocks.MockClock
	MockIDs   *mocks.MockIDGenerator
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockIDs := mocks.NewMockIDGenerator()

	app, err := newWithDependencies(context.Background(), store, mockClock, mockIDs, auth.NewArgon2idHasher(), testutil.NopLogger())
	if err != nil {
		// Memory storage cannot fail to load
		panic(fmt.Sprintf("building test app: %v", err))
	}

	return &TestApp{
		App:       app,
		Store:     store,
		MockClock: mockClock,
		MockIDs:   mockIDs,
	}
}
