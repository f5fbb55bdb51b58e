package factory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/Ch1mpleo/ninjaorigin-go/internal/model"
	"github.com/Ch1mpleo/ninjaorigin-go/internal/testutil"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
}

// Test: full register/login/logout flow against one account
func (s *IntegrationSuite) TestAccountLifecycle() {
	s.app.MockIDs.QueueID("player-bob")

	// Register succeeds
	err := s.app.Sessions.Register(s.ctx, "bob", "pw1")
	s.Require().NoError(err)

	// Same username again fails, count unchanged
	err = s.app.Sessions.Register(s.ctx, "bob", "pw2")
	s.ErrorIs(err, model.ErrUsernameTaken)
	s.Equal(1, s.app.Credentials.Count())

	// Wrong password
	err = s.app.Sessions.Login(s.ctx, "bob", "pw2")
	s.ErrorIs(err, model.ErrInvalidPassword)
	s.Nil(s.app.Sessions.CurrentUser())

	// Correct login fires the notification with bob's player id
	var loginEvents []model.SessionEvent
	s.app.Sessions.OnLogin(func(e model.SessionEvent) {
		loginEvents = append(loginEvents, e)
	})

	err = s.app.Sessions.Login(s.ctx, "bob", "pw1")
	s.Require().NoError(err)
	s.Require().Len(loginEvents, 1)
	s.Equal(model.PlayerID("player-bob"), loginEvents[0].Account.PlayerID)

	// Logout fires with the same user, then clears the session
	var logoutEvents []model.SessionEvent
	s.app.Sessions.OnLogout(func(e model.SessionEvent) {
		logoutEvents = append(logoutEvents, e)
	})

	s.app.Sessions.Logout()
	s.Require().Len(logoutEvents, 1)
	s.Equal(model.PlayerID("player-bob"), logoutEvents[0].Account.PlayerID)
	s.Nil(s.app.Sessions.CurrentUser())
}

// Test: registration creates the default profile, and edits round-trip
func (s *IntegrationSuite) TestProfilePersistsAcrossSessions() {
	s.app.MockIDs.QueueID("player-alice")

	s.Require().NoError(s.app.Sessions.Register(s.ctx, "alice", "hunter2"))
	s.Require().NoError(s.app.Sessions.Login(s.ctx, "alice", "hunter2"))

	profile, err := s.app.Sessions.LoadProfile(s.ctx, "player-alice")
	s.Require().NoError(err)
	s.Equal("alice", profile.Username)
	s.Equal(model.DefaultLevel, profile.Level)

	// Play a bit, save on logout via the notification
	profile.Level = 7
	profile.CurrentExp = 42

	s.app.Sessions.OnLogout(func(e model.SessionEvent) {
		s.Require().NoError(s.app.Sessions.SaveProfile(s.ctx, e.Account.PlayerID, profile))
	})
	s.app.Sessions.Logout()

	// Next session sees the saved progress
	s.Require().NoError(s.app.Sessions.Login(s.ctx, "alice", "hunter2"))
	reloaded, err := s.app.Sessions.LoadProfile(s.ctx, "player-alice")
	s.Require().NoError(err)
	s.Equal(7, reloaded.Level)
	s.Equal(42.0, reloaded.CurrentExp)
}

// Test: accounts registered through one app are visible to a fresh one
// built over the same storage
func (s *IntegrationSuite) TestAccountsSurviveRestart() {
	s.Require().NoError(s.app.Sessions.Register(s.ctx, "carol", "s3cret"))

	restarted, err := newWithDependencies(s.ctx, s.app.Store, s.app.MockClock, s.app.MockIDs, s.app.Hasher, testutil.NopLogger())
	s.Require().NoError(err)

	s.True(restarted.Credentials.Exists("carol"))
	s.Require().NoError(restarted.Sessions.Login(s.ctx, "CAROL", "s3cret"))
}

func (s *IntegrationSuite) TestSeedAccountCreatedOnce() {
	seed := &SeedAccount{Username: "admin", Password: "admin123"}

	s.Require().NoError(s.app.ensureSeedAccount(s.ctx, seed, testutil.NopLogger()))
	s.Equal(1, s.app.Credentials.Count())

	// Second startup leaves the existing account alone
	s.Require().NoError(s.app.ensureSeedAccount(s.ctx, seed, testutil.NopLogger()))
	s.Equal(1, s.app.Credentials.Count())

	_, err := s.app.Credentials.Authenticate("admin", "admin123")
	s.NoError(err)
}
