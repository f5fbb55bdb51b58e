package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/Ch1mpleo/ninjaorigin-go/internal/dependencies/mocks"
	"github.com/Ch1mpleo/ninjaorigin-go/internal/model"
	"github.com/Ch1mpleo/ninjaorigin-go/internal/storage/memory"
	"github.com/Ch1mpleo/ninjaorigin-go/internal/testutil"
)

type SessionManagerSuite struct {
	suite.Suite
	storage  *memory.Storage
	clock    *mocks.MockClock
	ids      *mocks.MockIDGenerator
	sessions *SessionManager
	ctx      context.Context
}

func TestSessionManagerSuite(t *testing.T) {
	suite.Run(t, new(SessionManagerSuite))
}

func (s *SessionManagerSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.ids = mocks.NewMockIDGenerator()
	s.ctx = context.Background()

	creds, err := NewCredentialStore(s.ctx, s.storage, NewArgon2idHasher(), s.ids, s.clock, testutil.NopLogger())
	s.Require().NoError(err)
	s.sessions = NewSessionManager(creds, s.storage, s.clock, testutil.NopLogger())
}

func (s *SessionManagerSuite) register(username, password string) {
	s.Require().NoError(s.sessions.Register(s.ctx, username, password))
}

// Session state machine

func (s *SessionManagerSuite) TestRegisterDoesNotChangeSessionState() {
	s.register("alice", "password123")
	s.Nil(s.sessions.CurrentUser())
}

func (s *SessionManagerSuite) TestLoginSetsCurrentUser() {
	s.ids.QueueID("player-1")
	s.register("alice", "password123")

	s.Require().NoError(s.sessions.Login(s.ctx, "alice", "password123"))

	current := s.sessions.CurrentUser()
	s.Require().NotNil(current)
	s.Equal("alice", current.Username)
	s.Equal(model.PlayerID("player-1"), current.PlayerID)
}

func (s *SessionManagerSuite) TestFailedLoginLeavesSessionLoggedOut() {
	s.register("alice", "password123")

	s.ErrorIs(s.sessions.Login(s.ctx, "alice", "wrong"), model.ErrInvalidPassword)
	s.Nil(s.sessions.CurrentUser())
}

func (s *SessionManagerSuite) TestLogoutClearsSession() {
	s.register("alice", "password123")
	s.Require().NoError(s.sessions.Login(s.ctx, "alice", "password123"))

	s.sessions.Logout()
	s.Nil(s.sessions.CurrentUser())
}

func (s *SessionManagerSuite) TestLogoutWhileLoggedOutIsNoOp() {
	fired := 0
	s.sessions.OnLogout(func(model.SessionEvent) { fired++ })

	s.sessions.Logout()
	s.sessions.Logout()

	s.Equal(0, fired)
	s.Nil(s.sessions.CurrentUser())
}

func (s *SessionManagerSuite) TestLoginWhileLoggedInReplacesSessionSilently() {
	s.register("alice", "password123")
	s.register("bob", "hunter2")

	logoutFired := 0
	s.sessions.OnLogout(func(model.SessionEvent) { logoutFired++ })

	s.Require().NoError(s.sessions.Login(s.ctx, "alice", "password123"))
	s.Require().NoError(s.sessions.Login(s.ctx, "bob", "hunter2"))

	// No implicit logout notification for the displaced user
	s.Equal(0, logoutFired)
	s.Equal("bob", s.sessions.CurrentUser().Username)
}

// Notifications

func (s *SessionManagerSuite) TestLoginNotificationDeliveredBeforeReturn() {
	s.ids.QueueID("player-1")
	s.register("alice", "password123")

	var got []model.SessionEvent
	s.sessions.OnLogin(func(e model.SessionEvent) { got = append(got, e) })

	s.Require().NoError(s.sessions.Login(s.ctx, "alice", "password123"))

	s.Require().Len(got, 1)
	s.Equal(model.EventUserLoggedIn, got[0].Type)
	s.Equal("alice", got[0].Account.Username)
	s.Equal(model.PlayerID("player-1"), got[0].Account.PlayerID)
	s.Equal(s.clock.Now(), got[0].Timestamp)
}

func (s *SessionManagerSuite) TestLogoutNotificationCarriesOutgoingUserBeforeClearing() {
	s.register("alice", "password123")
	s.Require().NoError(s.sessions.Login(s.ctx, "alice", "password123"))

	var seenDuringHandler *model.Account
	s.sessions.OnLogout(func(e model.SessionEvent) {
		s.Equal(model.EventUserLoggedOut, e.Type)
		s.Equal("alice", e.Account.Username)
		// The session reference is still readable inside the handler
		seenDuringHandler = s.sessions.CurrentUser()
	})

	s.sessions.Logout()

	s.Require().NotNil(seenDuringHandler)
	s.Equal("alice", seenDuringHandler.Username)
	s.Nil(s.sessions.CurrentUser())
}

func (s *SessionManagerSuite) TestHandlersFireInRegistrationOrder() {
	s.register("alice", "password123")

	var order []string
	s.sessions.OnLogin(func(model.SessionEvent) { order = append(order, "first") })
	s.sessions.OnLogin(func(model.SessionEvent) { order = append(order, "second") })

	s.Require().NoError(s.sessions.Login(s.ctx, "alice", "password123"))
	s.Equal([]string{"first", "second"}, order)
}

func (s *SessionManagerSuite) TestUnsubscribeStopsDelivery() {
	s.register("alice", "password123")

	fired := 0
	unsubscribe := s.sessions.OnLogin(func(model.SessionEvent) { fired++ })

	s.Require().NoError(s.sessions.Login(s.ctx, "alice", "password123"))
	s.Equal(1, fired)

	s.sessions.Logout()
	unsubscribe()

	s.Require().NoError(s.sessions.Login(s.ctx, "alice", "password123"))
	s.Equal(1, fired)
}

// Profiles

func (s *SessionManagerSuite) TestLoadProfileReturnsDefaultWithoutPersisting() {
	profile, err := s.sessions.LoadProfile(s.ctx, "player-9")
	s.Require().NoError(err)
	s.Equal(model.DefaultProfile("player-9"), profile)

	// No durable entry was created as a side effect
	s.Equal(0, s.storage.ProfileCount())

	// Mutating the returned default does not leak into later loads
	profile.Level = 99
	again, err := s.sessions.LoadProfile(s.ctx, "player-9")
	s.Require().NoError(err)
	s.Equal(model.DefaultProfile("player-9"), again)
}

func (s *SessionManagerSuite) TestSaveThenLoadProfileRoundTrips() {
	saved := model.DefaultProfile("player-1")
	saved.Username = "alice"
	saved.Level = 12
	saved.Health = 73.5
	saved.Mana = 10.25
	saved.CurrentExp = 512
	saved.NextLevelExp = 1000
	saved.BaseDamage = 19
	saved.CriticalChance = 12.5
	saved.Strength = 8
	saved.Dexterity = 5

	s.Require().NoError(s.sessions.SaveProfile(s.ctx, "player-1", saved))

	loaded, err := s.sessions.LoadProfile(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(saved, loaded)
}

func (s *SessionManagerSuite) TestSaveProfileKeysByGivenPlayerID() {
	profile := model.DefaultProfile("stale-id")
	s.Require().NoError(s.sessions.SaveProfile(s.ctx, "player-2", profile))

	loaded, err := s.sessions.LoadProfile(s.ctx, "player-2")
	s.Require().NoError(err)
	s.Equal(model.PlayerID("player-2"), loaded.ID)
}

func (s *SessionManagerSuite) TestProfileErrorsAreStorageErrors() {
	faulty := &faultStore{
		Store:          s.storage,
		saveProfileErr: errors.New("disk full"),
		getProfileErr:  errors.New("corrupt volume"),
	}
	creds, err := NewCredentialStore(s.ctx, s.storage, NewArgon2idHasher(), s.ids, s.clock, testutil.NopLogger())
	s.Require().NoError(err)
	sessions := NewSessionManager(creds, faulty, s.clock, testutil.NopLogger())

	s.ErrorIs(sessions.SaveProfile(s.ctx, "player-1", model.DefaultProfile("player-1")), model.ErrStorage)

	_, err = sessions.LoadProfile(s.ctx, "player-1")
	s.ErrorIs(err, model.ErrStorage)
}
