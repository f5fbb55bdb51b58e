package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Ch1mpleo/ninjaorigin-go/internal/dependencies/clock"
	"github.com/Ch1mpleo/ninjaorigin-go/internal/model"
	"github.com/Ch1mpleo/ninjaorigin-go/internal/storage"
)

// EventHandler receives session events. Handlers run synchronously on
// the calling goroutine and must not call back into the SessionManager.
type EventHandler func(model.SessionEvent)

// subscription is one registered handler in delivery order
type subscription struct {
	id int
	fn EventHandler
}

// SessionManager owns the single current-session identity. It delegates
// credential checks to the CredentialStore, notifies observers of login
// and logout, and persists/restores player profiles by player id.
//
// Construct one per application and pass it to whatever needs it; there
// is no package-level instance.
type SessionManager struct {
	creds  *CredentialStore
	store  storage.Store
	clock  clock.Clock
	logger *slog.Logger

	mu         sync.Mutex
	current    *model.Account
	nextSubID  int
	loginSubs  []subscription
	logoutSubs []subscription
}

// NewSessionManager creates a SessionManager in the logged-out state
func NewSessionManager(creds *CredentialStore, store storage.Store, clk clock.Clock, logger *slog.Logger) *SessionManager {
	return &SessionManager{
		creds:  creds,
		store:  store,
		clock:  clk,
		logger: logger,
	}
}

// Credentials exposes the underlying credential store
func (m *SessionManager) Credentials() *CredentialStore {
	return m.creds
}

// OnLogin registers a handler for login events and returns a function
// that removes it again. Handlers fire in registration order.
func (m *SessionManager) OnLogin(fn EventHandler) (unsubscribe func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextSubID++
	id := m.nextSubID
	m.loginSubs = append(m.loginSubs, subscription{id: id, fn: fn})
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.loginSubs = removeSubscription(m.loginSubs, id)
	}
}

// OnLogout registers a handler for logout events and returns a function
// that removes it again. Handlers fire in registration order.
func (m *SessionManager) OnLogout(fn EventHandler) (unsubscribe func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextSubID++
	id := m.nextSubID
	m.logoutSubs = append(m.logoutSubs, subscription{id: id, fn: fn})
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.logoutSubs = removeSubscription(m.logoutSubs, id)
	}
}

func removeSubscription(subs []subscription, id int) []subscription {
	for i, s := range subs {
		if s.id == id {
			return append(subs[:i:i], subs[i+1:]...)
		}
	}
	return subs
}

// Register creates a new account. The session state never changes:
// registering while logged in or out only creates durable data.
func (m *SessionManager) Register(ctx context.Context, username, password string) error {
	_, err := m.creds.Register(ctx, username, password)
	return err
}

// Login authenticates the credentials, makes the account the current
// user, and delivers the login event before returning.
//
// Login while already logged in silently replaces the session without a
// logout notification for the displaced user. Callers wanting a clean
// transition must call Logout first.
func (m *SessionManager) Login(ctx context.Context, username, password string) error {
	account, err := m.creds.Authenticate(username, password)
	if err != nil {
		return err
	}

	m.mu.Lock()
	if m.current != nil {
		m.logger.Warn("login while logged in: replacing session",
			slog.String("outgoing", m.current.Username),
			slog.String("incoming", account.Username))
	}
	m.current = account
	subs := append([]subscription(nil), m.loginSubs...)
	m.mu.Unlock()

	m.logger.Info("user logged in",
		slog.String("username", account.Username),
		slog.String("player_id", string(account.PlayerID)))

	m.deliver(subs, model.EventUserLoggedIn, account)
	return nil
}

// Logout delivers the logout event carrying the outgoing user, then
// clears the session. The notification fires before the reference is
// cleared so subscribers can still persist that user's state. A logout
// while already logged out is a no-op: nothing fires.
func (m *SessionManager) Logout() {
	m.mu.Lock()
	out := m.current
	if out == nil {
		m.mu.Unlock()
		return
	}
	subs := append([]subscription(nil), m.logoutSubs...)
	m.mu.Unlock()

	m.logger.Info("user logged out",
		slog.String("username", out.Username),
		slog.String("player_id", string(out.PlayerID)))

	m.deliver(subs, model.EventUserLoggedOut, out)

	m.mu.Lock()
	// Only clear if no handler-triggered login replaced the session
	if m.current == out {
		m.current = nil
	}
	m.mu.Unlock()
}

// CurrentUser returns a copy of the logged-in account, or nil
func (m *SessionManager) CurrentUser() *model.Account {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current.Clone()
}

// SaveProfile unconditionally persists the profile under the player id.
// Profile contents are the caller's responsibility.
func (m *SessionManager) SaveProfile(ctx context.Context, id model.PlayerID, profile *model.PlayerProfile) error {
	p := profile.Clone()
	p.ID = id
	if err := m.store.SaveProfile(ctx, p); err != nil {
		m.logger.Error("saving profile failed",
			slog.String("player_id", string(id)),
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: saving profile: %v", model.ErrStorage, err)
	}
	m.logger.Debug("profile saved", slog.String("player_id", string(id)))
	return nil
}

// LoadProfile returns the persisted profile for a player id, or a fresh
// default profile when none exists. The default is not persisted; a
// later save is what creates the durable slot. Only a storage failure
// produces an error.
func (m *SessionManager) LoadProfile(ctx context.Context, id model.PlayerID) (*model.PlayerProfile, error) {
	profile, err := m.store.GetProfile(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrProfileNotFound) {
			m.logger.Debug("no saved profile, using default", slog.String("player_id", string(id)))
			return model.DefaultProfile(id), nil
		}
		m.logger.Error("loading profile failed",
			slog.String("player_id", string(id)),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: loading profile: %v", model.ErrStorage, err)
	}
	return profile, nil
}

func (m *SessionManager) deliver(subs []subscription, typ model.EventType, account *model.Account) {
	event := model.SessionEvent{
		Type:      typ,
		Timestamp: m.clock.Now(),
		Account:   *account.Clone(),
	}
	for _, s := range subs {
		s.fn(event)
	}
}
