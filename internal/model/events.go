package model

import "time"

// EventType identifies the type of session event
type EventType string

const (
	EventUserLoggedIn  EventType = "user_logged_in"
	EventUserLoggedOut EventType = "user_logged_out"
)

// SessionEvent is delivered to session observers. For logout events the
// Account is the outgoing user, captured before the session is cleared.
type SessionEvent struct {
	Type      EventType
	Timestamp time.Time
	Account   Account
}
