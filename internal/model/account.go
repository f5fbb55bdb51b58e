package model

import (
	"strings"
	"time"
)

// PlayerID uniquely identifies a player's profile across the system.
// It is assigned once at registration and never changes or gets reused.
type PlayerID string

// Account represents a registered user of the game client.
//
// Salt and PasswordHash are immutable after registration; there is no
// password-reset flow in this system. Username comparisons are
// case-insensitive but the original casing is preserved for display.
type Account struct {
	PlayerID     PlayerID  `json:"player_id"`
	Username     string    `json:"username"`
	Salt         []byte    `json:"salt"`
	PasswordHash []byte    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

// UsernameEqual reports whether two usernames refer to the same account.
func UsernameEqual(a, b string) bool {
	return strings.EqualFold(a, b)
}

// Clone returns a deep copy of the account.
func (a *Account) Clone() *Account {
	if a == nil {
		return nil
	}
	c := *a
	c.Salt = append([]byte(nil), a.Salt...)
	c.PasswordHash = append([]byte(nil), a.PasswordHash...)
	return &c
}
