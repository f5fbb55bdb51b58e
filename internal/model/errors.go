package model

import "errors"

// Common errors used across the application
var (
	// Registration errors
	ErrInvalidInput  = errors.New("username and password required")
	ErrUsernameTaken = errors.New("username already taken")

	// Authentication errors
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPassword = errors.New("invalid password")

	// Profile errors
	ErrProfileNotFound = errors.New("profile not found")

	// ErrStorage indicates the durable store itself failed.
	// Unlike the errors above it is an operational fault, not a
	// recoverable user mistake, and gets logged at error level.
	ErrStorage = errors.New("storage failure")
)

// DisplayMessage maps an error to the short human-readable string shown
// to the player. Raw internal error text never reaches the UI.
func DisplayMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidInput):
		return "Username and password required."
	case errors.Is(err, ErrUsernameTaken):
		return "Username already taken."
	case errors.Is(err, ErrUserNotFound):
		return "User not found."
	case errors.Is(err, ErrInvalidPassword):
		return "Invalid password."
	case errors.Is(err, ErrStorage):
		return "Save data is unavailable. Please try again."
	default:
		return "Something went wrong. Please try again."
	}
}
