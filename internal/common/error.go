// Package common defines sentinel errors shared across the server layers.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Credential store errors.
	ErrDuplicateUsername = errors.New("username already exists")
	ErrUserNotFound      = errors.New("user not found")

	// ErrHashingFailure covers failures of the password hashing routine
	// itself, including malformed stored hashes. It never crosses the
	// credential store boundary.
	ErrHashingFailure = errors.New("hashing failure")

	// Session store errors.
	ErrSessionNotFound = errors.New("session not found")

	// ErrInvalidCredentials is deliberately undifferentiated: unknown
	// username and wrong password produce the same value so callers cannot
	// enumerate registered usernames.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
