// Package users implements the credential store: it owns user identity
// records, enforces username uniqueness, and hashes and verifies passwords.
package users

import "context"

// Store is the capability contract of a credential store. The in-memory
// implementation is the only one shipped; a persistent backend is a drop-in
// replacement satisfying the same contract.
type Store interface {
	// CreateUser hashes the password with a fresh random salt, allocates a
	// unique id and records the user. Returns common.ErrDuplicateUsername
	// if the username is already taken (exact-match comparison).
	CreateUser(ctx context.Context, username, password string) (*User, error)

	// FindUserID resolves a credential pair to a user id. It reports no
	// match both for an unknown username and for a wrong password; the two
	// cases are indistinguishable to the caller.
	FindUserID(ctx context.Context, username, password string) (string, bool)

	// DeleteUser removes a user record. Returns common.ErrUserNotFound if
	// no such username exists.
	DeleteUser(ctx context.Context, username string) error
}
