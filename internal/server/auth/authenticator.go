// Package auth implements the authenticator: pure orchestration of the
// credential and session stores behind sign-up, sign-in and sign-out.
package auth

import (
	"context"

	"github.com/epavlovs/auth-service/internal/common"
	"github.com/epavlovs/auth-service/internal/server/sessions"
	"github.com/epavlovs/auth-service/internal/server/users"
)

// Authenticator holds no state of its own beyond references to its two
// stores. It performs no I/O besides the store calls, never retries, and is
// not safe for concurrent use; the service façade serializes access.
type Authenticator struct {
	users    users.Store
	sessions sessions.Store
}

func NewAuthenticator(us users.Store, ss sessions.Store) *Authenticator {
	return &Authenticator{users: us, sessions: ss}
}

// SignUp registers a new user. Propagates common.ErrDuplicateUsername
// unchanged.
func (a *Authenticator) SignUp(ctx context.Context, username, password string) error {
	_, err := a.users.CreateUser(ctx, username, password)
	return err
}

// SignIn resolves the credential pair and mints a session token. An unknown
// username and a wrong password both yield common.ErrInvalidCredentials.
// On success it returns the token and the user id, so the boundary layer can
// attach identity to the response without a second lookup.
func (a *Authenticator) SignIn(ctx context.Context, username, password string) (token, userID string, err error) {
	userID, ok := a.users.FindUserID(ctx, username, password)
	if !ok {
		return "", "", common.ErrInvalidCredentials
	}

	token, err = a.sessions.CreateSession(ctx, userID)
	if err != nil {
		return "", "", err
	}

	return token, userID, nil
}

// SignOut revokes a session token. Propagates common.ErrSessionNotFound
// unchanged.
func (a *Authenticator) SignOut(ctx context.Context, token string) error {
	return a.sessions.DeleteSession(ctx, token)
}
