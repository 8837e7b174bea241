// Package sessions implements the session store: the mapping from an opaque
// session token to an authenticated user id.
package sessions

import "context"

// Store is the capability contract of a session store. Tokens are keyed
// token-to-user, so one user may hold any number of concurrent sessions;
// capping sessions per user would be a policy layered on top, not part of
// this contract.
type Store interface {
	// CreateSession mints a fresh unique token for the given user id and
	// records the association. The error path exists only for resource
	// exhaustion; it does not fail under normal operation.
	CreateSession(ctx context.Context, userID string) (string, error)

	// DeleteSession removes the mapping for the token. Returns
	// common.ErrSessionNotFound if the token is not currently active.
	DeleteSession(ctx context.Context, token string) error
}
