// Package services contains server-side business logic. This file implements
// AuthService, the concurrency-safe façade over a single authenticator that
// the transport layer calls into.
package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/epavlovs/auth-service/internal/server/auth"
	"github.com/epavlovs/auth-service/internal/server/config"
	"github.com/epavlovs/auth-service/internal/server/sessions"
	"github.com/epavlovs/auth-service/internal/server/users"
)

// Status is the only externally visible outcome of a façade operation.
// Internal error kinds never cross this boundary.
type Status int

const (
	StatusSuccess Status = iota
	StatusFailure
)

// SignInResult carries the sign-in payload. SessionToken and UserID are
// empty unless Status is StatusSuccess.
type SignInResult struct {
	Status       Status
	SessionToken string
	UserID       string
}

type authenticator interface {
	SignUp(ctx context.Context, username, password string) error
	SignIn(ctx context.Context, username, password string) (token, userID string, err error)
	SignOut(ctx context.Context, token string) error
}

// AuthService holds the authenticator behind a mutual-exclusion lock so it
// can be shared across concurrent request handlers. Each operation is one
// critical section, which linearizes sign-up, sign-in and sign-out against
// each other: two concurrent sign-ups for the same username can never both
// succeed.
type AuthService struct {
	mu   sync.Mutex
	auth authenticator
}

// NewAuthService constructs a façade over a freshly built authenticator.
// The configuration selects which store implementations back it; an
// unrecognized storage kind is a construction error.
func NewAuthService(cfg *config.Config) (*AuthService, error) {
	switch cfg.Storage {
	case config.StorageInMemory:
		a := auth.NewAuthenticator(users.NewInMemoryStore(), sessions.NewInMemoryStore())
		return &AuthService{auth: a}, nil
	default:
		return nil, fmt.Errorf("unknown storage kind: %q", cfg.Storage)
	}
}

func (s *AuthService) SignUp(ctx context.Context, username, password string) Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.auth.SignUp(ctx, username, password); err != nil {
		return StatusFailure
	}
	return StatusSuccess
}

func (s *AuthService) SignIn(ctx context.Context, username, password string) SignInResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	token, userID, err := s.auth.SignIn(ctx, username, password)
	if err != nil {
		return SignInResult{Status: StatusFailure}
	}
	return SignInResult{Status: StatusSuccess, SessionToken: token, UserID: userID}
}

func (s *AuthService) SignOut(ctx context.Context, token string) Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.auth.SignOut(ctx, token); err != nil {
		return StatusFailure
	}
	return StatusSuccess
}
