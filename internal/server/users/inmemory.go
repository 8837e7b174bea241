package users

import (
	"context"
	"time"

	"github.com/epavlovs/auth-service/internal/common"
	"github.com/google/uuid"
)

// InMemoryStore keeps user records in a map keyed by username. All state is
// volatile and scoped to the process. It is not safe for concurrent use on
// its own; the service façade serializes access.
type InMemoryStore struct {
	users map[string]*User
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{users: make(map[string]*User)}
}

func (s *InMemoryStore) CreateUser(ctx context.Context, username, password string) (*User, error) {
	if _, ok := s.users[username]; ok {
		return nil, common.ErrDuplicateUsername
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}
	s.users[username] = user

	return user, nil
}

func (s *InMemoryStore) FindUserID(ctx context.Context, username, password string) (string, bool) {
	user, ok := s.users[username]
	if !ok {
		return "", false
	}

	// A malformed stored hash collapses into "no match" here so the caller
	// cannot tell it apart from a wrong password.
	match, err := verifyPassword(password, user.PasswordHash)
	if err != nil || !match {
		return "", false
	}

	return user.ID, true
}

func (s *InMemoryStore) DeleteUser(ctx context.Context, username string) error {
	if _, ok := s.users[username]; !ok {
		return common.ErrUserNotFound
	}
	delete(s.users, username)
	return nil
}
