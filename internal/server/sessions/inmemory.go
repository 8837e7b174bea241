package sessions

import (
	"context"

	"github.com/epavlovs/auth-service/internal/common"
	"github.com/google/uuid"
)

// InMemoryStore keeps the token-to-user map in process memory. Sessions
// never expire; they live until deleted or until the process exits. Not safe
// for concurrent use on its own; the service façade serializes access.
type InMemoryStore struct {
	tokenToUser map[string]string
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{tokenToUser: make(map[string]string)}
}

func (s *InMemoryStore) CreateSession(ctx context.Context, userID string) (string, error) {
	token := uuid.NewString()
	s.tokenToUser[token] = userID
	return token, nil
}

func (s *InMemoryStore) DeleteSession(ctx context.Context, token string) error {
	if _, ok := s.tokenToUser[token]; !ok {
		return common.ErrSessionNotFound
	}
	delete(s.tokenToUser, token)
	return nil
}
