package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/epavlovs/auth-service/internal/common"
	"github.com/epavlovs/auth-service/internal/server/sessions"
	"github.com/epavlovs/auth-service/internal/server/users"
)

// ---- fakes ----

type fakeSessions struct {
	createToken string
	createErr   error
	deleteErr   error

	createdFor []string
	deleted    []string
}

func (f *fakeSessions) CreateSession(ctx context.Context, userID string) (string, error) {
	f.createdFor = append(f.createdFor, userID)
	return f.createToken, f.createErr
}

func (f *fakeSessions) DeleteSession(ctx context.Context, token string) error {
	f.deleted = append(f.deleted, token)
	return f.deleteErr
}

// ---- helpers ----

func newAuthenticator(t *testing.T) *Authenticator {
	t.Helper()
	return NewAuthenticator(users.NewInMemoryStore(), sessions.NewInMemoryStore())
}

// ---- tests ----

func TestSignUp(t *testing.T) {
	a := newAuthenticator(t)

	if err := a.SignUp(context.Background(), "username", "password"); err != nil {
		t.Fatalf("SignUp error: %v", err)
	}
}

func TestSignUp_DuplicateUsername(t *testing.T) {
	a := newAuthenticator(t)
	ctx := context.Background()

	if err := a.SignUp(ctx, "username", "password"); err != nil {
		t.Fatalf("SignUp error: %v", err)
	}

	err := a.SignUp(ctx, "username", "password")
	if !errors.Is(err, common.ErrDuplicateUsername) {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}
}

func TestSignIn(t *testing.T) {
	a := newAuthenticator(t)
	ctx := context.Background()

	if err := a.SignUp(ctx, "username", "password"); err != nil {
		t.Fatalf("SignUp error: %v", err)
	}

	token, userID, err := a.SignIn(ctx, "username", "password")
	if err != nil {
		t.Fatalf("SignIn error: %v", err)
	}
	if token == "" || userID == "" {
		t.Fatalf("expected token and user id, got %q / %q", token, userID)
	}
}

func TestSignIn_UnknownUserAndWrongPasswordSameError(t *testing.T) {
	a := newAuthenticator(t)
	ctx := context.Background()

	if err := a.SignUp(ctx, "username", "password"); err != nil {
		t.Fatalf("SignUp error: %v", err)
	}

	_, _, errWrongPwd := a.SignIn(ctx, "username", "wrong")
	_, _, errUnknown := a.SignIn(ctx, "nobody", "x")

	if !errors.Is(errWrongPwd, common.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", errWrongPwd)
	}
	if !errors.Is(errUnknown, common.ErrInvalidCredentials) {
		t.Fatalf("unknown user: expected ErrInvalidCredentials, got %v", errUnknown)
	}
	if errWrongPwd.Error() != errUnknown.Error() {
		t.Fatalf("the two failure cases must be indistinguishable: %q vs %q", errWrongPwd, errUnknown)
	}
}

func TestSignIn_SessionStoreFailurePropagates(t *testing.T) {
	exhausted := errors.New("out of memory")
	us := users.NewInMemoryStore()
	fs := &fakeSessions{createErr: exhausted}
	a := NewAuthenticator(us, fs)
	ctx := context.Background()

	if err := a.SignUp(ctx, "username", "password"); err != nil {
		t.Fatalf("SignUp error: %v", err)
	}

	_, _, err := a.SignIn(ctx, "username", "password")
	if !errors.Is(err, exhausted) {
		t.Fatalf("expected session store error, got %v", err)
	}
}

func TestSignOut(t *testing.T) {
	a := newAuthenticator(t)
	ctx := context.Background()

	if err := a.SignUp(ctx, "username", "password"); err != nil {
		t.Fatalf("SignUp error: %v", err)
	}
	token, _, err := a.SignIn(ctx, "username", "password")
	if err != nil {
		t.Fatalf("SignIn error: %v", err)
	}

	if err := a.SignOut(ctx, token); err != nil {
		t.Fatalf("SignOut error: %v", err)
	}

	err = a.SignOut(ctx, token)
	if !errors.Is(err, common.ErrSessionNotFound) {
		t.Fatalf("second SignOut: expected ErrSessionNotFound, got %v", err)
	}
}

func TestSignOut_UnknownToken(t *testing.T) {
	a := newAuthenticator(t)

	err := a.SignOut(context.Background(), "does-not-exist")
	if !errors.Is(err, common.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestRoundTrip(t *testing.T) {
	a := newAuthenticator(t)
	ctx := context.Background()

	if err := a.SignUp(ctx, "alice", "secret"); err != nil {
		t.Fatalf("sign-up: %v", err)
	}
	if err := a.SignUp(ctx, "alice", "other"); !errors.Is(err, common.ErrDuplicateUsername) {
		t.Fatalf("duplicate sign-up: expected ErrDuplicateUsername, got %v", err)
	}

	token, userID, err := a.SignIn(ctx, "alice", "secret")
	if err != nil || token == "" || userID == "" {
		t.Fatalf("sign-in: token=%q id=%q err=%v", token, userID, err)
	}
	if _, _, err := a.SignIn(ctx, "alice", "wrong"); !errors.Is(err, common.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}

	if err := a.SignOut(ctx, token); err != nil {
		t.Fatalf("sign-out: %v", err)
	}
	if err := a.SignOut(ctx, token); !errors.Is(err, common.ErrSessionNotFound) {
		t.Fatalf("repeated sign-out: expected ErrSessionNotFound, got %v", err)
	}

	if _, _, err := a.SignIn(ctx, "bob", "x"); !errors.Is(err, common.ErrInvalidCredentials) {
		t.Fatalf("sign-in on empty store: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestSignIn_TokensNotReused(t *testing.T) {
	a := newAuthenticator(t)
	ctx := context.Background()

	if err := a.SignUp(ctx, "alice", "secret"); err != nil {
		t.Fatalf("sign-up: %v", err)
	}

	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		token, _, err := a.SignIn(ctx, "alice", "secret")
		if err != nil {
			t.Fatalf("sign-in %d: %v", i, err)
		}
		if _, dup := seen[token]; dup {
			t.Fatalf("token %q issued twice", token)
		}
		seen[token] = struct{}{}
	}
}

func TestDeleteUser_DoesNotRevokeSessions(t *testing.T) {
	us := users.NewInMemoryStore()
	ss := sessions.NewInMemoryStore()
	a := NewAuthenticator(us, ss)
	ctx := context.Background()

	if err := a.SignUp(ctx, "alice", "secret"); err != nil {
		t.Fatalf("sign-up: %v", err)
	}
	token, _, err := a.SignIn(ctx, "alice", "secret")
	if err != nil {
		t.Fatalf("sign-in: %v", err)
	}

	if err := us.DeleteUser(ctx, "alice"); err != nil {
		t.Fatalf("delete user: %v", err)
	}

	// No cascading revoke: the already-issued token still resolves, so this
	// first sign-out succeeds.
	if err := a.SignOut(ctx, token); err != nil {
		t.Fatalf("sign-out after user delete: %v", err)
	}
}
