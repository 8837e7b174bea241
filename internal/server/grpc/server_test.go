package grpc

import (
	"context"
	"testing"
	"time"

	"github.com/epavlovs/auth-service/internal/logging"
	"github.com/epavlovs/auth-service/internal/server/config"
	"github.com/epavlovs/auth-service/internal/server/services"
)

type nopLogger struct{}

func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

func TestRun_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	as, err := services.NewAuthService(&config.Config{Storage: config.StorageInMemory})
	if err != nil {
		t.Fatalf("NewAuthService error: %v", err)
	}

	srv, err := NewGRPCServer("127.0.0.1:0", nopLogger{}, as)
	if err != nil {
		t.Fatalf("NewGRPCServer error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx)
	}()

	select {
	case err := <-done:
		t.Fatalf("server exited too early: %v", err)
	case <-time.After(150 * time.Millisecond):
	}

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error after cancel: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop after context cancel")
	}
}

func TestRun_BadAddress(t *testing.T) {
	t.Parallel()

	as, err := services.NewAuthService(&config.Config{Storage: config.StorageInMemory})
	if err != nil {
		t.Fatalf("NewAuthService error: %v", err)
	}

	srv, err := NewGRPCServer("256.256.256.256:99999", nopLogger{}, as)
	if err != nil {
		t.Fatalf("NewGRPCServer error: %v", err)
	}

	if err := srv.Run(context.Background()); err == nil {
		t.Fatal("expected listen error for bad address")
	}
}
