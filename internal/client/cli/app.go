// Package cli implements the command-line client: one cobra subcommand per
// authentication operation, printing the status code the service returns.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/epavlovs/auth-service/internal/client/client"
	"github.com/epavlovs/auth-service/internal/client/config"
	pb "github.com/epavlovs/auth-service/internal/proto"
)

// authClient is the call surface the commands need; the concrete type is
// client.GRPCClient.
type authClient interface {
	SignUp(ctx context.Context, username, password string) (*pb.SignUpResponse, error)
	SignIn(ctx context.Context, username, password string) (*pb.SignInResponse, error)
	SignOut(ctx context.Context, sessionToken string) (*pb.SignOutResponse, error)
	Close() error
}

type App struct {
	config *config.Config
	client authClient
	out    io.Writer
}

func NewApp(c *config.Config) *App {
	return &App{config: c, out: os.Stdout}
}

// connect dials the service lazily, after cobra has parsed the address flag.
// Tests inject a fake client instead.
func (a *App) connect(addr string) error {
	if a.client != nil {
		return nil
	}
	c, err := client.NewGRPCClient(addr)
	if err != nil {
		return err
	}
	a.client = c
	return nil
}

func (a *App) Run(ctx context.Context) error {
	defer func() {
		if a.client != nil {
			_ = a.client.Close()
		}
	}()
	return a.NewRootCmd().ExecuteContext(ctx)
}
