// Package healthcheck implements the health-check driver: it exercises the
// three authentication operations in a loop against a running service and
// logs the status codes it gets back. The status code is authoritative; the
// driver adds no interpretation of its own.
package healthcheck

import (
	"context"
	"time"

	"github.com/epavlovs/auth-service/internal/logging"
	pb "github.com/epavlovs/auth-service/internal/proto"
	"github.com/google/uuid"
)

type authClient interface {
	SignUp(ctx context.Context, username, password string) (*pb.SignUpResponse, error)
	SignIn(ctx context.Context, username, password string) (*pb.SignInResponse, error)
	SignOut(ctx context.Context, sessionToken string) (*pb.SignOutResponse, error)
}

type Runner struct {
	client   authClient
	logger   logging.Logger
	interval time.Duration
}

func NewRunner(c authClient, l logging.Logger, interval time.Duration) *Runner {
	return &Runner{
		client:   c,
		logger:   l.With("module", "healthcheck"),
		interval: interval,
	}
}

// Run performs one round per interval until the context is cancelled.
// A transport error aborts the loop; a FAILURE status code does not.
func (r *Runner) Run(ctx context.Context) error {
	for {
		if err := r.checkOnce(ctx); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(r.interval):
		}
	}
}

// checkOnce drives one sign-up, sign-in, sign-out round with fresh random
// credentials.
func (r *Runner) checkOnce(ctx context.Context) error {
	username := uuid.NewString()
	password := uuid.NewString()

	up, err := r.client.SignUp(ctx, username, password)
	if err != nil {
		return err
	}
	r.logger.Info(ctx, "SignUp", "status_code", up.GetStatusCode().String())

	in, err := r.client.SignIn(ctx, username, password)
	if err != nil {
		return err
	}
	r.logger.Info(ctx, "SignIn", "status_code", in.GetStatusCode().String())

	out, err := r.client.SignOut(ctx, in.GetSessionToken())
	if err != nil {
		return err
	}
	r.logger.Info(ctx, "SignOut", "status_code", out.GetStatusCode().String())

	return nil
}
