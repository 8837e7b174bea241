package grpc

import (
	"context"
	"net"

	"github.com/epavlovs/auth-service/internal/logging"
	pb "github.com/epavlovs/auth-service/internal/proto"
	"github.com/epavlovs/auth-service/internal/server/services"
	"google.golang.org/grpc"
)

// authService is the façade surface the handlers need; the concrete type is
// services.AuthService.
type authService interface {
	SignUp(ctx context.Context, username, password string) services.Status
	SignIn(ctx context.Context, username, password string) services.SignInResult
	SignOut(ctx context.Context, token string) services.Status
}

type GRPCServer struct {
	pb.UnimplementedAuthenticationServer
	address string
	auth    authService
	logger  logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, as *services.AuthService) (*GRPCServer, error) {
	return &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		auth:    as,
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	// creates gRPC-server
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor))

	// registers service
	pb.RegisterAuthenticationServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
