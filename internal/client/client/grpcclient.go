// Package client wraps the generated gRPC client behind typed call helpers
// used by the CLI and the health-check driver.
package client

import (
	"context"

	pb "github.com/epavlovs/auth-service/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.AuthenticationClient
}

func NewGRPCClient(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	if err := c.initGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) initGRPCClient() error {
	conn, err := grpc.NewClient(s.endpointURL, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewAuthenticationClient(conn)
	return nil
}

func (s *GRPCClient) SignUp(ctx context.Context, username, password string) (*pb.SignUpResponse, error) {
	req := &pb.SignUpRequest{Username: username, Password: password}
	return s.client.SignUp(ctx, req)
}

func (s *GRPCClient) SignIn(ctx context.Context, username, password string) (*pb.SignInResponse, error) {
	req := &pb.SignInRequest{Username: username, Password: password}
	return s.client.SignIn(ctx, req)
}

func (s *GRPCClient) SignOut(ctx context.Context, sessionToken string) (*pb.SignOutResponse, error) {
	req := &pb.SignOutRequest{SessionToken: sessionToken}
	return s.client.SignOut(ctx, req)
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}
