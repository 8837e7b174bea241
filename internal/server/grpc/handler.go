package grpc

import (
	"context"

	pb "github.com/epavlovs/auth-service/internal/proto"
	"github.com/epavlovs/auth-service/internal/server/services"
)

// toStatusCode maps the façade status onto the wire enum. Every failure is
// the same generic FAILURE; the error taxonomy stays internal.
func toStatusCode(s services.Status) pb.StatusCode {
	if s == services.StatusSuccess {
		return pb.StatusCode_SUCCESS
	}
	return pb.StatusCode_FAILURE
}

func (s *GRPCServer) SignUp(ctx context.Context, req *pb.SignUpRequest) (*pb.SignUpResponse, error) {

	// The password is never logged.
	s.logger.Info(ctx, "Sign-up request", "username", req.GetUsername())

	status := s.auth.SignUp(ctx, req.GetUsername(), req.GetPassword())

	return &pb.SignUpResponse{StatusCode: toStatusCode(status)}, nil
}

func (s *GRPCServer) SignIn(ctx context.Context, req *pb.SignInRequest) (*pb.SignInResponse, error) {

	result := s.auth.SignIn(ctx, req.GetUsername(), req.GetPassword())

	return &pb.SignInResponse{
		StatusCode:   toStatusCode(result.Status),
		SessionToken: result.SessionToken,
		UserId:       result.UserID,
	}, nil
}

func (s *GRPCServer) SignOut(ctx context.Context, req *pb.SignOutRequest) (*pb.SignOutResponse, error) {

	status := s.auth.SignOut(ctx, req.GetSessionToken())

	return &pb.SignOutResponse{StatusCode: toStatusCode(status)}, nil
}
