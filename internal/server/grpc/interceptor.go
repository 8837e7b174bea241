package grpc

import (
	"context"

	"google.golang.org/grpc"
)

// loggingInterceptor records every unary call and its outcome. Handlers
// themselves never return transport errors (failures travel in the status
// code), so an error here means something below the handlers broke.
func (s *GRPCServer) loggingInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	resp, err := handler(ctx, req)

	if err != nil {
		s.logger.Error(ctx, "Request failed", "method", info.FullMethod, "error", err.Error())
		return resp, err
	}

	s.logger.Info(ctx, "Request handled", "method", info.FullMethod)
	return resp, nil
}
