// Package interceptor wires a shield into a gRPC server.
package interceptor

import (
	"context"
	"strings"

	"google.golang.org/grpc"

	shieldgrpc "github.com/kbukum/shieldkit/grpc"
	"github.com/kbukum/shieldkit/shield"
)

// PathFromMethod converts a gRPC full method name into a rule tree path.
// "/users.Users/GetProfile" becomes ["users", "Users", "GetProfile"]: the
// package segments, the service name, then the method name.
func PathFromMethod(fullMethod string) []string {
	trimmed := strings.TrimPrefix(fullMethod, "/")
	serviceAndMethod := strings.SplitN(trimmed, "/", 2)
	if len(serviceAndMethod) != 2 {
		return []string{trimmed}
	}
	path := strings.Split(serviceAndMethod[0], ".")
	return append(path, serviceAndMethod[1])
}

// UnaryServer returns a unary server interceptor that consults s before
// every call. The rule tree path is derived from the full method name, the
// request message is the rule input, and the gRPC handler is the
// continuation. Denials are converted to gRPC status errors.
func UnaryServer(s *shield.Shield) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		out, err := s.Handle(ctx, PathFromMethod(info.FullMethod), req, func(ctx context.Context) (any, error) {
			return handler(ctx, req)
		})
		if err != nil {
			return nil, shieldgrpc.ToStatus(err)
		}
		return out, nil
	}
}
