package interceptors

import (
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// Metadata keys set by the API gateway after it has authenticated the caller.
// This service trusts the gateway; it never sees credentials itself.
const (
	accountIDHeader   = "x-account-id"
	workspaceIDHeader = "x-workspace-id"
)

// IdentityUnary returns a unary server interceptor that reads the authenticated
// account id (and optional workspace hint) from gRPC metadata and sets them in
// context for protected RPCs.
// publicMethods is the set of full method names that do not require an identity
// (e.g. grpc.health.v1.Health Check/Watch).
func IdentityUnary(publicMethods map[string]bool) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		accountID, workspaceID := extractIdentity(ctx)
		if accountID == "" {
			if publicMethods[info.FullMethod] {
				return handler(ctx, req)
			}
			return nil, status.Error(codes.Unauthenticated, "missing account identity")
		}
		ctx = WithIdentity(ctx, accountID, workspaceID)
		return handler(ctx, req)
	}
}

// extractIdentity returns the account and workspace ids from ctx metadata, or "" when absent.
func extractIdentity(ctx context.Context) (accountID, workspaceID string) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", ""
	}
	if vals := md.Get(accountIDHeader); len(vals) > 0 {
		accountID = strings.TrimSpace(vals[0])
	}
	if vals := md.Get(workspaceIDHeader); len(vals) > 0 {
		workspaceID = strings.TrimSpace(vals[0])
	}
	return accountID, workspaceID
}
