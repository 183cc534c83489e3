package interceptors

import (
	"context"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func TestIdentityUnary_MissingIdentity_ProtectedMethod(t *testing.T) {
	interceptor := IdentityUnary(map[string]bool{})
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Error("handler should not be called")
		return nil, nil
	}

	_, err := interceptor(context.Background(), "request", &grpc.UnaryServerInfo{
		FullMethod: "/wcp.workspace.v1.WorkspaceService/CreateWorkspace",
	}, handler)
	if err == nil {
		t.Fatal("expected error for missing identity")
	}
	if status.Code(err) != codes.Unauthenticated {
		t.Errorf("code = %v, want %v", status.Code(err), codes.Unauthenticated)
	}
}

func TestIdentityUnary_MissingIdentity_PublicMethod(t *testing.T) {
	public := map[string]bool{"/grpc.health.v1.Health/Check": true}
	interceptor := IdentityUnary(public)
	called := false
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		called = true
		if _, ok := GetAccountID(ctx); ok {
			t.Error("account_id should not be set for anonymous public call")
		}
		return "ok", nil
	}

	resp, err := interceptor(context.Background(), "request", &grpc.UnaryServerInfo{
		FullMethod: "/grpc.health.v1.Health/Check",
	}, handler)
	if err != nil {
		t.Fatalf("interceptor: %v", err)
	}
	if !called {
		t.Error("handler should be called for public method")
	}
	if resp != "ok" {
		t.Errorf("response = %v, want %q", resp, "ok")
	}
}

func TestIdentityUnary_IdentityFromMetadata(t *testing.T) {
	interceptor := IdentityUnary(map[string]bool{})
	md := metadata.Pairs(accountIDHeader, "acct-1", workspaceIDHeader, "ws-1")
	ctx := metadata.NewIncomingContext(context.Background(), md)

	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		accountID, ok := GetAccountID(ctx)
		if !ok || accountID != "acct-1" {
			t.Errorf("account_id = %q (set=%v), want %q", accountID, ok, "acct-1")
		}
		workspaceID, _ := GetWorkspaceID(ctx)
		if workspaceID != "ws-1" {
			t.Errorf("workspace_id = %q, want %q", workspaceID, "ws-1")
		}
		return "ok", nil
	}

	resp, err := interceptor(ctx, "request", &grpc.UnaryServerInfo{
		FullMethod: "/wcp.workspace.v1.WorkspaceService/CreateWorkspace",
	}, handler)
	if err != nil {
		t.Fatalf("interceptor: %v", err)
	}
	if resp != "ok" {
		t.Errorf("response = %v, want %q", resp, "ok")
	}
}

func TestIdentityUnary_AccountOnly_NoWorkspaceHint(t *testing.T) {
	interceptor := IdentityUnary(map[string]bool{})
	md := metadata.Pairs(accountIDHeader, "acct-1")
	ctx := metadata.NewIncomingContext(context.Background(), md)

	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		workspaceID, _ := GetWorkspaceID(ctx)
		if workspaceID != "" {
			t.Errorf("workspace_id = %q, want empty", workspaceID)
		}
		return "ok", nil
	}

	if _, err := interceptor(ctx, "request", &grpc.UnaryServerInfo{
		FullMethod: "/wcp.context.v1.ContextService/ResolveCurrent",
	}, handler); err != nil {
		t.Fatalf("interceptor: %v", err)
	}
}

func TestIdentityUnary_WhitespaceAccountID_Rejected(t *testing.T) {
	interceptor := IdentityUnary(map[string]bool{})
	md := metadata.Pairs(accountIDHeader, "   ")
	ctx := metadata.NewIncomingContext(context.Background(), md)

	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Error("handler should not be called")
		return nil, nil
	}

	_, err := interceptor(ctx, "request", &grpc.UnaryServerInfo{
		FullMethod: "/wcp.workspace.v1.WorkspaceService/CreateWorkspace",
	}, handler)
	if status.Code(err) != codes.Unauthenticated {
		t.Errorf("code = %v, want %v", status.Code(err), codes.Unauthenticated)
	}
}
