package interceptors

import (
	"context"
	"testing"
)

func TestWithIdentity_SetsAllValues(t *testing.T) {
	ctx := context.Background()
	ctx = WithIdentity(ctx, "acct-1", "ws-1")

	accountID, ok := GetAccountID(ctx)
	if !ok {
		t.Fatal("GetAccountID should return true")
	}
	if accountID != "acct-1" {
		t.Errorf("account_id = %q, want %q", accountID, "acct-1")
	}

	workspaceID, ok := GetWorkspaceID(ctx)
	if !ok {
		t.Fatal("GetWorkspaceID should return true")
	}
	if workspaceID != "ws-1" {
		t.Errorf("workspace_id = %q, want %q", workspaceID, "ws-1")
	}
}

func TestGetAccountID_ReturnsFalseWhenNotSet(t *testing.T) {
	ctx := context.Background()

	accountID, ok := GetAccountID(ctx)
	if ok {
		t.Error("GetAccountID should return false when not set")
	}
	if accountID != "" {
		t.Errorf("account_id = %q, want empty string", accountID)
	}
}

func TestGetWorkspaceID_ReturnsFalseWhenNotSet(t *testing.T) {
	ctx := context.Background()

	workspaceID, ok := GetWorkspaceID(ctx)
	if ok {
		t.Error("GetWorkspaceID should return false when not set")
	}
	if workspaceID != "" {
		t.Errorf("workspace_id = %q, want empty string", workspaceID)
	}
}

func TestWithIdentity_EmptyWorkspaceID(t *testing.T) {
	ctx := WithIdentity(context.Background(), "acct-1", "")

	workspaceID, ok := GetWorkspaceID(ctx)
	if !ok {
		t.Fatal("GetWorkspaceID should return true (empty value is still set)")
	}
	if workspaceID != "" {
		t.Errorf("workspace_id = %q, want empty string", workspaceID)
	}
}

func TestWithIdentity_OverwritesPreviousValues(t *testing.T) {
	ctx := WithIdentity(context.Background(), "acct-1", "ws-1")
	ctx = WithIdentity(ctx, "acct-2", "ws-2")

	accountID, _ := GetAccountID(ctx)
	if accountID != "acct-2" {
		t.Errorf("account_id = %q, want %q", accountID, "acct-2")
	}
	workspaceID, _ := GetWorkspaceID(ctx)
	if workspaceID != "ws-2" {
		t.Errorf("workspace_id = %q, want %q", workspaceID, "ws-2")
	}
}
