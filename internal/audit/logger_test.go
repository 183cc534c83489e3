package audit

import (
	"context"
	"errors"
	"testing"

	"workspace-control-plane/backend/internal/audit/domain"
)

// mockAuditRepo implements the audit repository interface for tests.
type mockAuditRepo struct {
	entries   []*domain.AuditLog
	createErr error
}

func (m *mockAuditRepo) Create(ctx context.Context, entry *domain.AuditLog) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.entries = append(m.entries, entry)
	return nil
}

func (m *mockAuditRepo) ListByWorkspace(ctx context.Context, workspaceID string, limit, offset int32) ([]*domain.AuditLog, error) {
	return nil, nil
}

func TestLogger_LogEvent_Success(t *testing.T) {
	repo := &mockAuditRepo{}
	ipExtractor := func(ctx context.Context) string {
		return "192.168.1.1"
	}
	logger := NewLogger(repo, ipExtractor)
	ctx := context.Background()

	logger.LogEvent(ctx, "ws-1", "acct-1", "dissolve", "workspace", "meta")

	if len(repo.entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(repo.entries))
	}
	entry := repo.entries[0]
	if entry.WorkspaceID != "ws-1" {
		t.Errorf("workspace_id = %q, want %q", entry.WorkspaceID, "ws-1")
	}
	if entry.AccountID != "acct-1" {
		t.Errorf("account_id = %q, want %q", entry.AccountID, "acct-1")
	}
	if entry.Action != "dissolve" {
		t.Errorf("action = %q, want %q", entry.Action, "dissolve")
	}
	if entry.Resource != "workspace" {
		t.Errorf("resource = %q, want %q", entry.Resource, "workspace")
	}
	if entry.IP != "192.168.1.1" {
		t.Errorf("ip = %q, want %q", entry.IP, "192.168.1.1")
	}
	if entry.Metadata != "meta" {
		t.Errorf("metadata = %q, want %q", entry.Metadata, "meta")
	}
	if entry.ID == "" {
		t.Error("entry ID should be set")
	}
	if entry.CreatedAt.IsZero() {
		t.Error("entry CreatedAt should be set")
	}
}

func TestLogger_LogEvent_NilIPExtractor(t *testing.T) {
	repo := &mockAuditRepo{}
	logger := NewLogger(repo, nil)

	logger.LogEvent(context.Background(), "ws-1", "acct-1", "create", "workspace", "")

	if len(repo.entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(repo.entries))
	}
	if repo.entries[0].IP != "unknown" {
		t.Errorf("ip = %q, want %q", repo.entries[0].IP, "unknown")
	}
}

func TestLogger_LogEvent_SentinelWorkspaceID(t *testing.T) {
	repo := &mockAuditRepo{}
	logger := NewLogger(repo, nil)

	logger.LogEvent(context.Background(), "", "acct-1", "create", "workspace", "")

	if len(repo.entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(repo.entries))
	}
	if repo.entries[0].WorkspaceID != SentinelWorkspaceID {
		t.Errorf("workspace_id = %q, want %q", repo.entries[0].WorkspaceID, SentinelWorkspaceID)
	}
}

func TestLogger_LogEvent_RepositoryError(t *testing.T) {
	repo := &mockAuditRepo{createErr: errors.New("database error")}
	logger := NewLogger(repo, nil)

	// Best-effort logging: must not panic or surface the error.
	logger.LogEvent(context.Background(), "ws-1", "acct-1", "create", "workspace", "")
}

func TestLogger_NilRepo(t *testing.T) {
	logger := NewLogger(nil, nil)
	logger.LogEvent(context.Background(), "ws-1", "acct-1", "create", "workspace", "")
}
