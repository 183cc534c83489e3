package repository

import (
	"context"

	"workspace-control-plane/backend/internal/audit/domain"
)

// Repository defines persistence for audit logs.
type Repository interface {
	Create(ctx context.Context, entry *domain.AuditLog) error
	ListByWorkspace(ctx context.Context, workspaceID string, limit, offset int32) ([]*domain.AuditLog, error)
}
