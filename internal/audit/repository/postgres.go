package repository

import (
	"context"
	"database/sql"

	"workspace-control-plane/backend/internal/audit/domain"
	"workspace-control-plane/backend/internal/db/sqlc/gen"
)

type PostgresRepository struct {
	queries *gen.Queries
}

// NewPostgresRepository returns an audit log repository that uses the given db for persistence.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{queries: gen.New(db)}
}

// Create persists the audit log entry. The entry must have ID set.
func (r *PostgresRepository) Create(ctx context.Context, entry *domain.AuditLog) error {
	_, err := r.queries.CreateAuditLog(ctx, gen.CreateAuditLogParams{
		ID:          entry.ID,
		WorkspaceID: entry.WorkspaceID,
		AccountID:   entry.AccountID,
		Action:      entry.Action,
		Resource:    entry.Resource,
		Ip:          entry.IP,
		Metadata:    entry.Metadata,
		CreatedAt:   entry.CreatedAt,
	})
	return err
}

// ListByWorkspace returns audit logs for the given workspace, newest first,
// paginated by limit and offset. Returns (nil, error) only on database errors.
func (r *PostgresRepository) ListByWorkspace(ctx context.Context, workspaceID string, limit, offset int32) ([]*domain.AuditLog, error) {
	list, err := r.queries.ListAuditLogsByWorkspace(ctx, gen.ListAuditLogsByWorkspaceParams{
		WorkspaceID: workspaceID, Limit: limit, Offset: offset,
	})
	if err != nil {
		return nil, err
	}
	out := make([]*domain.AuditLog, len(list))
	for i := range list {
		out[i] = genAuditLogToDomain(&list[i])
	}
	return out, nil
}

func genAuditLogToDomain(a *gen.AuditLog) *domain.AuditLog {
	if a == nil {
		return nil
	}
	return &domain.AuditLog{
		ID:          a.ID,
		WorkspaceID: a.WorkspaceID,
		AccountID:   a.AccountID,
		Action:      a.Action,
		Resource:    a.Resource,
		IP:          a.Ip,
		Metadata:    a.Metadata,
		CreatedAt:   a.CreatedAt,
	}
}
