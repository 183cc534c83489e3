package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"workspace-control-plane/backend/internal/db/sqlc/gen"
	"workspace-control-plane/backend/internal/membership/domain"
	workspacedomain "workspace-control-plane/backend/internal/workspace/domain"
)

// uniqueViolation is the Postgres error code for unique constraint violations.
const uniqueViolation = "23505"

type PostgresRepository struct {
	queries *gen.Queries
}

// NewPostgresRepository returns a membership repository that uses the given db for persistence.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{queries: gen.New(db)}
}

// ListByAccount returns the account's memberships joined with their workspaces,
// ordered by workspace creation time ascending. Returns an empty slice for
// unknown accounts; (nil, error) only on database errors.
func (r *PostgresRepository) ListByAccount(ctx context.Context, accountID string) ([]*JoinedWorkspace, error) {
	rows, err := r.queries.ListMembershipsByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	out := make([]*JoinedWorkspace, len(rows))
	for i := range rows {
		jw, err := joinedRowToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		out[i] = jw
	}
	return out, nil
}

// GetByAccountAndWorkspace returns the membership for the given account and
// workspace, or nil if not found. It returns an error only for database
// failures, not for missing rows.
func (r *PostgresRepository) GetByAccountAndWorkspace(ctx context.Context, accountID, workspaceID string) (*domain.Membership, error) {
	m, err := r.queries.GetMembershipByAccountAndWorkspace(ctx, gen.GetMembershipByAccountAndWorkspaceParams{
		AccountID: accountID, WorkspaceID: workspaceID,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return genMembershipToDomain(&m), nil
}

// Create persists the membership to the database. The membership must have ID
// set. Returns ErrDuplicateMembership when an edge for the (account, workspace)
// pair already exists.
func (r *PostgresRepository) Create(ctx context.Context, m *domain.Membership) error {
	_, err := r.queries.CreateMembership(ctx, gen.CreateMembershipParams{
		ID:          m.ID,
		AccountID:   m.AccountID,
		WorkspaceID: m.WorkspaceID,
		Role:        gen.Role(m.Role),
		CreatedAt:   m.CreatedAt,
	})
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrDuplicateMembership
	}
	return err
}

// ListByWorkspace returns all memberships for the given workspace.
func (r *PostgresRepository) ListByWorkspace(ctx context.Context, workspaceID string) ([]*domain.Membership, error) {
	list, err := r.queries.ListMembershipsByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Membership, len(list))
	for i := range list {
		out[i] = genMembershipToDomain(&list[i])
	}
	return out, nil
}

// DeleteByWorkspace removes all membership edges for the workspace. Idempotent:
// deleting a workspace with no edges is not an error.
func (r *PostgresRepository) DeleteByWorkspace(ctx context.Context, workspaceID string) error {
	_, err := r.queries.DeleteMembershipsByWorkspace(ctx, workspaceID)
	return err
}

// CountOwnersByWorkspace returns the number of owner memberships for the workspace.
func (r *PostgresRepository) CountOwnersByWorkspace(ctx context.Context, workspaceID string) (int64, error) {
	return r.queries.CountOwnersByWorkspace(ctx, workspaceID)
}

// CountOwnedByAccount returns the number of workspaces the account owns.
// Used by the capacity gate.
func (r *PostgresRepository) CountOwnedByAccount(ctx context.Context, accountID string) (int64, error) {
	return r.queries.CountOwnedWorkspacesByAccount(ctx, accountID)
}

func genMembershipToDomain(m *gen.Membership) *domain.Membership {
	if m == nil {
		return nil
	}
	return &domain.Membership{
		ID:          m.ID,
		AccountID:   m.AccountID,
		WorkspaceID: m.WorkspaceID,
		Role:        domain.Role(m.Role),
		CreatedAt:   m.CreatedAt,
	}
}

func joinedRowToDomain(row *gen.ListMembershipsByAccountRow) (*JoinedWorkspace, error) {
	var cfg workspacedomain.CustomConfig
	if len(row.WorkspaceCustomConfig) > 0 {
		if err := json.Unmarshal(row.WorkspaceCustomConfig, &cfg); err != nil {
			return nil, err
		}
	}
	return &JoinedWorkspace{
		Membership: domain.Membership{
			ID:          row.ID,
			AccountID:   row.AccountID,
			WorkspaceID: row.WorkspaceID,
			Role:        domain.Role(row.Role),
			CreatedAt:   row.CreatedAt,
		},
		Workspace: workspacedomain.Workspace{
			ID:           row.WorkspaceID,
			Name:         row.WorkspaceName,
			Status:       workspacedomain.WorkspaceStatus(row.WorkspaceStatus),
			CustomConfig: cfg,
			CreatedAt:    row.WorkspaceCreatedAt,
		},
	}, nil
}
