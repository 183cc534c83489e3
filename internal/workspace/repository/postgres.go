package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"workspace-control-plane/backend/internal/db/sqlc/gen"
	"workspace-control-plane/backend/internal/workspace/domain"
)

type PostgresRepository struct {
	db      *sql.DB
	queries *gen.Queries
}

// NewPostgresRepository returns a workspace repository that uses the given db
// for persistence. The db handle itself is retained for the transactional
// composite operations.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db, queries: gen.New(db)}
}

// GetByID returns the workspace for id, or nil if not found.
// It returns an error only for database failures, not for missing rows.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.Workspace, error) {
	w, err := r.queries.GetWorkspace(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return genWorkspaceToDomain(&w)
}

// UpdateName overwrites the workspace display name. Returns nil when the
// workspace is absent.
func (r *PostgresRepository) UpdateName(ctx context.Context, id, name string) (*domain.Workspace, error) {
	w, err := r.queries.UpdateWorkspaceName(ctx, gen.UpdateWorkspaceNameParams{ID: id, Name: name})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return genWorkspaceToDomain(&w)
}

// UpdateCustomConfig overwrites the workspace custom configuration. Returns
// nil when the workspace is absent.
func (r *PostgresRepository) UpdateCustomConfig(ctx context.Context, id string, cfg domain.CustomConfig) (*domain.Workspace, error) {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return nil, err
	}
	w, err := r.queries.UpdateWorkspaceCustomConfig(ctx, gen.UpdateWorkspaceCustomConfigParams{ID: id, CustomConfig: raw})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return genWorkspaceToDomain(&w)
}

// ListPage returns one page of workspaces ordered by creation time descending
// plus the total count. page is 1-based and assumed validated by the caller.
func (r *PostgresRepository) ListPage(ctx context.Context, page, pageSize int) ([]*domain.Workspace, int64, error) {
	total, err := r.queries.CountWorkspaces(ctx)
	if err != nil {
		return nil, 0, err
	}
	rows, err := r.queries.ListWorkspacesPage(ctx, gen.ListWorkspacesPageParams{
		Limit:  int32(pageSize),
		Offset: int32((page - 1) * pageSize),
	})
	if err != nil {
		return nil, 0, err
	}
	out := make([]*domain.Workspace, len(rows))
	for i := range rows {
		w, err := genWorkspaceToDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		out[i] = w
	}
	return out, total, nil
}

// CreateWithOwner inserts the workspace row and the creator's owner membership
// in a single transaction so a partially created workspace is never persisted.
func (r *PostgresRepository) CreateWithOwner(ctx context.Context, w *domain.Workspace, ownerAccountID, membershipID string) error {
	raw, err := json.Marshal(w.CustomConfig)
	if err != nil {
		return err
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	qtx := r.queries.WithTx(tx)
	if _, err := qtx.CreateWorkspace(ctx, gen.CreateWorkspaceParams{
		ID:           w.ID,
		Name:         w.Name,
		Status:       gen.WorkspaceStatus(w.Status),
		CustomConfig: raw,
		CreatedAt:    w.CreatedAt,
	}); err != nil {
		return fmt.Errorf("create workspace: %w", err)
	}
	if _, err := qtx.CreateMembership(ctx, gen.CreateMembershipParams{
		ID:          membershipID,
		AccountID:   ownerAccountID,
		WorkspaceID: w.ID,
		Role:        gen.RoleOwner,
		CreatedAt:   w.CreatedAt,
	}); err != nil {
		return fmt.Errorf("create owner membership: %w", err)
	}
	return tx.Commit()
}

// Dissolve removes every membership for the workspace and then the workspace
// row, in one transaction. Returns false without committing when the
// workspace row was already gone, so a concurrent second dissolve observes a
// clean not-found rather than a half-deleted state.
func (r *PostgresRepository) Dissolve(ctx context.Context, id string) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer func() { _ = tx.Rollback() }()

	qtx := r.queries.WithTx(tx)
	if _, err := qtx.DeleteMembershipsByWorkspace(ctx, id); err != nil {
		return false, fmt.Errorf("delete memberships: %w", err)
	}
	n, err := qtx.DeleteWorkspace(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete workspace: %w", err)
	}
	if n == 0 {
		return false, nil
	}
	return true, tx.Commit()
}

func genWorkspaceToDomain(w *gen.Workspace) (*domain.Workspace, error) {
	if w == nil {
		return nil, nil
	}
	var cfg domain.CustomConfig
	if len(w.CustomConfig) > 0 {
		if err := json.Unmarshal(w.CustomConfig, &cfg); err != nil {
			return nil, err
		}
	}
	return &domain.Workspace{
		ID:           w.ID,
		Name:         w.Name,
		Status:       domain.WorkspaceStatus(w.Status),
		CustomConfig: cfg,
		CreatedAt:    w.CreatedAt,
	}, nil
}
