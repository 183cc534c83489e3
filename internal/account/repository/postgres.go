package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"workspace-control-plane/backend/internal/account/domain"
	"workspace-control-plane/backend/internal/db/sqlc/gen"
)

type PostgresRepository struct {
	queries *gen.Queries
}

// NewPostgresRepository returns an account repository that uses the given db for persistence.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{queries: gen.New(db)}
}

// GetByID returns the account for id, or nil if not found.
// It returns an error only for database failures, not for missing rows.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	a, err := r.queries.GetAccount(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return genAccountToDomain(&a), nil
}

// GetByEmail returns the account with the given email, or nil if not found.
// It returns an error only for database failures, not for missing rows.
func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	a, err := r.queries.GetAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return genAccountToDomain(&a), nil
}

// Create persists the account to the database. The account must have ID set.
func (r *PostgresRepository) Create(ctx context.Context, a *domain.Account) error {
	name := sql.NullString{String: a.Name, Valid: a.Name != ""}
	var current sql.NullString
	if a.CurrentWorkspaceID != nil {
		current = sql.NullString{String: *a.CurrentWorkspaceID, Valid: true}
	}
	_, err := r.queries.CreateAccount(ctx, gen.CreateAccountParams{
		ID:                 a.ID,
		Email:              a.Email,
		Name:               name,
		Status:             gen.AccountStatus(a.Status),
		CurrentWorkspaceID: current,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	})
	return err
}

// SetCurrentWorkspace updates the account's current-workspace pointer as a
// single conditional UPDATE guarded by a membership EXISTS subquery. Returns
// false when no row was updated (account missing or not a member).
func (r *PostgresRepository) SetCurrentWorkspace(ctx context.Context, accountID, workspaceID string) (bool, error) {
	n, err := r.queries.SetCurrentWorkspace(ctx, gen.SetCurrentWorkspaceParams{
		ID:                 accountID,
		CurrentWorkspaceID: sql.NullString{String: workspaceID, Valid: true},
		UpdatedAt:          time.Now().UTC(),
	})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func genAccountToDomain(a *gen.Account) *domain.Account {
	if a == nil {
		return nil
	}
	out := &domain.Account{
		ID:        a.ID,
		Email:     a.Email,
		Status:    domain.AccountStatus(a.Status),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
	if a.Name.Valid {
		out.Name = a.Name.String
	}
	if a.CurrentWorkspaceID.Valid {
		id := a.CurrentWorkspaceID.String
		out.CurrentWorkspaceID = &id
	}
	return out
}
