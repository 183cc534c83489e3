package repository

import (
	"context"

	"workspace-control-plane/backend/internal/account/domain"
)

// Repository defines persistence for accounts and the per-account
// current-workspace pointer.
type Repository interface {
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	Create(ctx context.Context, a *domain.Account) error
	// SetCurrentWorkspace points the account at workspaceID. The update only
	// succeeds when a membership row for (account, workspace) exists at commit
	// time; it returns false when the account is not a member. Concurrent
	// calls for the same account serialize on the row, so the final pointer
	// always reflects exactly one of the attempted switches.
	SetCurrentWorkspace(ctx context.Context, accountID, workspaceID string) (bool, error)
}
