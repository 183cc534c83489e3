package repository

import (
	"context"
	"errors"

	"workspace-control-plane/backend/internal/membership/domain"
	workspacedomain "workspace-control-plane/backend/internal/workspace/domain"
)

// ErrDuplicateMembership is returned by Create when a membership for the
// (account, workspace) pair already exists. Under correct call sequencing it
// is unreachable; callers treat it as an internal invariant violation.
var ErrDuplicateMembership = errors.New("membership already exists for account and workspace")

// JoinedWorkspace pairs a membership edge with the workspace it grants
// access to. Produced by ListByAccount in workspace creation order.
type JoinedWorkspace struct {
	Membership domain.Membership
	Workspace  workspacedomain.Workspace
}

// Repository defines persistence for memberships.
type Repository interface {
	// ListByAccount returns the account's memberships joined with their
	// workspaces, ordered by workspace creation time ascending. Unknown
	// accounts yield an empty slice, not an error.
	ListByAccount(ctx context.Context, accountID string) ([]*JoinedWorkspace, error)
	GetByAccountAndWorkspace(ctx context.Context, accountID, workspaceID string) (*domain.Membership, error)
	Create(ctx context.Context, m *domain.Membership) error
	ListByWorkspace(ctx context.Context, workspaceID string) ([]*domain.Membership, error)
	// DeleteByWorkspace removes all edges for a workspace. Idempotent.
	DeleteByWorkspace(ctx context.Context, workspaceID string) error
	CountOwnersByWorkspace(ctx context.Context, workspaceID string) (int64, error)
	CountOwnedByAccount(ctx context.Context, accountID string) (int64, error)
}
