package repository

import (
	"context"

	"workspace-control-plane/backend/internal/workspace/domain"
)

// Repository defines persistence for workspace records, including the two
// composite operations that must pair a registry write with a membership
// write atomically.
type Repository interface {
	GetByID(ctx context.Context, id string) (*domain.Workspace, error)
	// UpdateName overwrites the display name. Returns nil when the workspace
	// is absent.
	UpdateName(ctx context.Context, id, name string) (*domain.Workspace, error)
	// UpdateCustomConfig overwrites the custom configuration document.
	// Returns nil when the workspace is absent. Merge semantics belong to the
	// lifecycle service; this is a full overwrite.
	UpdateCustomConfig(ctx context.Context, id string, cfg domain.CustomConfig) (*domain.Workspace, error)
	// ListPage returns workspaces ordered by creation time descending along
	// with the total count. page is 1-based; callers validate the range.
	ListPage(ctx context.Context, page, pageSize int) ([]*domain.Workspace, int64, error)
	// CreateWithOwner inserts the workspace row and the creator's owner
	// membership in one transaction. A workspace without an owner membership
	// is never observable.
	CreateWithOwner(ctx context.Context, w *domain.Workspace, ownerAccountID, membershipID string) error
	// Dissolve deletes all memberships for the workspace and the workspace
	// row in one transaction. Returns false when the workspace row was
	// already gone (e.g. a concurrent dissolve committed first); the
	// membership deletes roll back in that case.
	Dissolve(ctx context.Context, id string) (bool, error)
}
