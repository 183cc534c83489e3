package billing

import (
	"context"
)

// StaticLookup is the self-hosted FeatureLookup: billing disabled, sandbox
// plan, customization available. Cloud deployments replace it with a billing
// service client.
type StaticLookup struct{}

// GetFeatures returns the static self-hosted feature set for any workspace.
func (StaticLookup) GetFeatures(ctx context.Context, workspaceID string) (*Features, error) {
	return &Features{
		BillingEnabled:      false,
		Plan:                PlanSandbox,
		WebappCustomization: true,
	}, nil
}

// OwnedWorkspaceCounter counts workspaces an account owns. Implemented by the
// membership repository.
type OwnedWorkspaceCounter interface {
	CountOwnedByAccount(ctx context.Context, accountID string) (int64, error)
}

// OwnedCountGate is a CapacityGate that allows creation while the account
// owns fewer than Max workspaces. Max <= 0 means unlimited.
type OwnedCountGate struct {
	Counter OwnedWorkspaceCounter
	Max     int
}

// CheckCanCreateWorkspace returns ErrCapacityExceeded when the account
// already owns Max workspaces.
func (g *OwnedCountGate) CheckCanCreateWorkspace(ctx context.Context, accountID string) error {
	if g.Max <= 0 {
		return nil
	}
	n, err := g.Counter.CountOwnedByAccount(ctx, accountID)
	if err != nil {
		return err
	}
	if n >= int64(g.Max) {
		return ErrCapacityExceeded
	}
	return nil
}
