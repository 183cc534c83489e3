// Package billing defines the read-only billing/feature collaborators this
// core consumes. The billing engine itself lives outside the control plane;
// cloud deployments inject a client for it, self-hosted deployments use the
// static defaults below.
package billing

import (
	"context"
	"errors"
)

// PlanSandbox is the baseline plan reported when billing is not enabled for a
// workspace.
const PlanSandbox = "sandbox"

// ErrCapacityExceeded is returned by a CapacityGate when the account has
// reached its workspace limit.
var ErrCapacityExceeded = errors.New("workspace limit for account exceeded")

// TrialInfo describes the workspace's trial state as reported by billing.
type TrialInfo struct {
	InTrial   bool
	EndReason string
}

// Features is the billing-derived feature set for a workspace.
type Features struct {
	BillingEnabled bool
	Plan           string
	// WebappCustomization gates update-custom-config and upload-logo.
	WebappCustomization bool
	Trial               TrialInfo
}

// FeatureLookup resolves the feature set for a workspace. Read-only; no side
// effects are assumed by callers.
type FeatureLookup interface {
	GetFeatures(ctx context.Context, workspaceID string) (*Features, error)
}

// CapacityGate decides whether an account may create another workspace.
// Returns nil when allowed and ErrCapacityExceeded when the limit is reached.
type CapacityGate interface {
	CheckCanCreateWorkspace(ctx context.Context, accountID string) error
}
