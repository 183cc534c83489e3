package service

import (
	"context"
	"time"

	"workspace-control-plane/backend/internal/billing"
	membershipdomain "workspace-control-plane/backend/internal/membership/domain"
	workspacedomain "workspace-control-plane/backend/internal/workspace/domain"
)

// Snapshot is the full workspace view returned by context and lifecycle
// operations: registry fields joined with the caller's role and the
// billing-derived plan.
type Snapshot struct {
	ID             string
	Name           string
	Plan           string
	Status         workspacedomain.WorkspaceStatus
	Role           membershipdomain.Role
	InTrial        bool
	TrialEndReason string
	CustomConfig   workspacedomain.CustomConfig
	CreatedAt      time.Time
}

// assembleSnapshot builds a Snapshot for ws as seen by a caller with role.
// Plan falls back to the sandbox baseline when billing is not enabled for the
// workspace, matching what billing-less deployments report.
func assembleSnapshot(ctx context.Context, features billing.FeatureLookup, ws *workspacedomain.Workspace, role membershipdomain.Role) (*Snapshot, error) {
	f, err := features.GetFeatures(ctx, ws.ID)
	if err != nil {
		return nil, err
	}
	plan := billing.PlanSandbox
	if f.BillingEnabled {
		plan = f.Plan
	}
	return &Snapshot{
		ID:             ws.ID,
		Name:           ws.Name,
		Plan:           plan,
		Status:         ws.Status,
		Role:           role,
		InTrial:        f.Trial.InTrial,
		TrialEndReason: f.Trial.EndReason,
		CustomConfig:   ws.CustomConfig,
		CreatedAt:      ws.CreatedAt,
	}, nil
}
