package service

import (
	"context"
	"encoding/json"
	"time"

	accountdomain "workspace-control-plane/backend/internal/account/domain"
	"workspace-control-plane/backend/internal/billing"
	membershipdomain "workspace-control-plane/backend/internal/membership/domain"
	membershiprepo "workspace-control-plane/backend/internal/membership/repository"
	"workspace-control-plane/backend/internal/platform/rolepolicy"
	"workspace-control-plane/backend/internal/telemetry"
	telemetrydomain "workspace-control-plane/backend/internal/telemetry/domain"
	workspacedomain "workspace-control-plane/backend/internal/workspace/domain"
)

// AccountStore is the minimal account repository needed by the context service.
type AccountStore interface {
	GetByID(ctx context.Context, id string) (*accountdomain.Account, error)
	SetCurrentWorkspace(ctx context.Context, accountID, workspaceID string) (bool, error)
}

// MembershipStore is the minimal membership repository needed by the context service.
type MembershipStore interface {
	ListByAccount(ctx context.Context, accountID string) ([]*membershiprepo.JoinedWorkspace, error)
	GetByAccountAndWorkspace(ctx context.Context, accountID, workspaceID string) (*membershipdomain.Membership, error)
}

// WorkspaceGetter is the minimal workspace registry view needed by the context service.
type WorkspaceGetter interface {
	GetByID(ctx context.Context, id string) (*workspacedomain.Workspace, error)
}

// ContextService resolves and mutates which workspace is current for an
// account. Every read of "current workspace" goes through ResolveCurrent;
// nothing caches the pointer across requests.
type ContextService struct {
	accounts    AccountStore
	memberships MembershipStore
	workspaces  WorkspaceGetter
	features    billing.FeatureLookup
	emitter     telemetry.EventEmitter
}

// NewContextService returns a ContextService with the given dependencies.
// emitter may be nil to disable telemetry.
func NewContextService(
	accounts AccountStore,
	memberships MembershipStore,
	workspaces WorkspaceGetter,
	features billing.FeatureLookup,
	emitter telemetry.EventEmitter,
) *ContextService {
	return &ContextService{
		accounts:    accounts,
		memberships: memberships,
		workspaces:  workspaces,
		features:    features,
		emitter:     emitter,
	}
}

// ResolveCurrent returns the account's current workspace snapshot. When the
// pointed-to workspace is archived, gone, or no longer backed by a membership,
// it switches the account into its oldest active workspace instead. Returns
// ErrNoAccessibleWorkspace when no active workspace remains.
func (s *ContextService) ResolveCurrent(ctx context.Context, accountID string) (*Snapshot, error) {
	acct, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if acct != nil && acct.CurrentWorkspaceID != nil {
		ws, err := s.workspaces.GetByID(ctx, *acct.CurrentWorkspaceID)
		if err != nil {
			return nil, err
		}
		if ws != nil && ws.Status == workspacedomain.WorkspaceStatusActive {
			m, err := s.memberships.GetByAccountAndWorkspace(ctx, accountID, ws.ID)
			if err != nil {
				return nil, err
			}
			if m != nil {
				return assembleSnapshot(ctx, s.features, ws, m.Role)
			}
			// Pointer no longer backed by a membership; fall through to recovery.
		}
	}

	joined, err := s.memberships.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	for _, jw := range joined {
		if jw.Workspace.Status != workspacedomain.WorkspaceStatusActive {
			continue
		}
		return s.SwitchTo(ctx, accountID, jw.Workspace.ID)
	}
	return nil, ErrNoAccessibleWorkspace
}

// SwitchTo atomically points the account at the target workspace and returns
// the resolved snapshot. Returns ErrNotAMember when no membership exists for
// the pair; the pointer write itself re-checks membership, so a concurrently
// removed membership also surfaces as ErrNotAMember rather than a torn pointer.
func (s *ContextService) SwitchTo(ctx context.Context, accountID, targetWorkspaceID string) (*Snapshot, error) {
	m, err := s.memberships.GetByAccountAndWorkspace(ctx, accountID, targetWorkspaceID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrNotAMember
	}
	if !rolepolicy.CanPerform(m.Role, rolepolicy.ActionSwitchInto) {
		return nil, ErrPermissionDenied
	}
	ok, err := s.accounts.SetCurrentWorkspace(ctx, accountID, targetWorkspaceID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotAMember
	}
	ws, err := s.workspaces.GetByID(ctx, targetWorkspaceID)
	if err != nil {
		return nil, err
	}
	if ws == nil {
		return nil, ErrWorkspaceNotFound
	}
	s.emit(ctx, accountID, ws.ID, "workspace_switched")
	return assembleSnapshot(ctx, s.features, ws, m.Role)
}

// JoinedSummary is one row of an account's workspace list.
type JoinedSummary struct {
	ID        string
	Name      string
	Plan      string
	Status    workspacedomain.WorkspaceStatus
	Role      membershipdomain.Role
	Current   bool
	CreatedAt time.Time
}

// ListJoined returns all workspaces the account is a member of, ordered by
// workspace creation time ascending. Never fails for an unknown account; the
// list is simply empty.
func (s *ContextService) ListJoined(ctx context.Context, accountID string) ([]*JoinedSummary, error) {
	acct, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	var currentID string
	if acct != nil && acct.CurrentWorkspaceID != nil {
		currentID = *acct.CurrentWorkspaceID
	}
	joined, err := s.memberships.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	out := make([]*JoinedSummary, 0, len(joined))
	for _, jw := range joined {
		f, err := s.features.GetFeatures(ctx, jw.Workspace.ID)
		if err != nil {
			return nil, err
		}
		plan := billing.PlanSandbox
		if f.BillingEnabled {
			plan = f.Plan
		}
		out = append(out, &JoinedSummary{
			ID:        jw.Workspace.ID,
			Name:      jw.Workspace.Name,
			Plan:      plan,
			Status:    jw.Workspace.Status,
			Role:      jw.Membership.Role,
			Current:   jw.Workspace.ID == currentID,
			CreatedAt: jw.Workspace.CreatedAt,
		})
	}
	return out, nil
}

func (s *ContextService) emit(ctx context.Context, accountID, workspaceID, eventType string) {
	if s.emitter == nil {
		return
	}
	telemetry.EmitAsync(s.emitter, ctx, &telemetrydomain.Event{
		WorkspaceID: workspaceID,
		AccountID:   accountID,
		EventType:   eventType,
		Source:      "context_service",
		Metadata:    json.RawMessage(nil),
		CreatedAt:   time.Now().UTC(),
	})
}
