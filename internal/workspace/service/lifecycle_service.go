package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"workspace-control-plane/backend/internal/audit"
	"workspace-control-plane/backend/internal/billing"
	membershipdomain "workspace-control-plane/backend/internal/membership/domain"
	"workspace-control-plane/backend/internal/platform/rolepolicy"
	"workspace-control-plane/backend/internal/telemetry"
	telemetrydomain "workspace-control-plane/backend/internal/telemetry/domain"
	workspacedomain "workspace-control-plane/backend/internal/workspace/domain"
)

// WorkspaceRegistry is the workspace repository surface needed by the lifecycle service.
type WorkspaceRegistry interface {
	GetByID(ctx context.Context, id string) (*workspacedomain.Workspace, error)
	UpdateName(ctx context.Context, id, name string) (*workspacedomain.Workspace, error)
	UpdateCustomConfig(ctx context.Context, id string, cfg workspacedomain.CustomConfig) (*workspacedomain.Workspace, error)
	ListPage(ctx context.Context, page, pageSize int) ([]*workspacedomain.Workspace, int64, error)
	CreateWithOwner(ctx context.Context, w *workspacedomain.Workspace, ownerAccountID, membershipID string) error
	Dissolve(ctx context.Context, id string) (bool, error)
}

// Bounds for the admin workspace listing. maxPage keeps the computed SQL
// offset well inside int32 range.
const (
	maxPage     = 99999
	maxPageSize = 100
)

// ConfigPatch is a partial custom-config update. Nil fields keep their prior
// values.
type ConfigPatch struct {
	RemoveWebappBrand *bool
	ReplaceWebappLogo *string
}

// LifecycleService creates and dissolves workspaces and applies the
// config mutations gated by role policy and billing entitlements.
type LifecycleService struct {
	workspaces  WorkspaceRegistry
	memberships MembershipStore
	accounts    AccountStore
	capacity    billing.CapacityGate
	features    billing.FeatureLookup
	auditLog    audit.AuditLogger
	emitter     telemetry.EventEmitter
}

// NewLifecycleService returns a LifecycleService with the given dependencies.
// auditLog and emitter may be nil to disable auditing and telemetry.
func NewLifecycleService(
	workspaces WorkspaceRegistry,
	memberships MembershipStore,
	accounts AccountStore,
	capacity billing.CapacityGate,
	features billing.FeatureLookup,
	auditLog audit.AuditLogger,
	emitter telemetry.EventEmitter,
) *LifecycleService {
	return &LifecycleService{
		workspaces:  workspaces,
		memberships: memberships,
		accounts:    accounts,
		capacity:    capacity,
		features:    features,
		auditLog:    auditLog,
		emitter:     emitter,
	}
}

// Create creates a workspace with the creator as sole owner. The registry row
// and the owner membership are written in one transaction; a workspace
// without an owner is never observable. Returns billing.ErrCapacityExceeded
// when the account's workspace limit is reached.
func (s *LifecycleService) Create(ctx context.Context, accountID, name string) (*Snapshot, error) {
	if err := s.capacity.CheckCanCreateWorkspace(ctx, accountID); err != nil {
		return nil, err
	}
	ws := &workspacedomain.Workspace{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(name),
		Status:    workspacedomain.WorkspaceStatusActive,
		CreatedAt: time.Now().UTC(),
	}
	if err := ws.Validate(); err != nil {
		return nil, err
	}
	if err := s.workspaces.CreateWithOwner(ctx, ws, accountID, uuid.New().String()); err != nil {
		return nil, err
	}
	s.audit(ctx, ws.ID, accountID, "create", "workspace")
	s.emit(ctx, accountID, ws.ID, "workspace_created")
	return assembleSnapshot(ctx, s.features, ws, "owner")
}

// Dissolve permanently removes the workspace and all its memberships.
// Owner only; the requester must have switched away from the workspace first.
// Both deletes commit or roll back together, and a concurrent second dissolve
// gets ErrWorkspaceNotFound.
func (s *LifecycleService) Dissolve(ctx context.Context, accountID, workspaceID string) error {
	ws, err := s.workspaces.GetByID(ctx, workspaceID)
	if err != nil {
		return err
	}
	if ws == nil {
		return ErrWorkspaceNotFound
	}
	m, err := s.memberships.GetByAccountAndWorkspace(ctx, accountID, workspaceID)
	if err != nil {
		return err
	}
	if m == nil || !rolepolicy.CanPerform(m.Role, rolepolicy.ActionDissolve) {
		return ErrPermissionDenied
	}
	acct, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return err
	}
	if acct != nil && acct.CurrentWorkspaceID != nil && *acct.CurrentWorkspaceID == workspaceID {
		return ErrCannotDeleteActiveWorkspace
	}
	ok, err := s.workspaces.Dissolve(ctx, workspaceID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrWorkspaceNotFound
	}
	s.audit(ctx, workspaceID, accountID, "dissolve", "workspace")
	s.emit(ctx, accountID, workspaceID, "workspace_dissolved")
	return nil
}

// Rename changes the display name of the requester's current workspace.
// Owner or admin only.
func (s *LifecycleService) Rename(ctx context.Context, accountID, newName string) (*Snapshot, error) {
	workspaceID, role, err := s.requireCurrent(ctx, accountID, rolepolicy.ActionUpdateName)
	if err != nil {
		return nil, err
	}
	newName = strings.TrimSpace(newName)
	check := workspacedomain.Workspace{Name: newName}
	if err := check.Validate(); err != nil {
		return nil, err
	}
	updated, err := s.workspaces.UpdateName(ctx, workspaceID, newName)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrWorkspaceNotFound
	}
	s.audit(ctx, workspaceID, accountID, "rename", "workspace")
	return assembleSnapshot(ctx, s.features, updated, role)
}

// UpdateCustomConfig merges the patch over the current workspace's custom
// configuration. Owner or admin only, and only when the billing plan includes
// webapp customization. Unset patch fields retain their prior values.
func (s *LifecycleService) UpdateCustomConfig(ctx context.Context, accountID string, patch ConfigPatch) (*Snapshot, error) {
	workspaceID, role, err := s.requireCurrent(ctx, accountID, rolepolicy.ActionUpdateCustomConfig)
	if err != nil {
		return nil, err
	}
	f, err := s.features.GetFeatures(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	if !f.WebappCustomization {
		return nil, ErrEntitlementDenied
	}
	ws, err := s.workspaces.GetByID(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	if ws == nil {
		return nil, ErrWorkspaceNotFound
	}
	cfg := ws.CustomConfig
	if patch.RemoveWebappBrand != nil {
		cfg.RemoveWebappBrand = *patch.RemoveWebappBrand
	}
	if patch.ReplaceWebappLogo != nil {
		cfg.ReplaceWebappLogo = *patch.ReplaceWebappLogo
	}
	updated, err := s.workspaces.UpdateCustomConfig(ctx, workspaceID, cfg)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrWorkspaceNotFound
	}
	s.audit(ctx, workspaceID, accountID, "update_custom_config", "workspace")
	return assembleSnapshot(ctx, s.features, updated, role)
}

// WorkspaceSummary is one row of the admin workspace listing.
type WorkspaceSummary struct {
	ID        string
	Name      string
	Status    workspacedomain.WorkspaceStatus
	CreatedAt time.Time
}

// WorkspacePage is one page of the admin workspace listing.
type WorkspacePage struct {
	Items    []WorkspaceSummary
	Page     int
	PageSize int
	Total    int64
	HasMore  bool
}

// ListPage returns one page of all workspaces, newest first. page must be
// within [1,99999] and pageSize within [1,100]; a page past the end yields an
// empty page with an accurate total and HasMore=false.
func (s *LifecycleService) ListPage(ctx context.Context, page, pageSize int) (*WorkspacePage, error) {
	if page < 1 || page > maxPage || pageSize < 1 || pageSize > maxPageSize {
		return nil, ErrInvalidPageRange
	}
	items, total, err := s.workspaces.ListPage(ctx, page, pageSize)
	if err != nil {
		return nil, err
	}
	out := make([]WorkspaceSummary, len(items))
	for i, w := range items {
		out[i] = WorkspaceSummary{ID: w.ID, Name: w.Name, Status: w.Status, CreatedAt: w.CreatedAt}
	}
	return &WorkspacePage{
		Items:    out,
		Page:     page,
		PageSize: pageSize,
		Total:    total,
		HasMore:  int64(page*pageSize) < total,
	}, nil
}

// requireCurrent resolves the requester's current workspace pointer and
// checks their role against action. Returns the workspace id and role.
func (s *LifecycleService) requireCurrent(ctx context.Context, accountID string, action rolepolicy.Action) (string, membershipdomain.Role, error) {
	acct, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return "", "", err
	}
	if acct == nil || acct.CurrentWorkspaceID == nil {
		return "", "", ErrNoAccessibleWorkspace
	}
	workspaceID := *acct.CurrentWorkspaceID
	m, err := s.memberships.GetByAccountAndWorkspace(ctx, accountID, workspaceID)
	if err != nil {
		return "", "", err
	}
	if m == nil {
		return "", "", ErrNotAMember
	}
	if !rolepolicy.CanPerform(m.Role, action) {
		return "", "", ErrPermissionDenied
	}
	return workspaceID, m.Role, nil
}

func (s *LifecycleService) audit(ctx context.Context, workspaceID, accountID, action, resource string) {
	if s.auditLog == nil {
		return
	}
	s.auditLog.LogEvent(ctx, workspaceID, accountID, action, resource, "")
}

func (s *LifecycleService) emit(ctx context.Context, accountID, workspaceID, eventType string) {
	if s.emitter == nil {
		return
	}
	telemetry.EmitAsync(s.emitter, ctx, &telemetrydomain.Event{
		WorkspaceID: workspaceID,
		AccountID:   accountID,
		EventType:   eventType,
		Source:      "lifecycle_service",
		Metadata:    json.RawMessage(nil),
		CreatedAt:   time.Now().UTC(),
	})
}
