// Package app is the composition root: it wires repositories, billing gates,
// audit logging, and the workspace services from a database handle and config.
// The surrounding API gateway consumes the services in-process.
package app

import (
	"database/sql"

	accountrepo "workspace-control-plane/backend/internal/account/repository"
	"workspace-control-plane/backend/internal/audit"
	auditrepo "workspace-control-plane/backend/internal/audit/repository"
	"workspace-control-plane/backend/internal/billing"
	"workspace-control-plane/backend/internal/config"
	membershiprepo "workspace-control-plane/backend/internal/membership/repository"
	"workspace-control-plane/backend/internal/server/interceptors"
	"workspace-control-plane/backend/internal/telemetry"
	workspacerepo "workspace-control-plane/backend/internal/workspace/repository"
	workspaceservice "workspace-control-plane/backend/internal/workspace/service"
)

// App holds the wired workspace services and the repositories shared with the
// server shell (e.g. the audit repository for the audit interceptor).
type App struct {
	Context   *workspaceservice.ContextService
	Lifecycle *workspaceservice.LifecycleService
	AuditRepo auditrepo.Repository
}

// New wires the full service graph. emitter may be nil to disable telemetry.
func New(conn *sql.DB, cfg *config.Config, emitter telemetry.EventEmitter) *App {
	accounts := accountrepo.NewPostgresRepository(conn)
	memberships := membershiprepo.NewPostgresRepository(conn)
	workspaces := workspacerepo.NewPostgresRepository(conn)
	auditRepo := auditrepo.NewPostgresRepository(conn)

	features := billing.StaticLookup{}
	capacity := &billing.OwnedCountGate{
		Counter: memberships,
		Max:     cfg.MaxWorkspacesPerAccount,
	}
	auditLog := audit.NewLogger(auditRepo, interceptors.ClientIP)

	return &App{
		Context:   workspaceservice.NewContextService(accounts, memberships, workspaces, features, emitter),
		Lifecycle: workspaceservice.NewLifecycleService(workspaces, memberships, accounts, capacity, features, auditLog, emitter),
		AuditRepo: auditRepo,
	}
}
