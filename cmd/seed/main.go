// seed inserts development sample data for local testing: go run ./cmd/seed.
// Idempotent: skips inserts if the dev account (dev@example.com) already exists.
package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"log"
	"os"
	"time"

	"workspace-control-plane/backend/internal/config"
	"workspace-control-plane/backend/internal/db"
	"workspace-control-plane/backend/internal/db/sqlc/gen"
)

const (
	devAccountEmail    = "dev@example.com"
	memberAccountEmail = "member@example.com"

	devAccountID    = "dev-account-001"
	devAccount2ID   = "dev-account-002"
	devWorkspaceID  = "dev-workspace-001"
	devWorkspace2ID = "dev-workspace-002"

	devMembershipID  = "dev-membership-001"
	devMembership2ID = "dev-membership-002"
	devMembership3ID = "dev-membership-003"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer conn.Close()

	queries := gen.New(conn)
	ctx := context.Background()

	_, err = queries.GetAccountByEmail(ctx, devAccountEmail)
	if err == nil {
		log.Println("Seed already applied (dev@example.com exists). Skipping.")
		os.Exit(0)
	}
	if err != sql.ErrNoRows {
		log.Fatalf("seed check: %v", err)
	}

	now := time.Now().UTC()

	if _, err := queries.CreateAccount(ctx, gen.CreateAccountParams{
		ID:        devAccountID,
		Email:     devAccountEmail,
		Name:      sql.NullString{String: "Dev Owner", Valid: true},
		Status:    gen.AccountStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}); err != nil {
		log.Fatalf("create dev account: %v", err)
	}

	if _, err := queries.CreateAccount(ctx, gen.CreateAccountParams{
		ID:        devAccount2ID,
		Email:     memberAccountEmail,
		Name:      sql.NullString{String: "Dev Member", Valid: true},
		Status:    gen.AccountStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}); err != nil {
		log.Fatalf("create member account: %v", err)
	}

	emptyConfig := json.RawMessage(`{}`)
	if _, err := queries.CreateWorkspace(ctx, gen.CreateWorkspaceParams{
		ID:           devWorkspaceID,
		Name:         "Dev Workspace",
		Status:       gen.WorkspaceStatusActive,
		CustomConfig: emptyConfig,
		CreatedAt:    now,
	}); err != nil {
		log.Fatalf("create dev workspace: %v", err)
	}

	if _, err := queries.CreateWorkspace(ctx, gen.CreateWorkspaceParams{
		ID:           devWorkspace2ID,
		Name:         "Second Workspace",
		Status:       gen.WorkspaceStatusActive,
		CustomConfig: emptyConfig,
		CreatedAt:    now.Add(time.Second),
	}); err != nil {
		log.Fatalf("create second workspace: %v", err)
	}

	memberships := []gen.CreateMembershipParams{
		{ID: devMembershipID, AccountID: devAccountID, WorkspaceID: devWorkspaceID, Role: gen.RoleOwner, CreatedAt: now},
		{ID: devMembership2ID, AccountID: devAccountID, WorkspaceID: devWorkspace2ID, Role: gen.RoleOwner, CreatedAt: now},
		{ID: devMembership3ID, AccountID: devAccount2ID, WorkspaceID: devWorkspaceID, Role: gen.RoleMember, CreatedAt: now},
	}
	for _, m := range memberships {
		if _, err := queries.CreateMembership(ctx, m); err != nil {
			log.Fatalf("create membership %s: %v", m.ID, err)
		}
	}

	for _, a := range []struct{ accountID, workspaceID string }{
		{devAccountID, devWorkspaceID},
		{devAccount2ID, devWorkspaceID},
	} {
		n, err := queries.SetCurrentWorkspace(ctx, gen.SetCurrentWorkspaceParams{
			ID:                 a.accountID,
			CurrentWorkspaceID: sql.NullString{String: a.workspaceID, Valid: true},
			UpdatedAt:          now,
		})
		if err != nil {
			log.Fatalf("set current workspace for %s: %v", a.accountID, err)
		}
		if n == 0 {
			log.Fatalf("set current workspace for %s: no membership", a.accountID)
		}
	}

	log.Println("Seed complete:")
	log.Printf("  owner:  %s (current workspace %q)", devAccountEmail, "Dev Workspace")
	log.Printf("  member: %s (current workspace %q)", memberAccountEmail, "Dev Workspace")
}
