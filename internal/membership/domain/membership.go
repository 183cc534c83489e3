package domain

import (
	"time"
)

// Membership links an account to a workspace with a role.
// At most one membership exists per (account, workspace) pair.
type Membership struct {
	ID          string
	AccountID   string
	WorkspaceID string
	Role        Role
	CreatedAt   time.Time
}

// Role is the privilege level of a membership (owner > admin > member).
type Role string

const (
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)
