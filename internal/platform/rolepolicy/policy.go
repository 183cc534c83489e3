// Package rolepolicy is the single authorization choke point for workspace
// mutations. Every role check routes through CanPerform; call sites never
// compare role strings directly.
package rolepolicy

import (
	"fmt"

	"workspace-control-plane/backend/internal/membership/domain"
)

// Action is a workspace operation subject to role checks.
type Action string

const (
	ActionSwitchInto         Action = "switch-into"
	ActionUpdateName         Action = "update-name"
	ActionUpdateCustomConfig Action = "update-custom-config"
	ActionUploadLogo         Action = "upload-logo"
	ActionDissolve           Action = "dissolve"
)

// CanPerform reports whether role may perform action. Deterministic and
// side-effect free. An unknown action is a programming error and panics;
// it must never reach this function from request handling.
func CanPerform(role domain.Role, action Action) bool {
	switch action {
	case ActionSwitchInto:
		// Any existing membership role may switch into its workspace.
		return role == domain.RoleOwner || role == domain.RoleAdmin || role == domain.RoleMember
	case ActionUpdateName, ActionUpdateCustomConfig, ActionUploadLogo:
		return role == domain.RoleOwner || role == domain.RoleAdmin
	case ActionDissolve:
		return role == domain.RoleOwner
	default:
		panic(fmt.Sprintf("rolepolicy: unknown action %q", action))
	}
}
