package domain

import (
	"errors"
	"time"
)

// Account is the authenticated principal. Identity and sessions are owned by
// the external authentication subsystem; this core only tracks the
// current-workspace pointer and basic profile fields.
type Account struct {
	ID    string
	Email string
	Name  string
	// CurrentWorkspaceID is the workspace the account operates in, or nil when
	// unset. It must only reference a workspace the account is a member of;
	// all mutation goes through the account repository's conditional update.
	CurrentWorkspaceID *string
	Status             AccountStatus
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type AccountStatus string

const (
	AccountStatusActive   AccountStatus = "active"
	AccountStatusDisabled AccountStatus = "disabled"
)

// Validate validates the account for persistence. Returns an error describing the first validation failure.
func (a *Account) Validate() error {
	if a.Email == "" {
		return errors.New("email is required")
	}
	if a.Status == "" {
		a.Status = AccountStatusActive
	}
	return nil
}
