package domain

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"
)

// MaxNameLen is the maximum workspace display name length in runes.
// Matches the registry column width.
const MaxNameLen = 100

// Workspace represents a tenant-isolated unit owning resources and configuration.
type Workspace struct {
	ID           string
	Name         string
	Status       WorkspaceStatus
	CustomConfig CustomConfig
	CreatedAt    time.Time
}

type WorkspaceStatus string

const (
	WorkspaceStatusActive   WorkspaceStatus = "active"
	WorkspaceStatusArchived WorkspaceStatus = "archived"
)

// CustomConfig is the workspace's mutable branding configuration.
// ReplaceWebappLogo holds an asset reference produced by the external file store.
type CustomConfig struct {
	RemoveWebappBrand bool   `json:"remove_webapp_brand"`
	ReplaceWebappLogo string `json:"replace_webapp_logo,omitempty"`
}

// Validate validates the workspace for persistence. Returns an error describing the first validation failure.
func (w *Workspace) Validate() error {
	if w.Name == "" {
		return errors.New("name is required")
	}
	if utf8.RuneCountInString(w.Name) > MaxNameLen {
		return fmt.Errorf("name must be at most %d characters", MaxNameLen)
	}
	if w.Status == "" {
		w.Status = WorkspaceStatusActive
	}
	return nil
}
