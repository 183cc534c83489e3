package app

import (
	"testing"

	"workspace-control-plane/backend/internal/config"
)

func TestNew_WiresServices(t *testing.T) {
	a := New(nil, &config.Config{MaxWorkspacesPerAccount: 3}, nil)
	if a.Context == nil {
		t.Error("Context service should be wired")
	}
	if a.Lifecycle == nil {
		t.Error("Lifecycle service should be wired")
	}
	if a.AuditRepo == nil {
		t.Error("AuditRepo should be wired")
	}
}
