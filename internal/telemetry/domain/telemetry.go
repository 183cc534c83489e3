package domain

import (
	"encoding/json"
	"time"
)

// Event is a workspace-scoped telemetry event. Serialized as JSON onto the
// event bus and into OTel log records.
type Event struct {
	WorkspaceID string          `json:"workspace_id"`
	AccountID   string          `json:"account_id,omitempty"`
	EventType   string          `json:"event_type"`
	Source      string          `json:"source"`
	Metadata    json.RawMessage `json:"metadata,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}
