package otel

import (
	"context"
	"testing"
	"time"

	otellog "go.opentelemetry.io/otel/log"
	sdklog "go.opentelemetry.io/otel/sdk/log"

	"workspace-control-plane/backend/internal/telemetry/domain"
)

func TestNewEventEmitter_NilProvider_ReturnsNoop(t *testing.T) {
	em := NewEventEmitter(nil)
	if em == nil {
		t.Fatal("NewEventEmitter(nil) returned nil")
	}
	if err := em.Emit(context.Background(), nil); err != nil {
		t.Errorf("noop Emit(ctx, nil): %v", err)
	}
	if err := em.Emit(context.Background(), &domain.Event{WorkspaceID: "ws1"}); err != nil {
		t.Errorf("noop Emit(ctx, event): %v", err)
	}
}

func TestEmit_NilEvent_ReturnsNil(t *testing.T) {
	provider := sdklog.NewLoggerProvider()
	defer func() { _ = provider.Shutdown(context.Background()) }()
	em := NewEventEmitter(provider)
	if err := em.Emit(context.Background(), nil); err != nil {
		t.Errorf("Emit(ctx, nil): %v", err)
	}
}

// recordCapture stores the last Record passed to Emit for assertion.
type recordCapture struct {
	rec otellog.Record
}

func (r *recordCapture) Emit(ctx context.Context, rec otellog.Record) {
	r.rec = rec
}

func TestEmit_AttributeAndBodyMapping(t *testing.T) {
	cap := &recordCapture{}
	em := NewEventEmitterWithLogger(cap)
	event := &domain.Event{
		WorkspaceID: "ws1",
		AccountID:   "acct1",
		EventType:   "workspace_created",
		Source:      "console",
		Metadata:    []byte(`{"key":"value"}`),
		CreatedAt:   time.Now().UTC(),
	}
	if err := em.Emit(context.Background(), event); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	rec := cap.rec

	// Body
	if rec.Body().Empty() {
		t.Error("body should be set when metadata is non-empty")
	}
	if got := rec.Body().AsBytes(); string(got) != `{"key":"value"}` {
		t.Errorf("body = %q, want %q", got, event.Metadata)
	}

	// Attributes
	attrs := make(map[string]string)
	rec.WalkAttributes(func(kv otellog.KeyValue) bool {
		attrs[kv.Key] = kv.Value.AsString()
		return true
	})
	want := map[string]string{
		"workspace_id": "ws1", "account_id": "acct1",
		"event_type": "workspace_created", "source": "console",
	}
	for k, v := range want {
		if attrs[k] != v {
			t.Errorf("attr %q = %q, want %q", k, attrs[k], v)
		}
	}
}

func TestEmit_EmptyMetadata_NoBodySet(t *testing.T) {
	cap := &recordCapture{}
	em := NewEventEmitterWithLogger(cap)
	event := &domain.Event{
		WorkspaceID: "ws1",
		EventType:   "ping",
		Source:      "test",
		Metadata:    nil,
	}
	if err := em.Emit(context.Background(), event); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	rec := cap.rec
	if !rec.Body().Empty() {
		t.Error("body should be empty when metadata is nil")
	}
	attrs := make(map[string]string)
	rec.WalkAttributes(func(kv otellog.KeyValue) bool {
		attrs[kv.Key] = kv.Value.AsString()
		return true
	})
	if attrs["workspace_id"] != "ws1" || attrs["event_type"] != "ping" || attrs["source"] != "test" {
		t.Errorf("attributes = %v", attrs)
	}
}

func TestEmit_ZeroTimestamp_SetsCurrentTime(t *testing.T) {
	cap := &recordCapture{}
	em := NewEventEmitterWithLogger(cap)
	event := &domain.Event{
		WorkspaceID: "ws1",
		EventType:   "test",
		Source:      "test",
	}
	before := time.Now().UTC()
	if err := em.Emit(context.Background(), event); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	after := time.Now().UTC()
	rec := cap.rec
	timestamp := rec.Timestamp()
	if timestamp.IsZero() {
		t.Error("timestamp should be set when CreatedAt is zero")
	}
	if timestamp.Before(before) || timestamp.After(after) {
		t.Errorf("timestamp = %v, should be between %v and %v", timestamp, before, after)
	}
}

func TestEmit_PartialFields(t *testing.T) {
	cap := &recordCapture{}
	em := NewEventEmitterWithLogger(cap)
	event := &domain.Event{
		WorkspaceID: "ws1",
		EventType:   "test",
		// Missing AccountID, Source
	}
	if err := em.Emit(context.Background(), event); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	rec := cap.rec
	attrs := make(map[string]string)
	rec.WalkAttributes(func(kv otellog.KeyValue) bool {
		attrs[kv.Key] = kv.Value.AsString()
		return true
	})
	if attrs["workspace_id"] != "ws1" {
		t.Errorf("workspace_id = %q, want %q", attrs["workspace_id"], "ws1")
	}
	if attrs["event_type"] != "test" {
		t.Errorf("event_type = %q, want %q", attrs["event_type"], "test")
	}
	// Missing fields should not be in attributes
	if attrs["account_id"] != "" {
		t.Errorf("account_id should not be set, got %q", attrs["account_id"])
	}
}

func TestEmit_AllFieldsPopulated(t *testing.T) {
	cap := &recordCapture{}
	em := NewEventEmitterWithLogger(cap)
	now := time.Now().UTC()
	event := &domain.Event{
		WorkspaceID: "ws-1",
		AccountID:   "acct-1",
		EventType:   "workspace_dissolved",
		Source:      "console",
		Metadata:    []byte(`{"custom":"data"}`),
		CreatedAt:   now,
	}
	if err := em.Emit(context.Background(), event); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	rec := cap.rec

	if rec.Timestamp().Unix() != now.Unix() {
		t.Errorf("timestamp = %v, want %v", rec.Timestamp(), now)
	}
	if rec.Body().Empty() {
		t.Error("body should be set when metadata is non-empty")
	}
	if string(rec.Body().AsBytes()) != `{"custom":"data"}` {
		t.Errorf("body = %q, want %q", string(rec.Body().AsBytes()), `{"custom":"data"}`)
	}

	attrs := make(map[string]string)
	rec.WalkAttributes(func(kv otellog.KeyValue) bool {
		attrs[kv.Key] = kv.Value.AsString()
		return true
	})
	wantAttrs := map[string]string{
		"workspace_id": "ws-1",
		"account_id":   "acct-1",
		"event_type":   "workspace_dissolved",
		"source":       "console",
	}
	for k, v := range wantAttrs {
		if attrs[k] != v {
			t.Errorf("attr %q = %q, want %q", k, attrs[k], v)
		}
	}
}
