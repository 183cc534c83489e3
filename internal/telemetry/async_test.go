package telemetry

import (
	"context"
	"sync"
	"testing"
	"time"

	"workspace-control-plane/backend/internal/telemetry/domain"
)

// mockEventEmitter implements EventEmitter for tests.
type mockEventEmitter struct {
	mu      sync.Mutex
	events  []*domain.Event
	emitErr error
	delay   time.Duration
}

func (m *mockEventEmitter) Emit(ctx context.Context, event *domain.Event) error {
	if m.delay > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(m.delay):
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.events == nil {
		m.events = make([]*domain.Event, 0)
	}
	m.events = append(m.events, event)
	return m.emitErr
}

func (m *mockEventEmitter) getEvents() []*domain.Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.events
}

func TestEmitAsync_NilEmitter(t *testing.T) {
	ctx := context.Background()
	event := &domain.Event{
		WorkspaceID: "ws-1",
		EventType:   "test",
	}

	// Should not panic
	EmitAsync(nil, ctx, event)
}

func TestEmitAsync_NilEvent(t *testing.T) {
	emitter := &mockEventEmitter{}
	ctx := context.Background()

	// Should not panic
	EmitAsync(emitter, ctx, nil)

	// Give goroutine time to run (if it starts)
	time.Sleep(10 * time.Millisecond)

	// Should not have emitted anything
	events := emitter.getEvents()
	if len(events) != 0 {
		t.Errorf("expected 0 events, got %d", len(events))
	}
}

func TestEmitAsync_SuccessfulEmit(t *testing.T) {
	emitter := &mockEventEmitter{}
	ctx := context.Background()
	event := &domain.Event{
		WorkspaceID: "ws-1",
		AccountID:   "acct-1",
		EventType:   "workspace_switched",
		Source:      "test",
	}

	EmitAsync(emitter, ctx, event)

	// Wait for goroutine to complete
	time.Sleep(100 * time.Millisecond)

	events := emitter.getEvents()
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].WorkspaceID != "ws-1" {
		t.Errorf("event workspace_id = %q, want %q", events[0].WorkspaceID, "ws-1")
	}
	if events[0].AccountID != "acct-1" {
		t.Errorf("event account_id = %q, want %q", events[0].AccountID, "acct-1")
	}
	if events[0].EventType != "workspace_switched" {
		t.Errorf("event type = %q, want %q", events[0].EventType, "workspace_switched")
	}
}

func TestEmitAsync_UsesBackgroundContext(t *testing.T) {
	emitter := &mockEventEmitter{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel the request context immediately

	event := &domain.Event{
		WorkspaceID: "ws-1",
		EventType:   "test",
	}

	// Should still emit even though request context is cancelled
	EmitAsync(emitter, ctx, event)

	// Wait for goroutine to complete
	time.Sleep(100 * time.Millisecond)

	events := emitter.getEvents()
	if len(events) != 1 {
		t.Errorf("expected 1 event (context.Background used), got %d", len(events))
	}
}

func TestEmitAsync_ErrorHandling(t *testing.T) {
	emitter := &mockEventEmitter{
		emitErr: context.DeadlineExceeded,
	}
	ctx := context.Background()
	event := &domain.Event{
		WorkspaceID: "ws-1",
		EventType:   "test",
	}

	// Should not panic on error
	EmitAsync(emitter, ctx, event)

	// Wait for goroutine to complete
	time.Sleep(100 * time.Millisecond)

	// Error is logged but doesn't affect the caller
}

func TestEmitAsync_MultipleEvents(t *testing.T) {
	emitter := &mockEventEmitter{}
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		event := &domain.Event{
			WorkspaceID: "ws-1",
			EventType:   "test",
		}
		EmitAsync(emitter, ctx, event)
	}

	// Wait for all goroutines to complete
	time.Sleep(200 * time.Millisecond)

	events := emitter.getEvents()
	if len(events) != 5 {
		t.Errorf("expected 5 events, got %d", len(events))
	}
}

func TestEmitAsync_ConcurrentAccess(t *testing.T) {
	emitter := &mockEventEmitter{}
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			event := &domain.Event{
				WorkspaceID: "ws-1",
				EventType:   "test",
			}
			EmitAsync(emitter, ctx, event)
		}()
	}

	wg.Wait()
	// Wait for all async emits to complete
	time.Sleep(200 * time.Millisecond)

	events := emitter.getEvents()
	if len(events) != 10 {
		t.Errorf("expected 10 events, got %d", len(events))
	}
}
