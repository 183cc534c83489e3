package otel

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel"
)

func TestParseCollectorTarget(t *testing.T) {
	tests := []struct {
		name         string
		endpoint     string
		override     bool
		wantTarget   string
		wantInsecure bool
		wantErr      bool
	}{
		{"bare host port", "collector:4317", false, "collector:4317", true, false},
		{"http scheme", "http://collector:4317", false, "collector:4317", true, false},
		{"https scheme", "https://collector:4317", false, "collector:4317", false, false},
		{"https with override", "https://collector:4317", true, "collector:4317", true, false},
		{"path dropped", "http://collector:4317/v1/traces", false, "collector:4317", true, false},
		{"query dropped", "http://collector:4317?x=1", false, "collector:4317", true, false},
		{"missing host", "http://", false, "", false, true},
		{"unparsable", "http://[bad", false, "", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, insecure, err := parseCollectorTarget(tt.endpoint, tt.override)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseCollectorTarget(%q) expected error", tt.endpoint)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseCollectorTarget(%q): %v", tt.endpoint, err)
			}
			if target != tt.wantTarget || insecure != tt.wantInsecure {
				t.Errorf("parseCollectorTarget(%q) = (%q, %v), want (%q, %v)",
					tt.endpoint, target, insecure, tt.wantTarget, tt.wantInsecure)
			}
		})
	}
}

func TestNewProviders_EmptyEndpointIsInert(t *testing.T) {
	ctx := context.Background()
	for _, endpoint := range []string{"", "   "} {
		p, err := NewProviders(ctx, endpoint, "wcp-server", false)
		if err != nil {
			t.Fatalf("NewProviders(%q): %v", endpoint, err)
		}
		if p.TracerProvider == nil || p.MeterProvider == nil || p.LoggerProvider == nil {
			t.Fatalf("NewProviders(%q): all providers must be non-nil", endpoint)
		}
		// Inert shutdown, safe to call repeatedly.
		if err := p.Shutdown(ctx); err != nil {
			t.Errorf("first Shutdown: %v", err)
		}
		if err := p.Shutdown(ctx); err != nil {
			t.Errorf("second Shutdown: %v", err)
		}
	}
}

func TestNewProviders_RejectsBadEndpoint(t *testing.T) {
	for _, endpoint := range []string{"http://", "http://[bad"} {
		if _, err := NewProviders(context.Background(), endpoint, "wcp-server", false); err == nil {
			t.Errorf("NewProviders(%q) expected error", endpoint)
		}
	}
}

func TestSetGlobal(t *testing.T) {
	p, err := NewProviders(context.Background(), "", "wcp-server", false)
	if err != nil {
		t.Fatalf("NewProviders: %v", err)
	}

	prevTracer := otel.GetTracerProvider()
	prevMeter := otel.GetMeterProvider()
	defer func() {
		otel.SetTracerProvider(prevTracer)
		otel.SetMeterProvider(prevMeter)
	}()

	p.SetGlobal()
	if otel.GetTracerProvider() == prevTracer {
		t.Error("global tracer provider not replaced")
	}
	if otel.GetMeterProvider() == prevMeter {
		t.Error("global meter provider not replaced")
	}
}

func TestSetGlobal_NilFieldsLeaveGlobalsAlone(t *testing.T) {
	prevTracer := otel.GetTracerProvider()
	prevMeter := otel.GetMeterProvider()

	p := &Providers{Shutdown: func(context.Context) error { return nil }}
	p.SetGlobal()

	if otel.GetTracerProvider() != prevTracer {
		t.Error("nil tracer provider must not replace the global")
	}
	if otel.GetMeterProvider() != prevMeter {
		t.Error("nil meter provider must not replace the global")
	}
}
