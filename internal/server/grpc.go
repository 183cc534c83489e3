// Package server builds the gRPC server shell: interceptor chain, OTel stats
// handler, and the standard health service. Only health is served over gRPC;
// the workspace services are consumed in-process through internal/app, and
// the shell carries the cross-cutting interceptors for any RPC service a
// deployment registers on it.
package server

import (
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	auditrepo "workspace-control-plane/backend/internal/audit/repository"
	"workspace-control-plane/backend/internal/server/interceptors"
	"workspace-control-plane/backend/internal/telemetry/producer"
)

// Deps holds optional dependencies for the server shell.
type Deps struct {
	// AuditRepo backs the audit interceptor. If nil, RPCs are not audited.
	AuditRepo auditrepo.Repository
	// TelemetryProducer backs the telemetry interceptor. If nil, no grpc_request events are emitted.
	TelemetryProducer producer.Producer
}

// DefaultPublicMethods are full method names that do not require an account identity.
func DefaultPublicMethods() map[string]bool {
	return map[string]bool{
		"/grpc.health.v1.Health/Check": true,
		"/grpc.health.v1.Health/Watch": true,
	}
}

// DefaultSkipMethods are full method names excluded from auditing and telemetry.
func DefaultSkipMethods() map[string]bool {
	return map[string]bool{
		"/grpc.health.v1.Health/Check": true,
		"/grpc.health.v1.Health/Watch": true,
	}
}

// New creates a grpc.Server with the identity, audit, and telemetry
// interceptors chained in that order, the otelgrpc stats handler, and the
// standard gRPC health service registered and set to SERVING.
// The returned health server can be flipped to NOT_SERVING during shutdown.
func New(deps Deps) (*grpc.Server, *health.Server) {
	public := DefaultPublicMethods()
	skip := DefaultSkipMethods()

	chain := []grpc.UnaryServerInterceptor{
		interceptors.IdentityUnary(public),
	}
	if deps.AuditRepo != nil {
		chain = append(chain, interceptors.AuditUnary(deps.AuditRepo, skip))
	}
	if deps.TelemetryProducer != nil {
		chain = append(chain, interceptors.TelemetryUnary(deps.TelemetryProducer, skip))
	}

	s := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(chain...),
	)

	healthSrv := health.NewServer()
	healthpb.RegisterHealthServer(s, healthSrv)
	healthSrv.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	return s, healthSrv
}
