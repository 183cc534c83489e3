package main

import (
	"context"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"workspace-control-plane/backend/internal/app"
	"workspace-control-plane/backend/internal/config"
	"workspace-control-plane/backend/internal/db"
	"workspace-control-plane/backend/internal/server"
	"workspace-control-plane/backend/internal/telemetry"
	telemetryotel "workspace-control-plane/backend/internal/telemetry/otel"
	"workspace-control-plane/backend/internal/telemetry/producer"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	ctx := context.Background()

	providers, err := telemetryotel.NewProviders(ctx, cfg.OTLPEndpoint, "wcp-server", cfg.OTLPInsecure)
	if err != nil {
		log.Fatalf("telemetry: %v", err)
	}
	providers.SetGlobal()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := providers.Shutdown(shutdownCtx); err != nil {
			log.Printf("telemetry: shutdown: %v", err)
		}
	}()

	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer conn.Close()

	kafkaProducer, err := producer.NewKafkaProducer(cfg.TelemetryKafkaBrokersList(), cfg.TelemetryKafkaTopic)
	if err != nil {
		log.Fatalf("kafka: %v", err)
	}
	if kafkaProducer != nil {
		defer kafkaProducer.Close()
	}

	emitter := telemetryotel.NewEventEmitter(providers.LoggerProvider)
	application := app.New(conn, cfg, emitter)

	deps := server.Deps{AuditRepo: application.AuditRepo}
	if kafkaProducer != nil {
		deps.TelemetryProducer = kafkaProducer
	}
	s, healthSrv := server.New(deps)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		log.Fatalf("listen: %v", err)
	}
	defer lis.Close()

	go func() {
		log.Printf("gRPC server listening on %s", cfg.GRPCAddr)
		if err := s.Serve(lis); err != nil {
			log.Fatalf("serve: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down gRPC server...")
	healthSrv.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	s.GracefulStop()
	// Let in-flight async telemetry emits drain before the OTel providers stop.
	time.Sleep(telemetry.ShutdownDrainDuration)
	log.Println("gRPC server stopped")
}
