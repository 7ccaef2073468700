package main

import (
	"context"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/Leganyst/tour-marketplace/internal/access"
	"github.com/Leganyst/tour-marketplace/internal/config"
	"github.com/Leganyst/tour-marketplace/internal/db"
	"github.com/Leganyst/tour-marketplace/internal/model"
	"github.com/Leganyst/tour-marketplace/internal/service"
	"github.com/Leganyst/tour-marketplace/internal/telemetry"
)

const serviceName = "tour-marketplace"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Конфиг из env.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// 2. Трейсинг.
	shutdownTracing, err := telemetry.Setup(ctx, serviceName, cfg.OtelEndpoint, cfg.OtelEnabled)
	if err != nil {
		log.Fatalf("init telemetry: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			log.Printf("telemetry shutdown: %v", err)
		}
	}()

	// 3. БД и миграции.
	gormDB, err := db.NewGormDB(&cfg.DB)
	if err != nil {
		log.Fatalf("init db: %v", err)
	}
	if err := model.AutoMigrate(gormDB); err != nil {
		log.Fatalf("auto migrate: %v", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Fatalf("sql DB: %v", err)
	}
	defer sqlDB.Close()

	// 4. Движок маркетплейса.
	authority, err := access.NewAuthority(cfg.Authority)
	if err != nil {
		log.Fatalf("authority: %v", err)
	}
	var opts []service.Option
	if cfg.SerializableTx {
		opts = append(opts, service.WithSerializableTx())
	}
	marketplace := service.NewMarketplace(gormDB, authority, opts...)

	// 5. gRPC: health + reflection.
	grpcServer := grpc.NewServer()
	healthSrv := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthSrv)
	reflection.Register(grpcServer)

	go watchReadiness(ctx, marketplace, healthSrv)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		log.Fatalf("listen %s: %v", cfg.GRPCAddr, err)
	}
	log.Printf("marketplace gRPC server listening on %s (authority %s)", cfg.GRPCAddr, authority.Account())

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalf("grpc serve: %v", err)
		}
	}()

	// 6. Грейсфул-шатдаун по сигналу.
	<-ctx.Done()
	log.Println("shutting down gRPC server...")
	healthSrv.Shutdown()
	grpcServer.GracefulStop()
}

// watchReadiness переключает статус health по доступности БД.
func watchReadiness(ctx context.Context, m *service.Marketplace, srv *health.Server) {
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	for {
		status := healthpb.HealthCheckResponse_SERVING
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := m.Ready(pingCtx); err != nil {
			log.Printf("readiness: %v", err)
			status = healthpb.HealthCheckResponse_NOT_SERVING
		}
		cancel()
		srv.SetServingStatus(serviceName, status)
		srv.SetServingStatus("", status)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
