package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	v1 "github.com/lucverdier/lotscan/gen/proto/lotscan/v1"
	"github.com/lucverdier/lotscan/internal/carton"
	"github.com/lucverdier/lotscan/internal/common"
	"github.com/lucverdier/lotscan/internal/export"
	"github.com/lucverdier/lotscan/internal/ocr"
	"github.com/lucverdier/lotscan/internal/pipeline"
	"github.com/lucverdier/lotscan/internal/server"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	engine, err := ocr.Shared(ocr.ConfigFrom(cfg.OCR), logger)
	if err != nil {
		logger.Error("starting OCR engine", "error", err)
		os.Exit(1)
	}
	defer func() { _ = engine.Close() }()

	catalog, err := carton.LoadCatalog(cfg.Carton.CatalogPath)
	if err != nil {
		logger.Error("loading carton catalog", "path", cfg.Carton.CatalogPath, "error", err)
		os.Exit(1)
	}
	logger.Info("catalog.loaded", "cartons", len(catalog.Cartons), "paintings", len(catalog.Paintings))

	extractor := pipeline.New(engine, cfg.OCR.PageTimeout, logger)
	exporter := export.NewService(logger)

	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	svc := server.NewExtractorServer(extractor, catalog, exporter, logger)
	v1.RegisterExtractorServiceServer(grpcServer, svc)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("listen", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	logger.Info("grpc.serving", "addr", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	hs.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	grpcServer.GracefulStop()
	logger.Info("stopped")
}
