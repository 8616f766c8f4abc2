package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fekuna/omnipos-invoice-service/config"
	"github.com/fekuna/omnipos-invoice-service/internal/database"
	"github.com/fekuna/omnipos-invoice-service/internal/logger"
	"github.com/fekuna/omnipos-invoice-service/internal/server"
	"github.com/fekuna/omnipos-invoice-service/internal/storage"

	invH "github.com/fekuna/omnipos-invoice-service/internal/invoice/handler"
	invRepoPkg "github.com/fekuna/omnipos-invoice-service/internal/invoice/repository"
	invUCPkg "github.com/fekuna/omnipos-invoice-service/internal/invoice/usecase"

	prodH "github.com/fekuna/omnipos-invoice-service/internal/product/handler"
	prodRepoPkg "github.com/fekuna/omnipos-invoice-service/internal/product/repository"
	prodUCPkg "github.com/fekuna/omnipos-invoice-service/internal/product/usecase"

	reportH "github.com/fekuna/omnipos-invoice-service/internal/report/handler"
	reportRepoPkg "github.com/fekuna/omnipos-invoice-service/internal/report/repository"
	reportUCPkg "github.com/fekuna/omnipos-invoice-service/internal/report/usecase"

	settingH "github.com/fekuna/omnipos-invoice-service/internal/setting/handler"
	settingRepoPkg "github.com/fekuna/omnipos-invoice-service/internal/setting/repository"
	settingUCPkg "github.com/fekuna/omnipos-invoice-service/internal/setting/usecase"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}

	if cfg.Server.AppEnv == "development" || cfg.Server.AppEnv == "dev" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = cfg.Logger.Encoding
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Connect to Database
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	db, err := database.New(ctx, cfg)
	cancel()
	if err != nil {
		appLogger.Fatal("Could not connect to database", zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("Connected to database", zap.String("driver", cfg.Database.Driver))

	// 4. Initialize Image Storage
	images, err := storage.New(&cfg.Storage)
	if err != nil {
		appLogger.Fatal("Could not initialize image storage", zap.Error(err))
	}
	appLogger.Info("Image storage ready", zap.String("driver", cfg.Storage.Driver))

	// 5. Initialize Repositories
	settingRepo := settingRepoPkg.NewSQLRepository(db)
	prodRepo := prodRepoPkg.NewSQLRepository(db)
	invRepo := invRepoPkg.NewSQLRepository(db)
	reportRepo := reportRepoPkg.NewSQLRepository(db)

	// 6. Initialize UseCases
	settingUC := settingUCPkg.NewSettingUseCase(settingRepo, appLogger)
	prodUC := prodUCPkg.NewProductUseCase(prodRepo, settingUC, images, appLogger)
	invUC := invUCPkg.NewInvoiceUseCase(invRepo, prodRepo, settingUC, cfg.Export.MaxRows, appLogger)
	reportUC := reportUCPkg.NewReportUseCase(reportRepo, appLogger)

	// 7. Initialize Handlers
	router := server.NewRouter(cfg, appLogger, db,
		settingH.NewSettingHandler(settingUC, appLogger),
		prodH.NewProductHandler(prodUC, appLogger),
		reportH.NewReportHandler(reportUC, appLogger),
		invH.NewInvoiceHandler(invUC, settingUC, appLogger),
	)

	// 8. Start HTTP Server
	httpServer := &http.Server{
		Addr:              normalizePort(cfg.Server.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLogger.Info("Starting HTTP server", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("failed to serve http", zap.Error(err))
		}
	}()

	// 9. Start gRPC Server
	port := normalizePort(cfg.Server.GRPCPort)
	lis, err := net.Listen("tcp", port)
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}

	grpcServer := server.NewGRPCServer(db, appLogger)
	appLogger.Info("Starting gRPC server", zap.String("port", port))

	// Graceful Shutdown
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			appLogger.Fatal("failed to serve grpc", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("http shutdown failed", zap.Error(err))
	}
	grpcServer.GracefulStop()
	appLogger.Info("Server stopped")
}

func normalizePort(port string) string {
	if !strings.Contains(port, ":") {
		return ":" + port
	}
	return port
}
