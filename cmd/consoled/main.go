package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/microlend/lending-console/internal/application/usecase"
	"github.com/microlend/lending-console/internal/domain/service"
	"github.com/microlend/lending-console/internal/infrastructure/adapter"
	"github.com/microlend/lending-console/internal/infrastructure/config"
	"github.com/microlend/lending-console/internal/infrastructure/draftstore"
	"github.com/microlend/lending-console/internal/infrastructure/kafka"
	pgRepo "github.com/microlend/lending-console/internal/infrastructure/persistence/postgres"
	grpcPresentation "github.com/microlend/lending-console/internal/presentation/grpc"
	"github.com/microlend/lending-console/internal/presentation/rest"
	"github.com/microlend/lending-console/pkg/auth"
	pkgkafka "github.com/microlend/lending-console/pkg/kafka"
	"github.com/microlend/lending-console/pkg/observability"
	pkgpostgres "github.com/microlend/lending-console/pkg/postgres"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Load configuration.
	cfg := config.Load()
	cfg.Validate()

	// Initialize structured logger via shared observability package.
	logger := observability.InitLogger(observability.LogConfig{
		Level:  getEnv("LOG_LEVEL", "info"),
		Format: "json",
	})
	slog.SetDefault(logger)

	logger.Info("starting lending-console",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
	)

	// Initialize metrics.
	meterProvider, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		logger.Warn("failed to initialize metrics, continuing without metrics", "error", err)
	} else {
		defer func() { _ = meterProvider.Shutdown(ctx) }() //nolint:errcheck // best-effort meter shutdown
	}

	// Database connection.
	dbCtx, dbCancel := context.WithTimeout(ctx, 10*time.Second)
	defer dbCancel()

	pgCfg := pkgpostgres.Config{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Name,
		SSLMode:  cfg.DB.SSLMode,
	}
	pool, err := pkgpostgres.NewPool(dbCtx, pgCfg)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("connected to database")

	// Run database migrations.
	if migErr := pkgpostgres.RunMigrations(pgCfg.DSN(), "file://migrations"); migErr != nil {
		logger.Warn("migration warning", "error", migErr)
	}

	// Redis-backed draft and challenge stores.
	redisClient := draftstore.NewClient(cfg.Redis)
	defer func() { _ = redisClient.Close() }() //nolint:errcheck
	if err := draftstore.HealthCheck(ctx, redisClient); err != nil {
		logger.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to redis")

	drafts := draftstore.NewRedisDraftStore(redisClient, cfg.DraftTTL)
	challenges := draftstore.NewRedisChallengeStore(redisClient)

	// Wire infrastructure adapters.
	recordRepo := pgRepo.NewApplicationRecordRepo(pool)
	kafkaProducer := pkgkafka.NewProducer(pkgkafka.Config{
		Brokers: cfg.Kafka.Brokers,
	})
	defer func() { _ = kafkaProducer.Close() }() //nolint:errcheck
	publisher := kafka.NewKafkaEventPublisher(kafkaProducer, cfg.Kafka.Topic, logger)

	identity := adapter.NewIdentityAdapter(adapter.DefaultIdentityProviderConfig(), nil)
	employment := adapter.NewEmploymentAdapter(adapter.DefaultEmploymentRegistryConfig(), nil)
	passcodes := adapter.NewPasscodeAdapter(adapter.DefaultPasscodeServiceConfig(), nil)
	calculator := service.NewRepaymentCalculator()

	// JWT service (validation-only: public key preferred, secret as fallback).
	jwtCfg := auth.JWTConfig{
		Issuer: "microlend-gateway",
	}
	switch {
	case os.Getenv("JWT_PUBLIC_KEY") != "":
		jwtCfg.PublicKeyPEM = os.Getenv("JWT_PUBLIC_KEY")
	case os.Getenv("JWT_PUBLIC_KEY_FILE") != "":
		keyData, loadErr := auth.LoadKeyFromFile(os.Getenv("JWT_PUBLIC_KEY_FILE"))
		if loadErr != nil {
			logger.Error("failed to load JWT public key file", "error", loadErr)
			os.Exit(1)
		}
		jwtCfg.PublicKeyPEM = string(keyData)
	default:
		jwtSecret := os.Getenv("JWT_SECRET")
		if jwtSecret == "" {
			logger.Error("JWT_SECRET, JWT_PUBLIC_KEY, or JWT_PUBLIC_KEY_FILE is required")
			os.Exit(1)
		}
		jwtCfg.Secret = jwtSecret
	}
	jwtSvc, err := auth.NewJWTService(jwtCfg)
	if err != nil {
		logger.Error("failed to initialize JWT service", "error", err)
		os.Exit(1)
	}

	// gRPC server.
	handler := grpcPresentation.NewConsoleHandler(
		usecase.NewVerifyIdentityUseCase(drafts, identity),
		usecase.NewCompleteBasicInfoUseCase(drafts),
		usecase.NewCompleteContactInfoUseCase(drafts, employment),
		usecase.NewComputeEligibilityUseCase(drafts, calculator),
		usecase.NewSubmitApplicationUseCase(drafts, recordRepo, publisher, calculator),
		usecase.NewNavigateBackUseCase(drafts),
		usecase.NewResumeWizardUseCase(drafts),
		usecase.NewDiscardDraftUseCase(drafts),
		usecase.NewAcknowledgeSuccessUseCase(drafts),
		usecase.NewReviewerActUseCase(recordRepo, challenges, publisher, cfg.ChallengeTTL),
		usecase.NewCompleteReviewerApprovalUseCase(recordRepo, challenges, passcodes, publisher),
		usecase.NewAuthorizerActUseCase(recordRepo, publisher),
		usecase.NewEditRejectedUseCase(recordRepo, identity, employment, publisher, calculator),
		usecase.NewGetRecordUseCase(recordRepo),
		usecase.NewListRecordsByStageUseCase(recordRepo),
	)
	grpcServer := grpcPresentation.NewServer(handler, logger, jwtSvc)

	// HTTP server (health checks and metrics).
	mux := http.NewServeMux()
	healthHandler := rest.NewHealthHandler(logger, map[string]rest.ReadinessCheck{
		"postgres": func(ctx context.Context) error { return pkgpostgres.HealthCheck(ctx, pool) },
		"redis":    func(ctx context.Context) error { return draftstore.HealthCheck(ctx, redisClient) },
	})
	healthHandler.RegisterRoutes(mux)
	if metricsHandler != nil {
		mux.Handle("GET /metrics", metricsHandler)
	}

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start servers.
	errCh := make(chan error, 2)

	go func() {
		if err := grpcServer.Serve(cfg.GRPCAddr()); err != nil {
			errCh <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	go func() {
		logger.Info("HTTP server starting", "port", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Wait for shutdown signal.
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	// Graceful shutdown.
	grpcServer.GracefulStop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("lending-console stopped")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
