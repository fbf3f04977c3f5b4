package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/crisgp1/cliqueatools-sub003/internal/application/usecase"
	"github.com/crisgp1/cliqueatools-sub003/internal/domain/service"
	rediscache "github.com/crisgp1/cliqueatools-sub003/internal/infrastructure/cache"
	"github.com/crisgp1/cliqueatools-sub003/internal/infrastructure/config"
	"github.com/crisgp1/cliqueatools-sub003/internal/infrastructure/messaging"
	pgrepo "github.com/crisgp1/cliqueatools-sub003/internal/infrastructure/persistence/postgres"
	"github.com/crisgp1/cliqueatools-sub003/internal/presentation/rest"
	"github.com/crisgp1/cliqueatools-sub003/internal/presentation/rest/middleware"
	"github.com/crisgp1/cliqueatools-sub003/pkg/auth"
	pkgkafka "github.com/crisgp1/cliqueatools-sub003/pkg/kafka"
	"github.com/crisgp1/cliqueatools-sub003/pkg/observability"
	pkgpostgres "github.com/crisgp1/cliqueatools-sub003/pkg/postgres"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := config.Load()
	cfg.Validate()

	logger := observability.InitLogger(observability.LogConfig{
		Service: cfg.ServiceName,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})

	logger.Info("starting credit-engine", "http_port", cfg.HTTPPort)

	// Tracing is optional; the engine runs fine without a collector.
	if cfg.OTLPEndpoint != "" {
		shutdown, err := observability.InitTracer(ctx, observability.TracingConfig{
			ServiceName: cfg.ServiceName,
			Endpoint:    cfg.OTLPEndpoint,
			Insecure:    true,
		})
		if err != nil {
			logger.Warn("failed to initialize tracer, continuing without tracing", "error", err)
		} else {
			defer func() { _ = shutdown(ctx) }() //nolint:errcheck // best-effort tracer shutdown
		}
	}

	meterProvider, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		logger.Error("failed to initialize metrics", "error", err)
		os.Exit(1)
	}
	defer func() { _ = meterProvider.Shutdown(ctx) }() //nolint:errcheck

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

	if migErr := pkgpostgres.RunMigrations(pgCfg.DSN(), "file://"+cfg.MigrationsPath); migErr != nil {
		logger.Warn("migration warning", "error", migErr)
	}

	// Infrastructure adapters.
	bankRepo := pgrepo.NewBankProfileRepo(pool)

	kafkaProducer := pkgkafka.NewProducer(pkgkafka.Config{
		Brokers: cfg.Kafka.Brokers,
	})
	defer kafkaProducer.Close()
	publisher := messaging.NewKafkaEventPublisher(kafkaProducer, cfg.Kafka.Topic, logger)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()
	comparisonCache := rediscache.NewRedisComparisonCache(redisClient, logger)

	// Use cases.
	engine := service.NewComparisonEngine()
	compareUC := usecase.NewCompareFinancingUseCase(bankRepo, comparisonCache, publisher, engine, logger)
	scheduleUC := usecase.NewPreviewScheduleUseCase()
	createBankUC := usecase.NewCreateBankProfileUseCase(bankRepo, publisher)
	updateBankUC := usecase.NewUpdateBankProfileUseCase(bankRepo, publisher)
	deactivateBankUC := usecase.NewDeactivateBankProfileUseCase(bankRepo, publisher)
	getBankUC := usecase.NewGetBankProfileUseCase(bankRepo)
	listBanksUC := usecase.NewListBankProfilesUseCase(bankRepo)

	// JWT validation for catalog mutations.
	jwtCfg := auth.JWTConfig{Issuer: cfg.Auth.Issuer}
	if cfg.Auth.PublicKeyPath != "" {
		keyData, loadErr := auth.LoadKeyFromFile(cfg.Auth.PublicKeyPath)
		if loadErr != nil {
			logger.Error("failed to load JWT public key file", "error", loadErr)
			os.Exit(1)
		}
		jwtCfg.PublicKeyPEM = string(keyData)
	} else {
		jwtCfg.Secret = cfg.Auth.HMACSecret
	}
	jwtSvc, err := auth.NewJWTService(jwtCfg)
	if err != nil {
		logger.Error("failed to initialize JWT service", "error", err)
		os.Exit(1)
	}

	authenticate := auth.Middleware(jwtSvc)
	requireStaff := auth.RequireRole(auth.RoleAdmin, auth.RoleManager)
	secure := func(next http.Handler) http.Handler {
		return authenticate(requireStaff(next))
	}

	// HTTP routes.
	mux := http.NewServeMux()
	rest.NewHealthHandler(pool, logger).RegisterRoutes(mux)
	rest.NewComparisonHandler(compareUC, scheduleUC, logger).RegisterRoutes(mux)
	rest.NewBankProfileHandler(createBankUC, updateBankUC, deactivateBankUC, getBankUC, listBanksUC, logger).
		RegisterRoutes(mux, secure)
	mux.Handle("GET /metrics", metricsHandler)

	limiter := middleware.NewRateLimiter(100)
	handler := middleware.Logging(logger)(middleware.RateLimit(limiter)(mux))

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server starting", "port", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("credit-engine stopped")
}
