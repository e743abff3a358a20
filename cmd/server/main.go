package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jobboard/internal/config"
	"jobboard/internal/logging"
	"jobboard/internal/metrics"
	"jobboard/internal/middleware"
	"jobboard/internal/server"
	"jobboard/internal/service"
	"jobboard/internal/storage"
	"jobboard/internal/utils"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	// Load .env file
	config.LoadEnvFile()

	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := logging.SetupDefault(os.Stdout, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Storage ---
	store, err := storage.Open(ctx, cfg)
	if err != nil {
		logger.Error("failed to open storage", slog.String("driver", cfg.StorageDriver), slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			logger.Error("failed to close storage", slog.Any("error", err))
		}
	}()
	logger.Info("storage ready", slog.String("driver", store.Driver))

	// --- Metrics ---
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector := metrics.NewCollector(reg)

	// --- Initialize Utilities ---
	jwtUtil := utils.NewJWTUtil(cfg.JWTSecret, cfg.JWTExpirationHours)

	// --- Initialize Services ---
	authService := service.NewAuthService(store.Users, jwtUtil, collector, cfg.StoreTimeout)
	jobService := service.NewJobService(store.Jobs, cfg.StoreTimeout)

	// --- Initialize Middlewares ---
	authLimiter := middleware.NewRateLimiter(middleware.PerMinute(cfg.AuthRateLimitPerMin))
	defer authLimiter.Stop()

	// --- Setup Gin Router ---
	router := server.NewRouter(server.Deps{
		Logger:      logger,
		AuthService: authService,
		JobService:  jobService,
		JWTUtil:     jwtUtil,
		Metrics:     collector,
		Gatherer:    reg,
		AuthLimiter: authLimiter,
		HealthCheck: store.Ping,
		CORSOrigins: cfg.CORSAllowedOrigins,
	})

	// --- Start Server ---
	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("server starting", slog.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("listen failed", slog.Any("error", err))
			stop()
		}
	}()

	// --- Graceful Shutdown ---
	<-ctx.Done()
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", slog.Any("error", err))
	}

	logger.Info("server exiting")
}
