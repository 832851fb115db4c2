// Package main implements the entry point for the Jolt API server, which
// tracks caffeine intake and predicts active levels, peaks, and crashes.
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/joltlabs/jolt-api/internal/alerts"
	"github.com/joltlabs/jolt-api/internal/api"
	"github.com/joltlabs/jolt-api/internal/api/middleware"
	"github.com/joltlabs/jolt-api/internal/config"
	"github.com/joltlabs/jolt-api/internal/domain/caffeine"
	"github.com/joltlabs/jolt-api/internal/platform/logger"
	"github.com/joltlabs/jolt-api/internal/platform/postgres"
	"github.com/joltlabs/jolt-api/internal/service"
	"github.com/joltlabs/jolt-api/internal/service/auth"
)

// freeHistoryDays limits how far back the intake list endpoint reaches for
// free-tier accounts.
const freeHistoryDays = 7

// shutdownTimeout bounds how long graceful shutdown waits for in-flight
// requests.
const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

func run() error {
	// Load .env if present; environment variables already set win.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger := logger.Setup(cfg.Server.LogLevel)
	appLogger.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to open database connection: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			appLogger.Error("failed to close database connection", "error", err)
		}
	}()

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelPing()
	if err := db.PingContext(pingCtx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	if err := runMigrations(db, appLogger); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Stores
	userStore := postgres.NewPostgresUserStore(db, appLogger)
	intakeStore := postgres.NewPostgresIntakeStore(db, appLogger)
	alertStore := postgres.NewPostgresAlertStore(db, appLogger)

	// Core model and auth
	caffeineSvc := caffeine.NewDefaultService()

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	bcryptVerifier := auth.NewBcryptVerifier()

	// Alert scheduling
	notifier := alerts.NewStoreNotifier(alertStore, appLogger)
	scheduler := alerts.NewScheduler(
		userStore,
		intakeStore,
		caffeineSvc,
		notifier,
		alerts.SchedulerConfig{
			LeadTime:  time.Duration(cfg.Alerts.LeadTimeMinutes) * time.Minute,
			QueueSize: cfg.Alerts.QueueSize,
		},
		appLogger,
	)
	scheduler.Start()
	defer scheduler.Stop()

	// Application services
	profileService := service.NewProfileService(userStore, scheduler, appLogger)
	intakeService := service.NewIntakeService(intakeStore, scheduler, freeHistoryDays, appLogger)
	analysisService := service.NewAnalysisService(userStore, intakeStore, caffeineSvc, appLogger)

	// HTTP surface
	router := api.NewRouter(api.RouterDeps{
		Auth:     api.NewAuthHandler(userStore, jwtService, bcryptVerifier, bcryptVerifier),
		Profile:  api.NewProfileHandler(profileService),
		Intake:   api.NewIntakeHandler(intakeService),
		Analysis: api.NewAnalysisHandler(analysisService),
		Safety:   api.NewSafetyHandler(analysisService),
		AuthMW:   middleware.NewAuthMiddleware(jwtService),
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		appLogger.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-stop:
		appLogger.Info("shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
