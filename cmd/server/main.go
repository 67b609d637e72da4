package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/amberoven/bakehouse-backend/internal/config"
	"github.com/amberoven/bakehouse-backend/internal/database"
	"github.com/amberoven/bakehouse-backend/internal/handler"
	"github.com/amberoven/bakehouse-backend/internal/logger"
	"github.com/amberoven/bakehouse-backend/internal/repository"
	"github.com/amberoven/bakehouse-backend/internal/router"
	"github.com/amberoven/bakehouse-backend/internal/service"
	"github.com/amberoven/bakehouse-backend/internal/validator"
	"github.com/amberoven/bakehouse-backend/internal/worker"
	"github.com/rs/zerolog"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting Bakehouse Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Initialize Repositories ───────────────────────────────────────
	directoryRepo := repository.NewDirectoryRepository(pool)
	adminUserRepo := repository.NewAdminUserRepository(pool)
	sessionRepo := repository.NewSessionRepository(pool)
	categoryRepo := repository.NewCategoryRepository(pool)
	productRepo := repository.NewProductRepository(pool)
	homepageRepo := repository.NewHomepageRepository(pool)

	// ─── Initialize Services ──────────────────────────────────────────
	authService := service.NewAuthService(cfg, directoryRepo, adminUserRepo, sessionRepo, log)
	sessionService := service.NewSessionService(sessionRepo, log)
	catalogService := service.NewCatalogService(cfg, categoryRepo, productRepo, rdb, log)
	homepageService := service.NewHomepageService(homepageRepo, log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:     handler.NewAuthHandler(cfg, authService),
		Category: handler.NewCategoryHandler(catalogService),
		Product:  handler.NewProductHandler(catalogService),
		Homepage: handler.NewHomepageHandler(homepageService),
		Cron:     handler.NewCronHandler(cfg, sessionService, log),
	}

	// ─── Start Background Workers ─────────────────────────────────────
	// The in-process sweeper only runs when configured; the external cron
	// endpoint remains the primary cleanup trigger.
	workerCtx, workerCancel := context.WithCancel(context.Background())
	if cfg.SessionSweepInterval > 0 {
		sweeper := worker.NewSessionSweeper(sessionService, cfg.SessionSweepInterval, log)
		go sweeper.Start(workerCtx)
	}

	// ─── Prewarm Redis Caches ─────────────────────────────────────────
	// Load the category listing into Redis before accepting traffic.
	if err := catalogService.PrewarmCaches(ctx); err != nil {
		log.Warn().Err(err).Msg("Cache prewarm failed")
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(authService, handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	workerCancel()

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
