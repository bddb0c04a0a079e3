package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dealspro/dealspro_api/internal/config"
	"github.com/dealspro/dealspro_api/internal/database"
	"github.com/dealspro/dealspro_api/internal/handler"
	"github.com/dealspro/dealspro_api/internal/middleware"
	"github.com/dealspro/dealspro_api/internal/repository"
	"github.com/dealspro/dealspro_api/internal/service"
	"github.com/dealspro/dealspro_api/internal/sse"
	"github.com/dealspro/dealspro_api/internal/storage"
	"github.com/dealspro/dealspro_api/internal/worker"
)

// main is the application entrypoint for the DealsPro API.
func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Str("storage", cfg.Storage.Driver).Msg("starting dealspro api")

	// 3. Open the key-value store behind every collection
	kv, closer, err := openStorage(cfg)
	if err != nil {
		log.Error().Err(err).Msg("storage initialization failed")
		fmt.Fprintf(os.Stderr, "storage initialization failed: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	// 4. Initialize repositories
	dealRepo := repository.NewDealRepository(kv)
	brandRepo := repository.NewBrandSubmissionRepository(kv)
	influencerRepo := repository.NewInfluencerApplicationRepository(kv)

	// 5. Initialize SSE hub for admin real-time updates
	hub := sse.NewHub()
	notifier := sse.NewHubNotifier(hub)

	// 6. Initialize services
	dealSvc := service.NewDealService(dealRepo, notifier, cfg.PublicOrigin)
	leadSvc := service.NewLeadService(brandRepo, influencerRepo, notifier)
	adminAuthSvc := service.NewAdminAuthService(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	imageSvc, err := service.NewImageService(ctx, cfg.S3)
	if err != nil {
		log.Warn().Err(err).Msg("S3 initialization failed - deal image upload will be disabled")
		imageSvc = service.NewDisabledImageService()
	}

	// 7. Initialize handlers
	handlers := &handler.Handlers{
		Health:    handler.NewHealthHandler(cfg.Storage.Driver, kv),
		Auth:      handler.NewAuthHandler(adminAuthSvc),
		Deal:      handler.NewDealHandler(dealSvc),
		AdminDeal: handler.NewAdminDealHandler(dealSvc, imageSvc),
		Lead:      handler.NewLeadHandler(leadSvc),
		AdminLead: handler.NewAdminLeadHandler(leadSvc),
		SSE:       handler.NewSSEHandler(hub, adminAuthSvc),
	}

	// 8. Initialize middleware
	jwtMw := middleware.NewJWTMiddleware(cfg.JWTSecret)
	loginLimiter := middleware.NewInvalidAuthRateLimiter(5, time.Minute)

	// 9. Setup router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg.CORS.AllowedHosts))
	router.Use(middleware.LoggingMiddleware())
	handler.SetupRoutes(router, handlers, middleware.LoginRateLimit(loginLimiter), jwtMw.Handle())

	// 10. Start workers
	go func() {
		if err := worker.NewPendingDigestWorker(leadSvc, notifier, cfg.Worker.DigestSchedule).Start(ctx); err != nil {
			log.Error().Err(err).Msg("pending digest worker failed to start")
		}
	}()

	// 11. Start HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// 12. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// 13. Cancel context to stop workers and end open admin streams
	cancel()
	hub.CloseAll()
	loginLimiter.Stop()

	// 14. Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// openStorage returns the configured key-value backend and a closer for its connection.
func openStorage(cfg *config.Config) (storage.KeyValueStore, io.Closer, error) {
	switch cfg.Storage.Driver {
	case config.StorageMemory:
		log.Warn().Msg("using in-memory storage - data is lost on restart")
		return storage.NewMemoryStore(), nopCloser{}, nil

	case config.StorageRedis:
		store, err := storage.NewRedisStore(&cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		log.Info().Msg("redis connected successfully")
		return store, store, nil

	case config.StoragePostgres:
		db, err := database.Connect(&cfg.DB)
		if err != nil {
			return nil, nil, err
		}
		if err := database.RunMigrations(db.DB); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("migration failed: %w", err)
		}
		log.Info().Msg("migrations completed successfully")
		return storage.NewPostgresStore(db), db, nil
	}
	return nil, nil, errors.New("unknown storage driver " + cfg.Storage.Driver)
}

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}
