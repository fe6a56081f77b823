package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dosada05/swiss-tournament/brackets"
	"github.com/Dosada05/swiss-tournament/config"
	"github.com/Dosada05/swiss-tournament/db"
	"github.com/Dosada05/swiss-tournament/handlers"
	"github.com/Dosada05/swiss-tournament/repositories"
	api "github.com/Dosada05/swiss-tournament/routes"
	"github.com/Dosada05/swiss-tournament/services"
	"github.com/Dosada05/swiss-tournament/storage"
	"github.com/go-chi/chi/v5"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second, logger)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		} else {
			logger.Info("database connection closed")
		}
	}()
	logger.Info("database connection established")

	schemaCtx, cancelSchema := context.WithTimeout(context.Background(), 10*time.Second)
	err = db.EnsureSchema(schemaCtx, dbConn)
	cancelSchema()
	if err != nil {
		logger.Error("failed to apply database schema", slog.Any("error", err))
		os.Exit(1)
	}

	// Exports stay disabled unless every R2 variable is set.
	var uploader storage.ObjectUploader
	if cfg.R2.Enabled() {
		uploader, err = storage.NewCloudflareR2Uploader(context.Background(), cfg.R2)
		if err != nil {
			logger.Error("failed to initialize Cloudflare R2 uploader", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("Cloudflare R2 uploader initialized", slog.String("bucket", cfg.R2.BucketName))
	} else {
		logger.Info("R2 not configured, round exports disabled")
	}

	wsHub := brackets.NewHub(logger)
	go wsHub.Run()
	defer wsHub.Stop()

	transactor := repositories.NewPostgresTransactor(dbConn)
	playerRepo := repositories.NewPostgresPlayerRepository(dbConn)
	matchRepo := repositories.NewPostgresMatchRepository(dbConn)

	standingsService := services.NewStandingsService(transactor, playerRepo, matchRepo, brackets.NewSwissGenerator(), logger)
	playerService := services.NewPlayerService(playerRepo, standingsService, wsHub, logger)
	matchService := services.NewMatchService(matchRepo, standingsService, wsHub, logger)
	dashboardService := services.NewDashboardService(transactor, playerRepo, matchRepo)
	exportService := services.NewExportService(standingsService, uploader, logger)
	authService := services.NewAuthService(cfg.AdminPasswordHash, cfg.JWTSecretKey, services.DefaultTokenTTL)

	router := chi.NewRouter()
	api.SetupRoutes(router, api.Handlers{
		Auth:      handlers.NewAuthHandler(authService),
		Player:    handlers.NewPlayerHandler(playerService),
		Match:     handlers.NewMatchHandler(matchService),
		Standings: handlers.NewStandingsHandler(standingsService),
		Export:    handlers.NewExportHandler(exportService),
		Dashboard: handlers.NewDashboardHandler(dashboardService),
		WebSocket: handlers.NewWebSocketHandler(wsHub, cfg.CORSAllowedOrigins),
	}, api.Options{
		JWTSecret:      []byte(cfg.JWTSecretKey),
		AllowedOrigins: cfg.CORSAllowedOrigins,
	})
	logger.Info("routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 35 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("server stopped gracefully")
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
	logger.Info("application exited")
}
