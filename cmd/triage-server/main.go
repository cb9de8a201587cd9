package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/triageq/triageq/internal/config"
	"github.com/triageq/triageq/internal/domain/pharmacy"
	"github.com/triageq/triageq/internal/domain/triage"
	"github.com/triageq/triageq/internal/platform/analytics"
	"github.com/triageq/triageq/internal/platform/middleware"
	"github.com/triageq/triageq/internal/platform/websocket"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "triage-server",
		Short: "Clinical Triage Queue API Server",
	}

	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the triage API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func runServer() error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut},
		AllowHeaders: []string{"Content-Type", "X-Request-ID"},
	}))

	// API group
	apiV1 := e.Group("/api/v1")

	rateLimitCfg := middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}
	if rateLimitCfg.RequestsPerSecond <= 0 {
		rateLimitCfg = middleware.DefaultRateLimitConfig()
	}
	apiV1.Use(middleware.RateLimit(rateLimitCfg))

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})

	// Triage domain
	store := triage.NewStore()
	estimator := triage.NewEstimator(cfg.AvgServiceMinutes)
	triageSvc := triage.NewService(store, estimator)
	triageHandler := triage.NewHandler(triageSvc)
	triageHandler.RegisterRoutes(apiV1)

	// Realtime queue feed
	hub := websocket.NewHub(logger)
	triageSvc.AddListener(hub)
	wsHandler := websocket.NewHandler(hub)
	wsHandler.RegisterRoutes(apiV1)

	// Pharmacy domain
	inventory := pharmacy.SeedInventory()
	chatbot := pharmacy.NewChatbot(inventory)
	pharmacyHandler := pharmacy.NewHandler(inventory, chatbot)
	pharmacyHandler.RegisterRoutes(apiV1)

	// Analytics
	analyticsHandler := analytics.NewHandler(func(c echo.Context) []*triage.PatientRecord {
		return triageSvc.ListQueue(c.Request().Context())
	})
	analyticsHandler.RegisterRoutes(apiV1)

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}
