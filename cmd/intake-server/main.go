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

	"github.com/footcare/intake/internal/config"
	"github.com/footcare/intake/internal/domain/intake"
	"github.com/footcare/intake/internal/domain/messaging"
	"github.com/footcare/intake/internal/domain/portal"
	"github.com/footcare/intake/internal/domain/scheduling"
	"github.com/footcare/intake/internal/domain/survey"
	"github.com/footcare/intake/internal/platform/diagnosis"
	"github.com/footcare/intake/internal/platform/middleware"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "intake-server",
		Short: "Clinic intake API server",
	}

	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the intake API server",
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

	// Repositories. Everything lives in process memory for the lifetime of
	// the server; a restart starts from an empty clinic.
	sessionRepo := intake.NewSessionRepoMem()
	triageRepo := intake.NewTriageRepoMem()
	messageRepo := messaging.NewMessageRepoMem()
	apptRepo := scheduling.NewAppointmentRepoMem()
	surveyRepo := survey.NewResponseRepoMem()

	// Diagnosis engine, AI-backed when a key is configured.
	var completions diagnosis.CompletionClient
	if cfg.AIEnabled() {
		completions = diagnosis.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)
		logger.Info().Str("model", cfg.OpenAIModel).Msg("diagnosis engine using OpenAI completions")
	} else {
		logger.Info().Msg("no OpenAI key configured, diagnosis engine using rules only")
	}
	engine := diagnosis.NewEngine(completions, logger)

	// Services
	messagingSvc := messaging.NewService(messageRepo)
	intakeSvc := intake.NewService(sessionRepo, triageRepo, messageRepo, engine)
	schedulingSvc := scheduling.NewService(apptRepo, sessionRepo, scheduling.SlotGenerator{
		DaysAhead: cfg.SlotDaysAhead,
		PerDay:    cfg.SlotPerDay,
	})
	surveySvc := survey.NewService(surveyRepo, sessionRepo)
	portalSvc := portal.NewService(sessionRepo, triageRepo, apptRepo, surveyRepo, logger)

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = middleware.ErrorHandler(logger)

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
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

	// Domain routes
	intake.NewHandler(intakeSvc).RegisterRoutes(apiV1)
	messaging.NewHandler(messagingSvc).RegisterRoutes(apiV1)
	scheduling.NewHandler(schedulingSvc).RegisterRoutes(apiV1)
	survey.NewHandler(surveySvc).RegisterRoutes(apiV1)
	portal.NewHandler(portalSvc).RegisterRoutes(apiV1)

	// Start server
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
