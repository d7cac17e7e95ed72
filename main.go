package main

import (
	"context"
	"log"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/pourtrait/pourtrait-api/internal/api"
	"github.com/pourtrait/pourtrait-api/internal/api/handlers"
	"github.com/pourtrait/pourtrait-api/internal/config"
	"github.com/pourtrait/pourtrait-api/internal/database"
	"github.com/pourtrait/pourtrait-api/internal/llm"
	"github.com/pourtrait/pourtrait-api/internal/metrics"
	"github.com/pourtrait/pourtrait-api/internal/observability"
	"github.com/pourtrait/pourtrait-api/internal/store"
)

const (
	sentryFlushTimeout    = 2 * time.Second
	environmentProduction = "production"
)

// releaseVersion is set via ldflags during build
var releaseVersion = "dev"

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	ctx := context.Background()

	// Initialize Sentry
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.Environment,
			Release:          "pourtrait-api@" + releaseVersion,
			EnableTracing:    true,
			TracesSampleRate: 1.0,
			Debug:            cfg.Environment != environmentProduction,
		}); err != nil {
			log.Printf("Failed to initialize Sentry: %v", err)
		} else {
			log.Printf("Sentry initialized (environment: %s, release: %s)", cfg.Environment, releaseVersion)
			defer sentry.Flush(sentryFlushTimeout)
		}
	} else {
		log.Println("Sentry not configured (SENTRY_DSN not set)")
	}

	// Initialize Langfuse for remote-generation traces
	observability.InitializeLangfuse(ctx, cfg)

	// Initialize database and bootstrap the schema
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		sentry.CaptureException(err)
		log.Fatal("Failed to connect to database:", err)
	}
	if err := database.Migrate(db); err != nil {
		sentry.CaptureException(err)
		log.Fatal("Failed to run migrations:", err)
	}

	// CloudWatch metrics (no-op outside production)
	cwMetrics, err := metrics.NewClient(ctx, cfg.Environment)
	if err != nil {
		log.Printf("CloudWatch metrics unavailable: %v", err)
	}

	// Remote override is optional; without an API key every request uses the
	// deterministic engine.
	var remote handlers.RemoteGenerator
	if cfg.RemoteEnabled() {
		remote = llm.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)
		log.Printf("Remote override enabled (model: %s)", cfg.OpenAIModel)
	} else {
		log.Println("Remote override disabled (OPENAI_API_KEY not set)")
	}

	if cfg.Environment == environmentProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	router := api.SetupRouter(api.Deps{
		DB:        db,
		Store:     store.NewGormStore(db),
		Remote:    remote,
		CWMetrics: cwMetrics,
		Config:    cfg,
	})

	log.Printf("Starting server on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		sentry.CaptureException(err)
		log.Fatal("Failed to start server:", err)
	}
}
