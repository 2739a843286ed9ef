/**
 * @description
 * This is the main entry point for the session service. It is responsible for
 * initializing all components of the service, including configuration, database
 * connection, the Redis rate limiter, the RabbitMQ event producer, the snapshot
 * flusher, the session hub, the core workflows, and the HTTP server. It wires
 * everything together and starts the service.
 *
 * @dependencies
 * - log/slog, net/http: Standard Go libraries for logging and HTTP serving.
 * - github.com/jackc/pgx/v5: PostgreSQL driver.
 * - github.com/redis/go-redis/v9: Redis client for rate limiting.
 * - internal/api, internal/app, internal/config, internal/store: Internal packages.
 * - pkg/catalog: Mock catalog and billing collaborator.
 * - pkg/rabbitmq: Client for RabbitMQ.
 */

package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/styleadvisor/session-service/internal/api"
	"github.com/styleadvisor/session-service/internal/app"
	"github.com/styleadvisor/session-service/internal/config"
	"github.com/styleadvisor/session-service/internal/store"
	"github.com/styleadvisor/session-service/pkg/catalog"
	"github.com/styleadvisor/session-service/pkg/rabbitmq"
)

func main() {
	// Load .env if present; real deployments set environment variables directly.
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig(".")
	if err != nil {
		logger.Error("config load failed", "error", err)
		os.Exit(1)
	}
	if strings.TrimSpace(cfg.JWTSecret) == "" {
		logger.Error("jwt secret must be configured", "env", "JWT_SECRET")
		os.Exit(1)
	}

	logger.Info("starting session-service", "port", cfg.ServerPort)

	// Establish a connection pool to the PostgreSQL database.
	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		logger.Error("database url parse failed", "error", err)
		os.Exit(1)
	}
	poolConfig.MaxConns = 50
	poolConfig.MinConns = 5
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 5 * time.Minute

	// Disable prepared statement caching to prevent conflicts behind poolers.
	poolConfig.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol

	dbpool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbpool.Close()
	logger.Info("database connected")

	// Ensure required tables exist (idempotent)
	if _, err := dbpool.Exec(context.Background(), `
        CREATE TABLE IF NOT EXISTS users (
            id UUID PRIMARY KEY,
            email TEXT NOT NULL UNIQUE,
            display_name TEXT NOT NULL DEFAULT '',
            password_hash TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        );
        CREATE TABLE IF NOT EXISTS store_snapshots (
            user_id UUID NOT NULL,
            store TEXT NOT NULL,
            version INT NOT NULL,
            payload JSONB NOT NULL,
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            PRIMARY KEY (user_id, store)
        );
    `); err != nil {
		logger.Warn("failed ensuring tables (may already exist)", "error", err)
	}

	// Initialize the RabbitMQ producer to publish events. A broker outage
	// must not prevent the service from booting; events degrade to no-ops.
	var producer rabbitmq.Publisher
	eventProducer, err := rabbitmq.NewEventProducer(cfg.RabbitMQURL)
	if err != nil {
		logger.Warn("rabbitmq producer unavailable; using fallback", "error", err)
		producer = &rabbitmq.FallbackProducer{}
	} else {
		defer eventProducer.Close()
		producer = eventProducer
		logger.Info("rabbitmq producer connected")
	}

	// Optional Redis client for rate limiting the analysis endpoint. The
	// limiter fails open when Redis is absent.
	var redisClient *redis.Client
	if strings.TrimSpace(cfg.RedisURL) == "" {
		logger.Warn("redis url missing; analysis rate limiting disabled", "env", "REDIS_URL")
	} else {
		redisOptions, parseErr := redis.ParseURL(cfg.RedisURL)
		if parseErr != nil {
			logger.Warn("redis url parse failed; analysis rate limiting disabled", "error", parseErr)
		} else {
			redisClient = redis.NewClient(redisOptions)
			pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
			if pingErr := redisClient.Ping(pingCtx).Err(); pingErr != nil {
				logger.Warn("redis ping failed; analysis rate limiting disabled", "error", pingErr)
				redisClient.Close()
				redisClient = nil
			} else {
				defer redisClient.Close()
				logger.Info("redis connected")
			}
			cancelPing()
		}
	}

	// Data access layer.
	snapshots := store.NewSnapshotRepository(dbpool)
	credentials := store.NewCredentialRepository(dbpool)

	// The flusher drains snapshot writes off the request path; the hub
	// holds the per-user state containers.
	flusherCtx, stopFlusher := context.WithCancel(context.Background())
	flusher := app.NewFlusher(snapshots, logger, cfg.SnapshotQueueSize)
	go flusher.Run(flusherCtx)

	hub := app.NewHub(snapshots, flusher, logger, cfg.FreeAnalysisLimit)

	tokens := api.NewTokenManager(cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)
	catalogClient := catalog.NewClient(time.Duration(cfg.BillingLatencyMs) * time.Millisecond)

	authService := app.NewAuthService(credentials, snapshots, tokens, hub, producer, logger)
	billingService := app.NewBillingService(catalogClient, producer, logger)
	processor := app.NewProcessor(
		catalogClient,
		producer,
		logger,
		time.Duration(cfg.AnalysisStepDelayMs)*time.Millisecond,
		cfg.AnalysisSteps,
	)

	// Daily quota reset for free-tier users.
	jobs := app.NewJobs(hub, snapshots, producer, logger)
	scheduler := app.NewScheduler(jobs, logger, cfg.QuotaResetSchedule)
	scheduler.Start()

	limiter := api.NewRateLimiter(redisClient, cfg.RedisRateLimitPrefix, cfg.AnalysisRateLimitPerMin, time.Minute)

	// Analysis runs detach to this context so they survive their HTTP
	// request and stop on shutdown.
	procCtx, stopRuns := context.WithCancel(context.Background())

	handler := api.NewHandler(hub, authService, billingService, processor, catalogClient, procCtx)
	router := api.Routes(handler, tokens, limiter)

	serverAddr := fmt.Sprintf(":%s", cfg.ServerPort)
	server := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	go func() {
		logger.Info("server listening", "addr", serverAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server stopped unexpectedly", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	logger.Info("shutdown started")

	// Stop accepting work first, then drain what is in flight.
	<-scheduler.Stop().Done()
	stopRuns()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}

	flusher.Close()
	stopFlusher()

	logger.Info("shutdown complete")
}
