package main

import (
	"context"   // context package is needed for Redis operations and shutdown
	"errors"    // Server close detection
	"net/http"  // HTTP server
	"os"        // Process signals
	"os/signal" // Signal handling for graceful shutdown
	"syscall"   // SIGTERM
	"time"      // Shutdown timeout

	"digital_wallet/internal/api"        // Custom package for API handlers
	"digital_wallet/internal/auth"       // Login gate
	"digital_wallet/internal/config"     // Custom package for configuration
	"digital_wallet/internal/db"         // Database connection and migration
	"digital_wallet/internal/events"     // Entity change events
	"digital_wallet/internal/repository" // Entity stores

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

const shutdownTimeout = 10 * time.Second

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration
	setupLogger(cfg)
	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("invalid configuration: %v", err)
	}

	// Connect to the database
	conn, err := db.Open(cfg)
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}
	if cfg.AutoMigrate {
		if err := db.Migrate(conn); err != nil {
			logrus.Fatalf("failed to migrate DB: %v", err)
		}
	}

	publisher, closeEvents := setupEvents(cfg)
	defer closeEvents()

	// Login gate
	user, err := auth.ConfiguredUser(cfg)
	if err != nil {
		logrus.Fatalf("failed to configure login user: %v", err)
	}
	authenticator := auth.NewAuthenticator(
		auth.NewStaticUserStore(user),
		auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL),
	)

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	router, err := api.NewRouter(api.Deps{
		Repos:     repository.NewRepositories(conn),
		Auth:      authenticator,
		Publisher: publisher,
		Log:       logrus.StandardLogger(),
	})
	if err != nil {
		logrus.Fatalf("failed to build router: %v", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           api.WithCORS(router, cfg.CORSOrigins),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logrus.WithField("port", cfg.AppPort).Info("Server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("server failed: %v", err)
		}
	}()

	<-ctx.Done()
	logrus.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("graceful shutdown failed: %v", err)
	}
	if sqlDB, err := conn.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// setupLogger applies the formatter and level; production logs are JSON
func setupLogger(cfg *config.Config) {
	if cfg.IsProd {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logrus.Warnf("unknown LOG_LEVEL %q, using info", cfg.LogLevel)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

// setupEvents picks the Redis stream when REDIS_ADDR is set, the log otherwise
func setupEvents(cfg *config.Config) (events.Publisher, func()) {
	if cfg.RedisAddr == "" {
		logrus.Info("REDIS_ADDR not set, entity events go to the log")
		return events.NewLogPublisher(logrus.StandardLogger()), func() {}
	}

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := redisClient.Ping(ctx).Result(); err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}
	return events.NewRedisPublisher(redisClient, cfg.EventStream), func() { _ = redisClient.Close() }
}
