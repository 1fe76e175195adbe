// cmd/api/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/infrastructure/database/postgres"
	"github.com/your-org/storefront-backend/internal/infrastructure/database/redis"
	"github.com/your-org/storefront-backend/internal/interfaces/http"
	"gorm.io/gorm"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	setupLogging(cfg)

	logrus.WithFields(logrus.Fields{
		"name":        cfg.App.Name,
		"version":     cfg.App.Version,
		"environment": cfg.App.Environment,
	}).Info("Starting application")

	// Connect to Redis
	redisClient, err := redis.NewConnection(cfg)
	if err != nil {
		logrus.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	if err := redisClient.Health(); err != nil {
		logrus.Fatalf("Redis health check failed: %v", err)
	}

	// Connect to the database only when it backs the document store
	var gormDB *gorm.DB
	if cfg.Store.Backend == "postgres" {
		db, err := postgres.NewConnection(cfg)
		if err != nil {
			logrus.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		if err := db.Health(); err != nil {
			logrus.Fatalf("Database health check failed: %v", err)
		}

		if err := db.Migrate(); err != nil {
			logrus.Fatalf("Database migration failed: %v", err)
		}

		gormDB = db.GetDB()
	}

	// Create and start HTTP server
	server, err := http.NewServer(cfg, gormDB, redisClient.GetClient())
	if err != nil {
		logrus.Fatalf("Failed to create HTTP server: %v", err)
	}

	go func() {
		if err := server.Start(); err != nil {
			logrus.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		logrus.Errorf("Failed to shutdown HTTP server gracefully: %v", err)
	}

	logrus.Info("Server shutdown completed")
}

func setupLogging(cfg *config.Config) {
	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	if cfg.Logging.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}
