package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/pageza/recipeai/backend/config"
	"github.com/pageza/recipeai/backend/internal/database"
	"github.com/pageza/recipeai/backend/internal/logger"
	"github.com/pageza/recipeai/backend/internal/server"
	"github.com/pageza/recipeai/backend/internal/service"
)

func main() {
	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zl := logger.New(logger.Config{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		Development: !cfg.Environment.IsProduction(),
	})
	defer zl.Sync() //nolint:errcheck

	ctx := context.Background()

	// Fallback templates are fixed for the life of the process
	source, err := config.LoadTemplateSource(ctx, cfg)
	if err != nil {
		zl.Fatal("Failed to load fallback templates", zap.Error(err))
	}
	templates, err := service.LoadTemplates(source)
	if err != nil {
		zl.Fatal("Invalid fallback templates", zap.Error(err))
	}

	// Continue without rate limiting if Redis is not available
	var redisClient *redis.Client
	if cfg.RateLimitEnabled() {
		redisClient, err = database.NewRedisClient(ctx, cfg.RedisURL, zl)
		if err != nil {
			zl.Warn("Rate limiting disabled", zap.Error(err))
			redisClient = nil
		} else {
			defer redisClient.Close()
		}
	}

	srv := server.New(cfg, zl, templates, redisClient)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	// Channel to listen for an interrupt or terminate signal from the OS
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			zl.Fatal("Server error", zap.Error(err))
		}
		return
	case sig := <-quit:
		zl.Info("Received signal", zap.String("signal", sig.String()))
	}

	zl.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error("Server shutdown error", zap.Error(err))
		return
	}
	zl.Info("Server stopped")
}
