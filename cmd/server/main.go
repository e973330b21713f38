package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/dambastudy/backend/docs"
	"github.com/dambastudy/backend/internal/cache"
	"github.com/dambastudy/backend/internal/certificate"
	"github.com/dambastudy/backend/internal/server"
	"github.com/dambastudy/backend/internal/services"
	"github.com/dambastudy/backend/libs/auth/service"
	"github.com/dambastudy/backend/libs/config"
	"github.com/dambastudy/backend/libs/logger"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// @title DambaStudy API
// @version 1.0
// @description API of the DambaStudy online learning platform: catalog, enrollment, progress and certificates

// @host localhost:5000
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Logger.Info("Starting DambaStudy API", zap.String("driver", cfg.Database.Driver))

	ctx := context.Background()

	// Connect to the store and prepare its schema
	stores, closeStores, err := server.OpenStores(ctx, cfg, logger.Logger)
	if err != nil {
		logger.Logger.Fatal("Failed to open store", zap.Error(err))
	}
	defer closeStores()

	// Popular courses cache, only when Redis is configured
	var popular services.PopularCache
	if cfg.Redis.Host != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Logger.Warn("Redis is unreachable, popular courses cache disabled", zap.Error(err))
		} else {
			popular = cache.NewPopularCache(rdb, cfg.Redis.TTL, logger.Logger)
		}
	}

	router := server.NewRouter(server.Options{
		Stores:         stores,
		Tokens:         service.NewTokenGenerator(cfg.JWT.Secret, cfg.JWT.TokenExpiry),
		Cache:          popular,
		Renderer:       certificate.NewRenderer(cfg.Certificate.VerifyURL),
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		SwaggerURL:     fmt.Sprintf("http://localhost:%d/swagger/doc.json", cfg.Server.Port),
		RateLimit:      100,
		Logger:         logger.Logger,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Logger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Logger.Info("Server exited")
}
