package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KlienGumapac/freedomewall/internal/auth"
	"github.com/KlienGumapac/freedomewall/internal/cache"
	"github.com/KlienGumapac/freedomewall/internal/config"
	"github.com/KlienGumapac/freedomewall/internal/database"
	"github.com/KlienGumapac/freedomewall/internal/handlers"
	"github.com/KlienGumapac/freedomewall/internal/logger"
	"github.com/KlienGumapac/freedomewall/internal/metrics"
	"github.com/KlienGumapac/freedomewall/internal/middleware"
	"github.com/KlienGumapac/freedomewall/internal/storage"
	"github.com/KlienGumapac/freedomewall/internal/telemetry"
	"github.com/KlienGumapac/freedomewall/internal/validation"
	"github.com/KlienGumapac/freedomewall/internal/wall"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const serviceName = "freedomwall-backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(logger.Options{
		Level:       cfg.LogLevel,
		File:        cfg.LogFile,
		Development: !cfg.IsProduction(),
	}); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Close()

	logger.Log.Info("=== Freedom Wall server starting ===",
		zap.String("environment", cfg.Environment),
		zap.String("store", cfg.StoreDriver),
	)

	ctx := context.Background()

	tp, err := telemetry.InitTracer(ctx, telemetry.Config{
		ServiceName:  serviceName,
		Environment:  cfg.Environment,
		OTLPEndpoint: cfg.OTelEndpoint,
		Enabled:      cfg.OTelEnabled,
		SamplingRate: cfg.OTelSamplingRate,
	})
	if err != nil {
		logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
	}

	metrics.Initialize()

	store, err := database.OpenStore(ctx, cfg)
	if err != nil {
		logger.Log.Fatal("Failed to open store", zap.Error(err))
	}

	checks := map[string]validation.Check{
		validation.ServiceDatabase: store.Health,
	}
	var opts []wall.Option

	// Redis backs the shared rate limiter and the profile cache
	var redisClient *cache.RedisClient
	if cfg.RedisEnabled() {
		redisClient, err = cache.NewRedisClient(ctx, cfg.RedisHost, cfg.RedisPort, cfg.RedisPassword)
		if err != nil {
			logger.Log.Warn("Redis unavailable, using in-memory rate limiting and no profile cache", zap.Error(err))
			redisClient = nil
		} else {
			checks[validation.ServiceRedis] = redisClient.Ping
			opts = append(opts, wall.WithProfileCache(cache.NewRedisProfileCache(redisClient, cache.DefaultProfileTTL)))
		}
	}

	if cfg.S3Enabled() {
		s3Store, err := storage.NewS3ImageStore(ctx, cfg.AWSRegion, cfg.AWSBucket, cfg.CDNBaseURL)
		if err != nil {
			logger.Log.Fatal("Failed to initialize S3 image store", zap.Error(err))
		}
		if err := s3Store.CheckBucketAccess(ctx); err != nil {
			logger.Log.Warn("S3 bucket access failed, images stay inline", zap.Error(err))
		} else {
			checks[validation.ServiceS3] = s3Store.CheckBucketAccess
			opts = append(opts, wall.WithImageStore(s3Store))
		}
	}

	if err := validation.NewServiceValidator(cfg.RequiredServices, checks).ValidateServices(ctx); err != nil {
		logger.Log.Fatal("Required service unavailable", zap.Error(err))
	}

	if err := handlers.RegisterValidators(); err != nil {
		logger.Log.Fatal("Failed to register validators", zap.Error(err))
	}

	healthChecks := make([]handlers.HealthCheck, 0, len(checks))
	for name, check := range checks {
		healthChecks = append(healthChecks, handlers.HealthCheck{Name: name, Check: check})
	}

	h := handlers.NewHandlers(wall.NewService(store.Posts, store.Users, opts...), healthChecks...)
	verifier := auth.NewVerifier(cfg.JWTSecret)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(middleware.RecoveryMiddleware())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.GinLoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())
	if cfg.OTelEnabled {
		r.Use(middleware.TracingMiddleware(serviceName))
	}

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-Request-ID"}
	r.Use(cors.New(corsConfig))
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	r.GET("/health", h.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	globalConfig := middleware.DefaultRateLimitConfig()
	globalConfig.Limit = cfg.RateLimitPerMinute
	globalLimit, globalLimiter := middleware.RateLimit(redisClient, globalConfig)
	defer globalLimiter.Stop()

	writeLimit, writeLimiter := middleware.RateLimit(redisClient, middleware.WriteRateLimitConfig())
	defer writeLimiter.Stop()

	api := r.Group("/api", globalLimit)
	h.RegisterRoutes(api, verifier, writeLimit)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Log.Info("Freedom Wall backend listening", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			logger.Log.Warn("Redis close failed", zap.Error(err))
		}
	}
	if err := store.Close(shutdownCtx); err != nil {
		logger.Log.Warn("Store close failed", zap.Error(err))
	}
	if err := telemetry.Shutdown(shutdownCtx, tp); err != nil {
		logger.Log.Warn("Tracer shutdown failed", zap.Error(err))
	}

	logger.Log.Info("Server exited")
}
