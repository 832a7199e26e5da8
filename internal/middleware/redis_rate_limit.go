package middleware

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/KlienGumapac/freedomewall/internal/cache"
	apierrors "github.com/KlienGumapac/freedomewall/internal/errors"
	"github.com/KlienGumapac/freedomewall/internal/logger"
	"github.com/KlienGumapac/freedomewall/internal/metrics"
	"github.com/KlienGumapac/freedomewall/internal/util"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RedisRateLimitMiddleware creates a fixed-window rate limiter shared by all instances through Redis.
// When a Redis call fails the request is answered by the in-memory fallback instead.
func RedisRateLimitMiddleware(redisClient *cache.RedisClient, config RateLimitConfig, fallback *RateLimiter) gin.HandlerFunc {
	fallbackHandler := fallback.Middleware()

	return func(c *gin.Context) {
		key := fmt.Sprintf("rate_limit:%s", config.key(c))
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		count, err := redisClient.IncrWithExpiry(ctx, key, config.Window)
		if err != nil {
			logger.Log.Warn("Redis rate limiter unavailable, using in-memory limiter",
				logger.WithIP(c.ClientIP()),
				zap.Error(err),
			)
			fallbackHandler(c)
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(config.Limit))
		if count > int64(config.Limit) {
			retryAfter := int(config.Window.Seconds())
			if ttl, err := redisClient.TTL(ctx, key); err == nil && ttl > 0 {
				retryAfter = int(ttl.Seconds()) + 1
			}
			metrics.RecordRateLimitExceeded("redis")
			logger.Log.Warn("Rate limit exceeded",
				logger.WithIP(c.ClientIP()),
				zap.Int("max_requests", config.Limit),
				zap.Int64("current_requests", count),
			)
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			c.Header("X-RateLimit-Remaining", "0")
			util.RespondWithAPIError(c, apierrors.RateLimited(""))
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.FormatInt(int64(config.Limit)-count, 10))
		c.Next()
	}
}

// RateLimit picks the Redis limiter when a client is available and the in-memory one otherwise
func RateLimit(redisClient *cache.RedisClient, config RateLimitConfig) (gin.HandlerFunc, *RateLimiter) {
	memory := NewRateLimiter(config)
	if redisClient == nil {
		return memory.Middleware(), memory
	}
	return RedisRateLimitMiddleware(redisClient, config, memory), memory
}
