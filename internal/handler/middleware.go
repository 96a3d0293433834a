package handler

import (
	"log/slog"
	"net/http"
	"trendwire/internal/ratelimit"

	"github.com/gin-gonic/gin"
)

// RateLimit rejects clients over their budget with 429. Limiter errors let
// the request through: the tracker is best effort.
func RateLimit(limiter ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()

		allowed, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			slog.Warn("rate limiter unavailable, allowing request", "client_ip", key, "error", err)
			c.Next()
			return
		}

		if !allowed {
			slog.Warn("rate limit exceeded", "client_ip", key, "path", c.FullPath())
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded. Please try again later."})
			return
		}

		c.Next()
	}
}

// Recovery turns a panic into the generic internal-error payload.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		slog.Error("panic while handling request", "path", c.Request.URL.Path, "panic", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": internalErrorMessage})
	})
}
