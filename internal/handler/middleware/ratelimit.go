package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"hotel-reservation/internal/handler/httperr"
	"hotel-reservation/internal/infra/ratelimit"

	"github.com/gin-gonic/gin"
)

type RateLimiter interface {
	Key(parts ...string) string
	Allow(ctx context.Context, key string) (ratelimit.Decision, error)
}

var errRateLimited = errors.New("rate limit exceeded")

// RateLimit is a no-op when limiter is nil. Redis failures let the request through.
func RateLimit(limiter RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}

		caller := c.ClientIP()
		if id, ok := GetUserID(c); ok {
			caller = id.String()
		}
		key := limiter.Key("user", caller, "route", c.Request.Method+" "+c.FullPath())

		decision, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			slog.WarnContext(c.Request.Context(), "Rate limiter unavailable, allowing request",
				slog.String("key", key),
				slog.String("error", err.Error()))
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(decision.Limit))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(decision.Remaining, 10))

		if !decision.Allowed {
			retrySec := int64((decision.RetryAfter + 999_999_999) / 1_000_000_000)
			if retrySec < 1 {
				retrySec = 1
			}
			c.Header("Retry-After", strconv.FormatInt(retrySec, 10))
			httperr.AbortWithError(c, http.StatusTooManyRequests, errRateLimited, "Too many requests",
				map[string]any{"retry_after_seconds": retrySec})
			return
		}

		c.Next()
	}
}
