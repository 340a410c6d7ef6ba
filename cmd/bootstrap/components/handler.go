package components

import (
	"log/slog"

	"hotel-reservation/internal/handler"
	"hotel-reservation/internal/handler/api"
	"hotel-reservation/internal/handler/middleware"
	"hotel-reservation/internal/infra/ratelimit"
	"hotel-reservation/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewCouponHandler,
		middleware.NewAuthMiddleware,
		NewRateLimiter,
		func(b *api.BookingHandler, c *api.CouponHandler) handler.Handlers {
			return handler.Handlers{Booking: b, Coupon: c}
		},
	),
	fx.Invoke(handler.NewRouter),
)

// NewRateLimiter returns a nil interface when limiting is off so the
// middleware can skip it.
func NewRateLimiter(cfg config.Config, rdb *redis.Client, logger *slog.Logger) middleware.RateLimiter {
	if !cfg.RateLimit.Enabled || rdb == nil {
		logger.Info("Rate limiting disabled")
		return nil
	}
	return ratelimit.NewTokenBucket(rdb, cfg.RateLimit, logger)
}
