package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/platformlab/accounts-api/internal/api/metrics"
)

// Limiter is the slice of the Redis fixed-window limiter the middleware
// needs.
type Limiter interface {
	Allow(ctx context.Context, scope, key string) (bool, error)
}

// RateLimit throttles a route per client IP. Redis being unreachable fails
// open: an unavailable limiter must not take the auth endpoints down with
// it.
func RateLimit(limiter Limiter, scope string, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ok, err := limiter.Allow(c.Request().Context(), scope, c.RealIP())
			if err != nil {
				log.Warn().Err(err).Str("scope", scope).Msg("rate limiter unavailable, failing open")
				return next(c)
			}
			if !ok {
				metrics.RateLimitedTotal.WithLabelValues(c.Path()).Inc()
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests")
			}
			return next(c)
		}
	}
}
