package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// DefaultAuthRate is the per-IP request rate allowed on the login routes.
const DefaultAuthRate rate.Limit = 10

// RateLimiter limits requests per client IP. Each IP gets a bucket of
// burst requests refilled at limit per second.
func RateLimiter(limit rate.Limit, burst int) echo.MiddlewareFunc {
	config := middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:  limit,
			Burst: burst,
		}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return c.String(http.StatusTooManyRequests, "Too many sign-in attempts. Please try again later.")
		},
	}
	return middleware.RateLimiterWithConfig(config)
}
