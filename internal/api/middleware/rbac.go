package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/platformlab/accounts-api/internal/core/domain"
)

// RequireRole gates a route to identities holding exactly the expected
// role. It must run after Auth; without an attached identity the request
// is rejected as unauthenticated, not forbidden.
func RequireRole(expected domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := ClaimsFrom(c)
			if claims == nil {
				return domain.ErrMissingToken
			}
			if claims.Role != expected {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
