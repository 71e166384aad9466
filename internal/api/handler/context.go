package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/platformlab/accounts-api/internal/api/middleware"
	"github.com/platformlab/accounts-api/internal/core/domain"
)

// ctxClaims extracts the identity injected by the Auth middleware and
// fast-fails before any service call when it is absent: a profile handler
// has no meaning without an authenticated subject.
func ctxClaims(c echo.Context) (*domain.Claims, error) {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		return nil, domain.ErrMissingToken
	}
	return claims, nil
}
