package ports

import "github.com/platformlab/accounts-api/internal/core/domain"

// TokenIssuer creates signed, time-limited session tokens.
type TokenIssuer interface {
	Issue(user *domain.User) (string, error)
}

// TokenVerifier validates a token and recovers its claims. Any failure
// (corruption, bad signature, expiry) yields domain.ErrInvalidToken.
type TokenVerifier interface {
	Verify(token string) (*domain.Claims, error)
}
