package ports

import (
	"context"

	"github.com/platformlab/accounts-api/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, name, email, password string) error
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
