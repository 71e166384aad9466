package ports

import (
	"context"

	"github.com/platformlab/accounts-api/internal/core/domain"
)

// UserRepository defines the interface for user persistence.
// Email arguments are expected pre-normalized (see domain.NormalizeEmail).
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateName(ctx context.Context, id, name string) (*domain.User, error)
	ListAll(ctx context.Context) ([]domain.User, error)
}
