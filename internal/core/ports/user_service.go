package ports

import (
	"context"

	"github.com/platformlab/accounts-api/internal/core/domain"
)

type UserService interface {
	GetProfile(ctx context.Context, id string) (*domain.User, error)
	UpdateName(ctx context.Context, id, name string) (*domain.User, error)
	ListAll(ctx context.Context) ([]domain.User, error)
}
