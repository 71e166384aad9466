package service

import (
	"context"
	"strings"

	"github.com/platformlab/accounts-api/internal/core/domain"
	"github.com/platformlab/accounts-api/internal/core/ports"
)

// UserService implements profile reads and updates. It performs no
// authorization checks; role gating is a boundary concern handled by the
// middleware in front of it.
type UserService struct {
	repo ports.UserRepository
}

func NewUserService(repo ports.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) GetProfile(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateName re-validates the trimmed name even though the edge already
// did; the ID may also have vanished between auth and lookup, in which
// case the repository reports domain.ErrUserNotFound.
func (s *UserService) UpdateName(ctx context.Context, id, name string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	if len([]rune(name)) < 2 {
		return nil, domain.ErrNameTooShort
	}
	return s.repo.UpdateName(ctx, id, name)
}

// ListAll returns every user, most recently created first.
func (s *UserService) ListAll(ctx context.Context) ([]domain.User, error) {
	return s.repo.ListAll(ctx)
}
