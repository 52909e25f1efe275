package service

import (
	"context"
	"fmt"

	"github.com/vietanh2810/training-calendar-api/internal/domain"
	"github.com/vietanh2810/training-calendar-api/internal/repository"
)

var (
	ErrUserNotFound = repository.ErrUserNotFound
)

type UserRepository interface {
	FindByID(ctx context.Context, id string) (domain.User, error)
	FindRoleNames(ctx context.Context, userID string) ([]string, error)
}

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

func (s *UserService) GetIdentity(ctx context.Context, id string) (domain.Identity, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return resolveIdentity(ctx, s.repo, user), nil
}
