package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/vietanh2810/training-calendar-api/internal/domain"
	"github.com/vietanh2810/training-calendar-api/internal/repository"
)

var (
	ErrCategoryNotFound = repository.ErrCategoryNotFound
	ErrCategoryExists   = repository.ErrCategoryExists
)

type CategoryRepository interface {
	Create(ctx context.Context, c domain.Category) (domain.Category, error)
	FindByID(ctx context.Context, id string) (domain.Category, error)
	FindAll(ctx context.Context) ([]domain.Category, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
}

type CategoryService struct {
	repo CategoryRepository
}

func NewCategoryService(repo CategoryRepository) *CategoryService {
	return &CategoryService{
		repo: repo,
	}
}

// InitializeDefaultCategories inserts each default category that is missing.
// Existing rows are left untouched.
func (s *CategoryService) InitializeDefaultCategories(ctx context.Context) error {
	for _, c := range domain.DefaultCategories() {
		exists, err := s.repo.ExistsByID(ctx, c.ID)
		if err != nil {
			return fmt.Errorf("s.repo.ExistsByID -> %w", err)
		}
		if exists {
			continue
		}

		if _, err = s.repo.Create(ctx, c); err != nil {
			return fmt.Errorf("s.repo.Create -> %w", err)
		}
		zap.L().Info("created default category", zap.String("category_id", c.ID))
	}

	return nil
}

func (s *CategoryService) CreateCategory(ctx context.Context, c domain.Category) (domain.Category, error) {
	created, err := s.repo.Create(ctx, c)
	if err != nil {
		return domain.Category{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *CategoryService) GetCategory(ctx context.Context, id string) (domain.Category, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Category{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return c, nil
}

func (s *CategoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return categories, nil
}

// ExistsByID lets the category service double as the event service's category check.
func (s *CategoryService) ExistsByID(ctx context.Context, id string) (bool, error) {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return false, fmt.Errorf("s.repo.ExistsByID -> %w", err)
	}

	return exists, nil
}
