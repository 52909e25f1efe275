package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/training-calendar-api/internal/domain"
	"github.com/vietanh2810/training-calendar-api/internal/repository/dao"
)

var (
	ErrCategoryNotFound = dao.ErrCategoryNotFound
	ErrCategoryExists   = dao.ErrCategoryExists
)

type CategoryDAO interface {
	Insert(ctx context.Context, category dao.Category) (dao.Category, error)
	FindByID(ctx context.Context, id string) (dao.Category, error)
	FindAll(ctx context.Context) ([]dao.Category, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
}

type CategoryRepository struct {
	dao CategoryDAO
}

func NewCategoryRepository(dao CategoryDAO) *CategoryRepository {
	return &CategoryRepository{
		dao: dao,
	}
}

func (r *CategoryRepository) Create(ctx context.Context, c domain.Category) (domain.Category, error) {
	created, err := r.dao.Insert(ctx, dao.Category{
		ID:        c.ID,
		Name:      c.Name,
		Color:     c.Color,
		BackColor: c.BackColor,
	})
	if err != nil {
		return domain.Category{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return categoryDAOToDomain(created), nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id string) (domain.Category, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Category{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return categoryDAOToDomain(found), nil
}

func (r *CategoryRepository) FindAll(ctx context.Context) ([]domain.Category, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	out := make([]domain.Category, 0, len(found))
	for _, c := range found {
		out = append(out, categoryDAOToDomain(c))
	}

	return out, nil
}

func (r *CategoryRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	exists, err := r.dao.ExistsByID(ctx, id)
	if err != nil {
		return false, fmt.Errorf("r.dao.ExistsByID -> %w", err)
	}

	return exists, nil
}

func categoryDAOToDomain(c dao.Category) domain.Category {
	return domain.Category{
		ID:        c.ID,
		Name:      c.Name,
		Color:     c.Color,
		BackColor: c.BackColor,
	}
}
