package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/training-calendar-api/internal/domain"
	"github.com/vietanh2810/training-calendar-api/internal/repository/dao"
)

var (
	ErrUserEmailExists = dao.ErrUserEmailExists
	ErrUserNotFound    = dao.ErrUserNotFound
)

type UserDAO interface {
	InsertWithRole(ctx context.Context, user dao.User, roleName string) (dao.User, error)
	FindByID(ctx context.Context, id string) (dao.User, error)
	FindByEmail(ctx context.Context, email string) (dao.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindRoleNames(ctx context.Context, userID string) ([]string, error)
}

type UserRepository struct {
	dao UserDAO
}

func NewUserRepository(dao UserDAO) *UserRepository {
	return &UserRepository{
		dao: dao,
	}
}

// CreateWithRole stores the user and links it to roleName, creating the role on first use.
func (r *UserRepository) CreateWithRole(ctx context.Context, user domain.User, roleName string) (domain.User, error) {
	created, err := r.dao.InsertWithRole(ctx, dao.User{
		Email:    user.Email,
		Password: user.Password,
	}, roleName)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.InsertWithRole -> %w", err)
	}

	return userDAOToDomain(created), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (domain.User, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return userDAOToDomain(found), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	found, err := r.dao.FindByEmail(ctx, email)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByEmail -> %w", err)
	}

	return userDAOToDomain(found), nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	exists, err := r.dao.ExistsByEmail(ctx, email)
	if err != nil {
		return false, fmt.Errorf("r.dao.ExistsByEmail -> %w", err)
	}

	return exists, nil
}

func (r *UserRepository) FindRoleNames(ctx context.Context, userID string) ([]string, error) {
	names, err := r.dao.FindRoleNames(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindRoleNames -> %w", err)
	}

	return names, nil
}

func userDAOToDomain(u dao.User) domain.User {
	var roles []domain.UserRoleKey
	for _, link := range u.Roles {
		roles = append(roles, domain.UserRoleKey{UserID: link.UserID, RoleID: link.RoleID})
	}

	return domain.User{
		ID:        u.ID,
		Email:     u.Email,
		Password:  u.Password,
		Roles:     roles,
		CreatedAt: u.CreatedAt,
	}
}
