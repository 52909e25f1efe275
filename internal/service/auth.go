package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/vietanh2810/training-calendar-api/internal/domain"
	"github.com/vietanh2810/training-calendar-api/internal/pkg/jwthelper"
	"github.com/vietanh2810/training-calendar-api/internal/repository"
)

var (
	ErrUserEmailExists = repository.ErrUserEmailExists
	ErrWrongPassword   = errors.New("wrong password")
)

type AuthUserRepository interface {
	CreateWithRole(ctx context.Context, user domain.User, roleName string) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindRoleNames(ctx context.Context, userID string) ([]string, error)
}

type TokenRevoker interface {
	Add(token string, expiresAt time.Time)
}

type AuthService struct {
	repo       AuthUserRepository
	revoker    TokenRevoker
	signingKey []byte
}

func NewAuthService(repo AuthUserRepository, revoker TokenRevoker, signingKey string) *AuthService {
	return &AuthService{
		repo:       repo,
		revoker:    revoker,
		signingKey: []byte(signingKey),
	}
}

// Register stores a new account with the default role and returns its identity.
func (s *AuthService) Register(ctx context.Context, email, password string) (domain.Identity, error) {
	email = normalizeEmail(email)

	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("s.repo.ExistsByEmail -> %w", err)
	}
	if exists {
		return domain.Identity{}, ErrUserEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("bcrypt.GenerateFromPassword -> %w", err)
	}

	created, err := s.repo.CreateWithRole(ctx, domain.User{
		Email:    email,
		Password: string(hash),
	}, domain.DefaultRole)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("s.repo.CreateWithRole -> %w", err)
	}

	return domain.Identity{
		AccountID:      created.ID,
		Email:          created.Email,
		CredentialHash: created.Password,
		RoleNames:      []string{domain.DefaultRole},
	}, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (domain.Identity, error) {
	user, err := s.repo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domain.Identity{}, ErrUserNotFound
		}

		return domain.Identity{}, fmt.Errorf("s.repo.FindByEmail -> %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return domain.Identity{}, ErrWrongPassword
	}

	return resolveIdentity(ctx, s.repo, user), nil
}

// Logout revokes token until its own expiry. Tokens that fail verification
// are not stored; they are already rejected by the authenticator.
func (s *AuthService) Logout(token string) {
	claims, err := jwthelper.ParseToken(s.signingKey, token)
	if err != nil {
		zap.L().Warn("logout with invalid token, not revoked", zap.Error(err))
		return
	}
	if claims.ExpiresAt == nil {
		zap.L().Warn("logout with token without exp, not revoked")
		return
	}

	s.revoker.Add(token, claims.ExpiresAt.Time)
}

type roleLoader interface {
	FindRoleNames(ctx context.Context, userID string) ([]string, error)
}

// resolveIdentity loads the role names of user. A load failure or an empty
// role set falls back to the default role.
func resolveIdentity(ctx context.Context, roles roleLoader, user domain.User) domain.Identity {
	names, err := roles.FindRoleNames(ctx, user.ID)
	if err != nil {
		zap.L().Warn("failed to load roles, using default role",
			zap.String("user_id", user.ID), zap.Error(err))
		names = nil
	}
	if len(names) == 0 {
		if err == nil {
			zap.L().Warn("user has no roles, using default role", zap.String("user_id", user.ID))
		}
		names = []string{domain.DefaultRole}
	}

	return domain.Identity{
		AccountID:      user.ID,
		Email:          user.Email,
		CredentialHash: user.Password,
		RoleNames:      names,
	}
}
