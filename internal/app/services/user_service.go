package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/yigit/lms/internal/app/models"
	"github.com/yigit/lms/internal/app/repositories"
	"github.com/yigit/lms/internal/db"
	"github.com/yigit/lms/internal/pkg/apperrors"
)

// UserService defines the interface for user-related operations
type UserService interface {
	// CreateUser inserts a user. It performs no duplicate check of its own;
	// a duplicate email fails on the store and yields apperrors.ErrEmailAlreadyExists.
	CreateUser(ctx context.Context, fullName, email string, role models.UserRole) (*models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	ListUsers(ctx context.Context, offset, limit uint64) ([]*models.User, error)
	// SoftDeleteUser marks the user inactive; the row stays queryable.
	SoftDeleteUser(ctx context.Context, id int64) (bool, error)
}

type userServiceImpl struct {
	repos *repositories.Repositories
	tx    db.Transactor
	log   zerolog.Logger
}

// NewUserService creates a new user service instance
func NewUserService(repos *repositories.Repositories, tx db.Transactor, log zerolog.Logger) UserService {
	return &userServiceImpl{
		repos: repos,
		tx:    tx,
		log:   log.With().Str("service", "user").Logger(),
	}
}

func (s *userServiceImpl) CreateUser(ctx context.Context, fullName, email string, role models.UserRole) (*models.User, error) {
	fullName = strings.TrimSpace(fullName)
	email = strings.TrimSpace(email)
	if fullName == "" || email == "" {
		return nil, fmt.Errorf("%w: full name and email are required", apperrors.ErrValidationFailed)
	}
	if role == "" {
		role = models.RoleStudent
	}
	if !role.Valid() {
		return nil, apperrors.ErrInvalidRole
	}

	user, err := s.repos.Users.Create(ctx, map[string]any{
		"full_name": fullName,
		"email":     email,
		"role":      string(role),
	})
	if err != nil {
		return nil, report(s.log.With().Str("email", email).Logger(), err, "Failed to create user")
	}

	s.log.Info().Int64("userID", user.ID).Str("role", string(user.Role)).Msg("User created")
	return user, nil
}

func (s *userServiceImpl) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.repos.Users.GetByID(ctx, id)
	if err != nil {
		return nil, report(s.log.With().Int64("userID", id).Logger(), err, "Failed to get user")
	}
	return user, nil
}

func (s *userServiceImpl) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.repos.Users.GetByEmail(ctx, email)
	if err != nil {
		return nil, report(s.log, err, "Failed to get user by email")
	}
	return user, nil
}

func (s *userServiceImpl) EmailExists(ctx context.Context, email string) (bool, error) {
	exists, err := s.repos.Users.EmailExists(ctx, strings.TrimSpace(email))
	if err != nil {
		return false, report(s.log, err, "Failed to check email")
	}
	return exists, nil
}

func (s *userServiceImpl) ListUsers(ctx context.Context, offset, limit uint64) ([]*models.User, error) {
	users, err := s.repos.Users.List(ctx, offset, limit)
	if err != nil {
		return nil, report(s.log, err, "Failed to list users")
	}
	return users, nil
}

func (s *userServiceImpl) SoftDeleteUser(ctx context.Context, id int64) (bool, error) {
	log := s.log.With().Int64("userID", id).Logger()

	err := s.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		found, err := s.repos.Users.WithTx(tx).Deactivate(ctx, id)
		if err != nil {
			return fmt.Errorf("deactivate user: %w", err)
		}
		if !found {
			return apperrors.ErrUserNotFound
		}
		return nil
	})
	if err != nil {
		return false, report(log, err, "Soft delete failed")
	}

	log.Info().Msg("User deactivated")
	return true, nil
}
