package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/lms/internal/app/models"
	"github.com/yigit/lms/internal/db"
	"github.com/yigit/lms/internal/pkg/apperrors"
)

// UserRepository handles user database operations
type UserRepository struct {
	*Repository[models.User]
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(conn db.DBTX) *UserRepository {
	return &UserRepository{NewRepository[models.User](conn, "users", apperrors.ErrUserNotFound)}
}

// WithTx returns a copy bound to tx.
func (r *UserRepository) WithTx(tx pgx.Tx) *UserRepository {
	return &UserRepository{r.Repository.WithTx(tx)}
}

// GetByEmail retrieves a user by email, inactive users included.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.one(ctx, r.sb.Select("*").From(r.table).Where(squirrel.Eq{"email": email}).Limit(1))
}

// EmailExists checks if an email already exists
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	sql, args, err := r.sb.Select("1").Prefix("SELECT EXISTS (").
		From(r.table).Where(squirrel.Eq{"email": email}).Suffix(")").ToSql()
	if err != nil {
		return false, fmt.Errorf("build email exists query: %w", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, r.translate(err)
	}
	return exists, nil
}

// Deactivate marks the user inactive. It reports false when no such user exists.
func (r *UserRepository) Deactivate(ctx context.Context, id int64) (bool, error) {
	return r.exec(ctx, r.sb.Update(r.table).Set("is_active", false).Where(squirrel.Eq{"id": id}))
}
