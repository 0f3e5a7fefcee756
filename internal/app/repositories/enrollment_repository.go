package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/lms/internal/app/models"
	"github.com/yigit/lms/internal/db"
)

// EnrollmentRepository handles enrollment rows
type EnrollmentRepository struct {
	*Repository[models.Enrollment]
}

// NewEnrollmentRepository creates a new EnrollmentRepository
func NewEnrollmentRepository(conn db.DBTX) *EnrollmentRepository {
	return &EnrollmentRepository{NewRepository[models.Enrollment](conn, "enrollments", nil)}
}

// WithTx returns a copy bound to tx.
func (r *EnrollmentRepository) WithTx(tx pgx.Tx) *EnrollmentRepository {
	return &EnrollmentRepository{r.Repository.WithTx(tx)}
}

// ListByUser returns a user's enrollments, oldest first.
func (r *EnrollmentRepository) ListByUser(ctx context.Context, userID int64) ([]*models.Enrollment, error) {
	return r.many(ctx, r.sb.Select("*").From(r.table).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("enrolled_at", "id"))
}
