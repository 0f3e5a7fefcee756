package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/lms/internal/app/models"
	"github.com/yigit/lms/internal/db"
	"github.com/yigit/lms/internal/pkg/apperrors"
)

// AssignmentRepository handles assignment rows
type AssignmentRepository struct {
	*Repository[models.Assignment]
}

// NewAssignmentRepository creates a new AssignmentRepository
func NewAssignmentRepository(conn db.DBTX) *AssignmentRepository {
	return &AssignmentRepository{NewRepository[models.Assignment](conn, "assignments", apperrors.ErrAssignmentNotFound)}
}

// WithTx returns a copy bound to tx.
func (r *AssignmentRepository) WithTx(tx pgx.Tx) *AssignmentRepository {
	return &AssignmentRepository{r.Repository.WithTx(tx)}
}

// ListByCourse returns a course's assignments.
func (r *AssignmentRepository) ListByCourse(ctx context.Context, courseID int64) ([]*models.Assignment, error) {
	return r.many(ctx, r.sb.Select("*").From(r.table).
		Where(squirrel.Eq{"course_id": courseID}).
		OrderBy("id"))
}
