package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/lms/internal/app/models"
	"github.com/yigit/lms/internal/db"
	"github.com/yigit/lms/internal/pkg/apperrors"
)

// GradingTarget is a submission together with the assignment fields grading needs.
type GradingTarget struct {
	models.Submission
	MaxScore int   `db:"max_score"`
	CourseID int64 `db:"course_id"`
}

// SubmissionRepository handles submission rows
type SubmissionRepository struct {
	*Repository[models.Submission]
}

// NewSubmissionRepository creates a new SubmissionRepository
func NewSubmissionRepository(conn db.DBTX) *SubmissionRepository {
	return &SubmissionRepository{NewRepository[models.Submission](conn, "submissions", apperrors.ErrSubmissionNotFound)}
}

// WithTx returns a copy bound to tx.
func (r *SubmissionRepository) WithTx(tx pgx.Tx) *SubmissionRepository {
	return &SubmissionRepository{r.Repository.WithTx(tx)}
}

// GetForGrading loads a submission joined with its assignment. Inside a
// transaction the submission row stays locked until commit or rollback.
func (r *SubmissionRepository) GetForGrading(ctx context.Context, id int64) (*GradingTarget, error) {
	sql, args, err := r.sb.Select("s.*", "a.max_score", "a.course_id").
		From("submissions s").
		Join("assignments a ON a.id = s.assignment_id").
		Where(squirrel.Eq{"s.id": id}).
		Suffix("FOR UPDATE OF s").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build grading query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, r.translate(err)
	}
	target, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[GradingTarget])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSubmissionNotFound
		}
		return nil, r.translate(err)
	}
	return target, nil
}

// SetScore stores a score and returns the updated submission.
func (r *SubmissionRepository) SetScore(ctx context.Context, id int64, score int) (*models.Submission, error) {
	return r.one(ctx, r.sb.Update(r.table).
		Set("score", score).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING *"))
}

// ListByAssignment returns an assignment's submissions, oldest first.
func (r *SubmissionRepository) ListByAssignment(ctx context.Context, assignmentID int64) ([]*models.Submission, error) {
	return r.many(ctx, r.sb.Select("*").From(r.table).
		Where(squirrel.Eq{"assignment_id": assignmentID}).
		OrderBy("submitted_at", "id"))
}
