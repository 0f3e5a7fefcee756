package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/lms/internal/app/models"
	"github.com/yigit/lms/internal/db"
)

// AnalyticsRepository runs the aggregate reports. Joins and aggregation are
// left to PostgreSQL.
type AnalyticsRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewAnalyticsRepository creates a new AnalyticsRepository
func NewAnalyticsRepository(conn db.DBTX) *AnalyticsRepository {
	return &AnalyticsRepository{
		db: conn,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// StudentAverageScores returns one row per student with at least one
// submission. Ungraded submissions count toward the total but not the average.
func (r *AnalyticsRepository) StudentAverageScores(ctx context.Context) ([]models.StudentScore, error) {
	query := r.sb.Select(
		"u.full_name",
		"AVG(s.score)::float8 AS average_score",
		"COUNT(s.id) AS submission_count",
	).
		From("users u").
		Join("submissions s ON s.student_id = u.id").
		GroupBy("u.id", "u.full_name").
		OrderBy("average_score DESC NULLS LAST", "u.id")

	return collect[models.StudentScore](ctx, r.db, query)
}

// InstructorRevenue returns one row per instructor with at least one
// enrollment: each enrollment counts as a sale at the course price.
func (r *AnalyticsRepository) InstructorRevenue(ctx context.Context) ([]models.InstructorRevenue, error) {
	query := r.sb.Select(
		"u.full_name",
		"COUNT(e.id) AS total_sales",
		"COALESCE(SUM(c.price), 0)::bigint AS total_revenue",
	).
		From("users u").
		Join("courses c ON c.instructor_id = u.id").
		Join("enrollments e ON e.course_id = c.id").
		GroupBy("u.id", "u.full_name").
		OrderBy("total_revenue DESC", "u.id")

	return collect[models.InstructorRevenue](ctx, r.db, query)
}

func collect[T any](ctx context.Context, conn db.DBTX, query squirrel.Sqlizer) ([]T, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build report query: %w", err)
	}
	rows, err := conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("report query failed: %w", err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, fmt.Errorf("scan report rows: %w", err)
	}
	return items, nil
}
