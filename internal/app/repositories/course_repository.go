package repositories

import (
	"context"
	"math"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/lms/internal/app/models"
	"github.com/yigit/lms/internal/db"
	"github.com/yigit/lms/internal/pkg/apperrors"
)

// CourseRepository handles course database operations
type CourseRepository struct {
	*Repository[models.Course]
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(conn db.DBTX) *CourseRepository {
	return &CourseRepository{NewRepository[models.Course](conn, "courses", apperrors.ErrCourseNotFound)}
}

// WithTx returns a copy bound to tx.
func (r *CourseRepository) WithTx(tx pgx.Tx) *CourseRepository {
	return &CourseRepository{r.Repository.WithTx(tx)}
}

// ListByMinPrice returns courses priced at least minPrice, most expensive first.
func (r *CourseRepository) ListByMinPrice(ctx context.Context, minPrice int) ([]*models.Course, error) {
	return r.many(ctx, r.sb.Select("*").From(r.table).
		Where(squirrel.GtOrEq{"price": clampPrice(minPrice)}).
		OrderBy("price DESC", "id"))
}

// ListByPriceRange returns courses with minPrice <= price <= maxPrice, most expensive first.
func (r *CourseRepository) ListByPriceRange(ctx context.Context, minPrice, maxPrice int) ([]*models.Course, error) {
	return r.many(ctx, r.sb.Select("*").From(r.table).
		Where(squirrel.And{
			squirrel.GtOrEq{"price": clampPrice(minPrice)},
			squirrel.LtOrEq{"price": clampPrice(maxPrice)},
		}).
		OrderBy("price DESC", "id"))
}

// ListByInstructor returns the courses owned by an instructor.
func (r *CourseRepository) ListByInstructor(ctx context.Context, instructorID int64) ([]*models.Course, error) {
	return r.many(ctx, r.sb.Select("*").From(r.table).
		Where(squirrel.Eq{"instructor_id": instructorID}).
		OrderBy("id"))
}

// clampPrice keeps a bound inside the int4 range pgx can encode for the price column.
func clampPrice(p int) int {
	return max(min(p, models.MaxPrice), math.MinInt32)
}
