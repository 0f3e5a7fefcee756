package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/lms/internal/app/models"
	"github.com/yigit/lms/internal/db"
	"github.com/yigit/lms/internal/pkg/apperrors"
)

// ModuleRepository handles course module rows
type ModuleRepository struct {
	*Repository[models.Module]
}

// NewModuleRepository creates a new ModuleRepository
func NewModuleRepository(conn db.DBTX) *ModuleRepository {
	return &ModuleRepository{NewRepository[models.Module](conn, "modules", apperrors.ErrModuleNotFound)}
}

// WithTx returns a copy bound to tx.
func (r *ModuleRepository) WithTx(tx pgx.Tx) *ModuleRepository {
	return &ModuleRepository{r.Repository.WithTx(tx)}
}

// ListByCourse returns a course's modules in order_index order.
func (r *ModuleRepository) ListByCourse(ctx context.Context, courseID int64) ([]*models.Module, error) {
	return r.many(ctx, r.sb.Select("*").From(r.table).
		Where(squirrel.Eq{"course_id": courseID}).
		OrderBy("order_index", "id"))
}
