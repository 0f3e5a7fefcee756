package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/lms/internal/db"
	"github.com/yigit/lms/internal/pkg/apperrors"
	"github.com/yigit/lms/internal/pkg/dberrors"
)

// ErrNotFound is the shared not-found category for repositories.
var ErrNotFound = apperrors.ErrResourceNotFound

// Repository implements the CRUD operations shared by every table. T must be a
// struct whose `db` tags match the table's columns exactly.
type Repository[T any] struct {
	db       db.DBTX
	sb       squirrel.StatementBuilderType
	table    string
	notFound error
}

// NewRepository creates a repository for table. notFound is returned by
// GetByID when the row is absent; nil falls back to ErrNotFound.
func NewRepository[T any](conn db.DBTX, table string, notFound error) *Repository[T] {
	if notFound == nil {
		notFound = ErrNotFound
	}
	return &Repository[T]{
		db:       conn,
		sb:       squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		table:    table,
		notFound: notFound,
	}
}

// WithTx returns a copy of the repository bound to tx.
func (r *Repository[T]) WithTx(tx pgx.Tx) *Repository[T] {
	clone := *r
	clone.db = tx
	return &clone
}

// GetByID returns the row with the given id.
func (r *Repository[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	return r.one(ctx, r.sb.Select("*").From(r.table).Where(squirrel.Eq{"id": id}).Limit(1))
}

// List returns rows ordered by id.
func (r *Repository[T]) List(ctx context.Context, offset, limit uint64) ([]*T, error) {
	query := r.sb.Select("*").From(r.table).OrderBy("id").Offset(offset)
	if limit > 0 {
		query = query.Limit(limit)
	}
	return r.many(ctx, query)
}

// Create inserts a row from a column/value map and returns it with generated
// and defaulted columns populated.
func (r *Repository[T]) Create(ctx context.Context, fields map[string]any) (*T, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("create %s: no fields: %w", r.table, apperrors.ErrValidationFailed)
	}
	return r.one(ctx, r.sb.Insert(r.table).SetMap(fields).Suffix("RETURNING *"))
}

// Delete removes the row with the given id and reports whether one existed.
func (r *Repository[T]) Delete(ctx context.Context, id int64) (bool, error) {
	return r.exec(ctx, r.sb.Delete(r.table).Where(squirrel.Eq{"id": id}))
}

// one runs a query expected to yield a single row.
func (r *Repository[T]) one(ctx context.Context, query squirrel.Sqlizer) (*T, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", r.table, err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, r.translate(err)
	}
	item, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.notFound
		}
		return nil, r.translate(err)
	}
	return item, nil
}

// many runs a query and collects every row.
func (r *Repository[T]) many(ctx context.Context, query squirrel.Sqlizer) ([]*T, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", r.table, err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, r.translate(err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[T])
	if err != nil {
		return nil, r.translate(err)
	}
	return items, nil
}

// exec runs a statement and reports whether it touched any row.
func (r *Repository[T]) exec(ctx context.Context, stmt squirrel.Sqlizer) (bool, error) {
	sql, args, err := stmt.ToSql()
	if err != nil {
		return false, fmt.Errorf("build %s statement: %w", r.table, err)
	}
	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return false, r.translate(err)
	}
	return tag.RowsAffected() > 0, nil
}

// translate maps constraint violations to application errors and wraps the rest.
func (r *Repository[T]) translate(err error) error {
	switch {
	case dberrors.IsUniqueViolation(err, "users_email_key"):
		return apperrors.ErrEmailAlreadyExists
	case dberrors.IsForeignKeyViolation(err):
		return fmt.Errorf("%s: %w", r.table, apperrors.ErrInvalidReference)
	case dberrors.IsUniqueViolation(err):
		return fmt.Errorf("%s: %w", r.table, apperrors.ErrConflict)
	case dberrors.IsCheckViolation(err):
		return fmt.Errorf("%s: %w", r.table, apperrors.ErrValidationFailed)
	}
	return fmt.Errorf("%s query failed: %w", r.table, err)
}
