package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes the application reacts to.
const (
	UniqueViolation     = "23505"
	ForeignKeyViolation = "23503"
	CheckViolation      = "23514"
)

func pgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// IsUniqueViolation reports a unique violation, optionally restricted to one constraint.
func IsUniqueViolation(err error, constraint ...string) bool {
	pgErr, ok := pgError(err)
	if !ok || pgErr.Code != UniqueViolation {
		return false
	}
	return len(constraint) == 0 || pgErr.ConstraintName == constraint[0]
}

// IsForeignKeyViolation reports that a referenced parent row does not exist.
func IsForeignKeyViolation(err error) bool {
	pgErr, ok := pgError(err)
	return ok && pgErr.Code == ForeignKeyViolation
}

// IsCheckViolation reports a CHECK constraint failure, optionally restricted to one constraint.
func IsCheckViolation(err error, constraint ...string) bool {
	pgErr, ok := pgError(err)
	if !ok || pgErr.Code != CheckViolation {
		return false
	}
	return len(constraint) == 0 || pgErr.ConstraintName == constraint[0]
}
