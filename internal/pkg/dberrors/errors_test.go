package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassification(t *testing.T) {
	dup := fmt.Errorf("insert user: %w", &pgconn.PgError{Code: UniqueViolation, ConstraintName: "users_email_key"})
	fk := &pgconn.PgError{Code: ForeignKeyViolation, ConstraintName: "enrollments_user_id_fkey"}
	check := &pgconn.PgError{Code: CheckViolation, ConstraintName: "check_score_positive"}

	assert.True(t, IsUniqueViolation(dup))
	assert.True(t, IsUniqueViolation(dup, "users_email_key"))
	assert.False(t, IsUniqueViolation(dup, "other_key"))
	assert.False(t, IsUniqueViolation(fk))

	assert.True(t, IsForeignKeyViolation(fk))
	assert.False(t, IsForeignKeyViolation(check))

	assert.True(t, IsCheckViolation(check, "check_score_positive"))
	assert.False(t, IsCheckViolation(errors.New("boom")))
	assert.False(t, IsCheckViolation(nil))
}
