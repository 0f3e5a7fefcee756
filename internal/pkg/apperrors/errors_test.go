package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainErrorsMatchTheirCategory(t *testing.T) {
	wrapped := fmt.Errorf("grade submission 4: %w", ErrSubmissionNotFound)

	assert.True(t, errors.Is(wrapped, ErrSubmissionNotFound))
	assert.True(t, errors.Is(wrapped, ErrResourceNotFound))
	assert.False(t, errors.Is(wrapped, ErrValidationFailed))

	assert.True(t, errors.Is(ErrScoreOutOfRange, ErrValidationFailed))
	assert.False(t, errors.Is(ErrScoreOutOfRange, ErrSubmissionNotFound))
}

func TestCustomErrorMessage(t *testing.T) {
	err := NewCustomError(ErrBadRequest, "")
	assert.Equal(t, "bad request", err.Error())
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Equal(t, "user not found", ErrUserNotFound.Error())
}
