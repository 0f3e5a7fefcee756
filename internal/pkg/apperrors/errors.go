package apperrors

import "errors"

// Generic categories. HTTP status mapping is keyed on these.
var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
	ErrPermissionDenied = errors.New("permission denied")

	ErrTokenInvalid    = errors.New("invalid token")
	ErrTokenExpired    = errors.New("token expired")
	ErrAccountDisabled = errors.New("account is disabled")
)

// Domain errors. Each one wraps a category so callers may match either.
var (
	ErrUserNotFound       = NewResourceNotFoundError("user not found")
	ErrCourseNotFound     = NewResourceNotFoundError("course not found")
	ErrModuleNotFound     = NewResourceNotFoundError("module not found")
	ErrAssignmentNotFound = NewResourceNotFoundError("assignment not found")
	ErrSubmissionNotFound = NewResourceNotFoundError("submission not found")

	ErrEmailAlreadyExists = NewValidationError("email already registered")
	ErrInvalidRole        = NewValidationError("invalid role. Use: student, instructor, admin")
	ErrInvalidStatus      = NewValidationError("invalid enrollment status")
	ErrScoreOutOfRange    = NewValidationError("score is outside the allowed range")
	ErrInvalidMaxScore    = NewValidationError("max score must not be negative")
	ErrInvalidPrice       = NewValidationError("price must be between 0 and 2147483647")
	ErrInvalidReference   = NewValidationError("referenced record does not exist")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{Err: ErrResourceNotFound, Message: message}
}

// NewValidationError creates a custom error in the validation category.
func NewValidationError(message string) error {
	return &CustomError{Err: ErrValidationFailed, Message: message}
}

// NewForbiddenError creates a new custom error for permission denied with a message
func NewForbiddenError(message string) error {
	return &CustomError{Err: ErrPermissionDenied, Message: message}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{Err: err, Message: message}
}
