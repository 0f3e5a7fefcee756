package models

import (
	"fmt"
	"strings"

	"github.com/yigit/lms/internal/pkg/apperrors"
)

// UserRole defines the user role type
type UserRole string

const (
	RoleStudent    UserRole = "student"
	RoleInstructor UserRole = "instructor"
	RoleAdmin      UserRole = "admin"
)

// ParseUserRole accepts only the exact lowercase role names.
func ParseUserRole(s string) (UserRole, error) {
	role := UserRole(s)
	if role.Valid() {
		return role, nil
	}
	return "", fmt.Errorf("%q: %w", s, apperrors.ErrInvalidRole)
}

// Valid reports whether r is one of the known roles.
func (r UserRole) Valid() bool {
	switch r {
	case RoleStudent, RoleInstructor, RoleAdmin:
		return true
	}
	return false
}

// EnrollmentStatus is the lifecycle state of an enrollment
type EnrollmentStatus string

const (
	EnrollmentActive    EnrollmentStatus = "active"
	EnrollmentCompleted EnrollmentStatus = "completed"
	EnrollmentDropped   EnrollmentStatus = "dropped"
)

// ParseEnrollmentStatus accepts a status name case-insensitively.
func ParseEnrollmentStatus(s string) (EnrollmentStatus, error) {
	status := EnrollmentStatus(strings.ToLower(strings.TrimSpace(s)))
	switch status {
	case EnrollmentActive, EnrollmentCompleted, EnrollmentDropped:
		return status, nil
	}
	return "", fmt.Errorf("%q: %w", s, apperrors.ErrInvalidStatus)
}
