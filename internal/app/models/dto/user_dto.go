package dto

import (
	"github.com/yigit/lms/internal/app/models"
)

// CreateUserRequest is the body of POST /users/
type CreateUserRequest struct {
	Email    string  `json:"email" binding:"required,email" example:"anna@lms.local"`
	FullName string  `json:"full_name" binding:"required,notblank,max=100" example:"Anna Smith"`
	Role     *string `json:"role" example:"student"` // defaults to student when absent
}

// UserResponse is the public user record
type UserResponse struct {
	ID       int64  `json:"id" example:"1"`
	Email    string `json:"email" example:"anna@lms.local"`
	FullName string `json:"full_name" example:"Anna Smith"`
	Role     string `json:"role" example:"student"`
	IsActive bool   `json:"is_active" example:"true"`
}

// NewUserResponse maps a user model to its public record
func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Email:    u.Email,
		FullName: u.FullName,
		Role:     string(u.Role),
		IsActive: u.IsActive,
	}
}

// EnrollmentResponse is a user's enrollment record
type EnrollmentResponse struct {
	ID         int64  `json:"id"`
	UserID     int64  `json:"user_id"`
	CourseID   int64  `json:"course_id"`
	Status     string `json:"status" example:"active"`
	EnrolledAt string `json:"enrolled_at" example:"2025-04-23T12:01:05Z"`
}

// NewEnrollmentResponse maps an enrollment model
func NewEnrollmentResponse(e *models.Enrollment) EnrollmentResponse {
	return EnrollmentResponse{
		ID:         e.ID,
		UserID:     e.UserID,
		CourseID:   e.CourseID,
		Status:     string(e.Status),
		EnrolledAt: e.EnrolledAt.UTC().Format(timeLayout),
	}
}
