package models

import "time"

// User defines the user model based on the 'users' table.
// Users are never removed; IsActive=false marks a soft-deleted account.
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	FullName  string    `json:"full_name" db:"full_name" example:"Ivan Petrov"`
	Email     string    `json:"email" db:"email" example:"ivan@lms.local"`
	Role      UserRole  `json:"role" db:"role" example:"instructor"`
	IsActive  bool      `json:"is_active" db:"is_active" example:"true"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
