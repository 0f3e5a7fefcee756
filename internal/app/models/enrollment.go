package models

import "time"

// Enrollment links a user to a course.
type Enrollment struct {
	ID         int64            `json:"id" db:"id"`
	UserID     int64            `json:"user_id" db:"user_id"`
	CourseID   int64            `json:"course_id" db:"course_id"`
	Status     EnrollmentStatus `json:"status" db:"status"`
	EnrolledAt time.Time        `json:"enrolled_at" db:"enrolled_at"`
}
