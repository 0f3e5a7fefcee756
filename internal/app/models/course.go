package models

import (
	"math"
	"time"
)

// MaxPrice is the largest price the courses.price INTEGER column holds.
const MaxPrice = math.MaxInt32

// Course represents a priced course, optionally owned by an instructor.
type Course struct {
	ID           int64     `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	Description  *string   `json:"description" db:"description"` // Nullable
	Price        int       `json:"price" db:"price"`
	InstructorID *int64    `json:"instructor_id" db:"instructor_id"` // Nullable
	CreatedAt    time.Time `json:"created_at" db:"created_at"`

	// Relations (populated when needed)
	Modules []*Module `json:"modules,omitempty" db:"-"`
}

// Module is an ordered unit of course content. Modules are removed with their course.
type Module struct {
	ID         int64  `json:"id" db:"id"`
	CourseID   int64  `json:"course_id" db:"course_id"`
	Title      string `json:"title" db:"title"`
	Content    string `json:"content" db:"content"`
	OrderIndex int    `json:"order_index" db:"order_index"`
}
