package dto

import (
	"time"

	"github.com/yigit/lms/internal/app/models"
)

const timeLayout = time.RFC3339

// CreateCourseRequest is the body of POST /courses/
type CreateCourseRequest struct {
	Title        string   `json:"title" binding:"required,title,max=200" example:"Go for Backend Developers"`
	Price        int      `json:"price" binding:"min=0,max=2147483647" example:"1500"`
	Description  *string  `json:"description" example:"From zero to production services"`
	InstructorID *int64   `json:"instructor_id" example:"1"`
	ModuleTitles []string `json:"module_titles" binding:"omitempty,dive,required,title,max=150"`
}

// CourseResponse is the public course record
type CourseResponse struct {
	ID           int64   `json:"id" example:"1"`
	Title        string  `json:"title" example:"Go for Backend Developers"`
	Price        int     `json:"price" example:"1500"`
	Description  *string `json:"description"`
	InstructorID *int64  `json:"instructor_id"`
	CreatedAt    string  `json:"created_at" example:"2025-04-23T12:01:05Z"`
}

// NewCourseResponse maps a course model to its public record
func NewCourseResponse(c *models.Course) CourseResponse {
	return CourseResponse{
		ID:           c.ID,
		Title:        c.Title,
		Price:        c.Price,
		Description:  c.Description,
		InstructorID: c.InstructorID,
		CreatedAt:    c.CreatedAt.UTC().Format(timeLayout),
	}
}

// NewCourseResponses maps a slice of course models
func NewCourseResponses(courses []*models.Course) []CourseResponse {
	out := make([]CourseResponse, 0, len(courses))
	for _, c := range courses {
		out = append(out, NewCourseResponse(c))
	}
	return out
}

// ModuleResponse is a course module record
type ModuleResponse struct {
	ID         int64  `json:"id"`
	CourseID   int64  `json:"course_id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	OrderIndex int    `json:"order_index"`
}

// NewModuleResponses maps modules preserving their order
func NewModuleResponses(modules []*models.Module) []ModuleResponse {
	out := make([]ModuleResponse, 0, len(modules))
	for _, m := range modules {
		out = append(out, ModuleResponse{
			ID:         m.ID,
			CourseID:   m.CourseID,
			Title:      m.Title,
			Content:    m.Content,
			OrderIndex: m.OrderIndex,
		})
	}
	return out
}

// EnrollRequest is the body of POST /courses/:id/enrollments
type EnrollRequest struct {
	StudentID int64 `json:"student_id" binding:"required,gt=0" example:"2"`
}
