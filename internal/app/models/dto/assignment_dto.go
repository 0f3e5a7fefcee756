package dto

import (
	"time"

	"github.com/yigit/lms/internal/app/models"
)

// CreateAssignmentRequest is the body of POST /courses/:id/assignments
type CreateAssignmentRequest struct {
	Title    string     `json:"title" binding:"required,title,max=150" example:"Final Project"`
	MaxScore int        `json:"max_score" binding:"min=0" example:"100"` // 0 means the default of 100
	DueDate  *time.Time `json:"due_date" example:"2025-06-01T00:00:00Z"`
}

// SubmitRequest is the body of POST /assignments/:id/submissions
type SubmitRequest struct {
	StudentID int64  `json:"student_id" binding:"required,gt=0" example:"2"`
	Content   string `json:"content" binding:"required" example:"https://github.com/anna/final"`
}

// GradeRequest is the body of PUT /submissions/:id/grade
type GradeRequest struct {
	Score *int `json:"score" binding:"required" example:"95"`
}

// AssignmentResponse is an assignment record
type AssignmentResponse struct {
	ID       int64   `json:"id"`
	CourseID int64   `json:"course_id"`
	Title    string  `json:"title"`
	MaxScore int     `json:"max_score"`
	DueDate  *string `json:"due_date"`
}

// NewAssignmentResponse maps an assignment model
func NewAssignmentResponse(a *models.Assignment) AssignmentResponse {
	resp := AssignmentResponse{ID: a.ID, CourseID: a.CourseID, Title: a.Title, MaxScore: a.MaxScore}
	if a.DueDate != nil {
		due := a.DueDate.UTC().Format(timeLayout)
		resp.DueDate = &due
	}
	return resp
}

// SubmissionResponse is a submission record; score is null until graded
type SubmissionResponse struct {
	ID           int64  `json:"id"`
	AssignmentID int64  `json:"assignment_id"`
	StudentID    int64  `json:"student_id"`
	Content      string `json:"content"`
	Score        *int   `json:"score"`
	SubmittedAt  string `json:"submitted_at"`
}

// NewSubmissionResponse maps a submission model
func NewSubmissionResponse(s *models.Submission) SubmissionResponse {
	return SubmissionResponse{
		ID:           s.ID,
		AssignmentID: s.AssignmentID,
		StudentID:    s.StudentID,
		Content:      s.Content,
		Score:        s.Score,
		SubmittedAt:  s.SubmittedAt.UTC().Format(timeLayout),
	}
}
