package models

import "time"

// DefaultMaxScore is applied when an assignment is created without a max score.
const DefaultMaxScore = 100

// Assignment is a gradable task attached to a course.
type Assignment struct {
	ID       int64      `json:"id" db:"id"`
	CourseID int64      `json:"course_id" db:"course_id"`
	Title    string     `json:"title" db:"title"`
	MaxScore int        `json:"max_score" db:"max_score"`
	DueDate  *time.Time `json:"due_date,omitempty" db:"due_date"`
}

// Submission is a student's answer to an assignment. Score stays nil until graded.
type Submission struct {
	ID           int64     `json:"id" db:"id"`
	AssignmentID int64     `json:"assignment_id" db:"assignment_id"`
	StudentID    int64     `json:"student_id" db:"student_id"`
	Content      string    `json:"content" db:"content"`
	Score        *int      `json:"score" db:"score"`
	SubmittedAt  time.Time `json:"submitted_at" db:"submitted_at"`
}

// Graded reports whether a score has been set.
func (s *Submission) Graded() bool {
	return s.Score != nil
}

// ScoreInRange reports whether score is acceptable for an assignment with the given maximum.
func ScoreInRange(score, maxScore int) bool {
	return score >= 0 && score <= maxScore
}
