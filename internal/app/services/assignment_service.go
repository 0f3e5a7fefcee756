package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/yigit/lms/internal/app/models"
	"github.com/yigit/lms/internal/app/repositories"
	"github.com/yigit/lms/internal/db"
	"github.com/yigit/lms/internal/pkg/apperrors"
)

// AssignmentService defines the interface for assignments, submissions and grading
type AssignmentService interface {
	// CreateAssignment inserts an assignment. A maxScore of 0 means models.DefaultMaxScore.
	CreateAssignment(ctx context.Context, courseID int64, title string, maxScore int, dueDate *time.Time) (*models.Assignment, error)
	// SubmitHomework stores an ungraded submission.
	SubmitHomework(ctx context.Context, assignmentID, studentID int64, content string) (*models.Submission, error)
	// GradeSubmission sets the score after checking 0 <= score <= max_score.
	// It returns apperrors.ErrSubmissionNotFound or apperrors.ErrScoreOutOfRange
	// without touching the row.
	GradeSubmission(ctx context.Context, submissionID int64, score int) (*models.Submission, error)
	// SubmissionCourseID returns the course a submission belongs to.
	SubmissionCourseID(ctx context.Context, submissionID int64) (int64, error)
}

type assignmentServiceImpl struct {
	repos *repositories.Repositories
	tx    db.Transactor
	log   zerolog.Logger
}

// NewAssignmentService creates a new assignment service instance
func NewAssignmentService(repos *repositories.Repositories, tx db.Transactor, log zerolog.Logger) AssignmentService {
	return &assignmentServiceImpl{
		repos: repos,
		tx:    tx,
		log:   log.With().Str("service", "assignment").Logger(),
	}
}

func (s *assignmentServiceImpl) CreateAssignment(ctx context.Context, courseID int64, title string, maxScore int, dueDate *time.Time) (*models.Assignment, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: assignment title is required", apperrors.ErrValidationFailed)
	}
	if maxScore < 0 {
		return nil, apperrors.ErrInvalidMaxScore
	}
	if maxScore == 0 {
		maxScore = models.DefaultMaxScore
	}

	fields := map[string]any{
		"course_id": courseID,
		"title":     title,
		"max_score": maxScore,
	}
	if dueDate != nil {
		fields["due_date"] = *dueDate
	}

	log := s.log.With().Int64("courseID", courseID).Logger()
	assignment, err := s.repos.Assignments.Create(ctx, fields)
	if err != nil {
		return nil, report(log, err, "Failed to create assignment")
	}

	log.Info().Int64("assignmentID", assignment.ID).Msg("Assignment created")
	return assignment, nil
}

func (s *assignmentServiceImpl) SubmitHomework(ctx context.Context, assignmentID, studentID int64, content string) (*models.Submission, error) {
	log := s.log.With().Int64("assignmentID", assignmentID).Int64("studentID", studentID).Logger()

	submission, err := s.repos.Submissions.Create(ctx, map[string]any{
		"assignment_id": assignmentID,
		"student_id":    studentID,
		"content":       content,
	})
	if err != nil {
		return nil, report(log, err, "Failed to store submission")
	}

	log.Info().Int64("submissionID", submission.ID).Msg("Homework submitted")
	return submission, nil
}

func (s *assignmentServiceImpl) GradeSubmission(ctx context.Context, submissionID int64, score int) (*models.Submission, error) {
	log := s.log.With().Int64("submissionID", submissionID).Int("score", score).Logger()

	var graded *models.Submission
	err := s.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		submissions := s.repos.Submissions.WithTx(tx)

		target, err := submissions.GetForGrading(ctx, submissionID)
		if err != nil {
			return err
		}
		if !models.ScoreInRange(score, target.MaxScore) {
			return fmt.Errorf("%w: %d not in [0, %d]", apperrors.ErrScoreOutOfRange, score, target.MaxScore)
		}

		graded, err = submissions.SetScore(ctx, submissionID, score)
		if err != nil {
			return fmt.Errorf("update score: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, report(log, err, "Grading not applied")
	}

	log.Info().Msg("Submission graded")
	return graded, nil
}

func (s *assignmentServiceImpl) SubmissionCourseID(ctx context.Context, submissionID int64) (int64, error) {
	target, err := s.repos.Submissions.GetForGrading(ctx, submissionID)
	if err != nil {
		return 0, report(s.log.With().Int64("submissionID", submissionID).Logger(), err, "Failed to resolve submission course")
	}
	return target.CourseID, nil
}
