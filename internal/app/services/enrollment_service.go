package services

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/yigit/lms/internal/app/models"
	"github.com/yigit/lms/internal/app/repositories"
	"github.com/yigit/lms/internal/db"
)

// EnrollmentService defines the interface for enrollment operations
type EnrollmentService interface {
	// EnrollStudent creates an active enrollment. Unknown user or course ids
	// are rejected by the store with apperrors.ErrInvalidReference.
	EnrollStudent(ctx context.Context, studentID, courseID int64) (*models.Enrollment, error)
	ListEnrollments(ctx context.Context, userID int64) ([]*models.Enrollment, error)
}

type enrollmentServiceImpl struct {
	repos *repositories.Repositories
	tx    db.Transactor
	log   zerolog.Logger
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService(repos *repositories.Repositories, tx db.Transactor, log zerolog.Logger) EnrollmentService {
	return &enrollmentServiceImpl{
		repos: repos,
		tx:    tx,
		log:   log.With().Str("service", "enrollment").Logger(),
	}
}

func (s *enrollmentServiceImpl) EnrollStudent(ctx context.Context, studentID, courseID int64) (*models.Enrollment, error) {
	log := s.log.With().Int64("studentID", studentID).Int64("courseID", courseID).Logger()

	var enrollment *models.Enrollment
	err := s.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		created, err := s.repos.Enrollments.WithTx(tx).Create(ctx, map[string]any{
			"user_id":   studentID,
			"course_id": courseID,
			"status":    string(models.EnrollmentActive),
		})
		if err != nil {
			return fmt.Errorf("insert enrollment: %w", err)
		}
		enrollment = created
		return nil
	})
	if err != nil {
		return nil, report(log, err, "Enrollment rolled back")
	}

	log.Info().Int64("enrollmentID", enrollment.ID).Msg("Student enrolled")
	return enrollment, nil
}

func (s *enrollmentServiceImpl) ListEnrollments(ctx context.Context, userID int64) ([]*models.Enrollment, error) {
	log := s.log.With().Int64("userID", userID).Logger()

	if _, err := s.repos.Users.GetByID(ctx, userID); err != nil {
		return nil, report(log, err, "Failed to get user")
	}
	enrollments, err := s.repos.Enrollments.ListByUser(ctx, userID)
	if err != nil {
		return nil, report(log, err, "Failed to list enrollments")
	}
	return enrollments, nil
}
