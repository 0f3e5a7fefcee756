package services

import (
	"errors"

	"github.com/rs/zerolog"
	"github.com/yigit/lms/internal/app/repositories"
	"github.com/yigit/lms/internal/db"
	"github.com/yigit/lms/internal/pkg/apperrors"
)

// Services bundles every business service behind its interface.
type Services struct {
	Users       UserService
	Courses     CourseService
	Enrollments EnrollmentService
	Assignments AssignmentService
	Analytics   AnalyticsService
}

// NewServices wires the services over one repository set and transactor.
func NewServices(repos *repositories.Repositories, tx db.Transactor, log zerolog.Logger) *Services {
	return &Services{
		Users:       NewUserService(repos, tx, log),
		Courses:     NewCourseService(repos, tx, log),
		Enrollments: NewEnrollmentService(repos, tx, log),
		Assignments: NewAssignmentService(repos, tx, log),
		Analytics:   NewAnalyticsService(repos, log),
	}
}

// isExpected reports errors that describe a caller mistake rather than a
// storage failure. They are logged at warn level and returned unchanged.
func isExpected(err error) bool {
	return errors.Is(err, apperrors.ErrResourceNotFound) ||
		errors.Is(err, apperrors.ErrValidationFailed) ||
		errors.Is(err, apperrors.ErrConflict)
}

// report logs err at the level its category deserves and returns it.
func report(log zerolog.Logger, err error, msg string) error {
	if isExpected(err) {
		log.Warn().Err(err).Msg(msg)
	} else {
		log.Error().Err(err).Msg(msg)
	}
	return err
}
