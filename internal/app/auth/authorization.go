package auth

import (
	"context"

	"github.com/yigit/lms/internal/app/models"
	"github.com/yigit/lms/internal/pkg/apperrors"
)

// ErrNotCourseOwner is returned when an instructor acts on another instructor's course.
var ErrNotCourseOwner = apperrors.NewForbiddenError("only the course instructor or an admin can perform this action")

// CourseLookup resolves a course by id.
type CourseLookup interface {
	GetCourseByID(ctx context.Context, id int64) (*models.Course, error)
}

// SubmissionLookup resolves the course a submission belongs to.
type SubmissionLookup interface {
	SubmissionCourseID(ctx context.Context, submissionID int64) (int64, error)
}

// AuthorizationService answers ownership questions for course staff.
type AuthorizationService struct {
	courses     CourseLookup
	submissions SubmissionLookup
}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService(courses CourseLookup, submissions SubmissionLookup) *AuthorizationService {
	return &AuthorizationService{courses: courses, submissions: submissions}
}

// CanManageCourse reports whether the caller may add assignments to the
// course. Admins always may; instructors only for courses they teach.
func (s *AuthorizationService) CanManageCourse(ctx context.Context, userID int64, role models.UserRole, courseID int64) (bool, error) {
	course, err := s.courses.GetCourseByID(ctx, courseID)
	if err != nil {
		return false, err
	}
	switch role {
	case models.RoleAdmin:
		return true, nil
	case models.RoleInstructor:
		return course.InstructorID != nil && *course.InstructorID == userID, nil
	default:
		return false, nil
	}
}

// CanGradeSubmission reports whether the caller may grade the submission.
func (s *AuthorizationService) CanGradeSubmission(ctx context.Context, userID int64, role models.UserRole, submissionID int64) (bool, error) {
	courseID, err := s.submissions.SubmissionCourseID(ctx, submissionID)
	if err != nil {
		return false, err
	}
	return s.CanManageCourse(ctx, userID, role, courseID)
}

// RequireCourseManager is CanManageCourse returning ErrNotCourseOwner on refusal.
func (s *AuthorizationService) RequireCourseManager(ctx context.Context, userID int64, role models.UserRole, courseID int64) error {
	ok, err := s.CanManageCourse(ctx, userID, role, courseID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotCourseOwner
	}
	return nil
}

// RequireGrader is CanGradeSubmission returning ErrNotCourseOwner on refusal.
func (s *AuthorizationService) RequireGrader(ctx context.Context, userID int64, role models.UserRole, submissionID int64) error {
	ok, err := s.CanGradeSubmission(ctx, userID, role, submissionID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotCourseOwner
	}
	return nil
}
