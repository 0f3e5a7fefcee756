package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/lms/internal/app/models"
	"github.com/yigit/lms/internal/pkg/apperrors"
)

type fakeCourses map[int64]*models.Course

func (f fakeCourses) GetCourseByID(_ context.Context, id int64) (*models.Course, error) {
	if c, ok := f[id]; ok {
		return c, nil
	}
	return nil, apperrors.ErrCourseNotFound
}

type fakeSubmissions map[int64]int64

func (f fakeSubmissions) SubmissionCourseID(_ context.Context, id int64) (int64, error) {
	if courseID, ok := f[id]; ok {
		return courseID, nil
	}
	return 0, apperrors.ErrSubmissionNotFound
}

func TestCanManageCourse(t *testing.T) {
	owner := int64(7)
	svc := NewAuthorizationService(
		fakeCourses{1: {ID: 1, InstructorID: &owner}, 2: {ID: 2}},
		fakeSubmissions{10: 1, 11: 2},
	)
	ctx := context.Background()

	tests := []struct {
		name     string
		userID   int64
		role     models.UserRole
		courseID int64
		want     bool
	}{
		{"owner", 7, models.RoleInstructor, 1, true},
		{"other instructor", 8, models.RoleInstructor, 1, false},
		{"admin", 1, models.RoleAdmin, 1, true},
		{"student", 7, models.RoleStudent, 1, false},
		{"unowned course", 7, models.RoleInstructor, 2, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.CanManageCourse(ctx, tt.userID, tt.role, tt.courseID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := svc.CanManageCourse(ctx, 7, models.RoleAdmin, 99)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestRequireGrader(t *testing.T) {
	owner := int64(7)
	svc := NewAuthorizationService(fakeCourses{1: {ID: 1, InstructorID: &owner}}, fakeSubmissions{10: 1})
	ctx := context.Background()

	assert.NoError(t, svc.RequireGrader(ctx, 7, models.RoleInstructor, 10))

	err := svc.RequireGrader(ctx, 8, models.RoleInstructor, 10)
	assert.True(t, errors.Is(err, apperrors.ErrPermissionDenied))

	err = svc.RequireGrader(ctx, 7, models.RoleInstructor, 404)
	assert.ErrorIs(t, err, apperrors.ErrSubmissionNotFound)
}
