package services_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/lms/internal/app/models"
	"github.com/yigit/lms/internal/app/repositories"
	"github.com/yigit/lms/internal/app/services"
	"github.com/yigit/lms/internal/pkg/apperrors"
	"github.com/yigit/lms/internal/testutil"
)

type fixture struct {
	svc   *services.Services
	repos *repositories.Repositories
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	database := testutil.NewDB(t, "lms_services_test")
	repos := repositories.NewRepositories(database.Pool)
	return &fixture{svc: services.NewServices(repos, database, zerolog.Nop()), repos: repos}
}

func (f *fixture) user(t *testing.T, name, email string, role models.UserRole) *models.User {
	t.Helper()
	u, err := f.svc.Users.CreateUser(context.Background(), name, email, role)
	require.NoError(t, err)
	return u
}

// submission creates an instructor, course, assignment and an ungraded submission.
func (f *fixture) submission(t *testing.T, maxScore int) *models.Submission {
	t.Helper()
	ctx := context.Background()
	ivan := f.user(t, "Ivan Petrov", "ivan@test.com", models.RoleInstructor)
	oleg := f.user(t, "Oleg", "oleg@test.com", models.RoleStudent)
	course, err := f.svc.Courses.CreateCourseWithModules(ctx, ivan.ID, "X", 1500, []string{"A", "B"})
	require.NoError(t, err)
	assignment, err := f.svc.Assignments.CreateAssignment(ctx, course.ID, "Final", maxScore, nil)
	require.NoError(t, err)
	sub, err := f.svc.Assignments.SubmitHomework(ctx, assignment.ID, oleg.ID, "work")
	require.NoError(t, err)
	return sub
}

func TestGradeSubmissionScenario(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ivan := f.user(t, "Ivan Petrov", "ivan@test.com", models.RoleInstructor)
	course, err := f.svc.Courses.CreateCourseWithModules(ctx, ivan.ID, "X", 1500, []string{"A", "B"})
	require.NoError(t, err)
	oleg := f.user(t, "Oleg", "oleg@test.com", models.RoleStudent)

	enrollment, err := f.svc.Enrollments.EnrollStudent(ctx, oleg.ID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, models.EnrollmentActive, enrollment.Status)

	assignment, err := f.svc.Assignments.CreateAssignment(ctx, course.ID, "Final", 100, nil)
	require.NoError(t, err)
	sub, err := f.svc.Assignments.SubmitHomework(ctx, assignment.ID, oleg.ID, "Oleg's work")
	require.NoError(t, err)

	graded, err := f.svc.Assignments.GradeSubmission(ctx, sub.ID, 95)
	require.NoError(t, err)
	require.NotNil(t, graded.Score)
	assert.Equal(t, 95, *graded.Score)

	_, err = f.svc.Assignments.GradeSubmission(ctx, sub.ID, 150)
	assert.ErrorIs(t, err, apperrors.ErrScoreOutOfRange)

	stored, err := f.repos.Submissions.GetByID(ctx, sub.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.Score)
	assert.Equal(t, 95, *stored.Score)

	courseID, err := f.svc.Assignments.SubmissionCourseID(ctx, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, course.ID, courseID)
}

func TestGradeSubmissionBounds(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sub := f.submission(t, 40)

	for _, score := range []int{-1, 41, 1000} {
		_, err := f.svc.Assignments.GradeSubmission(ctx, sub.ID, score)
		assert.ErrorIs(t, err, apperrors.ErrScoreOutOfRange, "score %d", score)
	}
	stored, err := f.repos.Submissions.GetByID(ctx, sub.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.Score)

	for _, score := range []int{0, 17, 40} {
		graded, err := f.svc.Assignments.GradeSubmission(ctx, sub.ID, score)
		require.NoError(t, err, "score %d", score)
		assert.Equal(t, score, *graded.Score)
	}

	_, err = f.svc.Assignments.GradeSubmission(ctx, 999999, 10)
	assert.ErrorIs(t, err, apperrors.ErrSubmissionNotFound)
}

func TestCreateAssignmentDefaults(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ivan := f.user(t, "Ivan Petrov", "ivan@test.com", models.RoleInstructor)
	course, err := f.svc.Courses.CreateCourseWithModules(ctx, ivan.ID, "X", 10, nil)
	require.NoError(t, err)

	a, err := f.svc.Assignments.CreateAssignment(ctx, course.ID, "Essay", 0, nil)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultMaxScore, a.MaxScore)

	_, err = f.svc.Assignments.CreateAssignment(ctx, course.ID, "Essay", -5, nil)
	assert.ErrorIs(t, err, apperrors.ErrInvalidMaxScore)

	_, err = f.svc.Assignments.CreateAssignment(ctx, 999999, "Essay", 10, nil)
	assert.ErrorIs(t, err, apperrors.ErrInvalidReference)

	_, err = f.svc.Assignments.SubmitHomework(ctx, 999999, ivan.ID, "x")
	assert.ErrorIs(t, err, apperrors.ErrInvalidReference)
}

func TestCreateCourseModulesInOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ivan := f.user(t, "Ivan Petrov", "ivan@test.com", models.RoleInstructor)

	titles := []string{"Intro", "Goroutines", "Channels", "Generics"}
	course, err := f.svc.Courses.CreateCourseWithModules(ctx, ivan.ID, "Go", 1500, titles)
	require.NoError(t, err)

	modules, err := f.svc.Courses.ListModules(ctx, course.ID)
	require.NoError(t, err)
	require.Len(t, modules, len(titles))
	for i, m := range modules {
		assert.Equal(t, titles[i], m.Title)
		assert.Equal(t, i+1, m.OrderIndex)
		assert.Equal(t, "Content for "+titles[i], m.Content)
	}

	loaded, err := f.svc.Courses.GetCourseByID(ctx, course.ID)
	require.NoError(t, err)
	assert.Len(t, loaded.Modules, len(titles))

	_, err = f.svc.Courses.ListModules(ctx, 999999)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestCreateCourseRollsBack(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Courses.CreateCourseWithModules(ctx, 424242, "Orphan", 100, []string{"A"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidReference)

	ivan := f.user(t, "Ivan Petrov", "ivan@test.com", models.RoleInstructor)
	_, err = f.svc.Courses.CreateCourseWithModules(ctx, ivan.ID, "Partial", 100, []string{"ok", longTitle(200)})
	require.Error(t, err)

	courses, err := f.repos.Courses.ListByInstructor(ctx, ivan.ID)
	require.NoError(t, err)
	assert.Empty(t, courses)
}

func longTitle(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = 'x'
	}
	return string(b)
}

func TestDuplicateEmailRejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.user(t, "Anna Smith", "anna@test.com", models.RoleStudent)

	_, err := f.svc.Users.CreateUser(ctx, "Anna Again", "anna@test.com", models.RoleStudent)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)

	users, err := f.svc.Users.ListUsers(ctx, 0, 0)
	require.NoError(t, err)
	count := 0
	for _, u := range users {
		if u.Email == "anna@test.com" {
			count++
		}
	}
	assert.Equal(t, 1, count)

	_, err = f.svc.Users.CreateUser(ctx, "Root", "root@test.com", models.UserRole("superuser"))
	assert.ErrorIs(t, err, apperrors.ErrInvalidRole)
}

func TestSoftDeleteKeepsEnrollments(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ivan := f.user(t, "Ivan Petrov", "ivan@test.com", models.RoleInstructor)
	anna := f.user(t, "Anna Smith", "anna@test.com", models.RoleStudent)
	course, err := f.svc.Courses.CreateCourseWithModules(ctx, ivan.ID, "X", 100, nil)
	require.NoError(t, err)
	_, err = f.svc.Enrollments.EnrollStudent(ctx, anna.ID, course.ID)
	require.NoError(t, err)

	ok, err := f.svc.Users.SoftDeleteUser(ctx, anna.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := f.svc.Users.GetUserByID(ctx, anna.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	enrollments, err := f.svc.Enrollments.ListEnrollments(ctx, anna.ID)
	require.NoError(t, err)
	assert.Len(t, enrollments, 1)

	_, err = f.svc.Users.SoftDeleteUser(ctx, 999999)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestHardDeleteModule(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ivan := f.user(t, "Ivan Petrov", "ivan@test.com", models.RoleInstructor)
	course, err := f.svc.Courses.CreateCourseWithModules(ctx, ivan.ID, "X", 100, []string{"A", "B"})
	require.NoError(t, err)

	ok, err := f.svc.Courses.HardDeleteModule(ctx, course.Modules[0].ID)
	require.NoError(t, err)
	assert.True(t, ok)

	modules, err := f.svc.Courses.ListModules(ctx, course.ID)
	require.NoError(t, err)
	require.Len(t, modules, 1)
	assert.Equal(t, "B", modules[0].Title)

	_, err = f.svc.Courses.HardDeleteModule(ctx, course.Modules[0].ID)
	assert.ErrorIs(t, err, apperrors.ErrModuleNotFound)
}

func TestAnalytics(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ivan := f.user(t, "Ivan Petrov", "ivan@test.com", models.RoleInstructor)
	course, err := f.svc.Courses.CreateCourseWithModules(ctx, ivan.ID, "Cheap", 100, nil)
	require.NoError(t, err)
	assignment, err := f.svc.Assignments.CreateAssignment(ctx, course.ID, "HW", 100, nil)
	require.NoError(t, err)

	grades := []struct {
		email  string
		scores []int
	}{
		{"low@test.com", []int{60}},
		{"high@test.com", []int{100, 90}},
		{"none@test.com", nil},
	}
	for _, g := range grades {
		student := f.user(t, g.email, g.email, models.RoleStudent)
		_, err := f.svc.Enrollments.EnrollStudent(ctx, student.ID, course.ID)
		require.NoError(t, err)
		for _, score := range g.scores {
			sub, err := f.svc.Assignments.SubmitHomework(ctx, assignment.ID, student.ID, "w")
			require.NoError(t, err)
			_, err = f.svc.Assignments.GradeSubmission(ctx, sub.ID, score)
			require.NoError(t, err)
		}
	}

	averages, err := f.svc.Analytics.StudentAverageScores(ctx)
	require.NoError(t, err)
	require.Len(t, averages, 2)
	assert.Equal(t, "high@test.com", averages[0].FullName)
	assert.InDelta(t, 95.0, *averages[0].AverageScore, 0.001)
	assert.Equal(t, "low@test.com", averages[1].FullName)

	revenue, err := f.svc.Analytics.InstructorRevenue(ctx)
	require.NoError(t, err)
	require.Len(t, revenue, 1)
	assert.EqualValues(t, 3, revenue[0].TotalSales)
	assert.EqualValues(t, 300, revenue[0].TotalRevenue)
}

func TestPriceRangeHonorsBothBounds(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ivan := f.user(t, "Ivan Petrov", "ivan@test.com", models.RoleInstructor)
	for _, price := range []int{999, 1000, 2000, 2001} {
		_, err := f.svc.Courses.CreateCourseWithModules(ctx, ivan.ID, "C", price, nil)
		require.NoError(t, err)
	}

	courses, err := f.svc.Courses.GetCoursesByPriceRange(ctx, 1000, 2000)
	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, 2000, courses[0].Price)
	assert.Equal(t, 1000, courses[1].Price)

	_, err = f.svc.Courses.CreateCourseWithModules(ctx, ivan.ID, "Negative", -1, nil)
	assert.ErrorIs(t, err, apperrors.ErrInvalidPrice)
	_, err = f.svc.Courses.CreateCourseWithModules(ctx, ivan.ID, "Too Pricey", models.MaxPrice+1, nil)
	assert.ErrorIs(t, err, apperrors.ErrInvalidPrice)

	wide, err := f.svc.Courses.GetCoursesByPriceRange(ctx, -3_000_000_000, 3_000_000_000)
	require.NoError(t, err)
	assert.Len(t, wide, 4)
}
