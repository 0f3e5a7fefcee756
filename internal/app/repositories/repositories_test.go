package repositories_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/lms/internal/app/models"
	"github.com/yigit/lms/internal/app/repositories"
	"github.com/yigit/lms/internal/pkg/apperrors"
	"github.com/yigit/lms/internal/pkg/helpers"
	"github.com/yigit/lms/internal/testutil"
)

func newRepos(t *testing.T) *repositories.Repositories {
	t.Helper()
	return repositories.NewRepositories(testutil.NewDB(t, "lms_repositories_test").Pool)
}

func mustUser(t *testing.T, repos *repositories.Repositories, name, email string, role models.UserRole) *models.User {
	t.Helper()
	u, err := repos.Users.Create(context.Background(), map[string]any{"full_name": name, "email": email, "role": string(role)})
	require.NoError(t, err)
	return u
}

func mustCourse(t *testing.T, repos *repositories.Repositories, title string, price int, instructorID int64) *models.Course {
	t.Helper()
	c, err := repos.Courses.Create(context.Background(), map[string]any{"title": title, "price": price, "instructor_id": instructorID})
	require.NoError(t, err)
	return c
}

func TestUserRepository(t *testing.T) {
	repos := newRepos(t)
	ctx := context.Background()

	u := mustUser(t, repos, "Anna Smith", "anna@test.com", models.RoleStudent)
	assert.Positive(t, u.ID)
	assert.True(t, u.IsActive)
	assert.False(t, u.CreatedAt.IsZero())

	_, err := repos.Users.Create(ctx, map[string]any{"full_name": "Other", "email": "anna@test.com"})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)

	_, err = repos.Users.Create(ctx, map[string]any{"full_name": "Root", "email": "root@test.com", "role": "superuser"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	exists, err := repos.Users.EmailExists(ctx, "anna@test.com")
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = repos.Users.EmailExists(ctx, "nobody@test.com")
	require.NoError(t, err)
	assert.False(t, exists)

	found, err := repos.Users.Deactivate(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, found)

	got, err := repos.Users.GetByEmail(ctx, "anna@test.com")
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	found, err = repos.Users.Deactivate(ctx, 999999)
	require.NoError(t, err)
	assert.False(t, found)

	_, err = repos.Users.GetByID(ctx, 999999)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestUserList(t *testing.T) {
	repos := newRepos(t)
	ctx := context.Background()
	for _, email := range []string{"a@test.com", "b@test.com", "c@test.com"} {
		mustUser(t, repos, "User", email, models.RoleStudent)
	}

	page, err := repos.Users.List(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "b@test.com", page[0].Email)

	all, err := repos.Users.List(ctx, 0, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	offset, limit := helpers.CalculateOffsetLimit(math.MaxInt, helpers.DefaultPageSize)
	beyond, err := repos.Users.List(ctx, offset, limit)
	require.NoError(t, err)
	assert.Empty(t, beyond)
}

func TestCoursePriceQueries(t *testing.T) {
	repos := newRepos(t)
	ctx := context.Background()
	ivan := mustUser(t, repos, "Ivan Petrov", "ivan@test.com", models.RoleInstructor)

	for _, price := range []int{500, 1000, 1500, 2000, 2500} {
		mustCourse(t, repos, "Course", price, ivan.ID)
	}

	unbounded, err := repos.Courses.ListByPriceRange(ctx, -3_000_000_000, 3_000_000_000)
	require.NoError(t, err)
	assert.Len(t, unbounded, 5)

	ranged, err := repos.Courses.ListByPriceRange(ctx, 1000, 2000)
	require.NoError(t, err)
	require.Len(t, ranged, 3)
	assert.Equal(t, 2000, ranged[0].Price)
	assert.Equal(t, 1500, ranged[1].Price)
	assert.Equal(t, 1000, ranged[2].Price)

	minOnly, err := repos.Courses.ListByMinPrice(ctx, 1500)
	require.NoError(t, err)
	assert.Len(t, minOnly, 3)

	owned, err := repos.Courses.ListByInstructor(ctx, ivan.ID)
	require.NoError(t, err)
	assert.Len(t, owned, 5)

	_, err = repos.Courses.Create(ctx, map[string]any{"title": "Broken", "price": -5})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = repos.Courses.Create(ctx, map[string]any{"title": "Orphan", "price": 10, "instructor_id": 424242})
	assert.ErrorIs(t, err, apperrors.ErrInvalidReference)
}

func TestModulesCascadeWithCourse(t *testing.T) {
	repos := newRepos(t)
	ctx := context.Background()
	ivan := mustUser(t, repos, "Ivan Petrov", "ivan@test.com", models.RoleInstructor)
	course := mustCourse(t, repos, "Go", 100, ivan.ID)

	for i, title := range []string{"Third", "First", "Second"} {
		_, err := repos.Modules.Create(ctx, map[string]any{
			"course_id": course.ID, "title": title, "content": "x", "order_index": []int{3, 1, 2}[i],
		})
		require.NoError(t, err)
	}

	modules, err := repos.Modules.ListByCourse(ctx, course.ID)
	require.NoError(t, err)
	require.Len(t, modules, 3)
	assert.Equal(t, "First", modules[0].Title)
	assert.Equal(t, "Third", modules[2].Title)

	deleted, err := repos.Courses.Delete(ctx, course.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	modules, err = repos.Modules.ListByCourse(ctx, course.ID)
	require.NoError(t, err)
	assert.Empty(t, modules)
}

func TestSubmissionGradingQueries(t *testing.T) {
	repos := newRepos(t)
	ctx := context.Background()
	ivan := mustUser(t, repos, "Ivan Petrov", "ivan@test.com", models.RoleInstructor)
	anna := mustUser(t, repos, "Anna Smith", "anna@test.com", models.RoleStudent)
	course := mustCourse(t, repos, "Go", 100, ivan.ID)

	assignment, err := repos.Assignments.Create(ctx, map[string]any{"course_id": course.ID, "title": "Final Project", "max_score": 50})
	require.NoError(t, err)

	sub, err := repos.Submissions.Create(ctx, map[string]any{"assignment_id": assignment.ID, "student_id": anna.ID, "content": "work"})
	require.NoError(t, err)
	assert.Nil(t, sub.Score)
	assert.False(t, sub.Graded())

	target, err := repos.Submissions.GetForGrading(ctx, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, target.MaxScore)
	assert.Equal(t, course.ID, target.CourseID)
	assert.Equal(t, anna.ID, target.StudentID)

	graded, err := repos.Submissions.SetScore(ctx, sub.ID, 45)
	require.NoError(t, err)
	require.NotNil(t, graded.Score)
	assert.Equal(t, 45, *graded.Score)

	_, err = repos.Submissions.SetScore(ctx, sub.ID, -1)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = repos.Submissions.GetForGrading(ctx, 999999)
	assert.ErrorIs(t, err, apperrors.ErrSubmissionNotFound)

	list, err := repos.Submissions.ListByAssignment(ctx, assignment.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	byCourse, err := repos.Assignments.ListByCourse(ctx, course.ID)
	require.NoError(t, err)
	assert.Len(t, byCourse, 1)
}

func TestAnalyticsQueries(t *testing.T) {
	repos := newRepos(t)
	ctx := context.Background()
	ivan := mustUser(t, repos, "Ivan Petrov", "ivan@test.com", models.RoleInstructor)
	course := mustCourse(t, repos, "Go", 100, ivan.ID)
	assignment, err := repos.Assignments.Create(ctx, map[string]any{"course_id": course.ID, "title": "HW", "max_score": 100})
	require.NoError(t, err)

	scores := map[string][]int{"a@test.com": {80, 100}, "b@test.com": {70}, "c@test.com": {}}
	for _, email := range []string{"a@test.com", "b@test.com", "c@test.com"} {
		student := mustUser(t, repos, email, email, models.RoleStudent)
		_, err := repos.Enrollments.Create(ctx, map[string]any{"user_id": student.ID, "course_id": course.ID, "status": "active"})
		require.NoError(t, err)
		for _, score := range scores[email] {
			s, err := repos.Submissions.Create(ctx, map[string]any{"assignment_id": assignment.ID, "student_id": student.ID})
			require.NoError(t, err)
			_, err = repos.Submissions.SetScore(ctx, s.ID, score)
			require.NoError(t, err)
		}
	}

	averages, err := repos.Analytics.StudentAverageScores(ctx)
	require.NoError(t, err)
	require.Len(t, averages, 2)
	assert.Equal(t, "a@test.com", averages[0].FullName)
	require.NotNil(t, averages[0].AverageScore)
	assert.InDelta(t, 90.0, *averages[0].AverageScore, 0.001)
	assert.EqualValues(t, 2, averages[0].SubmissionCount)

	revenue, err := repos.Analytics.InstructorRevenue(ctx)
	require.NoError(t, err)
	require.Len(t, revenue, 1)
	assert.Equal(t, "Ivan Petrov", revenue[0].FullName)
	assert.EqualValues(t, 3, revenue[0].TotalSales)
	assert.EqualValues(t, 300, revenue[0].TotalRevenue)
}
