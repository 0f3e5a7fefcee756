package seed

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/lms/internal/app/repositories"
	"github.com/yigit/lms/internal/app/services"
	"github.com/yigit/lms/internal/testutil"
)

func TestCreateDemoDataIsIdempotent(t *testing.T) {
	database := testutil.NewDB(t, "lms_seed_test")
	svc := services.NewServices(repositories.NewRepositories(database.Pool), database, zerolog.Nop())
	ctx := context.Background()

	require.NoError(t, CreateDefaultAdmin(ctx, svc.Users, zerolog.Nop()))
	require.NoError(t, CreateDefaultAdmin(ctx, svc.Users, zerolog.Nop()))

	first, err := CreateDemoData(ctx, svc, zerolog.Nop())
	require.NoError(t, err)
	assert.False(t, first.Skipped)
	assert.Len(t, first.StudentIDs, len(demoStudents))

	course, err := svc.Courses.GetCourseByID(ctx, first.CourseID)
	require.NoError(t, err)
	assert.Equal(t, DemoCoursePrice, course.Price)
	assert.Len(t, course.Modules, len(DemoModules))

	instructor, err := svc.Users.GetUserByEmail(ctx, InstructorEmail)
	require.NoError(t, err)
	assert.Equal(t, "Ivan Petrov", instructor.FullName)

	second, err := CreateDemoData(ctx, svc, zerolog.Nop())
	require.NoError(t, err)
	assert.True(t, second.Skipped)

	revenue, err := svc.Analytics.InstructorRevenue(ctx)
	require.NoError(t, err)
	require.Len(t, revenue, 1)
	assert.EqualValues(t, len(demoStudents), revenue[0].TotalSales)
	assert.EqualValues(t, len(demoStudents)*DemoCoursePrice, revenue[0].TotalRevenue)
}
