package report

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/lms/internal/app/models"
	"github.com/yigit/lms/internal/app/services"
)

type fakeCourses struct {
	services.CourseService
	gotMin, gotMax int
}

func (f *fakeCourses) GetCoursesByPriceRange(_ context.Context, minPrice, maxPrice int) ([]*models.Course, error) {
	f.gotMin, f.gotMax = minPrice, maxPrice
	return []*models.Course{{ID: 1, Title: "Go Backend Development", Price: 1500}}, nil
}

type fakeAnalytics struct {
	revenueErr error
}

func (f fakeAnalytics) StudentAverageScores(context.Context) ([]models.StudentScore, error) {
	avg := 96.5
	return []models.StudentScore{
		{FullName: "Anna Smith", AverageScore: &avg, SubmissionCount: 2},
		{FullName: "Oleg Kovalenko", SubmissionCount: 1},
	}, nil
}

func (f fakeAnalytics) InstructorRevenue(context.Context) ([]models.InstructorRevenue, error) {
	if f.revenueErr != nil {
		return nil, f.revenueErr
	}
	return []models.InstructorRevenue{{FullName: "Ivan Petrov", TotalSales: 3, TotalRevenue: 4500}}, nil
}

func TestCollectAndWrite(t *testing.T) {
	courses := &fakeCourses{}
	r, err := Collect(context.Background(), courses, fakeAnalytics{})
	require.NoError(t, err)
	assert.Equal(t, ExpensiveMinPrice, courses.gotMin)
	assert.Equal(t, ExpensiveMaxPrice, courses.gotMax)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, r))
	out := buf.String()
	assert.Contains(t, out, "Course: Go Backend Development | Price: 1500")
	assert.Contains(t, out, "Student: Anna Smith | Average: 96.5 (A) | Works: 2")
	assert.Contains(t, out, "Student: Oleg Kovalenko | Average: - | Works: 1")
	assert.Contains(t, out, "Instructor: Ivan Petrov | Sales: 3 | Revenue: 4500")
}

func TestCollectReturnsFirstError(t *testing.T) {
	boom := errors.New("connection reset")
	r, err := Collect(context.Background(), &fakeCourses{}, fakeAnalytics{revenueErr: boom})
	assert.Nil(t, r)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "instructor revenue")
}
