// Package report gathers the catalogue and analytics queries into one
// printable summary.
package report

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/yigit/lms/internal/app/models"
	"github.com/yigit/lms/internal/app/services"
	"github.com/yigit/lms/internal/pkg/grading"
)

// Price window of the "expensive courses" section.
const (
	ExpensiveMinPrice = 1000
	ExpensiveMaxPrice = 2000
)

// Report is the result of the three queries.
type Report struct {
	ExpensiveCourses []*models.Course
	StudentScores    []models.StudentScore
	Revenue          []models.InstructorRevenue
}

// Collect runs the three queries concurrently. The first failure cancels the others.
func Collect(ctx context.Context, courses services.CourseService, analytics services.AnalyticsService) (*Report, error) {
	r := &Report{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rows, err := courses.GetCoursesByPriceRange(gctx, ExpensiveMinPrice, ExpensiveMaxPrice)
		if err != nil {
			return fmt.Errorf("expensive courses: %w", err)
		}
		r.ExpensiveCourses = rows
		return nil
	})
	g.Go(func() error {
		rows, err := analytics.StudentAverageScores(gctx)
		if err != nil {
			return fmt.Errorf("student scores: %w", err)
		}
		r.StudentScores = rows
		return nil
	})
	g.Go(func() error {
		rows, err := analytics.InstructorRevenue(gctx)
		if err != nil {
			return fmt.Errorf("instructor revenue: %w", err)
		}
		r.Revenue = rows
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return r, nil
}

// Write prints the report as plain text.
func Write(w io.Writer, r *Report) error {
	ew := &errWriter{w: w}

	ew.printf("=== 1. Expensive Courses (%d-%d) ===\n", ExpensiveMinPrice, ExpensiveMaxPrice)
	for _, c := range r.ExpensiveCourses {
		ew.printf("Course: %s | Price: %d\n", c.Title, c.Price)
	}

	ew.printf("\n=== 2. Student Performance (AVG Score) ===\n")
	for _, s := range r.StudentScores {
		if s.AverageScore == nil {
			ew.printf("Student: %s | Average: - | Works: %d\n", s.FullName, s.SubmissionCount)
			continue
		}
		avg := *s.AverageScore
		letter, err := grading.LetterGrade(int(avg + 0.5))
		if err != nil {
			letter = "?"
		}
		ew.printf("Student: %s | Average: %.1f (%s) | Works: %d\n", s.FullName, avg, letter, s.SubmissionCount)
	}

	ew.printf("\n=== 3. Instructor Revenue ===\n")
	for _, rev := range r.Revenue {
		ew.printf("Instructor: %s | Sales: %d | Revenue: %d\n", rev.FullName, rev.TotalSales, rev.TotalRevenue)
	}

	return ew.err
}

// errWriter keeps the first write error and turns later writes into no-ops.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
