package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/lms/internal/app/models"
	"github.com/yigit/lms/internal/app/services"
	"github.com/yigit/lms/internal/pkg/grading"
)

// Demo accounts. The instructor's email doubles as the "already seeded" marker.
const (
	AdminEmail      = "admin@lms.local"
	InstructorEmail = "ivan.petrov@lms.local"
	DemoCourseTitle = "Go Backend Development"
	DemoCoursePrice = 1500
	DemoAssignment  = "Final Project"
)

// DemoModules are created with the demo course, in order.
var DemoModules = []string{"Go Basics", "HTTP Services", "PostgreSQL", "Testing"}

// Result identifies the records created by CreateDemoData.
type Result struct {
	Skipped      bool
	InstructorID int64
	CourseID     int64
	AssignmentID int64
	StudentIDs   []int64
}

type demoStudent struct {
	first, last, email, work string
	score                    int
}

var demoStudents = []demoStudent{
	{first: "oleg", last: "kovalenko", email: "oleg@lms.local", work: "Oleg's work", score: 95},
	{first: "anna", last: "smith", email: "anna@lms.local", work: "Anna's work", score: 98},
}

// CreateDefaultAdmin creates the administrator account if it does not exist.
func CreateDefaultAdmin(ctx context.Context, users services.UserService, lgr zerolog.Logger) error {
	exists, err := users.EmailExists(ctx, AdminEmail)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking if admin user exists")
		return err
	}
	if exists {
		lgr.Info().Msg("Admin user already exists, skipping creation")
		return nil
	}

	admin, err := users.CreateUser(ctx, grading.FormatFullName("system", "administrator"), AdminEmail, models.RoleAdmin)
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating admin user")
		return err
	}
	lgr.Info().Int64("adminID", admin.ID).Msg("Default admin user created successfully")
	return nil
}

// CreateDemoData walks the whole service layer once: an instructor publishes a
// course with modules and an assignment, two students enroll, submit and get
// graded. It does nothing when the demo instructor already exists.
//
// Failures after the course exists are collected rather than aborting, so a
// partially seeded database still gets as much data as possible.
func CreateDemoData(ctx context.Context, svc *services.Services, lgr zerolog.Logger) (*Result, error) {
	exists, err := svc.Users.EmailExists(ctx, InstructorEmail)
	if err != nil {
		return nil, fmt.Errorf("check demo instructor: %w", err)
	}
	if exists {
		lgr.Info().Msg("Demo data already exists, skipping seed")
		return &Result{Skipped: true}, nil
	}

	instructor, err := svc.Users.CreateUser(ctx, grading.FormatFullName("ivan", "petrov"), InstructorEmail, models.RoleInstructor)
	if err != nil {
		return nil, fmt.Errorf("create demo instructor: %w", err)
	}
	result := &Result{InstructorID: instructor.ID}

	course, err := svc.Courses.CreateCourseWithModules(ctx, instructor.ID, DemoCourseTitle, DemoCoursePrice, DemoModules)
	if err != nil {
		return result, fmt.Errorf("create demo course: %w", err)
	}
	result.CourseID = course.ID
	lgr.Info().Int64("courseID", course.ID).Int("modules", len(course.Modules)).Msg("Demo course created")

	assignment, err := svc.Assignments.CreateAssignment(ctx, course.ID, DemoAssignment, models.DefaultMaxScore, nil)
	if err != nil {
		return result, fmt.Errorf("create demo assignment: %w", err)
	}
	result.AssignmentID = assignment.ID

	var finalErr error
	for _, s := range demoStudents {
		studentID, err := seedStudent(ctx, svc, course.ID, assignment.ID, s)
		if studentID > 0 {
			result.StudentIDs = append(result.StudentIDs, studentID)
		}
		if err != nil {
			lgr.Error().Err(err).Str("email", s.email).Msg("Error seeding demo student")
			finalErr = errors.Join(finalErr, err)
		}
	}

	lgr.Info().Int("students", len(result.StudentIDs)).Msg("Demo data seeded")
	return result, finalErr
}

func seedStudent(ctx context.Context, svc *services.Services, courseID, assignmentID int64, s demoStudent) (int64, error) {
	student, err := svc.Users.CreateUser(ctx, grading.FormatFullName(s.first, s.last), s.email, models.RoleStudent)
	if err != nil {
		return 0, fmt.Errorf("create student: %w", err)
	}
	if _, err := svc.Enrollments.EnrollStudent(ctx, student.ID, courseID); err != nil {
		return student.ID, fmt.Errorf("enroll student: %w", err)
	}
	submission, err := svc.Assignments.SubmitHomework(ctx, assignmentID, student.ID, s.work)
	if err != nil {
		return student.ID, fmt.Errorf("submit homework: %w", err)
	}
	if _, err := svc.Assignments.GradeSubmission(ctx, submission.ID, s.score); err != nil {
		return student.ID, fmt.Errorf("grade submission: %w", err)
	}
	return student.ID, nil
}
