package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/yigit/lms/internal/app/models"
	"github.com/yigit/lms/internal/app/repositories"
	"github.com/yigit/lms/internal/db"
	"github.com/yigit/lms/internal/pkg/apperrors"
)

// CreateCourseInput carries the fields of a new course.
type CreateCourseInput struct {
	Title        string
	Description  *string
	Price        int
	InstructorID *int64
	// ModuleTitles become modules with order_index 1..N in the same transaction.
	ModuleTitles []string
}

// CourseService defines the interface for course and module operations
type CourseService interface {
	CreateCourse(ctx context.Context, input CreateCourseInput) (*models.Course, error)
	CreateCourseWithModules(ctx context.Context, instructorID int64, title string, price int, moduleTitles []string) (*models.Course, error)
	GetCourseByID(ctx context.Context, id int64) (*models.Course, error)
	// GetCoursesByPriceRange returns courses with minPrice <= price <= maxPrice, most expensive first.
	GetCoursesByPriceRange(ctx context.Context, minPrice, maxPrice int) ([]*models.Course, error)
	ListModules(ctx context.Context, courseID int64) ([]*models.Module, error)
	HardDeleteModule(ctx context.Context, id int64) (bool, error)
}

type courseServiceImpl struct {
	repos *repositories.Repositories
	tx    db.Transactor
	log   zerolog.Logger
}

// NewCourseService creates a new course service instance
func NewCourseService(repos *repositories.Repositories, tx db.Transactor, log zerolog.Logger) CourseService {
	return &courseServiceImpl{
		repos: repos,
		tx:    tx,
		log:   log.With().Str("service", "course").Logger(),
	}
}

// moduleContent is the placeholder body given to generated modules.
func moduleContent(title string) string {
	return "Content for " + title
}

func (s *courseServiceImpl) CreateCourse(ctx context.Context, input CreateCourseInput) (*models.Course, error) {
	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		return nil, fmt.Errorf("%w: course title is required", apperrors.ErrValidationFailed)
	}
	if input.Price < 0 || input.Price > models.MaxPrice {
		return nil, apperrors.ErrInvalidPrice
	}

	log := s.log.With().Str("title", input.Title).Logger()

	var course *models.Course
	err := s.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		repos := s.repos.WithTx(tx)

		fields := map[string]any{
			"title": input.Title,
			"price": input.Price,
		}
		if input.Description != nil {
			fields["description"] = *input.Description
		}
		if input.InstructorID != nil {
			fields["instructor_id"] = *input.InstructorID
		}

		created, err := repos.Courses.Create(ctx, fields)
		if err != nil {
			return fmt.Errorf("insert course: %w", err)
		}

		created.Modules = make([]*models.Module, 0, len(input.ModuleTitles))
		for i, title := range input.ModuleTitles {
			module, err := repos.Modules.Create(ctx, map[string]any{
				"course_id":   created.ID,
				"title":       title,
				"content":     moduleContent(title),
				"order_index": i + 1,
			})
			if err != nil {
				return fmt.Errorf("insert module %q: %w", title, err)
			}
			created.Modules = append(created.Modules, module)
		}

		course = created
		return nil
	})
	if err != nil {
		return nil, report(log, err, "Course creation rolled back")
	}

	log.Info().Int64("courseID", course.ID).Int("modules", len(course.Modules)).Msg("Course created")
	return course, nil
}

func (s *courseServiceImpl) CreateCourseWithModules(ctx context.Context, instructorID int64, title string, price int, moduleTitles []string) (*models.Course, error) {
	return s.CreateCourse(ctx, CreateCourseInput{
		Title:        title,
		Price:        price,
		InstructorID: &instructorID,
		ModuleTitles: moduleTitles,
	})
}

func (s *courseServiceImpl) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	log := s.log.With().Int64("courseID", id).Logger()

	course, err := s.repos.Courses.GetByID(ctx, id)
	if err != nil {
		return nil, report(log, err, "Failed to get course")
	}

	course.Modules, err = s.repos.Modules.ListByCourse(ctx, id)
	if err != nil {
		return nil, report(log, err, "Failed to load course modules")
	}
	return course, nil
}

func (s *courseServiceImpl) GetCoursesByPriceRange(ctx context.Context, minPrice, maxPrice int) ([]*models.Course, error) {
	courses, err := s.repos.Courses.ListByPriceRange(ctx, minPrice, maxPrice)
	if err != nil {
		return nil, report(s.log, err, "Failed to list courses by price")
	}
	return courses, nil
}

func (s *courseServiceImpl) ListModules(ctx context.Context, courseID int64) ([]*models.Module, error) {
	log := s.log.With().Int64("courseID", courseID).Logger()

	if _, err := s.repos.Courses.GetByID(ctx, courseID); err != nil {
		return nil, report(log, err, "Failed to get course")
	}
	modules, err := s.repos.Modules.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, report(log, err, "Failed to list modules")
	}
	return modules, nil
}

func (s *courseServiceImpl) HardDeleteModule(ctx context.Context, id int64) (bool, error) {
	log := s.log.With().Int64("moduleID", id).Logger()

	deleted, err := s.repos.Modules.Delete(ctx, id)
	if err != nil {
		return false, report(log, err, "Failed to delete module")
	}
	if !deleted {
		return false, report(log, apperrors.ErrModuleNotFound, "Module not found")
	}

	log.Info().Msg("Module deleted")
	return true, nil
}
