package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/yigit/lms/internal/app/models"
	"github.com/yigit/lms/internal/app/repositories"
)

// AnalyticsService exposes the aggregate reports
type AnalyticsService interface {
	// StudentAverageScores lists students with at least one submission, best average first.
	StudentAverageScores(ctx context.Context) ([]models.StudentScore, error)
	// InstructorRevenue counts each enrollment as one sale at the course price.
	InstructorRevenue(ctx context.Context) ([]models.InstructorRevenue, error)
}

type analyticsServiceImpl struct {
	repo *repositories.AnalyticsRepository
	log  zerolog.Logger
}

// NewAnalyticsService creates a new analytics service instance
func NewAnalyticsService(repos *repositories.Repositories, log zerolog.Logger) AnalyticsService {
	return &analyticsServiceImpl{
		repo: repos.Analytics,
		log:  log.With().Str("service", "analytics").Logger(),
	}
}

func (s *analyticsServiceImpl) StudentAverageScores(ctx context.Context) ([]models.StudentScore, error) {
	rows, err := s.repo.StudentAverageScores(ctx)
	if err != nil {
		return nil, report(s.log, err, "Student average report failed")
	}
	return rows, nil
}

func (s *analyticsServiceImpl) InstructorRevenue(ctx context.Context) ([]models.InstructorRevenue, error) {
	rows, err := s.repo.InstructorRevenue(ctx)
	if err != nil {
		return nil, report(s.log, err, "Instructor revenue report failed")
	}
	return rows, nil
}
