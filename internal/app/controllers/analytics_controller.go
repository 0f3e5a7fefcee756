package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/lms/internal/app/services"
	"github.com/yigit/lms/internal/middleware"
)

// AnalyticsController exposes the aggregate reports
type AnalyticsController struct {
	analyticsService services.AnalyticsService
}

// NewAnalyticsController creates a new AnalyticsController
func NewAnalyticsController(analyticsService services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{analyticsService: analyticsService}
}

// StudentScores reports each student's average score
// @Summary Student average scores
// @Tags analytics
// @Produce json
// @Success 200 {array} models.StudentScore
// @Router /analytics/student-scores [get]
func (c *AnalyticsController) StudentScores(ctx *gin.Context) {
	rows, err := c.analyticsService.StudentAverageScores(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, rows)
}

// InstructorRevenue reports sales and revenue per instructor
// @Summary Instructor revenue
// @Tags analytics
// @Produce json
// @Success 200 {array} models.InstructorRevenue
// @Router /analytics/instructor-revenue [get]
func (c *AnalyticsController) InstructorRevenue(ctx *gin.Context) {
	rows, err := c.analyticsService.InstructorRevenue(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, rows)
}
