package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/lms/internal/app/services"
	"github.com/yigit/lms/internal/pkg/logger"
)

// PageController renders the server-side HTML pages
type PageController struct {
	courseService services.CourseService
}

// NewPageController creates a new PageController
func NewPageController(courseService services.CourseService) *PageController {
	return &PageController{courseService: courseService}
}

// Index renders the course catalogue
func (c *PageController) Index(ctx *gin.Context) {
	courses, err := c.courseService.GetCoursesByPriceRange(ctx, DefaultMinPrice, DefaultMaxPrice)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load catalogue")
		ctx.HTML(http.StatusInternalServerError, "index.html", gin.H{"error": "Courses are unavailable right now."})
		return
	}
	ctx.HTML(http.StatusOK, "index.html", gin.H{"courses": courses})
}
