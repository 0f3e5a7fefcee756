package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/lms/internal/app/controllers"
	"github.com/yigit/lms/internal/app/models"
	"github.com/yigit/lms/internal/app/models/dto"
	"github.com/yigit/lms/internal/middleware"
)

// Controllers groups every HTTP handler the router mounts.
type Controllers struct {
	Users       *controllers.UserController
	Courses     *controllers.CourseController
	Assignments *controllers.AssignmentController
	Analytics   *controllers.AnalyticsController
	Pages       *controllers.PageController
}

// HealthChecker reports whether the backing store is reachable.
type HealthChecker func(*gin.Context) error

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, ctrl Controllers, authMiddleware *middleware.AuthMiddleware, health HealthChecker) {
	router.GET("/", ctrl.Pages.Index)

	router.GET("/health", func(c *gin.Context) {
		if err := health(c); err != nil {
			c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "degraded", Database: "down"})
			return
		}
		c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", Database: "up"})
	})

	requireAuth := authMiddleware.JWTAuth()
	adminOnly := authMiddleware.RoleRequired(models.RoleAdmin)
	courseStaff := authMiddleware.RoleRequired(models.RoleInstructor, models.RoleAdmin)

	users := router.Group("/users")
	{
		users.POST("/", ctrl.Users.CreateUser)
		users.GET("/", ctrl.Users.ListUsers)
		users.GET("/:id", ctrl.Users.GetUser)
		users.GET("/:id/enrollments", ctrl.Users.ListEnrollments)
		users.DELETE("/:id", requireAuth, adminOnly, ctrl.Users.DeleteUser)
	}

	courses := router.Group("/courses")
	{
		courses.GET("/", ctrl.Courses.ListCourses)
		courses.POST("/", ctrl.Courses.CreateCourse)
		courses.GET("/:id", ctrl.Courses.GetCourse)
		courses.GET("/:id/modules", ctrl.Courses.ListModules)
		courses.POST("/:id/enrollments", ctrl.Courses.Enroll)
		courses.POST("/:id/assignments", requireAuth, courseStaff, ctrl.Courses.CreateAssignment)
	}

	router.DELETE("/modules/:id", requireAuth, adminOnly, ctrl.Courses.DeleteModule)
	router.POST("/assignments/:id/submissions", ctrl.Assignments.Submit)
	router.PUT("/submissions/:id/grade", requireAuth, courseStaff, ctrl.Assignments.Grade)

	analytics := router.Group("/analytics")
	{
		analytics.GET("/student-scores", ctrl.Analytics.StudentScores)
		analytics.GET("/instructor-revenue", ctrl.Analytics.InstructorRevenue)
	}
}
