package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/lms/internal/app/auth"
	"github.com/yigit/lms/internal/app/models/dto"
	"github.com/yigit/lms/internal/app/services"
	"github.com/yigit/lms/internal/middleware"
	"github.com/yigit/lms/internal/pkg/helpers"
)

// Price bounds applied when the query omits them.
const (
	DefaultMinPrice = 0
	DefaultMaxPrice = 100000
)

// CourseController handles courses, their modules, enrollments and assignments
type CourseController struct {
	courseService     services.CourseService
	enrollmentService services.EnrollmentService
	assignmentService services.AssignmentService
	authz             *auth.AuthorizationService
}

// NewCourseController creates a new CourseController
func NewCourseController(
	courseService services.CourseService,
	enrollmentService services.EnrollmentService,
	assignmentService services.AssignmentService,
	authz *auth.AuthorizationService,
) *CourseController {
	return &CourseController{
		courseService:     courseService,
		enrollmentService: enrollmentService,
		assignmentService: assignmentService,
		authz:             authz,
	}
}

// ListCourses lists courses within a price range
// @Summary List courses by price
// @Description Returns courses with min_price <= price <= max_price, most expensive first.
// @Tags courses
// @Produce json
// @Param min_price query int false "Minimum price" default(0)
// @Param max_price query int false "Maximum price" default(100000)
// @Success 200 {array} dto.CourseResponse
// @Failure 400 {object} dto.ErrorResponse "Non-integer price"
// @Router /courses/ [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	minPrice, err := helpers.ParseIntQuery(ctx, "min_price", DefaultMinPrice)
	if err != nil {
		middleware.RespondWithError(ctx, http.StatusBadRequest, dto.ErrorCodeBadRequest, "min_price must be an integer")
		return
	}
	maxPrice, err := helpers.ParseIntQuery(ctx, "max_price", DefaultMaxPrice)
	if err != nil {
		middleware.RespondWithError(ctx, http.StatusBadRequest, dto.ErrorCodeBadRequest, "max_price must be an integer")
		return
	}

	courses, err := c.courseService.GetCoursesByPriceRange(ctx, minPrice, maxPrice)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewCourseResponses(courses))
}

// CreateCourse creates a course, optionally with modules
// @Summary Create a course
// @Description Creates the course and its modules in one transaction.
// @Tags courses
// @Accept json
// @Produce json
// @Param request body dto.CreateCourseRequest true "Course information"
// @Success 201 {object} dto.CourseResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid body or unknown instructor"
// @Router /courses/ [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	course, err := c.courseService.CreateCourse(ctx, services.CreateCourseInput{
		Title:        req.Title,
		Description:  req.Description,
		Price:        req.Price,
		InstructorID: req.InstructorID,
		ModuleTitles: req.ModuleTitles,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewCourseResponse(course))
}

// GetCourse returns a single course
// @Summary Get a course
// @Tags courses
// @Produce json
// @Param id path int true "Course ID" Format(int64) minimum(1)
// @Success 200 {object} dto.CourseResponse
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	id, ok := helpers.ParseIDParam(ctx, "id")
	if !ok {
		middleware.RespondWithError(ctx, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Course not found")
		return
	}

	course, err := c.courseService.GetCourseByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewCourseResponse(course))
}

// ListModules returns a course's modules in order
// @Summary List course modules
// @Tags courses
// @Produce json
// @Param id path int true "Course ID" Format(int64) minimum(1)
// @Success 200 {array} dto.ModuleResponse
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id}/modules [get]
func (c *CourseController) ListModules(ctx *gin.Context) {
	id, ok := helpers.ParseIDParam(ctx, "id")
	if !ok {
		middleware.RespondWithError(ctx, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Course not found")
		return
	}

	modules, err := c.courseService.ListModules(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewModuleResponses(modules))
}

// Enroll enrolls a student in the course
// @Summary Enroll a student
// @Tags courses
// @Accept json
// @Produce json
// @Param id path int true "Course ID" Format(int64) minimum(1)
// @Param request body dto.EnrollRequest true "Student"
// @Success 201 {object} dto.EnrollmentResponse
// @Failure 400 {object} dto.ErrorResponse "Unknown student or course"
// @Router /courses/{id}/enrollments [post]
func (c *CourseController) Enroll(ctx *gin.Context) {
	courseID, ok := helpers.ParseIDParam(ctx, "id")
	if !ok {
		middleware.RespondWithError(ctx, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Course not found")
		return
	}
	var req dto.EnrollRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	enrollment, err := c.enrollmentService.EnrollStudent(ctx, req.StudentID, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewEnrollmentResponse(enrollment))
}

// CreateAssignment adds an assignment to the course
// @Summary Create an assignment
// @Description Instructors may only add assignments to their own courses.
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID" Format(int64) minimum(1)
// @Param request body dto.CreateAssignmentRequest true "Assignment"
// @Success 201 {object} dto.AssignmentResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid body"
// @Failure 403 {object} dto.ErrorResponse "Not the course instructor"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id}/assignments [post]
func (c *CourseController) CreateAssignment(ctx *gin.Context) {
	courseID, ok := helpers.ParseIDParam(ctx, "id")
	if !ok {
		middleware.RespondWithError(ctx, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Course not found")
		return
	}
	var req dto.CreateAssignmentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	userID, role, _ := middleware.CurrentUser(ctx)
	if err := c.authz.RequireCourseManager(ctx, userID, role, courseID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	assignment, err := c.assignmentService.CreateAssignment(ctx, courseID, req.Title, req.MaxScore, req.DueDate)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewAssignmentResponse(assignment))
}

// DeleteModule hard-deletes a module
// @Summary Delete a module
// @Tags modules
// @Security BearerAuth
// @Param id path int true "Module ID" Format(int64) minimum(1)
// @Success 204 "Module deleted"
// @Failure 403 {object} dto.ErrorResponse "Admins only"
// @Failure 404 {object} dto.ErrorResponse "Module not found"
// @Router /modules/{id} [delete]
func (c *CourseController) DeleteModule(ctx *gin.Context) {
	id, ok := helpers.ParseIDParam(ctx, "id")
	if !ok {
		middleware.RespondWithError(ctx, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Module not found")
		return
	}

	if _, err := c.courseService.HardDeleteModule(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
