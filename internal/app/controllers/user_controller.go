package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/lms/internal/app/models"
	"github.com/yigit/lms/internal/app/models/dto"
	"github.com/yigit/lms/internal/app/services"
	"github.com/yigit/lms/internal/middleware"
	"github.com/yigit/lms/internal/pkg/helpers"
)

// UserController handles user-related operations
type UserController struct {
	userService       services.UserService
	enrollmentService services.EnrollmentService
}

// NewUserController creates a new UserController
func NewUserController(userService services.UserService, enrollmentService services.EnrollmentService) *UserController {
	return &UserController{
		userService:       userService,
		enrollmentService: enrollmentService,
	}
}

// CreateUser registers a new user
// @Summary Create a user
// @Description Creates a user. Role defaults to student.
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.CreateUserRequest true "User information"
// @Success 201 {object} dto.UserResponse "User created"
// @Failure 400 {object} dto.ErrorResponse "Email already registered, invalid role or invalid body"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/ [post]
func (c *UserController) CreateUser(ctx *gin.Context) {
	var req dto.CreateUserRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	exists, err := c.userService.EmailExists(ctx, req.Email)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if exists {
		middleware.RespondWithError(ctx, http.StatusBadRequest, dto.ErrorCodeConflict, "Email already registered")
		return
	}

	role := models.RoleStudent
	if req.Role != nil {
		if role, err = models.ParseUserRole(*req.Role); err != nil {
			middleware.RespondWithError(ctx, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Invalid role. Use: student, instructor, admin")
			return
		}
	}

	user, err := c.userService.CreateUser(ctx, req.FullName, req.Email, role)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewUserResponse(user))
}

// GetUser returns a single user, active or not
// @Summary Get a user
// @Tags users
// @Produce json
// @Param id path int true "User ID" Format(int64) minimum(1)
// @Success 200 {object} dto.UserResponse
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /users/{id} [get]
func (c *UserController) GetUser(ctx *gin.Context) {
	id, ok := helpers.ParseIDParam(ctx, "id")
	if !ok {
		middleware.RespondWithError(ctx, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "User not found")
		return
	}

	user, err := c.userService.GetUserByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// ListUsers returns users page by page
// @Summary List users
// @Tags users
// @Produce json
// @Param page query int false "Page number (1-based)" default(1)
// @Param size query int false "Page size" default(20)
// @Success 200 {array} dto.UserResponse
// @Router /users/ [get]
func (c *UserController) ListUsers(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	users, err := c.userService.ListUsers(ctx, offset, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.NewUserResponse(u))
	}
	ctx.JSON(http.StatusOK, out)
}

// ListEnrollments returns the courses a user is enrolled in
// @Summary List a user's enrollments
// @Tags users
// @Produce json
// @Param id path int true "User ID" Format(int64) minimum(1)
// @Success 200 {array} dto.EnrollmentResponse
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /users/{id}/enrollments [get]
func (c *UserController) ListEnrollments(ctx *gin.Context) {
	id, ok := helpers.ParseIDParam(ctx, "id")
	if !ok {
		middleware.RespondWithError(ctx, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "User not found")
		return
	}

	enrollments, err := c.enrollmentService.ListEnrollments(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	out := make([]dto.EnrollmentResponse, 0, len(enrollments))
	for _, e := range enrollments {
		out = append(out, dto.NewEnrollmentResponse(e))
	}
	ctx.JSON(http.StatusOK, out)
}

// DeleteUser soft-deletes a user
// @Summary Deactivate a user
// @Description Marks the user inactive. The record stays readable.
// @Tags users
// @Security BearerAuth
// @Param id path int true "User ID" Format(int64) minimum(1)
// @Success 204 "User deactivated"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Admins only"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /users/{id} [delete]
func (c *UserController) DeleteUser(ctx *gin.Context) {
	id, ok := helpers.ParseIDParam(ctx, "id")
	if !ok {
		middleware.RespondWithError(ctx, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "User not found")
		return
	}

	if _, err := c.userService.SoftDeleteUser(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
