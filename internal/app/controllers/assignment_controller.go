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

// AssignmentController handles submissions and grading
type AssignmentController struct {
	assignmentService services.AssignmentService
	authz             *auth.AuthorizationService
}

// NewAssignmentController creates a new AssignmentController
func NewAssignmentController(assignmentService services.AssignmentService, authz *auth.AuthorizationService) *AssignmentController {
	return &AssignmentController{assignmentService: assignmentService, authz: authz}
}

// Submit stores a student's homework
// @Summary Submit homework
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path int true "Assignment ID" Format(int64) minimum(1)
// @Param request body dto.SubmitRequest true "Submission"
// @Success 201 {object} dto.SubmissionResponse
// @Failure 400 {object} dto.ErrorResponse "Unknown assignment or student"
// @Router /assignments/{id}/submissions [post]
func (c *AssignmentController) Submit(ctx *gin.Context) {
	assignmentID, ok := helpers.ParseIDParam(ctx, "id")
	if !ok {
		middleware.RespondWithError(ctx, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Assignment not found")
		return
	}
	var req dto.SubmitRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	submission, err := c.assignmentService.SubmitHomework(ctx, assignmentID, req.StudentID, req.Content)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSubmissionResponse(submission))
}

// Grade sets a submission's score
// @Summary Grade a submission
// @Description The score must lie within 0..max_score of the assignment.
// @Tags assignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Submission ID" Format(int64) minimum(1)
// @Param request body dto.GradeRequest true "Score"
// @Success 200 {object} dto.SubmissionResponse
// @Failure 400 {object} dto.ErrorResponse "Score out of range"
// @Failure 403 {object} dto.ErrorResponse "Not the course instructor"
// @Failure 404 {object} dto.ErrorResponse "Submission not found"
// @Router /submissions/{id}/grade [put]
func (c *AssignmentController) Grade(ctx *gin.Context) {
	submissionID, ok := helpers.ParseIDParam(ctx, "id")
	if !ok {
		middleware.RespondWithError(ctx, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Submission not found")
		return
	}
	var req dto.GradeRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	userID, role, _ := middleware.CurrentUser(ctx)
	if err := c.authz.RequireGrader(ctx, userID, role, submissionID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	submission, err := c.assignmentService.GradeSubmission(ctx, submissionID, *req.Score)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSubmissionResponse(submission))
}
