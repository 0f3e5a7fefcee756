package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/lms/internal/app/models/dto"
	"github.com/yigit/lms/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serveError(t *testing.T, err error) (int, dto.ErrorResponse) {
	t.Helper()
	r := gin.New()
	r.GET("/", func(c *gin.Context) { HandleAPIError(c, err) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantDetail string
	}{
		{"user not found", apperrors.ErrUserNotFound, http.StatusNotFound, "User not found"},
		{"wrapped not found", fmt.Errorf("grade: %w", apperrors.ErrSubmissionNotFound), http.StatusNotFound, "Submission not found"},
		{"duplicate email", apperrors.ErrEmailAlreadyExists, http.StatusBadRequest, "Email already registered"},
		{"invalid role", apperrors.ErrInvalidRole, http.StatusBadRequest, "Invalid role. Use: student, instructor, admin"},
		{"score range", fmt.Errorf("%w: 150 not in [0, 100]", apperrors.ErrScoreOutOfRange), http.StatusBadRequest, "Score is outside the allowed range"},
		{"bad reference", fmt.Errorf("enrollments: %w", apperrors.ErrInvalidReference), http.StatusBadRequest, "Referenced record does not exist"},
		{"plain validation", fmt.Errorf("%w: title required", apperrors.ErrValidationFailed), http.StatusBadRequest, "Validation failed"},
		{"forbidden", apperrors.NewForbiddenError("not your course"), http.StatusForbidden, "Not your course"},
		{"disabled", apperrors.ErrAccountDisabled, http.StatusForbidden, "Account is disabled"},
		{"storage", errors.New("connection reset"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := serveError(t, tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantDetail, body.Detail)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantDetail, body.Error.Message)
		})
	}
}

func TestBindJSONReportsFieldNames(t *testing.T) {
	require.NoError(t, ConfigureValidator())

	r := gin.New()
	r.POST("/", func(c *gin.Context) {
		var req dto.CreateUserRequest
		if !BindJSON(c, &req) {
			return
		}
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", stringsReader(`{"email":"not-an-email"}`)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, dto.ErrorCodeValidationFailed, body.Error.Code)
	assert.Contains(t, body.Error.Details, "email")
	assert.Contains(t, body.Error.Details, "full_name")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", stringsReader(`{broken`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
