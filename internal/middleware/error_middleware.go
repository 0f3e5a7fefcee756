package middleware

import (
	"errors"
	"net/http"
	"unicode"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/yigit/lms/internal/app/models/dto"
	"github.com/yigit/lms/internal/pkg/apperrors"
	"github.com/yigit/lms/internal/pkg/logger"
)

// RespondWithError aborts the request with a standard error body.
func RespondWithError(c *gin.Context, status int, code dto.ErrorCode, message string) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
}

// HandleAPIError maps application errors to HTTP responses. Anything it does
// not recognise is logged and reported as a generic 500.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound):
		RespondWithError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, publicMessage(err, "Resource not found"))
	case errors.Is(err, apperrors.ErrInvalidReference):
		RespondWithError(c, http.StatusBadRequest, dto.ErrorCodeInvalidReference, publicMessage(err, "Referenced record does not exist"))
	case errors.Is(err, apperrors.ErrValidationFailed):
		RespondWithError(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, publicMessage(err, "Validation failed"))
	case errors.Is(err, apperrors.ErrBadRequest):
		RespondWithError(c, http.StatusBadRequest, dto.ErrorCodeBadRequest, publicMessage(err, "Bad request"))
	case errors.Is(err, apperrors.ErrConflict):
		RespondWithError(c, http.StatusConflict, dto.ErrorCodeConflict, publicMessage(err, "Conflict"))
	case errors.Is(err, apperrors.ErrTokenExpired):
		RespondWithError(c, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired")
	case errors.Is(err, apperrors.ErrTokenInvalid):
		RespondWithError(c, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token")
	case errors.Is(err, apperrors.ErrAccountDisabled):
		RespondWithError(c, http.StatusForbidden, dto.ErrorCodeForbidden, "Account is disabled")
	case errors.Is(err, apperrors.ErrPermissionDenied):
		RespondWithError(c, http.StatusForbidden, dto.ErrorCodeForbidden, publicMessage(err, "Permission denied"))
	default:
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Msg("Unhandled API error")
		RespondWithError(c, http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error")
	}
}

// publicMessage returns the message of the outermost CustomError in the chain,
// sentence-cased, or fallback when there is none.
func publicMessage(err error, fallback string) string {
	var custom *apperrors.CustomError
	if !errors.As(err, &custom) || custom.Message == "" {
		return fallback
	}
	r, size := utf8.DecodeRuneInString(custom.Message)
	return string(unicode.ToUpper(r)) + custom.Message[size:]
}
