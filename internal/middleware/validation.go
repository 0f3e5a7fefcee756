package middleware

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/yigit/lms/internal/app/models/dto"
	"github.com/yigit/lms/internal/pkg/validation"
)

// ConfigureValidator registers the custom rules on gin's validator and makes
// validation errors report json field names (full_name) instead of Go field
// names (FullName).
func ConfigureValidator() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	if err := validation.Register(v); err != nil {
		return err
	}
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})
	return nil
}

// BindJSON binds the request body into obj. On failure it writes a 400
// response and returns false.
func BindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(FormatBindingError(err)))
		return false
	}
	return true
}

// FormatBindingError turns a binding or validation error into an ErrorDetail.
func FormatBindingError(err error) *dto.ErrorDetail {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return dto.NewErrorDetail(dto.ErrorCodeBadRequest, "Invalid request body").WithDetails(err.Error())
	}

	fields := make(map[string]string, len(validationErrs))
	for _, fe := range validationErrs {
		fields[fe.Field()] = formatValidationError(fe)
	}

	first := validationErrs[0]
	return dto.NewErrorDetail(dto.ErrorCodeValidationFailed, formatValidationError(first)).
		WithField(first.Field()).
		WithDetails(fields)
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "gt":
		return e.Field() + " must be greater than " + e.Param()
	case validation.TagNotBlank:
		return e.Field() + " must not be blank"
	case validation.TagTitle:
		return e.Field() + " must be a non-blank single line"
	case "email":
		return e.Field() + " must be a valid email address"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
