package middleware

import (
	"context"
	"errors"
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
	"github.com/yigit/lms/internal/app/models"
	"github.com/yigit/lms/internal/app/models/dto"
	"github.com/yigit/lms/internal/pkg/apperrors"
	"github.com/yigit/lms/internal/pkg/auth"
)

// UserLookup resolves the account behind a token.
type UserLookup interface {
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
}

// AuthMiddleware for authentication and authorization
type AuthMiddleware struct {
	jwtService *auth.JWTService
	users      UserLookup
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService, users UserLookup) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService, users: users}
}

// JWTAuth validates the bearer token and rejects deactivated accounts. The
// role stored in the context comes from the database, not from the token.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			RespondWithError(c, http.StatusUnauthorized, dto.ErrorCodeUnauthorized, "Authentication required")
			return
		}

		token, err := auth.ExtractBearerToken(header)
		if err != nil {
			RespondWithError(c, http.StatusUnauthorized, dto.ErrorCodeUnauthorized, "Invalid authorization header format")
			return
		}

		claims, err := m.jwtService.ValidateAndExtractClaims(token)
		if err != nil {
			HandleAPIError(c, err)
			return
		}

		user, err := m.users.GetUserByID(c.Request.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, apperrors.ErrResourceNotFound) {
				HandleAPIError(c, auth.ErrInvalidToken)
				return
			}
			HandleAPIError(c, err)
			return
		}
		if !user.IsActive {
			HandleAPIError(c, apperrors.ErrAccountDisabled)
			return
		}

		c.Set(ContextUserID, user.ID)
		c.Set(ContextUserRole, user.Role)
		c.Next()
	}
}

// RoleRequired lets the request through only for the listed roles. It must run after JWTAuth.
func (m *AuthMiddleware) RoleRequired(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, role, ok := CurrentUser(c)
		if !ok {
			RespondWithError(c, http.StatusUnauthorized, dto.ErrorCodeUnauthorized, "Authentication required")
			return
		}
		if !slices.Contains(roles, role) {
			RespondWithError(c, http.StatusForbidden, dto.ErrorCodeForbidden, "You don't have sufficient permissions for this operation")
			return
		}
		c.Next()
	}
}
