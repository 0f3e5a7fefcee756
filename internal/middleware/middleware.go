package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/lms/internal/app/models"
)

// Context keys set by the middleware in this package.
const (
	ContextUserID    = "userID"
	ContextUserRole  = "userRole"
	ContextRequestID = "requestID"
)

// CurrentUser returns the authenticated caller stored by JWTAuth.
func CurrentUser(c *gin.Context) (int64, models.UserRole, bool) {
	id, ok := c.Get(ContextUserID)
	if !ok {
		return 0, "", false
	}
	role, _ := c.Get(ContextUserRole)
	userID, ok := id.(int64)
	if !ok {
		return 0, "", false
	}
	userRole, _ := role.(models.UserRole)
	return userID, userRole, true
}
