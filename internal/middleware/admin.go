package middleware

import (
	"net/http"

	"github.com/clubhub/clubhub-backend/internal/common"
	"github.com/gin-gonic/gin"
)

// AdminLevel is the minimum member level with admin capability.
const AdminLevel = 10

// RequireAdmin checks that the authenticated user has admin level.
// Mutating content operations must sit behind this gate; the engine itself
// performs no authorization.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		level := GetUserLevel(c)
		if level < AdminLevel {
			common.ErrorResponse(c, http.StatusForbidden, "Admin privileges required", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
