package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"equiprent/internal/pkg/response"
)

// AdminOnly rejects requests from non-admin users. Must run after Auth.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsAdmin(c) {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
			c.Abort()
			return
		}
		c.Next()
	}
}
