package middleware

import (
	"net/http"

	"planmystay/models"

	"github.com/gin-gonic/gin"
)

// RequireRole gates a route group to accounts holding the given role. It must
// run after JWTAuthMiddleware, which sets "userRole".
func RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		got, exists := c.Get("userRole")
		if !exists || got.(string) != string(role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Insufficient role for this endpoint",
			})
			return
		}
		c.Next()
	}
}
