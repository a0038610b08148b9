package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRole gates a route group to the given roles. Must run after
// AuthMiddleware.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		role, _ := c.Get(ContextUserRole)
		roleStr, _ := role.(string)

		if _, ok := allowed[roleStr]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient_role"})
			return
		}

		c.Next()
	}
}
