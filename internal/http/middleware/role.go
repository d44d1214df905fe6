package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// RequireRoles only lets sessions whose role is in allowedRoles through.
// Anonymous requests get 401, other roles 403.
func RequireRoles(allowedRoles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[strings.ToLower(strings.TrimSpace(r))] = struct{}{}
	}

	return func(c *gin.Context) {
		rc := GetRequestContext(c)
		if !rc.Authenticated() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message":    "login required",
				"request_id": GetRequestID(c),
			})
			return
		}
		if _, ok := allowed[strings.ToLower(rc.Role)]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"message":    "unauthorized: role " + rc.Role + " may not access this page",
				"request_id": GetRequestID(c),
			})
			return
		}
		c.Next()
	}
}
