package middleware

import (
	"strings"

	"carrental/internal/domain"

	"github.com/gin-gonic/gin"
)

const (
	SessionCookie     = "session"
	requestContextKey = "request_context"
)

// SessionParser turns a session token into the caller identity.
type SessionParser interface {
	Parse(token string) (domain.RequestContext, error)
}

// Session decodes the session cookie (or a Bearer token) into a
// domain.RequestContext. Missing or invalid tokens leave the request
// anonymous; gating is done by RequireRoles and the services.
func Session(p SessionParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			token, _ = c.Cookie(SessionCookie)
		}
		if token != "" {
			if rc, err := p.Parse(token); err == nil {
				c.Set(requestContextKey, rc)
			}
		}
		c.Next()
	}
}

func bearerToken(h string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(h), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// GetRequestContext returns the caller identity, zero for anonymous requests.
func GetRequestContext(c *gin.Context) domain.RequestContext {
	if c == nil {
		return domain.RequestContext{}
	}
	if v, ok := c.Get(requestContextKey); ok {
		if rc, ok := v.(domain.RequestContext); ok {
			return rc
		}
	}
	return domain.RequestContext{}
}
