package middleware

import (
	"strings"

	"diagnosis-srv/pkg/response"
	"diagnosis-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c.GetHeader("Authorization"))

		// Fall back to the session cookie
		if tokenString == "" && m.cookieName != "" {
			tokenString, _ = c.Cookie(m.cookieName)
		}
		if tokenString == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		payload, err := m.jwtManager.Verify(tokenString)
		if err != nil {
			m.l.Debugf(c.Request.Context(), "middleware.Auth: Verify failed: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		ctx := c.Request.Context()
		ctx = scope.SetPayloadToContext(ctx, payload)
		ctx = scope.SetScopeToContext(ctx, scope.NewScope(payload))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRole rejects callers whose scope role is not one of roles. Must run after Auth.
func (m Middleware) RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sc := scope.GetScopeFromContext(c.Request.Context())
		for _, role := range roles {
			if sc.Role == role {
				c.Next()
				return
			}
		}
		response.Forbidden(c)
		c.Abort()
	}
}

// bearerToken supports both "Bearer <token>" and a raw token.
func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return header
}
