package middleware

import (
	"diagnosis-srv/pkg/discord"
	"diagnosis-srv/pkg/log"
	"diagnosis-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Recovery turns handler panics, including unmapped usecase errors, into a 500 and reports them.
func Recovery(l log.Logger, d discord.IDiscord) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				l.Errorf(c.Request.Context(), "middleware.Recovery: %v | %s %s",
					rec, c.Request.Method, c.Request.URL.Path)

				response.PanicError(c, rec, d)
				c.Abort()
			}
		}()
		c.Next()
	}
}
