package response

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"diagnosis-srv/pkg/discord"
	pkgErrors "diagnosis-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

// OK answers 200 with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: 0,
		Message:   messageSuccess,
		Data:      data,
	})
}

// Accepted answers 202 with data, used for work that continues in the background.
func Accepted(c *gin.Context, data any) {
	c.JSON(http.StatusAccepted, Resp{
		ErrorCode: 0,
		Message:   messageAccepted,
		Data:      data,
	})
}

// Unauthorized answers 401.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{
		ErrorCode: http.StatusUnauthorized,
		Message:   messageUnauthorized,
	})
}

// Forbidden answers 403.
func Forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, Resp{
		ErrorCode: http.StatusForbidden,
		Message:   messageForbidden,
	})
}

// Error answers with the status carried by err. HTTPError and validation errors are
// answered as-is; anything else is a 500 and is reported to Discord when configured.
func Error(c *gin.Context, err error, d discord.IDiscord) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		c.JSON(httpErr.StatusCode, Resp{
			ErrorCode: httpErr.Code,
			Message:   httpErr.Message,
		})
		return
	}

	var validationErrs pkgErrors.ValidationErrors
	if errors.As(err, &validationErrs) {
		c.JSON(http.StatusBadRequest, Resp{
			ErrorCode: http.StatusBadRequest,
			Message:   messageBadRequest,
			Errors:    validationErrs,
		})
		return
	}

	var validationErr pkgErrors.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, Resp{
			ErrorCode: http.StatusBadRequest,
			Message:   messageBadRequest,
			Errors:    pkgErrors.ValidationErrors{validationErr},
		})
		return
	}

	if d != nil {
		_ = d.ReportBug(c.Request.Context(), fmt.Sprintf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err))
	}
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   messageInternalError,
	})
}

// PanicError answers 500 for a recovered panic and reports the stack to Discord.
func PanicError(c *gin.Context, recovered any, d discord.IDiscord) {
	if d != nil {
		_ = d.ReportBug(c.Request.Context(), fmt.Sprintf("panic: %v\n%s", recovered, debug.Stack()))
	}
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   messageInternalError,
	})
}
