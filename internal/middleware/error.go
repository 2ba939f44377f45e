package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "yemalin/internal/errors"
	"yemalin/internal/logger"
)

// ErrorTemplate is the HTML template rendered for browser requests.
const ErrorTemplate = "error.html"

// ErrorHandler returns a Gin middleware that converts errors set on the Gin
// context into a response. Browsers get the error page; API clients get the
// JSON error envelope. Unexpected errors are logged and replaced by a generic
// internal error.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err

		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			if appErr.Internal != nil {
				logger.Get().Errorw("app error",
					"code", appErr.Code,
					"message", appErr.Message,
					"internal", appErr.Internal.Error(),
					"path", c.Request.URL.Path,
				)
			}
		} else {
			logger.Get().Errorw("unexpected error",
				"error", err.Error(),
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
			)
			appErr = apperrors.ErrInternalServer
		}

		Respond(c, appErr)
	}
}

// NotFound answers unmatched routes with NOT_FOUND.
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		Respond(c, apperrors.ErrNotFound)
	}
}

// Respond writes appErr in the format the client asked for.
func Respond(c *gin.Context, appErr *apperrors.AppError) {
	switch c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) {
	case gin.MIMEHTML:
		c.HTML(appErr.StatusCode, ErrorTemplate, gin.H{
			"Title":   http.StatusText(appErr.StatusCode),
			"Status":  http.StatusText(appErr.StatusCode),
			"Code":    appErr.Code,
			"Message": appErr.Message,
		})
	default:
		c.JSON(appErr.StatusCode, gin.H{
			"error": gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		})
	}
	c.Abort()
}
