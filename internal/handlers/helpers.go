package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	apperrors "yemalin/internal/errors"
	"yemalin/internal/logger"
	"yemalin/internal/middleware"
)

// respondWithError writes a consistent error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		middleware.Respond(c, appErr)
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	middleware.Respond(c, apperrors.ErrInternalServer)
}

// bindingMessage turns the first binding failure into a sentence for the
// investor. labels maps struct field names to what the form calls them.
func bindingMessage(err error, labels map[string]string) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "The submitted form could not be read. Please check the numeric fields."
	}

	fe := verrs[0]
	label, ok := labels[fe.Field()]
	if !ok {
		label = fe.Field()
	}

	switch fe.Tag() {
	case "required":
		return label + " is required."
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s.", label, fe.Param())
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s.", label, fe.Param())
	case "horizon":
		return "Choose a short, medium or long investment horizon."
	case "weighting":
		return "Choose proportional or equal weighting."
	case "asset_class":
		return fmt.Sprintf("Unknown asset class %q.", fe.Value())
	}
	return strings.TrimSpace(label + " is invalid.")
}
