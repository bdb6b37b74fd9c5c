package middleware

import (
	"errors"
	"net/http"

	"aleb-backend/internal/delivery/http/response"
	"aleb-backend/pkg/apperror"
	"aleb-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders errors attached to the gin context. The underlying
// cause is logged server-side only; clients get the fixed message.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Err != nil {
				logger.Log.Error("request failed",
					"path", c.FullPath(),
					"status", appErr.Code,
					"error", appErr.Err,
				)
			}
			response.Error(c, appErr.Code, appErr.Message)
			return
		}

		logger.Log.Error("unexpected error", "path", c.FullPath(), "error", err)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.")
	}
}
