package middleware

import (
	"errors"
	"net/http"

	"go-pulse-backend/internal/delivery/http/response"
	"go-pulse-backend/pkg/apperror"
	"go-pulse-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders errors attached to the gin context into the standard
// envelope. Internal errors are logged server-side and replaced with a
// generic message so no internals leak to clients.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			response.Error(c, appErr.Code, appErr.Message, nil)
			return
		}

		logger.Log.Error("internal server error", "error", err, "path", c.Request.URL.Path)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
