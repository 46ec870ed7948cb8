package middleware

import (
	"errors"
	"net/http"

	"go-vedascholars-backend/internal/delivery/http/response"
	"go-vedascholars-backend/pkg/apperror"
	"go-vedascholars-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				// Log the underlying cause server-side; only the public
				// message crosses the boundary.
				if appErr.Err != nil {
					logger.Log.Error("Request failed", "status", appErr.Code, "error", appErr.Err)
				}
				response.Error(c, appErr.Code, appErr.Message)
			} else {
				logger.Log.Error("Internal server error", "error", err)
				response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.")
			}
		}
	}
}
