package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nulzo/assist-router/pkg/api"
	"go.uber.org/zap"
)

// ErrorHandler converts errors attached by handlers into RFC 9457
// problem responses. Unknown errors collapse into a generic 500 so no
// internal detail leaks to the client.
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		// first, check if it's one of our problem types
		if problem, ok := err.(*api.Problem); ok {
			// if there is an internal log attached, log it
			if problem.Log != nil {
				logger.Error("request failed", zap.Error(problem.Log), zap.String("title", problem.Title))
			}

			// RFC 9457 dictates the json is at the root
			c.JSON(problem.Status, problem)
			c.Abort()
			return
		}

		// at this point it's an unknown error, catch-all 500
		logger.Error("unhandled error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, api.NewError(
			http.StatusInternalServerError,
			"Internal Server Error",
			"An unexpected error occurred.",
		))
		c.Abort()
	}
}
