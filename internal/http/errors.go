package http

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"habit-tracker-go/internal/logger"
	"habit-tracker-go/internal/tracker"
)

func abortWithError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, tracker.ErrNotFound):
		c.AbortWithStatusJSON(404, gin.H{"error": tracker.Message(err, "not found")})
	case errors.Is(err, tracker.ErrInvalidArgument):
		c.AbortWithStatusJSON(400, gin.H{"error": tracker.Message(err, "invalid argument")})
	case errors.Is(err, context.DeadlineExceeded):
		logger.Warn("request timed out", "path", c.Request.URL.Path, "request_id", c.GetString("requestID"))
		c.AbortWithStatusJSON(504, gin.H{"error": "request_timeout"})
	default:
		logger.Error("request failed", "path", c.Request.URL.Path, "request_id", c.GetString("requestID"), "error", err)
		c.AbortWithStatusJSON(500, gin.H{"error": tracker.Message(err, "internal_error")})
	}
}
