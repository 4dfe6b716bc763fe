package ratelimit

import (
	"fmt"
	"net/http"

	authHandler "marketing-server/internal/auth/handler"
	"marketing-server/internal/observability"

	"github.com/gin-gonic/gin"
)

// Middleware limits generation requests per authenticated user.
// Requests without a user id pass through untouched.
func (s *Service) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := authHandler.UserID(c)
		if !ok {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		result, err := s.Check(ctx, userID)
		if err != nil {
			s.logger.Error(ctx, "rate limit check failed", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error", "code": "INTERNAL_ERROR"})
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", result.Limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", result.Remaining))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", result.ResetAt.Unix()))

		if !result.Allowed {
			retryAfter := (result.RetryAfterMs + 999) / 1000
			c.Header("Retry-After", fmt.Sprintf("%d", retryAfter))
			ctx = observability.WithFields(ctx, observability.Field{Key: "retry_after_ms", Value: result.RetryAfterMs})
			s.logger.Warn(ctx, "generation rate limit exceeded")

			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "Too many generation requests, please wait before trying again",
				"code":        "RATE_LIMIT_EXCEEDED",
				"limit":       result.Limit,
				"retry_after": retryAfter,
				"reset_at":    result.ResetAt.Unix(),
			})
			return
		}

		c.Next()
	}
}
