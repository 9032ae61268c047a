// middleware/rate_limiter.go

package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/metacat/db"
	metacat_errors "github.com/dev-mohitbeniwal/metacat/errors"
	logger "github.com/dev-mohitbeniwal/metacat/logging"
	"github.com/dev-mohitbeniwal/metacat/util"
)

// RateLimiter bounds requests per authenticated user, falling back to the client IP.
// Session ids are client-chosen and never used as the key.
func RateLimiter(limit int, per time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "ip:" + c.ClientIP()
		if user := util.GetUserFromContext(c); user != nil && user.ID != "" {
			key = "user:" + user.ID
		}

		allowed, err := db.RateLimit(c.Request.Context(), key, limit, per)
		if err != nil {
			util.RespondWithError(c, http.StatusInternalServerError, "Rate limiting failed", err)
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Duration", per.String())

		if !allowed {
			logger.Warn("Rate limit exceeded",
				zap.String("key", key),
				zap.Int("limit", limit),
				zap.Duration("per", per))
			util.RespondWithError(c, http.StatusTooManyRequests, "Rate limit exceeded", metacat_errors.ErrRateLimitExceeded)
			c.Abort()
			return
		}

		c.Next()
	}
}
