package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"seedfund/internal/infrastructure/ratelimit"
	"seedfund/internal/shared/logger"
	"seedfund/internal/shared/utils"
)

// RateLimit enforces per-IP request limits on sensitive endpoints. The scope
// keeps separate budgets per endpoint group so OTP requests and login
// attempts do not share a window. When the limiter backend is unavailable the
// request passes; availability beats strictness here.
func RateLimit(limiter ratelimit.RateLimiter, scope string, cfg ratelimit.RateLimitConfig, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:%s", scope, c.ClientIP())

		allowed, err := limiter.Allow(key, cfg)
		if err != nil {
			log.Warnw("rate limiter unavailable", "error", err, "scope", scope)
			c.Next()
			return
		}
		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "Too many requests, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
