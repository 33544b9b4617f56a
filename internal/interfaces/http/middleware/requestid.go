package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"seedfund/internal/shared/constants"
)

// RequestID attaches a request id to every request, honoring an inbound
// X-Request-ID when the caller supplies one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(constants.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(constants.ContextKeyRequestID, requestID)
		c.Writer.Header().Set(constants.HeaderXRequestID, requestID)

		c.Next()
	}
}
