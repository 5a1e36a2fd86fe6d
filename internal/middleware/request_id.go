package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"jira-refinement-copilot/pkg/log"
)

// HeaderRequestID carries the request correlation ID in and out of the service.
const HeaderRequestID = "X-Request-ID"

// RequestID attaches a correlation ID to the request context so every log
// line emitted while serving the request can be tied back to it.
// An incoming X-Request-ID is honored; otherwise a new UUID is generated.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx := log.WithRequestID(c.Request.Context(), requestID)
		c.Request = c.Request.WithContext(ctx)
		c.Header(HeaderRequestID, requestID)

		c.Next()
	}
}
