package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"jira-refinement-copilot/pkg/response"
)

// RateLimit applies a global token-bucket limit to refinement requests.
// Each generated answer costs an upstream LLM call, so the bucket protects
// the provider quota rather than the server itself.
func (m Middleware) RateLimit() gin.HandlerFunc {
	perMin := m.config.Copilot.RateLimitPerMin
	if perMin <= 0 {
		perMin = 60
	}

	limiter := rate.NewLimiter(rate.Limit(float64(perMin)/60.0), perMin)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for %s", c.ClientIP())
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
