package http

import (
	"github.com/gin-gonic/gin"

	"jira-refinement-copilot/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Refine is rate limited because each uncached call may reach the LLM twice.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	copilotGroup := rg.Group("/copilot")
	{
		copilotGroup.POST("/refine", mw.RateLimit(), h.Refine)
		copilotGroup.GET("/intents", h.Intents)
	}
}
