package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"jira-refinement-copilot/internal/copilot"
	"jira-refinement-copilot/pkg/response"
)

// mapError translates use-case errors into HTTP responses.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, copilot.ErrEmptyQuestion):
		response.BadRequest(c, err)
	default:
		response.InternalError(c)
	}
}
