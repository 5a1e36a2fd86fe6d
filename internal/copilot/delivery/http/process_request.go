package http

import (
	"github.com/gin-gonic/gin"
)

// processRefineReq binds and validates the refine request body.
func (h *handler) processRefineReq(c *gin.Context) (refineReq, error) {
	var req refineReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
