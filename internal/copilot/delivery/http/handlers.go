package http

import (
	"github.com/gin-gonic/gin"

	"jira-refinement-copilot/internal/copilot"
	"jira-refinement-copilot/internal/model"
	"jira-refinement-copilot/pkg/jiratext"
	"jira-refinement-copilot/pkg/log"
	"jira-refinement-copilot/pkg/response"
)

// Refine godoc
// @Summary     Refine a Jira ticket question
// @Description Classifies the question's refinement intent and generates a focused answer. Low-confidence classifications return a clarifying question instead.
// @Tags        Copilot
// @Accept      json
// @Produce     json
// @Param       body body refineReq true "Question to refine"
// @Success     200 {object} refineResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/copilot/refine [POST]
func (h *handler) Refine(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRefineReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	if h.cache != nil {
		if cached, ok := h.cache.Get(req.cacheKey()); ok {
			h.l.Debugf(ctx, "copilot.Refine: cache hit for question %q", req.Question)
			response.OK(c, cached)
			return
		}
	}

	sc := model.Scope{
		UserID:    c.GetHeader("X-User-ID"),
		RequestID: log.RequestIDFromContext(ctx),
	}

	output, err := h.uc.Refine(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Refine: %v", err)
		h.mapError(c, err)
		return
	}

	answer := output.Answer
	if req.Format == formatJira {
		answer = jiratext.Format(answer)
	}

	resp := h.newRefineResp(output, answer)

	if h.cache != nil && cacheable(output) {
		h.cache.Add(req.cacheKey(), resp)
	}

	response.OK(c, resp)
}

// cacheable reports whether a refinement output is worth caching.
// Degraded apologies are transient and must not be replayed to later callers.
func cacheable(out copilot.RefineOutput) bool {
	return out.Answer != copilot.MsgGenerationFailure &&
		out.Answer != copilot.MsgPipelineFailure
}

// Intents godoc
// @Summary     List refinement intents
// @Description Returns the supported refinement intents with their confidence thresholds and clarifying questions.
// @Tags        Copilot
// @Accept      json
// @Produce     json
// @Success     200 {object} intentsResp
// @Router      /api/v1/copilot/intents [GET]
func (h *handler) Intents(c *gin.Context) {
	response.OK(c, newIntentsResp())
}
