package http

import (
	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru/v2"

	"jira-refinement-copilot/internal/copilot"
	"jira-refinement-copilot/pkg/log"
)

// Handler is the public interface for the copilot HTTP delivery layer.
type Handler interface {
	Refine(c *gin.Context)
	Intents(c *gin.Context)
}

type handler struct {
	l     log.Logger
	uc    copilot.UseCase
	cache *lru.Cache[string, refineResp]
}

// New creates a new HTTP handler for the copilot domain.
// cacheSize bounds the answer cache; values <= 0 disable caching.
func New(l log.Logger, uc copilot.UseCase, cacheSize int) (*handler, error) {
	h := &handler{
		l:  l,
		uc: uc,
	}

	if cacheSize > 0 {
		cache, err := lru.New[string, refineResp](cacheSize)
		if err != nil {
			return nil, err
		}
		h.cache = cache
	}

	return h, nil
}
