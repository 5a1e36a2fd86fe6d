package usecase

import (
	"jira-refinement-copilot/internal/copilot"
	"jira-refinement-copilot/internal/copilot/classifier"
	pkgLog "jira-refinement-copilot/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	classifier classifier.Classifier
	generator  copilot.Capability
}

var _ copilot.UseCase = (*implUseCase)(nil)

// New creates a new copilot UseCase instance.
func New(l pkgLog.Logger, cls classifier.Classifier, generator copilot.Capability) *implUseCase {
	return &implUseCase{
		l:          l,
		classifier: cls,
		generator:  generator,
	}
}
