package copilot

import (
	"context"

	"jira-refinement-copilot/internal/model"
)

// UseCase defines the business logic interface for the copilot domain.
type UseCase interface {
	// Refine runs the full classification-and-composition pipeline for
	// a single question. Once the pipeline starts, every failure mode
	// degrades to valid text in RefineOutput.Answer.
	Refine(ctx context.Context, sc model.Scope, input RefineInput) (RefineOutput, error)
}
