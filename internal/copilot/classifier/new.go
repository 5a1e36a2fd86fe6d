package classifier

import (
	"context"

	"jira-refinement-copilot/internal/copilot"
	"jira-refinement-copilot/pkg/log"
)

// Classifier is the interface for intent classification.
type Classifier interface {
	// Classify determines the intent of a question. It never fails:
	// every capability or parse failure degrades to a well-defined
	// STORY_REFINEMENT result.
	Classify(ctx context.Context, question string) copilot.ClassificationResult
}

// IntentClassifier classifies question intent using an external
// text-generation capability.
type IntentClassifier struct {
	capability copilot.Capability
	l          log.Logger
}

var _ Classifier = (*IntentClassifier)(nil)

// New creates a new IntentClassifier.
func New(capability copilot.Capability, l log.Logger) *IntentClassifier {
	return &IntentClassifier{
		capability: capability,
		l:          l,
	}
}
