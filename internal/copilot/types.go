package copilot

import "context"

// Intent is the classified purpose of a refinement question.
type Intent string

const (
	IntentObjective            Intent = "OBJECTIVE_INTENT"
	IntentScopeDefinition      Intent = "SCOPE_DEFINITION"
	IntentAcceptanceCriteria   Intent = "ACCEPTANCE_CRITERIA"
	IntentUIUXBehaviour        Intent = "UI_UX_BEHAVIOUR"
	IntentFigmaAlignment       Intent = "FIGMA_ALIGNMENT"
	IntentEdgeCaseRiskAnalysis Intent = "EDGE_CASE_RISK_ANALYSIS"
	IntentBusinessRule         Intent = "BUSINESS_RULE"
	IntentDependencyImpact     Intent = "DEPENDENCY_IMPACT"
	IntentStoryRefinement      Intent = "STORY_REFINEMENT"
	IntentDevelopmentReadiness Intent = "DEVELOPMENT_READINESS"
)

// AllIntents lists every known intent. Table completeness is checked
// against this list in tests.
var AllIntents = []Intent{
	IntentObjective,
	IntentScopeDefinition,
	IntentAcceptanceCriteria,
	IntentUIUXBehaviour,
	IntentFigmaAlignment,
	IntentEdgeCaseRiskAnalysis,
	IntentBusinessRule,
	IntentDependencyImpact,
	IntentStoryRefinement,
	IntentDevelopmentReadiness,
}

// Known reports whether the intent is one of the ten defined values.
func (i Intent) Known() bool {
	for _, known := range AllIntents {
		if i == known {
			return true
		}
	}
	return false
}

// ResponseStyle is the detected answer style for a question.
type ResponseStyle string

const (
	StyleConversational ResponseStyle = "CONVERSATIONAL"
	StyleStructured     ResponseStyle = "STRUCTURED"
	StyleHybrid         ResponseStyle = "HYBRID"
)

// Context holds the boolean signals extracted from a question.
// It is derived once per question and never mutated.
type Context struct {
	UIRelated             bool
	MentionsFigma         bool
	MentionsScope         bool
	MentionsAC            bool
	MentionsReady         bool
	MentionsEdgeCases     bool
	MentionsBusinessRules bool
	HasQuestionWords      bool
}

// ClassificationResult is the outcome of intent classification.
// Confidence is a single pipeline-wide value in [0,1] gating the whole
// result, including the secondary intents.
type ClassificationResult struct {
	Primary    Intent
	Secondary  []Intent // generation order, duplicates allowed
	Confidence float64
}

// Capability is an externally supplied synchronous text-in/text-out
// generation function (a model-serving endpoint, typically). The core
// invokes capabilities but never retries them; cancellation and
// timeouts are the caller's concern.
type Capability interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// RefineInput is the input to the refinement pipeline.
type RefineInput struct {
	Question string
}

// RefineOutput is the result of the refinement pipeline. Answer is
// always valid plain text: a substantive answer, a clarifying
// question, or an apology.
type RefineOutput struct {
	Answer             string
	Primary            Intent
	Secondary          []Intent
	Confidence         float64
	Style              ResponseStyle
	NeedsClarification bool
}
