package usecase

import "jira-refinement-copilot/internal/copilot"

// NeedsAssumptions decides whether the generation prompt must demand
// explicit assumption-listing for the given intent and context.
func NeedsAssumptions(intent copilot.Intent, qctx copilot.Context) bool {
	switch intent {
	case copilot.IntentAcceptanceCriteria, copilot.IntentDevelopmentReadiness:
		// High assumption needs unless the question carries UI context.
		return !qctx.UIRelated
	case copilot.IntentFigmaAlignment:
		return !qctx.MentionsFigma
	case copilot.IntentScopeDefinition:
		return !qctx.MentionsScope
	default:
		return false
	}
}
