package usecase

import (
	"strings"

	"jira-refinement-copilot/internal/copilot"
)

// Style keyword sets. Evaluation order is a tie-break rule:
// conversational wins over structured when both match.
var (
	conversationalKeywords = []string{"just explain", "in simple terms", "what is", "why", "help me understand"}
	structuredKeywords     = []string{"acceptance", "scope", "ready", "criteria", "list", "define"}
)

// DetectStyle picks the response style for a question. Exactly one of
// CONVERSATIONAL, STRUCTURED, or HYBRID is returned.
func DetectStyle(question string) copilot.ResponseStyle {
	q := strings.ToLower(question)

	if containsAny(q, conversationalKeywords) {
		return copilot.StyleConversational
	}
	if containsAny(q, structuredKeywords) {
		return copilot.StyleStructured
	}
	return copilot.StyleHybrid
}
