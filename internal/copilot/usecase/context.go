package usecase

import (
	"strings"

	"jira-refinement-copilot/internal/copilot"
)

// Keyword sets for context signal extraction. A signal fires when the
// lower-cased question contains any of its keywords.
var (
	uiKeywords           = []string{"button", "screen", "click", "field", "page", "form", "input", "modal", "popup"}
	figmaKeywords        = []string{"figma", "mockup", "design mockup", "ui design"}
	scopeKeywords        = []string{"scope", "in-scope", "out of scope"}
	acKeywords           = []string{"acceptance", "ac", "criteria"}
	readyKeywords        = []string{"ready", "sprint", "development"}
	edgeCaseKeywords     = []string{"edge", "risk", "error", "failure", "exception"}
	businessRuleKeywords = []string{"rule", "validation", "condition", "if then", "if-then"}
	questionWordKeywords = []string{"what", "why", "how", "when", "where", "who"}
)

// ExtractContext derives the boolean context signals from a question.
// Total over all inputs; the flags are independent and several may be
// true at once.
func ExtractContext(question string) copilot.Context {
	q := strings.ToLower(question)

	return copilot.Context{
		UIRelated:             containsAny(q, uiKeywords),
		MentionsFigma:         containsAny(q, figmaKeywords),
		MentionsScope:         containsAny(q, scopeKeywords),
		MentionsAC:            containsAny(q, acKeywords),
		MentionsReady:         containsAny(q, readyKeywords),
		MentionsEdgeCases:     containsAny(q, edgeCaseKeywords),
		MentionsBusinessRules: containsAny(q, businessRuleKeywords),
		HasQuestionWords:      containsAny(q, questionWordKeywords),
	}
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
