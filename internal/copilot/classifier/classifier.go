package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"jira-refinement-copilot/internal/copilot"
)

// classifierOutput is the expected wire structure of the capability's
// response. Fields are pointers so an absent field can be told apart
// from a zero value; unrecognized fields are ignored.
type classifierOutput struct {
	PrimaryIntent    *string   `json:"primary_intent"`
	SecondaryIntents *[]string `json:"secondary_intents"`
	Confidence       *float64  `json:"confidence"`
}

// Classify determines the intent of a question with confidence scoring.
func (c *IntentClassifier) Classify(ctx context.Context, question string) copilot.ClassificationResult {
	prompt := fmt.Sprintf(PromptClassifier, question)

	raw, err := c.capability.Complete(ctx, prompt)
	if err != nil {
		c.l.Errorf(ctx, "%s: %s: %v", LogPrefixClassify, LogMsgCapabilityFailed, err)
		return copilot.ClassificationResult{
			Primary:    copilot.IntentStoryRefinement,
			Secondary:  []copilot.Intent{},
			Confidence: copilot.ConfidenceCapabilityFailure,
		}
	}

	var output classifierOutput
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &output); err != nil {
		c.l.Warnf(ctx, "%s: %s: %v", LogPrefixClassify, LogMsgJSONParseFailed, err)
		return copilot.ClassificationResult{
			Primary:    copilot.IntentStoryRefinement,
			Secondary:  []copilot.Intent{},
			Confidence: copilot.ConfidenceParseFailure,
		}
	}

	result := copilot.ClassificationResult{
		Primary:    copilot.IntentStoryRefinement,
		Secondary:  []copilot.Intent{},
		Confidence: copilot.ConfidenceDefault,
	}

	if output.PrimaryIntent != nil {
		result.Primary = copilot.Intent(*output.PrimaryIntent)
	}
	if output.SecondaryIntents != nil {
		for _, s := range *output.SecondaryIntents {
			result.Secondary = append(result.Secondary, copilot.Intent(s))
		}
	}
	if output.Confidence != nil {
		result.Confidence = clamp(*output.Confidence, 0.0, 1.0)
	}

	c.l.Infof(ctx, "%s: %s: %s (confidence: %.2f)", LogPrefixClassify, LogMsgClassified, result.Primary, result.Confidence)
	return result
}

// stripCodeFences removes markdown code blocks (```json ... ```) that
// models commonly wrap JSON output in.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimSuffix(s, "```")
		s = strings.TrimSpace(s)
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(s, "```")
		s = strings.TrimSpace(s)
	}
	return s
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
