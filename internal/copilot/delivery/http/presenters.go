package http

import (
	"jira-refinement-copilot/internal/copilot"
)

// --- Request DTOs ---

const (
	formatPlain = "plain"
	formatJira  = "jira"
)

type refineReq struct {
	Question string `json:"question" binding:"required,min=1,max=4000"`
	Format   string `json:"format"   binding:"omitempty,oneof=plain jira"`
}

func (r refineReq) toInput() copilot.RefineInput {
	return copilot.RefineInput{
		Question: r.Question,
	}
}

// cacheKey identifies a refinement result. Answers are deterministic for a
// given question and output format, so this is all the cache needs.
func (r refineReq) cacheKey() string {
	format := r.Format
	if format == "" {
		format = formatPlain
	}
	return format + "\x00" + r.Question
}

// --- Response DTOs ---

type refineResp struct {
	Answer             string   `json:"answer"`
	PrimaryIntent      string   `json:"primary_intent"`
	SecondaryIntents   []string `json:"secondary_intents"`
	Confidence         float64  `json:"confidence"`
	ResponseStyle      string   `json:"response_style"`
	NeedsClarification bool     `json:"needs_clarification"`
}

func (h *handler) newRefineResp(out copilot.RefineOutput, answer string) refineResp {
	secondary := make([]string, len(out.Secondary))
	for i, intent := range out.Secondary {
		secondary[i] = string(intent)
	}
	return refineResp{
		Answer:             answer,
		PrimaryIntent:      string(out.Primary),
		SecondaryIntents:   secondary,
		Confidence:         out.Confidence,
		ResponseStyle:      string(out.Style),
		NeedsClarification: out.NeedsClarification,
	}
}

type intentResp struct {
	Intent             string  `json:"intent"`
	Threshold          float64 `json:"threshold"`
	ClarifyingQuestion string  `json:"clarifying_question"`
}

type intentsResp struct {
	Intents []intentResp `json:"intents"`
}

func newIntentsResp() intentsResp {
	intents := make([]intentResp, len(copilot.AllIntents))
	for i, intent := range copilot.AllIntents {
		intents[i] = intentResp{
			Intent:             string(intent),
			Threshold:          copilot.Threshold(intent),
			ClarifyingQuestion: copilot.ClarifyingQuestion(intent),
		}
	}
	return intentsResp{Intents: intents}
}
