package usecase

import (
	"context"
	"strings"

	"jira-refinement-copilot/internal/copilot"
	"jira-refinement-copilot/internal/model"
)

// Refine runs the pipeline: context extraction → style detection →
// intent classification → threshold gate → assumption gate → prompt
// composition → generation → secondary-intent offer. No failure past
// input validation propagates as an error; everything degrades to
// valid text in the output.
func (uc *implUseCase) Refine(ctx context.Context, sc model.Scope, input copilot.RefineInput) (out copilot.RefineOutput, err error) {
	if strings.TrimSpace(input.Question) == "" {
		return copilot.RefineOutput{}, copilot.ErrEmptyQuestion
	}

	// Top-level failure boundary: any unexpected fault yields the
	// fixed apology text, never a raised error.
	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "%s: pipeline failure: %v", LogPrefixRefine, r)
			out = copilot.RefineOutput{Answer: copilot.MsgPipelineFailure}
			err = nil
		}
	}()

	uc.l.Infof(ctx, "%s: user=%s question=%q", LogPrefixRefine, sc.UserID, truncate(input.Question, 100))

	qctx := ExtractContext(input.Question)
	style := DetectStyle(input.Question)

	result := uc.classifier.Classify(ctx, input.Question)

	threshold := copilot.Threshold(result.Primary)
	if result.Confidence < threshold {
		uc.l.Warnf(ctx, "%s: low confidence (%.2f) below threshold (%.2f) for %s",
			LogPrefixRefine, result.Confidence, threshold, result.Primary)
		return copilot.RefineOutput{
			Answer:             copilot.ClarifyingQuestion(result.Primary),
			Primary:            result.Primary,
			Secondary:          result.Secondary,
			Confidence:         result.Confidence,
			Style:              style,
			NeedsClarification: true,
		}, nil
	}

	needsAssumptions := NeedsAssumptions(result.Primary, qctx)

	prompt := ComposePrompt(
		copilot.MasterPrompt,
		copilot.ModePrompt(result.Primary),
		input.Question,
		qctx,
		style,
		needsAssumptions,
	)

	answer, generated := uc.generate(ctx, prompt)

	// The secondary offer rides only on substantive answers; a
	// generation failure returns the apology text untouched.
	if generated && len(result.Secondary) > 0 {
		answer += secondaryOffer(result.Secondary)
	}

	return copilot.RefineOutput{
		Answer:     answer,
		Primary:    result.Primary,
		Secondary:  result.Secondary,
		Confidence: result.Confidence,
		Style:      style,
	}, nil
}

// generate invokes the generation capability. On success the text is
// whitespace-trimmed; on any failure the fixed apology is returned and
// the error is recorded for diagnostics only.
func (uc *implUseCase) generate(ctx context.Context, prompt string) (string, bool) {
	raw, err := uc.generator.Complete(ctx, prompt)
	if err != nil {
		uc.l.Errorf(ctx, "%s: response generation failed: %v", LogPrefixRefine, err)
		return copilot.MsgGenerationFailure, false
	}
	return strings.TrimSpace(raw), true
}

// secondaryOffer builds the trailing sentence offering help with the
// secondary intents, in classification order.
func secondaryOffer(secondary []copilot.Intent) string {
	names := make([]string, len(secondary))
	for i, intent := range secondary {
		names[i] = string(intent)
	}
	return SecondaryOfferPrefix + strings.Join(names, ", ") + SecondaryOfferSuffix
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
