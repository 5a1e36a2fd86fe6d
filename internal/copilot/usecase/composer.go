package usecase

import (
	"fmt"
	"strings"

	"jira-refinement-copilot/internal/copilot"
)

// ComposePrompt assembles the final generation prompt from named
// sections in fixed order: master instruction, style label, task
// template, optional assumption instruction, context-conditional
// warning blocks, the context dump, and the verbatim question.
// Deterministic for identical inputs, so callers may cache on it.
func ComposePrompt(
	master string,
	modePrompt string,
	question string,
	qctx copilot.Context,
	style copilot.ResponseStyle,
	needsAssumptions bool,
) string {
	sections := []string{
		master,
		LabelResponseStyle + string(style),
		LabelTask + "\n" + modePrompt,
	}

	if needsAssumptions {
		sections = append(sections, AssumptionInstruction)
	}

	if warnings := warningBlocks(qctx); len(warnings) > 0 {
		sections = append(sections, strings.Join(warnings, "\n"))
	}

	sections = append(sections,
		LabelContext+"\n"+renderContext(qctx),
		LabelQuestion+"\n"+question,
	)

	return strings.Join(sections, "\n\n")
}

// warningBlocks returns the conditional warning blocks in their fixed
// order: Figma emphasis wins over the UI-without-Figma suggestion; the
// edge-case block is independent and may co-occur with either.
func warningBlocks(qctx copilot.Context) []string {
	var blocks []string
	if qctx.MentionsFigma {
		blocks = append(blocks, BlockFigmaEmphasis)
	} else if qctx.UIRelated {
		blocks = append(blocks, BlockUISuggestFigma)
	}
	if qctx.MentionsEdgeCases {
		blocks = append(blocks, BlockEdgeCaseFocus)
	}
	return blocks
}

// renderContext dumps the context record with a fixed field order.
func renderContext(qctx copilot.Context) string {
	return fmt.Sprintf(
		"ui_related: %t\n"+
			"mentions_figma: %t\n"+
			"mentions_scope: %t\n"+
			"mentions_ac: %t\n"+
			"mentions_ready: %t\n"+
			"mentions_edge_cases: %t\n"+
			"mentions_business_rules: %t\n"+
			"has_question_words: %t",
		qctx.UIRelated,
		qctx.MentionsFigma,
		qctx.MentionsScope,
		qctx.MentionsAC,
		qctx.MentionsReady,
		qctx.MentionsEdgeCases,
		qctx.MentionsBusinessRules,
		qctx.HasQuestionWords,
	)
}
