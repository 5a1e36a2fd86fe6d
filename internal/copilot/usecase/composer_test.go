package usecase_test

import (
	"strings"
	"testing"

	"jira-refinement-copilot/internal/copilot"
	"jira-refinement-copilot/internal/copilot/usecase"
)

func TestComposePrompt(t *testing.T) {
	question := "Does the submit button match the Figma design?"

	t.Run("Contains Question And Style Verbatim", func(t *testing.T) {
		prompt := usecase.ComposePrompt(
			copilot.MasterPrompt,
			copilot.ModePrompt(copilot.IntentFigmaAlignment),
			question,
			copilot.Context{MentionsFigma: true, UIRelated: true},
			copilot.StyleHybrid,
			false,
		)

		if !strings.Contains(prompt, question) {
			t.Errorf("prompt missing verbatim question")
		}
		if !strings.Contains(prompt, "Response Style: HYBRID") {
			t.Errorf("prompt missing style label")
		}
		if !strings.Contains(prompt, copilot.MasterPrompt) {
			t.Errorf("prompt missing master instruction")
		}
	})

	t.Run("Section Order Is Fixed", func(t *testing.T) {
		prompt := usecase.ComposePrompt(
			copilot.MasterPrompt,
			copilot.ModePrompt(copilot.IntentAcceptanceCriteria),
			question,
			copilot.Context{MentionsEdgeCases: true},
			copilot.StyleStructured,
			true,
		)

		positions := []int{
			strings.Index(prompt, copilot.MasterPrompt),
			strings.Index(prompt, usecase.LabelResponseStyle),
			strings.Index(prompt, usecase.LabelTask),
			strings.Index(prompt, usecase.AssumptionInstruction),
			strings.Index(prompt, usecase.BlockEdgeCaseFocus),
			strings.Index(prompt, usecase.LabelContext),
			strings.Index(prompt, usecase.LabelQuestion),
		}
		for i, pos := range positions {
			if pos < 0 {
				t.Fatalf("section %d missing from prompt", i)
			}
			if i > 0 && pos <= positions[i-1] {
				t.Errorf("section %d out of order (at %d, previous at %d)", i, pos, positions[i-1])
			}
		}
	})

	t.Run("Assumption Block Only When Gated", func(t *testing.T) {
		without := usecase.ComposePrompt(copilot.MasterPrompt, "task", question,
			copilot.Context{}, copilot.StyleHybrid, false)
		if strings.Contains(without, usecase.AssumptionInstruction) {
			t.Errorf("assumption instruction present without gating")
		}

		with := usecase.ComposePrompt(copilot.MasterPrompt, "task", question,
			copilot.Context{}, copilot.StyleHybrid, true)
		if !strings.Contains(with, usecase.AssumptionInstruction) {
			t.Errorf("assumption instruction missing when gated")
		}
	})

	t.Run("Figma Block Wins Over UI Suggestion", func(t *testing.T) {
		prompt := usecase.ComposePrompt(copilot.MasterPrompt, "task", question,
			copilot.Context{MentionsFigma: true, UIRelated: true}, copilot.StyleHybrid, false)

		if !strings.Contains(prompt, usecase.BlockFigmaEmphasis) {
			t.Errorf("expected Figma emphasis block")
		}
		if strings.Contains(prompt, usecase.BlockUISuggestFigma) {
			t.Errorf("UI suggestion must not co-occur with Figma emphasis")
		}
	})

	t.Run("UI Suggestion Without Figma", func(t *testing.T) {
		prompt := usecase.ComposePrompt(copilot.MasterPrompt, "task", question,
			copilot.Context{UIRelated: true}, copilot.StyleHybrid, false)

		if !strings.Contains(prompt, usecase.BlockUISuggestFigma) {
			t.Errorf("expected UI-without-Figma suggestion block")
		}
	})

	t.Run("Edge Case Block Co-Occurs", func(t *testing.T) {
		prompt := usecase.ComposePrompt(copilot.MasterPrompt, "task", question,
			copilot.Context{MentionsFigma: true, MentionsEdgeCases: true}, copilot.StyleHybrid, false)

		if !strings.Contains(prompt, usecase.BlockFigmaEmphasis) || !strings.Contains(prompt, usecase.BlockEdgeCaseFocus) {
			t.Errorf("Figma and edge-case blocks must co-occur")
		}
	})

	t.Run("Context Dump Has All Fields", func(t *testing.T) {
		prompt := usecase.ComposePrompt(copilot.MasterPrompt, "task", question,
			copilot.Context{}, copilot.StyleHybrid, false)

		for _, field := range []string{
			"ui_related", "mentions_figma", "mentions_scope", "mentions_ac",
			"mentions_ready", "mentions_edge_cases", "mentions_business_rules", "has_question_words",
		} {
			if !strings.Contains(prompt, field+": ") {
				t.Errorf("context dump missing field %s", field)
			}
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		qctx := copilot.Context{UIRelated: true, MentionsEdgeCases: true}
		a := usecase.ComposePrompt(copilot.MasterPrompt, "task", question, qctx, copilot.StyleStructured, true)
		b := usecase.ComposePrompt(copilot.MasterPrompt, "task", question, qctx, copilot.StyleStructured, true)
		if a != b {
			t.Errorf("identical inputs must produce identical prompts")
		}
	})
}
