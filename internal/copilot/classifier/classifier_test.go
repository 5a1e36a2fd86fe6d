package classifier_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"jira-refinement-copilot/internal/copilot"
	"jira-refinement-copilot/internal/copilot/classifier"
)

type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockCapability is a scriptable text capability.
type mockCapability struct {
	response   string
	err        error
	lastPrompt string
}

func (m *mockCapability) Complete(ctx context.Context, prompt string) (string, error) {
	m.lastPrompt = prompt
	return m.response, m.err
}

func TestClassify(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful Classification", func(t *testing.T) {
		capMock := &mockCapability{
			response: `{"primary_intent":"OBJECTIVE_INTENT","secondary_intents":["SCOPE_DEFINITION"],"confidence":0.85}`,
		}
		c := classifier.New(capMock, mockLogger{})

		result := c.Classify(ctx, "What is the objective of the forgot password submit button?")
		if result.Primary != copilot.IntentObjective {
			t.Errorf("expected OBJECTIVE_INTENT, got %s", result.Primary)
		}
		if len(result.Secondary) != 1 || result.Secondary[0] != copilot.IntentScopeDefinition {
			t.Errorf("unexpected secondary intents: %v", result.Secondary)
		}
		if result.Confidence != 0.85 {
			t.Errorf("expected confidence 0.85, got %v", result.Confidence)
		}
		if !strings.Contains(capMock.lastPrompt, "forgot password submit button") {
			t.Errorf("prompt missing the classified question")
		}
	})

	t.Run("Fenced JSON Is Accepted", func(t *testing.T) {
		capMock := &mockCapability{
			response: "```json\n{\"primary_intent\":\"BUSINESS_RULE\",\"secondary_intents\":[],\"confidence\":0.9}\n```",
		}
		c := classifier.New(capMock, mockLogger{})

		result := c.Classify(ctx, "What validation rules apply?")
		if result.Primary != copilot.IntentBusinessRule {
			t.Errorf("expected BUSINESS_RULE, got %s", result.Primary)
		}
		if result.Confidence != 0.9 {
			t.Errorf("expected confidence 0.9, got %v", result.Confidence)
		}
	})

	t.Run("Capability Failure Degrades To 0.3", func(t *testing.T) {
		capMock := &mockCapability{err: errors.New("endpoint unavailable")}
		c := classifier.New(capMock, mockLogger{})

		result := c.Classify(ctx, "anything")
		if result.Primary != copilot.IntentStoryRefinement {
			t.Errorf("expected STORY_REFINEMENT, got %s", result.Primary)
		}
		if result.Confidence != copilot.ConfidenceCapabilityFailure {
			t.Errorf("expected confidence 0.3 exactly, got %v", result.Confidence)
		}
		if len(result.Secondary) != 0 {
			t.Errorf("expected empty secondary intents")
		}
	})

	t.Run("Unparseable Output Degrades To 0.4", func(t *testing.T) {
		capMock := &mockCapability{response: "I think this question is about acceptance criteria."}
		c := classifier.New(capMock, mockLogger{})

		result := c.Classify(ctx, "anything")
		if result.Primary != copilot.IntentStoryRefinement {
			t.Errorf("expected STORY_REFINEMENT, got %s", result.Primary)
		}
		if result.Confidence != copilot.ConfidenceParseFailure {
			t.Errorf("expected confidence 0.4 exactly, got %v", result.Confidence)
		}
	})

	t.Run("Malformed Field Types Degrade To 0.4", func(t *testing.T) {
		capMock := &mockCapability{response: `{"primary_intent":123,"confidence":"high"}`}
		c := classifier.New(capMock, mockLogger{})

		result := c.Classify(ctx, "anything")
		if result.Confidence != copilot.ConfidenceParseFailure {
			t.Errorf("expected confidence 0.4 for malformed fields, got %v", result.Confidence)
		}
	})

	t.Run("Missing Fields Use Defaults", func(t *testing.T) {
		capMock := &mockCapability{response: `{"primary_intent":"ACCEPTANCE_CRITERIA"}`}
		c := classifier.New(capMock, mockLogger{})

		result := c.Classify(ctx, "anything")
		if result.Primary != copilot.IntentAcceptanceCriteria {
			t.Errorf("expected ACCEPTANCE_CRITERIA, got %s", result.Primary)
		}
		if len(result.Secondary) != 0 {
			t.Errorf("expected empty secondary default, got %v", result.Secondary)
		}
		if result.Confidence != copilot.ConfidenceDefault {
			t.Errorf("expected default confidence 0.5, got %v", result.Confidence)
		}
	})

	t.Run("Missing Primary Defaults To Story Refinement", func(t *testing.T) {
		capMock := &mockCapability{response: `{"secondary_intents":["UI_UX_BEHAVIOUR"],"confidence":0.7}`}
		c := classifier.New(capMock, mockLogger{})

		result := c.Classify(ctx, "anything")
		if result.Primary != copilot.IntentStoryRefinement {
			t.Errorf("expected STORY_REFINEMENT default, got %s", result.Primary)
		}
		if result.Confidence != 0.7 {
			t.Errorf("expected confidence 0.7, got %v", result.Confidence)
		}
	})

	t.Run("Out Of Range Confidence Is Clamped", func(t *testing.T) {
		capMock := &mockCapability{response: `{"primary_intent":"BUSINESS_RULE","confidence":1.7}`}
		c := classifier.New(capMock, mockLogger{})

		result := c.Classify(ctx, "anything")
		if result.Confidence != 1.0 {
			t.Errorf("expected clamped confidence 1.0, got %v", result.Confidence)
		}
	})

	t.Run("Unrecognized Fields Are Ignored", func(t *testing.T) {
		capMock := &mockCapability{
			response: `{"primary_intent":"DEPENDENCY_IMPACT","secondary_intents":[],"confidence":0.8,"reasoning":"because"}`,
		}
		c := classifier.New(capMock, mockLogger{})

		result := c.Classify(ctx, "anything")
		if result.Primary != copilot.IntentDependencyImpact {
			t.Errorf("expected DEPENDENCY_IMPACT, got %s", result.Primary)
		}
	})
}
