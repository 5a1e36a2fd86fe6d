package usecase_test

import (
	"context"

	"jira-refinement-copilot/internal/copilot"
)

// Mock logger for testing
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

// mockClassifier returns a scripted classification result.
type mockClassifier struct {
	result copilot.ClassificationResult
	calls  int
}

func (m *mockClassifier) Classify(ctx context.Context, question string) copilot.ClassificationResult {
	m.calls++
	return m.result
}

// mockGenerator is a scriptable generation capability.
type mockGenerator struct {
	response   string
	err        error
	calls      int
	lastPrompt string
	panicWith  any
}

func (m *mockGenerator) Complete(ctx context.Context, prompt string) (string, error) {
	m.calls++
	m.lastPrompt = prompt
	if m.panicWith != nil {
		panic(m.panicWith)
	}
	return m.response, m.err
}
