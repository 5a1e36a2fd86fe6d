package llmprovider

import (
	"context"
	"errors"
	"testing"
	"time"
)

// fakeProvider is a scriptable Provider for manager tests.
type fakeProvider struct {
	name  string
	text  string
	err   error
	calls int
	delay time.Duration
}

func (f *fakeProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	f.calls++
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return &Response{
		Text:         f.text,
		ProviderName: f.name,
		ModelName:    "fake-model",
		Usage:        &Usage{InputTokens: 1, OutputTokens: 1, TotalTokens: 2},
	}, nil
}

func (f *fakeProvider) Name() string  { return f.name }
func (f *fakeProvider) Model() string { return "fake-model" }

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, arg ...any)                    {}
func (nopLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) Info(ctx context.Context, arg ...any)                     {}
func (nopLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (nopLogger) Warn(ctx context.Context, arg ...any)                     {}
func (nopLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (nopLogger) Error(ctx context.Context, arg ...any)                    {}
func (nopLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (nopLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (nopLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (nopLogger) Panic(ctx context.Context, arg ...any)                    {}
func (nopLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func TestManagerGenerateContent(t *testing.T) {
	req := &Request{Messages: []Message{{Role: "user", Text: "hello"}}}

	t.Run("No Providers", func(t *testing.T) {
		m := NewManager(nil, &Config{}, nopLogger{})
		_, err := m.GenerateContent(context.Background(), req)
		if !errors.Is(err, ErrNoProvidersConfigured) {
			t.Errorf("expected ErrNoProvidersConfigured, got %v", err)
		}
	})

	t.Run("First Provider Succeeds", func(t *testing.T) {
		p1 := &fakeProvider{name: "p1", text: "answer"}
		p2 := &fakeProvider{name: "p2", text: "unused"}
		m := NewManager([]Provider{p1, p2}, &Config{FallbackEnabled: true}, nopLogger{})

		resp, err := m.GenerateContent(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text != "answer" {
			t.Errorf("unexpected text %q", resp.Text)
		}
		if p2.calls != 0 {
			t.Errorf("second provider should not be called on success")
		}
	})

	t.Run("Fallback To Second Provider", func(t *testing.T) {
		p1 := &fakeProvider{name: "p1", err: errors.New("quota exceeded")}
		p2 := &fakeProvider{name: "p2", text: "fallback answer"}
		m := NewManager([]Provider{p1, p2}, &Config{FallbackEnabled: true}, nopLogger{})

		resp, err := m.GenerateContent(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text != "fallback answer" {
			t.Errorf("expected fallback answer, got %q", resp.Text)
		}
	})

	t.Run("Fallback Disabled Stops After First", func(t *testing.T) {
		p1 := &fakeProvider{name: "p1", err: errors.New("down")}
		p2 := &fakeProvider{name: "p2", text: "never"}
		m := NewManager([]Provider{p1, p2}, &Config{FallbackEnabled: false}, nopLogger{})

		_, err := m.GenerateContent(context.Background(), req)
		if !errors.Is(err, ErrAllProvidersFailed) {
			t.Errorf("expected ErrAllProvidersFailed, got %v", err)
		}
		if p2.calls != 0 {
			t.Errorf("second provider must not be tried when fallback is disabled")
		}
	})

	t.Run("All Providers Fail", func(t *testing.T) {
		p1 := &fakeProvider{name: "p1", err: errors.New("down")}
		p2 := &fakeProvider{name: "p2", err: errors.New("also down")}
		m := NewManager([]Provider{p1, p2}, &Config{FallbackEnabled: true}, nopLogger{})

		_, err := m.GenerateContent(context.Background(), req)
		if !errors.Is(err, ErrAllProvidersFailed) {
			t.Errorf("expected ErrAllProvidersFailed, got %v", err)
		}
	})

	t.Run("Global Timeout", func(t *testing.T) {
		p1 := &fakeProvider{name: "slow", delay: 200 * time.Millisecond, text: "late"}
		m := NewManager([]Provider{p1}, &Config{
			FallbackEnabled: true,
			MaxTotalTimeout: 20 * time.Millisecond,
		}, nopLogger{})

		_, err := m.GenerateContent(context.Background(), req)
		if err == nil {
			t.Fatalf("expected timeout error")
		}
	})
}

func TestManagerComplete(t *testing.T) {
	t.Run("Returns Text", func(t *testing.T) {
		p := &fakeProvider{name: "p", text: "  generated text  "}
		m := NewManager([]Provider{p}, &Config{}, nopLogger{})

		out, err := m.Complete(context.Background(), "prompt")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out != "  generated text  " {
			t.Errorf("Complete must not alter provider text, got %q", out)
		}
	})

	t.Run("Empty Text Is An Error", func(t *testing.T) {
		p := &fakeProvider{name: "p", text: "   "}
		m := NewManager([]Provider{p}, &Config{}, nopLogger{})

		_, err := m.Complete(context.Background(), "prompt")
		if !errors.Is(err, ErrEmptyResponse) {
			t.Errorf("expected ErrEmptyResponse, got %v", err)
		}
	})
}
