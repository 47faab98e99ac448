package llmprovider_test

import (
	"context"
	"errors"
	"testing"

	"task-manager-agent/pkg/llmprovider"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type mockProvider struct {
	name  string
	resp  *llmprovider.Response
	err   error
	calls int
}

func (m *mockProvider) Complete(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.calls++
	return m.resp, m.err
}

func (m *mockProvider) Name() string  { return m.name }
func (m *mockProvider) Model() string { return m.name + "-model" }

func TestManagerComplete(t *testing.T) {
	req := &llmprovider.Request{Prompt: "hello"}

	t.Run("No Providers", func(t *testing.T) {
		mgr := llmprovider.NewManager(nil, &llmprovider.Config{RetryAttempts: 1}, &mockLogger{})
		_, err := mgr.Complete(context.Background(), req)
		if !errors.Is(err, llmprovider.ErrNoProvidersConfigured) {
			t.Errorf("expected ErrNoProvidersConfigured, got %v", err)
		}
	})

	t.Run("First Provider Succeeds", func(t *testing.T) {
		first := &mockProvider{name: "gemini", resp: &llmprovider.Response{Text: "ok"}}
		second := &mockProvider{name: "deepseek", resp: &llmprovider.Response{Text: "fallback"}}
		mgr := llmprovider.NewManager(
			[]llmprovider.Provider{first, second},
			&llmprovider.Config{FallbackEnabled: true, RetryAttempts: 1},
			&mockLogger{},
		)

		resp, err := mgr.Complete(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text != "ok" {
			t.Errorf("expected primary provider response, got %q", resp.Text)
		}
		if second.calls != 0 {
			t.Errorf("fallback provider should not be called, got %d calls", second.calls)
		}
	})

	t.Run("Fallback To Second Provider", func(t *testing.T) {
		first := &mockProvider{name: "gemini", err: errors.New("quota exceeded")}
		second := &mockProvider{name: "deepseek", resp: &llmprovider.Response{Text: "fallback"}}
		mgr := llmprovider.NewManager(
			[]llmprovider.Provider{first, second},
			&llmprovider.Config{FallbackEnabled: true, RetryAttempts: 1},
			&mockLogger{},
		)

		resp, err := mgr.Complete(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text != "fallback" {
			t.Errorf("expected fallback response, got %q", resp.Text)
		}
	})

	t.Run("Fallback Disabled Stops After First", func(t *testing.T) {
		first := &mockProvider{name: "gemini", err: errors.New("down")}
		second := &mockProvider{name: "deepseek", resp: &llmprovider.Response{Text: "fallback"}}
		mgr := llmprovider.NewManager(
			[]llmprovider.Provider{first, second},
			&llmprovider.Config{FallbackEnabled: false, RetryAttempts: 1},
			&mockLogger{},
		)

		_, err := mgr.Complete(context.Background(), req)
		if !errors.Is(err, llmprovider.ErrAllProvidersFailed) {
			t.Errorf("expected ErrAllProvidersFailed, got %v", err)
		}
		if second.calls != 0 {
			t.Errorf("second provider should not be tried when fallback disabled")
		}
	})

	t.Run("Retries Within Provider", func(t *testing.T) {
		first := &mockProvider{name: "gemini", err: errors.New("flaky")}
		mgr := llmprovider.NewManager(
			[]llmprovider.Provider{first},
			&llmprovider.Config{FallbackEnabled: true, RetryAttempts: 3},
			&mockLogger{},
		)

		_, err := mgr.Complete(context.Background(), req)
		if !errors.Is(err, llmprovider.ErrAllProvidersFailed) {
			t.Errorf("expected ErrAllProvidersFailed, got %v", err)
		}
		if first.calls != 3 {
			t.Errorf("expected 3 attempts, got %d", first.calls)
		}
	})
}
