package llm

import (
	"context"
	"testing"

	"go.uber.org/goleak"
)

func TestNewClient(t *testing.T) {
	// go.opencensus.io starts a background worker goroutine in its package
	// init, before any test code runs; it is not something NewClient leaks.
	defer goleak.VerifyNone(t, goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start"))
	ctx := context.Background()

	t.Run("unknown provider", func(t *testing.T) {
		if _, err := NewClient(ctx, "anthropic", "key", ""); err == nil {
			t.Error("NewClient() accepted an unknown provider")
		}
	})

	t.Run("gemini requires api key", func(t *testing.T) {
		if _, err := NewClient(ctx, "gemini", "", ""); err == nil {
			t.Error("NewClient() accepted an empty gemini key")
		}
	})

	t.Run("openai requires api key", func(t *testing.T) {
		if _, err := NewClient(ctx, "openai", "", ""); err == nil {
			t.Error("NewClient() accepted an empty openai key")
		}
	})

	t.Run("openai client with default model", func(t *testing.T) {
		client, err := NewClient(ctx, "openai", "test-key", "")
		if err != nil {
			t.Fatalf("NewClient() error = %v", err)
		}
		oa, ok := client.(*OpenAIClient)
		if !ok {
			t.Fatalf("NewClient() returned %T, want *OpenAIClient", client)
		}
		if oa.Model() == "" {
			t.Error("OpenAIClient has no default model")
		}
	})

	t.Run("provider name is case insensitive", func(t *testing.T) {
		if _, err := NewClient(ctx, "OpenAI", "test-key", "gpt-4o"); err != nil {
			t.Errorf("NewClient() error = %v", err)
		}
	})
}
