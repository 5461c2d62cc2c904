package llm

import (
	"context"
	"fmt"
	"strings"
)

// NewClient builds a Client for the named provider. Supported providers
// are "gemini" and "openai"; model may be empty to take the provider
// default.
func NewClient(ctx context.Context, provider, apiKey, model string) (Client, error) {
	switch strings.ToLower(strings.TrimSpace(provider)) {
	case "gemini", "":
		return NewGeminiClient(ctx, apiKey, model)
	case "openai":
		return NewOpenAIClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unknown llm provider %q", provider)
	}
}
