// Package llm provides the text-generation clients the generator calls.
// The Client interface is the system's only I/O boundary; everything
// behind it is an opaque synchronous call whose cancellation and timeout
// behavior comes from the caller's context.
package llm

import "context"

// Client is the minimal interface the generator uses to call an LLM.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
	CompleteWithSystem(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
