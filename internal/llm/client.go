// Package llm provides the outbound client for the hosted language model.
package llm

import "context"

// Client is a minimal text-in/text-out interface over a hosted LLM. Exactly
// one call is made per invocation; retries are the caller's decision (today:
// none).
type Client interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}
