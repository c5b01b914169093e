package ai

import "context"

// LLMProvider sends a prompt to an LLM and returns the raw text response.
// The rest of the system only ever sees this capability, so tests can swap in
// a deterministic stand-in.
type LLMProvider interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
