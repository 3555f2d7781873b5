package ai

import "context"

// TextGenerator is the single capability the resolution pipeline needs
// from a text generation backend. Every call is treated as fallible:
// callers must degrade to deterministic fallbacks when Generate returns
// an error, times out, or produces unusable output.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
