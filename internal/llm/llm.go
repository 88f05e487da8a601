// Package llm wraps the external generative-AI collaborator behind a small
// interface. The call is treated as an opaque, potentially slow, potentially
// failing dependency: no retries, no response caching.
package llm

import "context"

// TextGenerator is an interface for generating text from a prompt.
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Closer is implemented by clients holding a network connection.
type Closer interface {
	Close() error
}
