package core

import "context"

// Options controls model behavior; zero fields fall back to provider defaults.
type Options struct {
	Model               string
	Temperature         float64
	MaxCompletionTokens int
}

// Client is a provider-agnostic interface for the one LLM operation this
// service needs: a single user-turn completion.
type Client interface {
	Complete(ctx context.Context, prompt string, opts Options) (string, error)
}
