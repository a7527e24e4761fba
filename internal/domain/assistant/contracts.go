package assistant

import "context"

// GenerateOptions control a single completion
type GenerateOptions struct {
	// Stop sequences that terminate generation
	Stop []string
}

// ModelClient is an interface for generating completions from a language model
type ModelClient interface {
	// Generate produces a completion for the prompt.
	Generate(ctx context.Context, prompt string, opts *GenerateOptions) (string, error)

	// Ping verifies the model is reachable and loaded.
	Ping(ctx context.Context) error
}

// Tool is a single capability the assistant can dispatch to.
// Invoke renders a plain text result suitable for the answer stage.
type Tool interface {
	Name() string
	Description() string
	Invoke(ctx context.Context, args []string) (string, error)
}

// Service defines the assistant query entry point
type Service interface {
	// ProcessQuery answers a natural language question about the user's
	// health data, dispatching to a tool when the model asks for one.
	ProcessQuery(ctx context.Context, query string) (string, error)
}
