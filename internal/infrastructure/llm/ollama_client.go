// Package llm provides the Ollama-backed implementation of the assistant
// model client.
package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/CharlotteLevula/my-health-project/internal/domain/assistant"
	"github.com/CharlotteLevula/my-health-project/internal/pkg/config"
	"github.com/CharlotteLevula/my-health-project/internal/pkg/logger"

	"github.com/go-resty/resty/v2"
)

type ollamaClient struct {
	client *resty.Client
	model  string
	logger logger.Logger
}

type generateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	Stream  bool            `json:"stream"`
	Options *generateParams `json:"options,omitempty"`
}

type generateParams struct {
	Stop []string `json:"stop,omitempty"`
}

type generateResponse struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

// NewOllamaClient creates a ModelClient backed by a local Ollama server
func NewOllamaClient(settings *config.OllamaSettings, logger logger.Logger) (assistant.ModelClient, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid ollama settings: %w", err)
	}

	client := resty.New().
		SetBaseURL(settings.BaseURL).
		SetTimeout(2 * time.Minute)

	return &ollamaClient{
		client: client,
		model:  settings.Model,
		logger: logger,
	}, nil
}

func newOllamaClientWithResty(client *resty.Client, model string, logger logger.Logger) assistant.ModelClient {
	return &ollamaClient{client: client, model: model, logger: logger}
}

func (c *ollamaClient) Generate(ctx context.Context, prompt string, opts *assistant.GenerateOptions) (string, error) {
	request := generateRequest{
		Model:  c.model,
		Prompt: prompt,
		Stream: false,
	}
	if opts != nil && len(opts.Stop) > 0 {
		request.Options = &generateParams{Stop: opts.Stop}
	}

	var result generateResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(&request).
		SetResult(&result).
		Post("/api/generate")
	if err != nil {
		return "", fmt.Errorf("failed to generate completion: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("ollama returned status %d: %s", resp.StatusCode(), resp.String())
	}

	return result.Response, nil
}

// Ping verifies the model is reachable by requesting a trivial completion
func (c *ollamaClient) Ping(ctx context.Context) error {
	if _, err := c.Generate(ctx, "Say OK", nil); err != nil {
		return fmt.Errorf("ollama is not available: %w", err)
	}
	return nil
}
