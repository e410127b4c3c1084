package suggest

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gpt-4o-mini"

// OpenAIConfig configures an OpenAI-compatible chat completion endpoint.
type OpenAIConfig struct {
	APIKey string

	// BaseURL overrides the API root (e.g., "http://localhost:11434/v1").
	BaseURL string

	Model       string
	MaxTokens   int
	Temperature float32
}

// OpenAICompleter is a Completer backed by the chat completions API.
type OpenAICompleter struct {
	client *openai.Client
	config OpenAIConfig
}

// NewOpenAICompleter creates a completer for cfg.
func NewOpenAICompleter(cfg OpenAIConfig) *OpenAICompleter {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}

	return &OpenAICompleter{
		client: openai.NewClientWithConfig(clientConfig),
		config: cfg,
	}
}

// Complete requests a single chat completion.
func (c *OpenAICompleter) Complete(ctx context.Context, system, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.config.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   c.config.MaxTokens,
		Temperature: c.config.Temperature,
		N:           1,
	})
	if err != nil {
		return "", fmt.Errorf("create chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	return resp.Choices[0].Message.Content, nil
}
