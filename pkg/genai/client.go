package genai

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const (
	// DefaultModel is the default chat model for question generation
	DefaultModel = "gpt-4o-mini"

	requestTimeout = 30 * time.Second
	maxRetries     = 2
	retryDelay     = 2 * time.Second
)

// Client wraps the OpenAI chat API behind the question-generator capability.
// A client constructed without an API key reports itself unconfigured and
// fails fast on Generate.
type Client struct {
	api   *openai.Client
	model string
}

func New(apiKey, model string) *Client {
	if model == "" {
		model = DefaultModel
	}
	c := &Client{model: model}
	if apiKey != "" {
		c.api = openai.NewClient(apiKey)
	}
	return c
}

func (c *Client) Configured() bool {
	return c.api != nil
}

// Generate sends one chat completion and returns the raw text of the first
// choice. Transient failures are retried with a fixed delay.
func (c *Client) Generate(ctx context.Context, systemInstruction, prompt string) (string, error) {
	if c.api == nil {
		return "", fmt.Errorf("genai: API key not configured")
	}

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(retryDelay):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}

		reqCtx, cancel := context.WithTimeout(ctx, requestTimeout)
		resp, err := c.api.CreateChatCompletion(reqCtx, openai.ChatCompletionRequest{
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: systemInstruction},
				{Role: openai.ChatMessageRoleUser, Content: prompt},
			},
			Temperature: 0.4,
		})
		cancel()

		if err != nil {
			lastErr = fmt.Errorf("attempt %d: %w", attempt+1, err)
			continue
		}
		if len(resp.Choices) == 0 {
			lastErr = fmt.Errorf("attempt %d: no completion choices returned", attempt+1)
			continue
		}
		return resp.Choices[0].Message.Content, nil
	}

	return "", fmt.Errorf("generation failed after %d attempts: %w", maxRetries+1, lastErr)
}
