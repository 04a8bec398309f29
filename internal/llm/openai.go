// Package llm wraps the OpenAI completion API behind a minimal
// text-in/text-out interface so the chat session never sees transport
// details.
package llm

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// maxReplyTokens bounds the length of a single completion.
const maxReplyTokens = 300

// ErrEmptyCompletion indicates the API returned a well-formed response
// with no choices.
var ErrEmptyCompletion = errors.New("completion response contained no choices")

// Client calls the OpenAI chat completion endpoint for a single user
// message at a time. Prior conversation turns are not sent.
type Client struct {
	api   *openai.Client
	model string
}

// Option adjusts a Client at construction.
type Option func(*clientConfig)

type clientConfig struct {
	baseURL string
}

// WithBaseURL points the client at an alternate API endpoint. Used by
// tests and by OpenAI-compatible local backends.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// NewClient builds a completion client with the given bearer credential
// and model name. An empty model falls back to gpt-3.5-turbo.
func NewClient(apiKey, model string, opts ...Option) *Client {
	var cc clientConfig
	for _, opt := range opts {
		opt(&cc)
	}

	cfg := openai.DefaultConfig(apiKey)
	if cc.baseURL != "" {
		cfg.BaseURL = cc.baseURL
	}

	if model == "" {
		model = openai.GPT3Dot5Turbo
	}
	return &Client{api: openai.NewClientWithConfig(cfg), model: model}
}

// Complete sends one user message and returns the assistant text. The
// caller owns the context and any timeout on it; every failure mode
// (transport error, non-2xx status, malformed or empty response) surfaces
// as a plain error.
func (c *Client) Complete(ctx context.Context, text string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     c.model,
		MaxTokens: maxReplyTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion request: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// Model returns the model name the client was built with.
func (c *Client) Model() string {
	return c.model
}

// ListModels returns the identifiers of all models the API key can
// access, sorted alphabetically.
func (c *Client) ListModels(ctx context.Context) ([]string, error) {
	list, err := c.api.ListModels(ctx)
	if err != nil {
		return nil, fmt.Errorf("list models request: %w", err)
	}
	ids := make([]string, 0, len(list.Models))
	for _, m := range list.Models {
		ids = append(ids, m.ID)
	}
	sort.Strings(ids)
	return ids, nil
}
