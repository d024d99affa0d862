// Package gemini provides a client for the Google Gemini API
package gemini

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/genai"

	"github.com/careercompass/compass/internal/common"
	"github.com/careercompass/compass/internal/interfaces"
	"github.com/careercompass/compass/internal/models"
)

const (
	DefaultModel           = "gemini-1.5-flash"
	DefaultTimeout         = 15 * time.Second
	DefaultMaxResponseSize = 256 * 1024 // generous for a career plan, defends against unbounded generation
)

// Client implements the ReasoningClient interface
type Client struct {
	client          *genai.Client
	model           string
	timeout         time.Duration
	maxResponseSize int64
	logger          *common.Logger
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithModel sets the model to use
func WithModel(model string) ClientOption {
	return func(c *Client) {
		if model != "" {
			c.model = model
		}
	}
}

// WithTimeout sets the per-call timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithMaxResponseSize sets the response size bound in bytes
func WithMaxResponseSize(size int64) ClientOption {
	return func(c *Client) {
		if size > 0 {
			c.maxResponseSize = size
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a new Gemini client
func NewClient(ctx context.Context, apiKey string, opts ...ClientOption) (*Client, error) {
	genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	c := &Client{
		client:          genaiClient,
		model:           DefaultModel,
		timeout:         DefaultTimeout,
		maxResponseSize: DefaultMaxResponseSize,
		logger:          common.NewSilentLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// GenerateContent sends a prompt and returns the provider's raw text.
// Exactly one call per invocation; retries are the orchestrator's policy.
// The prompt body is never logged (privacy boundary).
func (c *Client) GenerateContent(ctx context.Context, prompt string) (string, error) {
	c.logger.Debug().Str("model", c.model).Int("prompt_bytes", len(prompt)).Msg("Generating content")

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	contents := genai.Text(prompt)
	result, err := c.client.Models.GenerateContent(callCtx, c.model, contents, nil)
	if err != nil {
		return "", classifyError(err)
	}

	text, err := extractTextFromResponse(result)
	if err != nil {
		return "", err
	}

	if int64(len(text)) > c.maxResponseSize {
		return "", models.NewFault(models.KindProviderResponseTooLarge,
			fmt.Sprintf("provider response of %d bytes exceeds bound of %d", len(text), c.maxResponseSize), nil)
	}

	return text, nil
}

// classifyError maps transport and API failures onto the taxonomy.
func classifyError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return models.NewFault(models.KindProviderRejected,
			fmt.Sprintf("provider rejected request (status %d)", apiErr.Code), err)
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return models.NewFault(models.KindProviderUnavailable, "provider call timed out", err)
	}
	return models.NewFault(models.KindProviderUnavailable, "provider unreachable", err)
}

// extractTextFromResponse extracts text from a generate content response
func extractTextFromResponse(result *genai.GenerateContentResponse) (string, error) {
	if len(result.Candidates) == 0 || result.Candidates[0].Content == nil || len(result.Candidates[0].Content.Parts) == 0 {
		return "", models.NewFault(models.KindProviderRejected, "no content generated", nil)
	}

	text := ""
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text += part.Text
		}
	}

	return text, nil
}

// Ensure Client implements ReasoningClient
var _ interfaces.ReasoningClient = (*Client)(nil)
