// Package profilestore provides a client for the financial profile store API
package profilestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/careercompass/compass/internal/common"
	"github.com/careercompass/compass/internal/interfaces"
	"github.com/careercompass/compass/internal/models"
)

const (
	DefaultBaseURL   = "http://mock-data-api:8080"
	DefaultTimeout   = 5 * time.Second
	DefaultRateLimit = 10 // requests per second
)

// Client implements the ProfileClient interface. The underlying
// http.Client is shared and safe for concurrent use; no per-request
// state is kept on the struct.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *common.Logger
	limiter    *rate.Limiter
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithBaseURL sets the default base URL
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRateLimit sets the rate limit
func WithRateLimit(requestsPerSecond int) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
	}
}

// WithTimeout sets the HTTP timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a new profile store client
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
		logger:  common.NewSilentLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// FetchProfile retrieves a user's financial record from the store.
// No retries happen here; retry policy belongs to the orchestrator.
func (c *Client) FetchProfile(ctx context.Context, baseURL, userID string) (*models.FinancialProfile, error) {
	if userID == "" {
		return nil, models.NewFault(models.KindProfileNotFound, "userId is required", nil)
	}
	if baseURL == "" {
		baseURL = c.baseURL
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, models.NewFault(models.KindUpstreamUnavailable, "rate limit wait interrupted", err)
	}

	reqURL := fmt.Sprintf("%s/api/users/%s/financial-data", baseURL, userID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, models.NewFault(models.KindUpstreamUnavailable, "failed to create request", err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug().Str("user_id", userID).Msg("Profile store request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Timeouts and transport failures look the same to the caller.
		return nil, models.NewFault(models.KindUpstreamUnavailable, "profile store unreachable", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		io.Copy(io.Discard, resp.Body)
		return nil, models.NewFault(models.KindProfileNotFound,
			fmt.Sprintf("no financial data for user %q", userID), nil)
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, models.NewFault(models.KindUpstreamUnavailable,
			fmt.Sprintf("profile store returned status %d: %s", resp.StatusCode, string(body)), nil)
	}

	var profile models.FinancialProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, models.NewFault(models.KindUpstreamContractViolation, "failed to decode profile body", err)
	}
	if profile.UserID == "" {
		profile.UserID = userID
	}
	if err := validateProfile(&profile); err != nil {
		return nil, models.NewFault(models.KindUpstreamContractViolation, "profile failed validation", err)
	}

	return &profile, nil
}

// validateProfile enforces the store's documented invariants: non-negative
// income and non-negative spending amounts.
func validateProfile(p *models.FinancialProfile) error {
	if p.MonthlyIncome < 0 {
		return errors.New("monthlyIncome is negative")
	}
	for category, amount := range p.SpendingCategories {
		if amount < 0 {
			return fmt.Errorf("spending category %q is negative", category)
		}
	}
	return nil
}

// Ensure Client implements ProfileClient
var _ interfaces.ProfileClient = (*Client)(nil)
