// Package top5 provides the HTTP client the chat bot uses to call the query
// service. Every request body is signed with the shared HMAC secret.
package top5

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/eros1981/fanbase-inside-out-top5/pkg/api/common"
	api "github.com/eros1981/fanbase-inside-out-top5/pkg/api/top5"
	"github.com/eros1981/fanbase-inside-out-top5/pkg/clients"
	"github.com/eros1981/fanbase-inside-out-top5/pkg/leaderboard"
	"github.com/eros1981/fanbase-inside-out-top5/pkg/logging"
	"github.com/eros1981/fanbase-inside-out-top5/pkg/signing"
)

// Client calls the query service's top5 endpoint.
type Client struct {
	baseURL     string
	secret      string
	httpClient  *http.Client
	logger      logging.Logger
	retryConfig clients.RetryConfig
}

// Config represents the configuration for the query-service client
type Config struct {
	BaseURL     string
	Secret      string
	Timeout     time.Duration
	Logger      logging.Logger
	RetryConfig *clients.RetryConfig
}

// NewClient creates a new query-service client
func NewClient(config Config) *Client {
	if config.Timeout == 0 {
		config.Timeout = 10 * time.Second
	}

	retryConfig := clients.DefaultRetryConfig()
	if config.RetryConfig != nil {
		retryConfig = *config.RetryConfig
	}

	return &Client{
		baseURL:     config.BaseURL,
		secret:      config.Secret,
		httpClient:  &http.Client{Timeout: config.Timeout},
		logger:      config.Logger,
		retryConfig: retryConfig,
	}
}

// Top5 requests the leaderboard for a period and category selector.
func (c *Client) Top5(ctx context.Context, period leaderboard.Period, category leaderboard.Category) (*api.Response, error) {
	body, err := json.Marshal(api.QueryRequest{
		Month:    period.String(),
		Category: string(category),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/api/top5", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(signing.Header, signing.Sign(c.secret, body))

	resp, err := clients.DoWithRetry(ctx, c.httpClient, req, c.retryConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to call query service: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var errorResp common.ErrorResponse
		if err := json.Unmarshal(respBody, &errorResp); err != nil || errorResp.Error == "" {
			return nil, fmt.Errorf("query service returned status %d", resp.StatusCode)
		}
		return nil, fmt.Errorf("query service returned error: %s", errorResp.Error)
	}

	var response api.Response
	if err := json.Unmarshal(respBody, &response); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return &response, nil
}
