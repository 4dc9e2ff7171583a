package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dsouzarc/incast/internal/logger"
	"github.com/dsouzarc/incast/internal/models"
)

// Client talks to the prediction service over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the service at baseURL. A zero timeout leaves
// the underlying http.Client without one, so a hung request only ends
// when the passed context does.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Ping checks that the service answers HTTP at all. The service exposes
// no health route, so any response counts as reachable; only transport
// failures are errors.
func (c *Client) Ping(ctx context.Context) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return fmt.Errorf("failed to build ping request: %w", err)
	}
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("prediction service unreachable: %w", err)
	}
	resp.Body.Close()
	return nil
}

// Predict posts one prediction request and decodes the response. Errors
// here stay precise; collapsing them to the user-facing message is the
// controller's job.
func (c *Client) Predict(ctx context.Context, req models.PredictionRequest) (*models.PredictionResult, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode prediction request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build prediction request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	logger.Debug("POST %s/predict date=%s group=%s", c.baseURL, req.Date, req.AssignmentGroup)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("prediction request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("prediction service returned status %d", resp.StatusCode)
	}

	var result models.PredictionResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode prediction response: %w", err)
	}
	if result.Predictions == nil {
		return nil, fmt.Errorf("prediction response is missing the predictions map")
	}

	logger.Debug("prediction ok: %d labels for group %s", len(result.Predictions), result.AssignmentGroup)
	return &result, nil
}
