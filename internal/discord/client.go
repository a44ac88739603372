package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/osse101/gla-tools/internal/domain"
	"github.com/osse101/gla-tools/internal/handler"
	"github.com/osse101/gla-tools/internal/logger"
)

// API is the subset of the calculator API the commands use
type API interface {
	PlanPotions(ctx context.Context, start, end int, tier domain.PotionTier) (*domain.PotionPlan, error)
	Estimate(ctx context.Context, slot domain.EquipmentSlot, level int, prices map[domain.CrystalType]int64) (*handler.EstimateResponse, error)
	TransferCost(ctx context.Context, slot domain.EquipmentSlot, level int) (int, error)
	Health(ctx context.Context) error
}

// APIError is a non-2xx answer from the API
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return "API error: " + e.Message
	}
	return fmt.Sprintf("API returned status: %d", e.Status)
}

// APIClient talks to the calculator HTTP API
type APIClient struct {
	BaseURL    string
	Client     *http.Client
	APIKey     string
	MaxRetries int
	RetryDelay time.Duration
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL, apiKey string) *APIClient {
	return &APIClient{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: DefaultRequestTimeout,
		},
		APIKey:     apiKey,
		MaxRetries: DefaultMaxRetries,
		RetryDelay: DefaultRetryDelay,
	}
}

// doRequest performs an HTTP request, retrying transport failures and 5xx
// answers with exponential backoff. The context's request ID is forwarded.
func (c *APIClient) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reqBody []byte
	if body != nil {
		var err error
		reqBody, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}
	}

	target := c.BaseURL + path
	requestID := logger.GetRequestID(ctx)

	var lastErr error
	for attempt := 0; attempt <= c.MaxRetries; attempt++ {
		if attempt > 0 {
			jitter := time.Duration(time.Now().UnixNano()%100) * time.Millisecond
			delay := c.RetryDelay*time.Duration(1<<uint(attempt-1)) + jitter
			slog.Info(LogMsgRetrying, "attempt", attempt, "path", path, "delay", delay)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		req, err := http.NewRequestWithContext(ctx, method, target, bytes.NewReader(reqBody))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		if c.APIKey != "" {
			req.Header.Set(HeaderAPIKey, c.APIKey)
		}
		if requestID != "" {
			req.Header.Set(HeaderRequestID, requestID)
		}

		resp, err := c.Client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = err
			slog.Warn(LogMsgRequestFailed, "error", err, "attempt", attempt)
			continue
		}

		if resp.StatusCode < 500 {
			return resp, nil
		}

		resp.Body.Close()
		lastErr = &APIError{Status: resp.StatusCode}
		slog.Warn(LogMsgServerError, "status", resp.StatusCode, "attempt", attempt)
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}

// decode reads a JSON body into out, or turns a non-200 answer into an *APIError
func decode(resp *http.Response, out interface{}) error {
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errResp handler.ErrorResponse
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		if err := json.Unmarshal(raw, &errResp); err == nil && errResp.Error != "" {
			return &APIError{Status: resp.StatusCode, Message: errResp.Error}
		}
		return &APIError{Status: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// PlanPotions asks for the potions covering start..end
func (c *APIClient) PlanPotions(ctx context.Context, start, end int, tier domain.PotionTier) (*domain.PotionPlan, error) {
	req := map[string]interface{}{
		"start_level": start,
		"end_level":   end,
		"tier":        tier,
	}

	resp, err := c.doRequest(ctx, http.MethodPost, PathPlan, req)
	if err != nil {
		return nil, err
	}

	var plan domain.PotionPlan
	if err := decode(resp, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// Estimate prices a slot's remaining boosts. Types absent from prices use the
// API's default prices.
func (c *APIClient) Estimate(ctx context.Context, slot domain.EquipmentSlot, level int, prices map[domain.CrystalType]int64) (*handler.EstimateResponse, error) {
	req := map[string]interface{}{
		"slot":          slot,
		"current_level": level,
	}
	if len(prices) > 0 {
		req["prices"] = prices
	}

	resp, err := c.doRequest(ctx, http.MethodPost, PathEstimate, req)
	if err != nil {
		return nil, err
	}

	var est handler.EstimateResponse
	if err := decode(resp, &est); err != nil {
		return nil, err
	}
	if est.UpgradeEstimate == nil {
		return nil, errors.New("empty estimate")
	}
	return &est, nil
}

// TransferCost returns the gems needed to move a boost
func (c *APIClient) TransferCost(ctx context.Context, slot domain.EquipmentSlot, level int) (int, error) {
	params := url.Values{}
	params.Set("slot", string(slot))
	params.Set("level", strconv.Itoa(level))

	resp, err := c.doRequest(ctx, http.MethodGet, PathTransferCost+"?"+params.Encode(), nil)
	if err != nil {
		return 0, err
	}

	var out handler.TransferCostResponse
	if err := decode(resp, &out); err != nil {
		return 0, err
	}
	return out.Gems, nil
}

// Health checks the API's liveness endpoint once, without retries
func (c *APIClient) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+PathHealthz, nil)
	if err != nil {
		return err
	}
	resp, err := c.Client.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return &APIError{Status: resp.StatusCode}
	}
	return nil
}
