package probe

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/shoresh319/debugapp/internal/handlers"
)

// Config holds configuration for the Probe.
type Config struct {
	BaseURL      string
	HTTPClient   *http.Client
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
	Logger       *log.Logger // nil silences retry logging
}

// Probe checks a status server over HTTP, retrying transient failures.
type Probe struct {
	client *retryablehttp.Client
	url    string
}

// New constructs a Probe with a retryable HTTP client.
func New(cfg Config) *Probe {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{
			Timeout: 2 * time.Second,
		}
	}

	retryClient := retryablehttp.NewClient()
	retryClient.HTTPClient = cfg.HTTPClient
	retryClient.RetryMax = cfg.RetryMax
	retryClient.RetryWaitMin = cfg.RetryWaitMin
	retryClient.RetryWaitMax = cfg.RetryWaitMax
	retryClient.Logger = nil
	if cfg.Logger != nil {
		retryClient.Logger = cfg.Logger
	}
	// Hand the last response back instead of a generic "giving up" error.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	return &Probe{
		client: retryClient,
		url:    strings.TrimSuffix(cfg.BaseURL, "/") + "/",
	}
}

// Check fetches the status payload and verifies it reports a healthy server.
func (p *Probe) Check(ctx context.Context) (*handlers.StatusResponse, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var payload handlers.StatusResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}

	if payload.Status != "ok" {
		return nil, fmt.Errorf("unhealthy status %q", payload.Status)
	}
	if _, err := time.Parse(handlers.TimestampLayout, payload.StartedAt); err != nil {
		return nil, fmt.Errorf("parse startedAt: %w", err)
	}

	return &payload, nil
}
