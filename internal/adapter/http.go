package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/feral-file/ai-company/internal/logger"
)

// StatusOverloaded is the non-standard status some model providers return when saturated
const StatusOverloaded = 529

// HTTPClient defines an interface for HTTP client operations to enable mocking
//
//go:generate mockgen -source=http.go -destination=../mocks/http.go -package=mocks -mock_names=HTTPClient=MockHTTPClient
type HTTPClient interface {
	// PostJSON marshals body, performs a POST request and returns the response body
	PostJSON(ctx context.Context, url string, headers http.Header, body interface{}) ([]byte, error)
}

// StatusError is returned when the remote answers with a non-OK status
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code %d: %s", e.StatusCode, e.Body)
}

// RetryConfig controls the exponential backoff applied to throttled and failing requests
type RetryConfig struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
}

// DefaultRetryConfig is used by NewHTTPClient
var DefaultRetryConfig = RetryConfig{
	InitialInterval: 2 * time.Second,
	MaxInterval:     30 * time.Second,
	MaxElapsedTime:  1 * time.Minute,
}

// RealHTTPClient implements HTTPClient using the standard http package
type RealHTTPClient struct {
	client *http.Client
	retry  RetryConfig
}

// NewHTTPClient creates a new real HTTP client
func NewHTTPClient(timeout time.Duration) HTTPClient {
	return NewHTTPClientWithRetry(timeout, DefaultRetryConfig)
}

// NewHTTPClientWithRetry creates a new real HTTP client with a custom retry policy
func NewHTTPClientWithRetry(timeout time.Duration, retry RetryConfig) HTTPClient {
	return &RealHTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
		retry: retry,
	}
}

// retryable reports whether the status signals throttling, saturation or a server error
func retryable(status int) bool {
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}

// doRequestWithRetry executes an HTTP request with exponential backoff retry for rate limiting and server errors.
// newRequest is called once per attempt so request bodies can be replayed.
func (c *RealHTTPClient) doRequestWithRetry(ctx context.Context, newRequest func() (*http.Request, error)) ([]byte, error) {
	var respBody []byte

	operation := func() error {
		req, err := newRequest()
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to create request: %w", err))
		}

		resp, err := c.client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(fmt.Errorf("failed to perform request: %w", err))
			}
			return fmt.Errorf("failed to perform request: %w", err)
		}
		defer func() {
			if err := resp.Body.Close(); err != nil {
				logger.WarnCtx(ctx, "failed to close response body", zap.Error(err), zap.String("url", req.URL.String()))
			}
		}()

		if retryable(resp.StatusCode) {
			logger.WarnCtx(ctx, "request throttled or failed, retrying with backoff",
				zap.String("url", req.URL.String()),
				zap.Int("status", resp.StatusCode))
			body, _ := io.ReadAll(resp.Body)
			return &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
		}

		if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
			body, _ := io.ReadAll(resp.Body)
			return backoff.Permanent(&StatusError{StatusCode: resp.StatusCode, Body: string(body)})
		}

		respBody, err = io.ReadAll(resp.Body)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to read response body: %w", err))
		}

		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.retry.InitialInterval
	b.MaxInterval = c.retry.MaxInterval
	b.MaxElapsedTime = c.retry.MaxElapsedTime
	b.Multiplier = 2.0
	b.RandomizationFactor = 0.5

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		return nil, err
	}

	return respBody, nil
}

// PostJSON marshals body, performs a POST request and returns the response body
func (c *RealHTTPClient) PostJSON(ctx context.Context, url string, headers http.Header, body interface{}) ([]byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	return c.doRequestWithRetry(ctx, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		copyHeaders(req, headers)
		req.Header.Set("Content-Type", "application/json")
		return req, nil
	})
}

func copyHeaders(req *http.Request, headers http.Header) {
	for key, values := range headers {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
}
