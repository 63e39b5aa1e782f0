package subgraph

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"nft-sales-fetcher/internal/retry"
)

// Default configuration values.
const (
	DefaultTimeout = 30 * time.Second

	// maxErrorBody caps how much of a failed response body ends up in errors.
	maxErrorBody = 512
)

// HTTPClient implements Querier over GraphQL-over-HTTP POST.
type HTTPClient struct {
	endpoint string
	client   *http.Client
	policy   retry.Policy
	logger   *zap.Logger
	observer Observer
}

// ClientOption configures HTTPClient.
type ClientOption func(*HTTPClient)

// WithTimeout sets the per-attempt HTTP timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *HTTPClient) {
		c.client.Timeout = d
	}
}

// WithMaxAttempts sets the total number of attempts (first try included).
func WithMaxAttempts(n int) ClientOption {
	return func(c *HTTPClient) {
		c.policy.MaxAttempts = n
	}
}

// WithRetryDelay sets the fixed delay between attempts.
func WithRetryDelay(d time.Duration) ClientOption {
	return func(c *HTTPClient) {
		c.policy.Delay = d
	}
}

// WithHTTPClient sets a custom http.Client.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *HTTPClient) {
		c.client = client
	}
}

// WithLogger sets the logger used for retry diagnostics.
func WithLogger(logger *zap.Logger) ClientOption {
	return func(c *HTTPClient) {
		c.logger = logger
	}
}

// WithObserver sets an observer notified after every attempt.
func WithObserver(o Observer) ClientOption {
	return func(c *HTTPClient) {
		c.observer = o
	}
}

// NewHTTPClient creates a new subgraph client for endpoint.
func NewHTTPClient(endpoint string, opts ...ClientOption) *HTTPClient {
	c := &HTTPClient{
		endpoint: endpoint,
		client:   &http.Client{Timeout: DefaultTimeout},
		policy:   retry.DefaultPolicy(),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compile-time interface check.
var _ Querier = (*HTTPClient)(nil)

// Query executes req with bounded retries on transport failures.
// Subgraph-reported errors and undecodable bodies are returned without retrying.
func (c *HTTPClient) Query(ctx context.Context, req Request, result any) error {
	body, err := json.Marshal(graphqlRequest{Query: req.Query, Variables: req.Variables})
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	respBody, attempts, err := retry.Do(ctx, c.policy, func(ctx context.Context, attempt int) ([]byte, error) {
		start := time.Now()
		b, err := c.post(ctx, body)
		if c.observer != nil {
			c.observer.ObserveAttempt(attempt, time.Since(start), err)
		}
		return b, err
	}, func(attempt int, err error, wait time.Duration) {
		c.logger.Warn("subgraph request failed, retrying",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", c.policy.MaxAttempts),
			zap.Duration("wait", wait),
			zap.Error(err),
		)
	})
	if err != nil {
		return &TransportError{Endpoint: c.endpoint, Attempts: attempts, Err: err}
	}

	var resp graphqlResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return &DecodeError{Err: err}
	}

	if len(resp.Errors) > 0 {
		msgs := make([]string, len(resp.Errors))
		for i, e := range resp.Errors {
			msgs[i] = e.Message
		}
		return &QueryError{Messages: msgs}
	}

	if result != nil && len(resp.Data) > 0 {
		if err := json.Unmarshal(resp.Data, result); err != nil {
			return &DecodeError{Err: fmt.Errorf("data: %w", err)}
		}
	}

	return nil
}

// post performs a single attempt and returns the raw 2xx body.
func (c *HTTPClient) post(ctx context.Context, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, retry.Permanent(fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if len(respBody) > maxErrorBody {
			respBody = respBody[:maxErrorBody]
		}
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	return respBody, nil
}
