package config

import (
	"errors"
	"fmt"
	"net/url"

	"go.uber.org/zap/zapcore"
)

// MaxPageSize is the largest "first" argument the subgraph accepts.
const MaxPageSize = 1000

// Validate checks that all required fields are set and values are valid.
func (c Config) Validate() error {
	u, err := url.Parse(c.Subgraph.Endpoint)
	if err != nil {
		return fmt.Errorf("subgraph.endpoint: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("subgraph.endpoint must be an http(s) URL, got %q", c.Subgraph.Endpoint)
	}
	if u.Host == "" {
		return errors.New("subgraph.endpoint is missing a host")
	}

	if c.Subgraph.PageSize < 1 || c.Subgraph.PageSize > MaxPageSize {
		return fmt.Errorf("subgraph.page_size must be between 1 and %d, got %d", MaxPageSize, c.Subgraph.PageSize)
	}
	if c.Subgraph.Timeout <= 0 {
		return errors.New("subgraph.timeout must be > 0")
	}
	if c.Subgraph.MaxAttempts < 1 {
		return errors.New("subgraph.max_attempts must be >= 1")
	}
	if c.Subgraph.RetryDelay < 0 {
		return errors.New("subgraph.retry_delay must be >= 0")
	}

	if c.Output.Path == "" {
		return errors.New("output.path is required")
	}

	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}

	return nil
}
