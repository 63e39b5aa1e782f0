package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, DefaultEndpoint, cfg.Subgraph.Endpoint)
	assert.Equal(t, 250, cfg.Subgraph.PageSize)
	assert.Equal(t, 30*time.Second, cfg.Subgraph.Timeout)
	assert.Equal(t, 3, cfg.Subgraph.MaxAttempts)
	assert.Equal(t, 2*time.Second, cfg.Subgraph.RetryDelay)
	assert.Equal(t, "nft_sales.csv", cfg.Output.Path)
	assert.Empty(t, cfg.Metrics.Textfile)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.NoError(t, cfg.Validate())
}

func TestLoadAndValidate(t *testing.T) {
	path := writeTempFile(t, `
subgraph:
  endpoint: https://api.example.com/subgraphs/seaport
  page_size: 100
  timeout: 10s
  retry_delay: 500ms
output:
  path: /tmp/sales.csv
metrics:
  textfile: /tmp/sales.prom
log:
  level: debug
`)

	cfg, err := LoadAndValidate(path)
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com/subgraphs/seaport", cfg.Subgraph.Endpoint)
	assert.Equal(t, 100, cfg.Subgraph.PageSize)
	assert.Equal(t, 10*time.Second, cfg.Subgraph.Timeout)
	assert.Equal(t, 500*time.Millisecond, cfg.Subgraph.RetryDelay)
	assert.Equal(t, DefaultMaxAttempts, cfg.Subgraph.MaxAttempts)
	assert.Equal(t, "/tmp/sales.csv", cfg.Output.Path)
	assert.Equal(t, "/tmp/sales.prom", cfg.Metrics.Textfile)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadWithEnvSubstitution(t *testing.T) {
	t.Setenv("TEST_SUBGRAPH_URL", "https://gateway.example.com/api/key/subgraphs/id/abc")

	path := writeTempFile(t, `
subgraph:
  endpoint: ${TEST_SUBGRAPH_URL}
`)

	cfg, err := LoadAndValidate(path)
	require.NoError(t, err)
	assert.Equal(t, "https://gateway.example.com/api/key/subgraphs/id/abc", cfg.Subgraph.Endpoint)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeTempFile(t, "subgraph: [unterminated")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"non-http endpoint", func(c *Config) { c.Subgraph.Endpoint = "ftp://example.com" }},
		{"endpoint without host", func(c *Config) { c.Subgraph.Endpoint = "https://" }},
		{"page size zero", func(c *Config) { c.Subgraph.PageSize = 0 }},
		{"page size too large", func(c *Config) { c.Subgraph.PageSize = MaxPageSize + 1 }},
		{"zero timeout", func(c *Config) { c.Subgraph.Timeout = 0 }},
		{"no attempts", func(c *Config) { c.Subgraph.MaxAttempts = 0 }},
		{"negative delay", func(c *Config) { c.Subgraph.RetryDelay = -time.Second }},
		{"empty output", func(c *Config) { c.Output.Path = "" }},
		{"bad log level", func(c *Config) { c.Log.Level = "verbose" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
