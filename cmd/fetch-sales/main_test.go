package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"nft-sales-fetcher/internal/config"
)

func TestLoadConfig_NoArguments(t *testing.T) {
	cfg, err := loadConfig("", overrides{})
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadConfig_FlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
subgraph:
  endpoint: https://file.example.com/graphql
  page_size: 50
output:
  path: from-file.csv
`), 0o644))

	cfg, err := loadConfig(path, overrides{
		endpoint: "https://flag.example.com/graphql",
		logLevel: "debug",
	})
	require.NoError(t, err)

	assert.Equal(t, "https://flag.example.com/graphql", cfg.Subgraph.Endpoint)
	assert.Equal(t, 50, cfg.Subgraph.PageSize)
	assert.Equal(t, "from-file.csv", cfg.Output.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfig_InvalidOverride(t *testing.T) {
	_, err := loadConfig("", overrides{endpoint: "not a url"})
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	logger, err := newLogger("warn")
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))

	_, err = newLogger("loud")
	assert.Error(t, err)
}
