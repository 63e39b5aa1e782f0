package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultEndpoint    = "https://api.studio.thegraph.com/query/110739/seaport-nft-tracker/version/latest"
	DefaultPageSize    = 250
	DefaultTimeout     = 30 * time.Second
	DefaultMaxAttempts = 3
	DefaultRetryDelay  = 2 * time.Second
	DefaultOutputPath  = "nft_sales.csv"
	DefaultLogLevel    = "info"
)

func (c *Config) applyDefaults() {
	if c.Subgraph.Endpoint == "" {
		c.Subgraph.Endpoint = DefaultEndpoint
	}
	if c.Subgraph.PageSize == 0 {
		c.Subgraph.PageSize = DefaultPageSize
	}
	if c.Subgraph.Timeout == 0 {
		c.Subgraph.Timeout = DefaultTimeout
	}
	if c.Subgraph.MaxAttempts == 0 {
		c.Subgraph.MaxAttempts = DefaultMaxAttempts
	}
	if c.Subgraph.RetryDelay == 0 {
		c.Subgraph.RetryDelay = DefaultRetryDelay
	}

	if c.Output.Path == "" {
		c.Output.Path = DefaultOutputPath
	}

	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
}
