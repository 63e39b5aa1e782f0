package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"nft-sales-fetcher/internal/config"
	"nft-sales-fetcher/internal/observability"
	"nft-sales-fetcher/internal/sales"
	"nft-sales-fetcher/internal/subgraph"
)

func main() {
	// Parse flags. All of them are optional: with no arguments the built-in
	// configuration is used.
	configPath := flag.String("config", "", "Path to YAML config file")
	endpoint := flag.String("endpoint", "", "Subgraph GraphQL endpoint (overrides config)")
	output := flag.String("output", "", "Output CSV path (overrides config)")
	metricsFile := flag.String("metrics-file", "", "Write Prometheus metrics to this file after the run")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error")
	flag.Parse()

	cfg, err := loadConfig(*configPath, overrides{
		endpoint:    *endpoint,
		output:      *output,
		metricsFile: *metricsFile,
		logLevel:    *logLevel,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	metrics := observability.NewMetrics("")

	client := subgraph.NewHTTPClient(cfg.Subgraph.Endpoint,
		subgraph.WithTimeout(cfg.Subgraph.Timeout),
		subgraph.WithMaxAttempts(cfg.Subgraph.MaxAttempts),
		subgraph.WithRetryDelay(cfg.Subgraph.RetryDelay),
		subgraph.WithLogger(logger),
		subgraph.WithObserver(metrics),
	)

	fetcher := sales.NewFetcher(client, sales.Config{
		Endpoint:   cfg.Subgraph.Endpoint,
		PageSize:   cfg.Subgraph.PageSize,
		OutputPath: cfg.Output.Path,
	}, sales.WithLogger(logger), sales.WithMetrics(metrics))

	// Outcomes are reported by the fetcher itself; the process exits
	// normally whether sales were written, none were found, or the run failed.
	_, runErr := fetcher.Run(ctx)
	logger.Debug("run finished", zap.String("outcome", string(sales.KindOf(runErr))))

	if cfg.Metrics.Textfile != "" {
		if err := metrics.WriteTextfile(cfg.Metrics.Textfile); err != nil {
			logger.Warn("failed to write metrics textfile", zap.String("path", cfg.Metrics.Textfile), zap.Error(err))
		}
	}
}

// overrides holds flag values that take precedence over the config file.
type overrides struct {
	endpoint    string
	output      string
	metricsFile string
	logLevel    string
}

// loadConfig builds the run configuration from defaults, an optional YAML
// file and flag overrides, then validates the result.
func loadConfig(path string, o overrides) (config.Config, error) {
	cfg := config.Default()
	if path != "" {
		var err error
		cfg, err = config.LoadAndValidate(path)
		if err != nil {
			return config.Config{}, err
		}
	}

	if o.endpoint != "" {
		cfg.Subgraph.Endpoint = o.endpoint
	}
	if o.output != "" {
		cfg.Output.Path = o.output
	}
	if o.metricsFile != "" {
		cfg.Metrics.Textfile = o.metricsFile
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// newLogger creates a human-readable console logger writing to stdout.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.Lock(os.Stdout), lvl)
	return zap.New(core), nil
}
