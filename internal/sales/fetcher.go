// Package sales fetches recent NFT sales from the subgraph, normalizes them
// and replaces the CSV output file.
package sales

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"nft-sales-fetcher/internal/domain"
	"nft-sales-fetcher/internal/observability"
	"nft-sales-fetcher/internal/reporting"
	"nft-sales-fetcher/internal/subgraph"
)

// DefaultPageSize is the number of newest sales requested per run.
const DefaultPageSize = 250

// Config holds the fixed inputs of a fetch run.
type Config struct {
	Endpoint   string // for diagnostics only, the querier owns the connection
	PageSize   int
	OutputPath string
}

// Summary describes a successful run.
type Summary struct {
	Count  int
	Latest time.Time
	Path   string
}

// Fetcher runs the fetch → transform → persist cycle.
type Fetcher struct {
	querier subgraph.Querier
	cfg     Config
	logger  *zap.Logger
	metrics *observability.Metrics
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithLogger sets the logger for progress and outcome messages.
func WithLogger(logger *zap.Logger) Option {
	return func(f *Fetcher) {
		f.logger = logger
	}
}

// WithMetrics sets the metrics recorded for each run.
func WithMetrics(m *observability.Metrics) Option {
	return func(f *Fetcher) {
		f.metrics = m
	}
}

// NewFetcher creates a Fetcher. A non-positive PageSize falls back to DefaultPageSize.
func NewFetcher(querier subgraph.Querier, cfg Config, opts ...Option) *Fetcher {
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	f := &Fetcher{
		querier: querier,
		cfg:     cfg,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch queries the newest sales and normalizes them, newest first, at most
// PageSize records. It returns ErrEmptyResult when there is nothing to return.
func (f *Fetcher) Fetch(ctx context.Context) ([]domain.SaleRecord, error) {
	req := subgraph.Request{
		Query:     LatestSalesQuery,
		Variables: map[string]any{"first": f.cfg.PageSize},
	}

	var resp salesResponse
	if err := f.querier.Query(ctx, req, &resp); err != nil {
		var decodeErr *subgraph.DecodeError
		if errors.As(err, &decodeErr) {
			return nil, &TransformError{Err: err}
		}
		return nil, err
	}

	raw := resp.NFTSales
	if len(raw) == 0 {
		return nil, ErrEmptyResult
	}
	if len(raw) > f.cfg.PageSize {
		raw = raw[:f.cfg.PageSize]
	}

	sales := make([]domain.SaleRecord, 0, len(raw))
	for _, r := range raw {
		rec, err := r.toSaleRecord()
		if err != nil {
			return nil, err
		}
		sales = append(sales, rec)
	}

	return sales, nil
}

// Run fetches sales and replaces the output file with them. Every outcome is
// logged; the returned error can be classified with KindOf. On any error the
// output file is left as it was.
func (f *Fetcher) Run(ctx context.Context) (*Summary, error) {
	start := time.Now()
	f.logger.Info("fetching NFT sales from subgraph",
		zap.String("endpoint", f.cfg.Endpoint),
		zap.Int("first", f.cfg.PageSize),
	)

	summary, err := f.run(ctx)

	kind := KindOf(err)
	if f.metrics != nil {
		f.metrics.RecordRun(string(kind), time.Since(start))
		if summary != nil {
			f.metrics.RecordSalesWritten(summary.Count, summary.Latest)
		}
	}
	f.report(summary, err)

	return summary, err
}

func (f *Fetcher) run(ctx context.Context) (*Summary, error) {
	sales, err := f.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	if err := reporting.WriteSalesCSV(f.cfg.OutputPath, sales); err != nil {
		return nil, &PersistError{Path: f.cfg.OutputPath, Err: err}
	}

	return &Summary{
		Count:  len(sales),
		Latest: domain.LatestDatetime(sales),
		Path:   f.cfg.OutputPath,
	}, nil
}

// report logs one message per outcome kind.
func (f *Fetcher) report(summary *Summary, err error) {
	kind := KindOf(err)

	switch kind {
	case KindNone:
		f.logger.Info("saved sales records",
			zap.Int("count", summary.Count),
			zap.String("path", summary.Path),
		)
		f.logger.Info("latest data timestamp", zap.String("latest", domain.FormatDatetime(summary.Latest)))
	case KindEmpty:
		f.logger.Info("no sales data found (subgraph might not be fully synced)")
	case KindQuery:
		var queryErr *subgraph.QueryError
		errors.As(err, &queryErr)
		f.logger.Error("subgraph query error", zap.Strings("messages", queryErr.Messages))
	case KindTransport:
		var transportErr *subgraph.TransportError
		errors.As(err, &transportErr)
		f.logger.Error("subgraph request failed",
			zap.Int("attempts", transportErr.Attempts),
			zap.Error(transportErr.Err),
		)
	default:
		f.logger.Error("fetch failed", zap.String("kind", string(kind)), zap.Error(err))
	}
}
