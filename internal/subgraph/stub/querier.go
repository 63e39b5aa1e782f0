package stub

import (
	"context"
	"encoding/json"
	"fmt"

	"nft-sales-fetcher/internal/subgraph"
)

// Querier implements subgraph.Querier for testing.
// Data is round-tripped through JSON into the caller's result, like a real response.
type Querier struct {
	Data any
	Err  error

	Requests []subgraph.Request
}

// NewQuerier creates a stub returning data for every query.
func NewQuerier(data any) *Querier {
	return &Querier{Data: data}
}

// NewFailingQuerier creates a stub returning err for every query.
func NewFailingQuerier(err error) *Querier {
	return &Querier{Err: err}
}

// Query records req and returns the canned data or error.
func (q *Querier) Query(_ context.Context, req subgraph.Request, result any) error {
	q.Requests = append(q.Requests, req)
	if q.Err != nil {
		return q.Err
	}
	if q.Data == nil || result == nil {
		return nil
	}

	raw, err := json.Marshal(q.Data)
	if err != nil {
		return fmt.Errorf("marshal stub data: %w", err)
	}
	if err := json.Unmarshal(raw, result); err != nil {
		return &subgraph.DecodeError{Err: err}
	}
	return nil
}

var _ subgraph.Querier = (*Querier)(nil)
