package subgraph

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Querier defines the subgraph GraphQL interface.
type Querier interface {
	// Query executes req and decodes the response "data" object into result.
	// A response without data leaves result untouched.
	Query(ctx context.Context, req Request, result any) error
}

// Request is a GraphQL query with optional variables.
type Request struct {
	Query     string
	Variables map[string]any
}

// Observer receives per-attempt transport measurements.
type Observer interface {
	ObserveAttempt(attempt int, duration time.Duration, err error)
}

// graphqlRequest is the GraphQL-over-HTTP request body.
type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

// graphqlResponse is the GraphQL-over-HTTP response body.
type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphqlError   `json:"errors,omitempty"`
}

// graphqlError is one entry of the response "errors" list.
type graphqlError struct {
	Message string `json:"message"`
}

// TransportError is returned when every attempt failed at the transport level
// (connection error, timeout, non-2xx status).
type TransportError struct {
	Endpoint string
	Attempts int
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("subgraph request to %s failed after %d attempt(s): %v", e.Endpoint, e.Attempts, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// StatusError is a non-2xx HTTP response. It is retried as a transport failure.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

// QueryError carries the errors reported by the subgraph for a query
// (invalid query, unknown field, indexing error). It is never retried.
type QueryError struct {
	Messages []string
}

func (e *QueryError) Error() string {
	return "subgraph query error: " + e.Message()
}

// Message joins all reported messages, one per line.
func (e *QueryError) Message() string {
	return strings.Join(e.Messages, "\n")
}

// DecodeError is returned when a 2xx response body is not a valid GraphQL
// response. It is never retried.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode subgraph response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
