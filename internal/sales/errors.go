package sales

import (
	"errors"
	"fmt"

	"nft-sales-fetcher/internal/subgraph"
)

// ErrEmptyResult is returned when the subgraph answered without any sales,
// typically because it has not finished syncing. Nothing is written.
var ErrEmptyResult = errors.New("no sales data returned")

// ErrorKind classifies the outcome of a fetch run.
type ErrorKind string

// Outcome kinds. KindNone means success.
const (
	KindNone      ErrorKind = "success"
	KindTransport ErrorKind = "transport"
	KindQuery     ErrorKind = "query"
	KindEmpty     ErrorKind = "empty"
	KindTransform ErrorKind = "transform"
	KindPersist   ErrorKind = "persist"
	KindUnknown   ErrorKind = "unknown"
)

// TransformError is returned when the response or one of its records cannot
// be converted into sale records.
type TransformError struct {
	RecordID string // empty when the response as a whole was malformed
	Field    string
	Value    string
	Err      error
}

func (e *TransformError) Error() string {
	if e.RecordID == "" && e.Field == "" {
		return fmt.Sprintf("transform response: %v", e.Err)
	}
	return fmt.Sprintf("transform sale %q: field %s=%q: %v", e.RecordID, e.Field, e.Value, e.Err)
}

func (e *TransformError) Unwrap() error {
	return e.Err
}

// PersistError is returned when the output file could not be replaced.
// The previous file, if any, is left untouched.
type PersistError struct {
	Path string
	Err  error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *PersistError) Unwrap() error {
	return e.Err
}

// KindOf classifies err into one of the outcome kinds.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindNone
	}

	var (
		transportErr *subgraph.TransportError
		queryErr     *subgraph.QueryError
		transformErr *TransformError
		persistErr   *PersistError
	)

	switch {
	case errors.Is(err, ErrEmptyResult):
		return KindEmpty
	case errors.As(err, &queryErr):
		return KindQuery
	case errors.As(err, &transportErr):
		return KindTransport
	case errors.As(err, &transformErr):
		return KindTransform
	case errors.As(err, &persistErr):
		return KindPersist
	default:
		return KindUnknown
	}
}
