package sales

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"nft-sales-fetcher/internal/domain"
)

var (
	errEmptyValue    = errors.New("empty value")
	errNegativeValue = errors.New("negative value")
	errNotInteger    = errors.New("not an integer")
	errOutOfRange    = errors.New("out of range")
)

// maxUnixSeconds is 9999-12-31 23:59:59 UTC, the last second the datetime
// column can render with a four-digit year.
var maxUnixSeconds = decimal.NewFromInt(253402300799)

// toSaleRecord normalizes one raw sale: price to display units, timestamp to
// an integer plus derived datetime, addresses to lowercase.
func (r rawSale) toSaleRecord() (domain.SaleRecord, error) {
	id := string(r.ID)

	price, err := weiToDisplay(string(r.Price))
	if err != nil {
		return domain.SaleRecord{}, &TransformError{RecordID: id, Field: "price", Value: string(r.Price), Err: err}
	}

	ts, err := parseTimestamp(string(r.Timestamp))
	if err != nil {
		return domain.SaleRecord{}, &TransformError{RecordID: id, Field: "timestamp", Value: string(r.Timestamp), Err: err}
	}

	return domain.SaleRecord{
		ID:           id,
		Collection:   strings.ToLower(string(r.Collection)),
		TokenID:      string(r.TokenID),
		Price:        price,
		PaymentToken: strings.ToLower(string(r.PaymentToken)),
		Timestamp:    ts,
		Datetime:     domain.SaleDatetime(ts),
		TxHash:       string(r.TxHash),
	}, nil
}

// weiToDisplay converts an amount in the smallest unit to display units.
func weiToDisplay(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errEmptyValue
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, err
	}
	if d.IsNegative() {
		return 0, errNegativeValue
	}

	return d.Shift(-domain.WeiDecimals).InexactFloat64(), nil
}

// parseTimestamp parses Unix seconds. Integral decimal forms such as
// "1700000000.0" are accepted; values past year 9999 are rejected.
func parseTimestamp(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errEmptyValue
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, err
	}
	if !d.IsInteger() {
		return 0, errNotInteger
	}
	if d.IsNegative() {
		return 0, errNegativeValue
	}
	if d.GreaterThan(maxUnixSeconds) {
		return 0, errOutOfRange
	}

	return d.IntPart(), nil
}
