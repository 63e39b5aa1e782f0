package domain

import "time"

// DatetimeLayout is the layout of the derived datetime column (UTC, no zone suffix).
const DatetimeLayout = "2006-01-02 15:04:05"

// WeiDecimals is the number of decimal places between the smallest indivisible
// unit of a payment token and its display unit (wei -> ether).
const WeiDecimals = 18

// SaleRecord represents one indexed NFT sale, normalized for output.
// Records are built once by the sales fetcher and never mutated afterwards.
type SaleRecord struct {
	ID           string    // <txHash>-<logIndex>, opaque
	Collection   string    // NFT contract address, lowercase
	TokenID      string    // token identifier as reported by the indexer
	Price        float64   // display units (smallest unit / 10^18)
	PaymentToken string    // payment currency contract address, lowercase
	Timestamp    int64     // block timestamp (Unix seconds)
	Datetime     time.Time // derived from Timestamp, UTC
	TxHash       string    // transaction hash
}

// SaleDatetime derives the datetime column from a Unix-seconds timestamp.
func SaleDatetime(timestamp int64) time.Time {
	return time.Unix(timestamp, 0).UTC()
}

// FormatDatetime renders a datetime in DatetimeLayout.
func FormatDatetime(t time.Time) string {
	return t.UTC().Format(DatetimeLayout)
}

// LatestDatetime returns the maximum Datetime across sales, or the zero time
// if sales is empty.
func LatestDatetime(sales []SaleRecord) time.Time {
	var latest time.Time
	for _, s := range sales {
		if s.Datetime.After(latest) {
			latest = s.Datetime
		}
	}
	return latest
}
