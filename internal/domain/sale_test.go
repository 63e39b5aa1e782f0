package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSaleDatetime(t *testing.T) {
	assert.Equal(t, time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC), SaleDatetime(1700000000))
	assert.Equal(t, "2023-11-14 22:13:20", FormatDatetime(SaleDatetime(1700000000)))
	assert.Equal(t, "1970-01-01 00:00:00", FormatDatetime(SaleDatetime(0)))
}

func TestLatestDatetime(t *testing.T) {
	assert.True(t, LatestDatetime(nil).IsZero())

	sales := []SaleRecord{
		{ID: "a", Datetime: SaleDatetime(1700000000)},
		{ID: "b", Datetime: SaleDatetime(1700000500)},
		{ID: "c", Datetime: SaleDatetime(1699999000)},
	}
	assert.Equal(t, SaleDatetime(1700000500), LatestDatetime(sales))
}
