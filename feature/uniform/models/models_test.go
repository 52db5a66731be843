package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	assert.Equal(t, StockOutOfStock, StatusFor(0))
	assert.Equal(t, StockOutOfStock, StatusFor(-1))
	assert.Equal(t, StockLow, StatusFor(1))
	assert.Equal(t, StockLow, StatusFor(10))
	assert.Equal(t, StockIn, StatusFor(11))
}

func TestParseItemStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want ItemStatus
		ok   bool
	}{
		{"", "", true},
		{"Available", ItemAvailable, true},
		{"missing", ItemMissing, true},
		{"Not Available", ItemNotAvailable, true},
		{"NOT_AVAILABLE", ItemNotAvailable, true},
		{"lost", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseItemStatus(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTableNames(t *testing.T) {
	assert.Equal(t, "stock_records", StockRecord{}.TableName())
	assert.Equal(t, "uniform_records", UniformRecord{}.TableName())
	assert.Equal(t, "issued_items", IssuedItem{}.TableName())
	assert.Len(t, All(), 3)
}
