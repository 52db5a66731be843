package models

import "time"

// StockStatus is derived from quantity on every write.
type StockStatus string

const (
	StockOutOfStock StockStatus = "Out of Stock"
	StockLow        StockStatus = "Low Stock"
	StockIn         StockStatus = "In Stock"
)

// LowStockThreshold is the highest quantity still reported as low stock.
const LowStockThreshold = 10

// StatusFor derives the stock status for a quantity.
func StatusFor(quantity int) StockStatus {
	switch {
	case quantity <= 0:
		return StockOutOfStock
	case quantity <= LowStockThreshold:
		return StockLow
	default:
		return StockIn
	}
}

// StockRecord is one inventory row per (category, type, size).
type StockRecord struct {
	ID        uint        `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Category  string      `gorm:"column:category;type:varchar(64);not null;uniqueIndex:idx_stock_identity" json:"category"`
	Type      string      `gorm:"column:type;type:varchar(128);not null;uniqueIndex:idx_stock_identity" json:"type"`
	Size      string      `gorm:"column:size;type:varchar(32);not null;default:'';uniqueIndex:idx_stock_identity" json:"size"`
	Quantity  int         `gorm:"column:quantity;type:int;not null;default:0" json:"quantity"`
	Status    StockStatus `gorm:"column:status;type:varchar(32);not null" json:"status"`
	CreatedAt time.Time   `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time   `gorm:"column:updated_at" json:"updatedAt"`
}

func (StockRecord) TableName() string {
	return "stock_records"
}
