package models

import (
	"strings"
	"time"
)

// ItemStatus is the lifecycle state of an issued item.
type ItemStatus string

const (
	ItemAvailable    ItemStatus = "Available"
	ItemNotAvailable ItemStatus = "Not Available"
	ItemMissing      ItemStatus = "Missing"
)

// ParseItemStatus accepts the canonical spellings plus common variants.
// An empty value reports ok with an empty status.
func ParseItemStatus(raw string) (ItemStatus, bool) {
	key := strings.ToLower(strings.Join(strings.Fields(strings.NewReplacer("_", " ", "-", " ").Replace(raw)), " "))
	switch key {
	case "":
		return "", true
	case "available":
		return ItemAvailable, true
	case "not available", "notavailable", "unavailable":
		return ItemNotAvailable, true
	case "missing":
		return ItemMissing, true
	default:
		return "", false
	}
}

// UniformRecord holds everything issued to one member.
type UniformRecord struct {
	ID        uint         `gorm:"column:id;primaryKey;autoIncrement"`
	MemberID  string       `gorm:"column:member_id;type:varchar(64);not null;uniqueIndex"`
	Version   int          `gorm:"column:version;type:int;not null;default:1"`
	Items     []IssuedItem `gorm:"foreignKey:RecordID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time    `gorm:"column:created_at"`
	UpdatedAt time.Time    `gorm:"column:updated_at"`
}

func (UniformRecord) TableName() string {
	return "uniform_records"
}

// IssuedItem is one line of a member's uniform record.
type IssuedItem struct {
	ID           uint       `gorm:"column:id;primaryKey;autoIncrement"`
	RecordID     uint       `gorm:"column:record_id;not null;index"`
	Category     string     `gorm:"column:category;type:varchar(64);not null"`
	Type         string     `gorm:"column:type;type:varchar(128);not null"`
	Size         string     `gorm:"column:size;type:varchar(32);not null;default:''"`
	Quantity     int        `gorm:"column:quantity;type:int;not null;default:1"`
	Status       ItemStatus `gorm:"column:status;type:varchar(32);not null"`
	MissingCount int        `gorm:"column:missing_count;type:int;not null;default:0"`
	ReceivedDate *time.Time `gorm:"column:received_date"`
}

func (IssuedItem) TableName() string {
	return "issued_items"
}

// All lists the models managed by migrations and the integrity check.
func All() []any {
	return []any{&StockRecord{}, &UniformRecord{}, &IssuedItem{}}
}
