package reconcile

import (
	"time"

	"uniform-manager/feature/uniform/errs"
	"uniform-manager/feature/uniform/models"
)

// Item is one requested line as received from a client.
type Item struct {
	Category string `json:"category"`
	Type     string `json:"type"`
	Size     string `json:"size"`
	Quantity int    `json:"quantity"`
	Status   string `json:"status"`
}

// Request is the complete desired set of items for one member.
type Request struct {
	MemberID string
	Items    []Item
	DryRun   bool
}

// IssuedItem is the client view of a stored item. MissingCount is only shown
// for Missing items and ReceivedDate only for Available ones.
type IssuedItem struct {
	Category     string     `json:"category"`
	Type         string     `json:"type"`
	Size         *string    `json:"size"`
	Quantity     int        `json:"quantity"`
	Status       string     `json:"status"`
	MissingCount *int       `json:"missingCount,omitempty"`
	ReceivedDate *time.Time `json:"receivedDate,omitempty"`
}

// Movement is one applied (or, in a dry run, planned) stock change.
type Movement struct {
	StockID  uint    `json:"stockId"`
	Category string  `json:"category"`
	Type     string  `json:"type"`
	Size     *string `json:"size"`
	Delta    int     `json:"delta"`
	Quantity int     `json:"quantity"`
	Status   string  `json:"status"`
}

// Result is the outcome of a reconciliation.
type Result struct {
	MemberID  string         `json:"memberId"`
	Items     []IssuedItem   `json:"items"`
	Changed   int            `json:"changed"`
	Movements []Movement     `json:"movements"`
	Warnings  []errs.Problem `json:"warnings,omitempty"`
	DryRun    bool           `json:"dryRun,omitempty"`
}

// Render converts stored items to their client view.
func Render(items []models.IssuedItem) []IssuedItem {
	out := make([]IssuedItem, 0, len(items))
	for _, it := range items {
		v := IssuedItem{
			Category: it.Category,
			Type:     it.Type,
			Size:     optional(it.Size),
			Quantity: it.Quantity,
			Status:   string(it.Status),
		}
		switch it.Status {
		case models.ItemMissing:
			count := it.MissingCount
			v.MissingCount = &count
		case models.ItemAvailable:
			v.ReceivedDate = it.ReceivedDate
		}
		out = append(out, v)
	}
	return out
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
