package reconcile

import (
	"time"

	"uniform-manager/feature/uniform/models"
)

// merge builds the stored item set from the requested entries. Missing counts
// and received dates carry over from the entry each item continues, including
// across a size change.
func merge(old, requested *ledger, now time.Time) ([]models.IssuedItem, int) {
	items := make([]models.IssuedItem, 0, len(requested.keys))
	changed := 0

	for _, key := range requested.keys {
		n := requested.get(key)
		prev := previous(n, old, requested)
		status := effectiveStatus(n, prev)

		item := models.IssuedItem{
			Category: string(n.desc.Category),
			Type:     n.desc.Type,
			Size:     n.desc.Size,
			Quantity: n.quantity,
			Status:   status,
		}

		prevStatus := models.ItemAvailable
		if prev != nil {
			prevStatus = prev.status
			item.MissingCount = prev.stored.MissingCount
			item.ReceivedDate = prev.stored.ReceivedDate
		}
		if status == models.ItemMissing && prevStatus != models.ItemMissing {
			item.MissingCount++
		}
		if status == models.ItemAvailable && item.ReceivedDate == nil {
			received := now
			item.ReceivedDate = &received
		}

		if old.get(key) == nil || prev.quantity != n.quantity || prevStatus != status {
			changed++
		}
		items = append(items, item)
	}
	return items, changed
}
