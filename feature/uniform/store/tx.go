package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"uniform-manager/feature/uniform/errs"
	"uniform-manager/feature/uniform/models"
)

type gormTx struct {
	db *gorm.DB
}

func (t *gormTx) AdjustQuantity(ctx context.Context, id uint, delta int) (models.StockRecord, error) {
	for attempt := 0; attempt < 2; attempt++ {
		var rec models.StockRecord
		err := t.db.WithContext(ctx).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&rec, id).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return rec, &errs.NotFoundError{Type: fmt.Sprintf("stock #%d", id)}
			}
			return rec, fmt.Errorf("failed to read stock %d: %w", id, err)
		}

		next := rec.Quantity + delta
		if next < 0 {
			return rec, &errs.InsufficientStockError{
				Category:  rec.Category,
				Type:      rec.Type,
				Size:      rec.Size,
				Available: rec.Quantity,
				Requested: -delta,
			}
		}

		status := models.StatusFor(next)
		res := t.db.WithContext(ctx).Model(&models.StockRecord{}).
			Where("id = ? AND quantity = ?", id, rec.Quantity).
			Updates(map[string]any{"quantity": next, "status": status})
		if res.Error != nil {
			return rec, fmt.Errorf("failed to update stock %d: %w", id, res.Error)
		}
		if res.RowsAffected == 1 {
			rec.Quantity = next
			rec.Status = status
			return rec, nil
		}
	}
	return models.StockRecord{}, &errs.ConcurrencyConflictError{StockID: id}
}

func (t *gormTx) SaveRecord(ctx context.Context, rec *models.UniformRecord) error {
	db := t.db.WithContext(ctx)

	if rec.ID == 0 {
		rec.Version = 1
		if err := db.Omit(clause.Associations).Create(rec).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return &errs.ConcurrencyConflictError{MemberID: rec.MemberID}
			}
			return fmt.Errorf("failed to create record for %s: %w", rec.MemberID, err)
		}
	} else {
		res := db.Model(&models.UniformRecord{}).
			Where("id = ? AND version = ?", rec.ID, rec.Version).
			Updates(map[string]any{"version": rec.Version + 1})
		if res.Error != nil {
			return fmt.Errorf("failed to update record for %s: %w", rec.MemberID, res.Error)
		}
		if res.RowsAffected == 0 {
			return &errs.ConcurrencyConflictError{MemberID: rec.MemberID}
		}
		rec.Version++

		if err := db.Where("record_id = ?", rec.ID).Delete(&models.IssuedItem{}).Error; err != nil {
			return fmt.Errorf("failed to clear items for %s: %w", rec.MemberID, err)
		}
	}

	if len(rec.Items) == 0 {
		return nil
	}
	for i := range rec.Items {
		rec.Items[i].ID = 0
		rec.Items[i].RecordID = rec.ID
	}
	if err := db.Create(&rec.Items).Error; err != nil {
		return fmt.Errorf("failed to write items for %s: %w", rec.MemberID, err)
	}
	return nil
}
