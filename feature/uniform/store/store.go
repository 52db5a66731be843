package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"uniform-manager/feature/uniform/catalog"
	"uniform-manager/feature/uniform/models"
)

// Tx is the write side of the inventory, valid inside WithinTx.
type Tx interface {
	// AdjustQuantity adds delta to the stock record with a conditional update.
	// The row is read under a row lock; a lost race is retried once with a
	// fresh read.
	AdjustQuantity(ctx context.Context, id uint, delta int) (models.StockRecord, error)
	// SaveRecord writes a member record and replaces its items. Existing
	// records are guarded by their version.
	SaveRecord(ctx context.Context, rec *models.UniformRecord) error
}

// Store is the gorm-backed inventory.
type Store struct {
	db *gorm.DB
}

// New creates a Store.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB returns the underlying connection.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Migrate creates or updates the inventory tables.
func (s *Store) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to migrate inventory tables: %w", err)
	}
	return nil
}

// ListStock returns every stock record ordered by id.
func (s *Store) ListStock(ctx context.Context) ([]models.StockRecord, error) {
	var recs []models.StockRecord
	if err := s.db.WithContext(ctx).Order("id").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("failed to list stock: %w", err)
	}
	return recs, nil
}

// Candidates returns the stock records whose stored category, canonical or
// legacy, resolves to category. Rows with unparseable categories are skipped.
func (s *Store) Candidates(ctx context.Context, category catalog.Category) ([]models.StockRecord, error) {
	all, err := s.ListStock(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.StockRecord, 0, len(all))
	for _, rec := range all {
		if c, err := catalog.ParseCategory(rec.Category); err == nil && c == category {
			out = append(out, rec)
		}
	}
	return out, nil
}

// ListIssued returns every issued item of every member.
func (s *Store) ListIssued(ctx context.Context) ([]models.IssuedItem, error) {
	var items []models.IssuedItem
	if err := s.db.WithContext(ctx).Order("id").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list issued items: %w", err)
	}
	return items, nil
}

// GetRecord loads a member record with its items. A member without a record
// yields nil and no error.
func (s *Store) GetRecord(ctx context.Context, memberID string) (*models.UniformRecord, error) {
	var rec models.UniformRecord
	err := s.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Where("member_id = ?", memberID).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load record for %s: %w", memberID, err)
	}
	return &rec, nil
}

// WithinTx runs fn in one database transaction. Any error rolls back every
// write made through the Tx.
func (s *Store) WithinTx(ctx context.Context, fn func(Tx) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTx{db: tx})
	})
}
