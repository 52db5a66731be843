// Package storetest provides in-memory inventories for tests.
package storetest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"uniform-manager/core/database"
	"uniform-manager/feature/uniform/models"
	"uniform-manager/feature/uniform/store"
)

// New returns a migrated Store over a private in-memory SQLite database.
func New(t *testing.T) *store.Store {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	s := store.New(db)
	require.NoError(t, s.Migrate(context.Background()))
	return s
}

// Stock inserts a stock record and returns it with its id.
func Stock(t *testing.T, s *store.Store, category, typ, size string, quantity int) models.StockRecord {
	t.Helper()
	rec := models.StockRecord{
		Category: category,
		Type:     typ,
		Size:     size,
		Quantity: quantity,
		Status:   models.StatusFor(quantity),
	}
	require.NoError(t, s.DB().Create(&rec).Error)
	return rec
}

// Quantity reads the current quantity of a stock record.
func Quantity(t *testing.T, s *store.Store, id uint) int {
	t.Helper()
	var rec models.StockRecord
	require.NoError(t, s.DB().First(&rec, id).Error)
	return rec.Quantity
}

// Total sums every stock quantity.
func Total(t *testing.T, s *store.Store) int {
	t.Helper()
	recs, err := s.ListStock(context.Background())
	require.NoError(t, err)
	total := 0
	for _, r := range recs {
		total += r.Quantity
	}
	return total
}
