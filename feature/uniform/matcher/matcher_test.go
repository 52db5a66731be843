package matcher

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uniform-manager/feature/uniform/catalog"
	"uniform-manager/feature/uniform/errs"
	"uniform-manager/feature/uniform/models"
)

func rec(id uint, category, typ, size string) models.StockRecord {
	return models.StockRecord{ID: id, Category: category, Type: typ, Size: size, Quantity: 5}
}

func desc(t *testing.T, category, typ, size string) catalog.Descriptor {
	t.Helper()
	d, err := catalog.NormalizeDescriptor(category, typ, size)
	require.NoError(t, err)
	return d
}

var inventory = []models.StockRecord{
	rec(1, "Uniform No 3", "Boot", "7"),
	rec(2, "Uniform No 3", "Boot", "8"),
	rec(3, "Uniform No 3", "Beret", "6 7/8"),
	rec(4, "Uniform No 3", "Uniform No 3 Male", "M"),
	rec(5, "Uniform No 4", "Boot", "UK 7"),
	rec(6, "Shirt", "Digital Shirt", "XXL"),
	rec(7, "Uniform No 3", "PVC Shoes", ""),
}

func TestResolve_Tiers(t *testing.T) {
	m := New()
	tests := []struct {
		name     string
		want     catalog.Descriptor
		id       uint
		typeTier string
		sizeTier string
	}{
		{"exact", desc(t, "Uniform No 3", "boot", "7"), 1, "exact-type", "exact-size"},
		{"numeric token", desc(t, "Uniform No 3", "Boot", "UK 7"), 1, "exact-type", "numeric-size"},
		{"loose whitespace", desc(t, "Uniform No 3", "Beret", "6  7 / 8"), 3, "exact-type", "loose-size"},
		{"legacy alias", desc(t, "Uniform No 3", "BAJU_NO_3_LELAKI", "m"), 4, "exact-type", "exact-size"},
		{"size alias", desc(t, "T-Shirt", "Digital Shirt", "2XL"), 6, "exact-type", "exact-size"},
		{"no size", desc(t, "Uniform No 3", "PVC Shoes", ""), 7, "exact-type", "no-size"},
		{"category filter", desc(t, "Uniform No 4", "Boot", "uk 7"), 5, "exact-type", "exact-size"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := m.Resolve(tt.want, inventory)
			require.NoError(t, err)
			assert.Equal(t, tt.id, got.Record.ID)
			assert.Equal(t, tt.typeTier, got.TypeTier)
			assert.Equal(t, tt.sizeTier, got.SizeTier)
		})
	}
}

func TestResolve_ContainsType(t *testing.T) {
	stock := []models.StockRecord{rec(1, "Uniform No 3", "Boot Leather", "7")}
	got, err := New().Resolve(desc(t, "Uniform No 3", "Boot", "7"), stock)
	require.NoError(t, err)
	assert.Equal(t, "contains-type", got.TypeTier)
}

func TestResolve_ExactTypeShadowsContains(t *testing.T) {
	stock := []models.StockRecord{
		rec(1, "Uniform No 3", "Beret", "7"),
		rec(2, "Uniform No 3", "Beret Band", "7"),
	}
	got, err := New().Resolve(desc(t, "Uniform No 3", "Beret", "7"), stock)
	require.NoError(t, err)
	assert.Equal(t, uint(1), got.Record.ID)
}

func TestResolve_NotFoundDiagnostics(t *testing.T) {
	_, err := New().Resolve(desc(t, "Uniform No 3", "Boot", "11"), inventory)
	var nf *errs.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.False(t, nf.Ambiguous)
	assert.Equal(t, []string{"7", "8"}, nf.AvailableSizes)

	_, err = New().Resolve(desc(t, "Uniform No 4", "Beret", "7"), inventory)
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, []string{"Boot"}, nf.AvailableTypes)
}

func TestResolve_Ambiguous(t *testing.T) {
	stock := []models.StockRecord{
		rec(1, "Uniform No 3", "Boot", "UK 7"),
		rec(2, "Uniform No 3", "Boot", "EU 7"),
	}
	_, err := New().Resolve(desc(t, "Uniform No 3", "Boot", "7"), stock)
	var nf *errs.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.True(t, nf.Ambiguous)
	assert.Equal(t, []string{"EU 7", "UK 7"}, nf.AvailableSizes)
}

type staticSource []models.StockRecord

func (s staticSource) Candidates(context.Context, catalog.Category) ([]models.StockRecord, error) {
	return s, nil
}

type failingSource struct{}

func (failingSource) Candidates(context.Context, catalog.Category) ([]models.StockRecord, error) {
	return nil, errors.New("db down")
}

func TestFind(t *testing.T) {
	got, err := New().Find(context.Background(), staticSource(inventory), desc(t, "Uniform No 3", "Boot", "8"))
	require.NoError(t, err)
	assert.Equal(t, uint(2), got.Record.ID)

	_, err = New().Find(context.Background(), failingSource{}, desc(t, "Uniform No 3", "Boot", "8"))
	assert.EqualError(t, err, "db down")
}

func TestNewWithTiers_RestrictsStrategies(t *testing.T) {
	m := NewWithTiers([]Strategy{ExactType}, []Strategy{NumericSize})

	got, err := m.Resolve(desc(t, "Uniform No 3", "Boot", "7"), inventory)
	require.NoError(t, err)
	assert.Equal(t, uint(1), got.Record.ID)
	assert.Equal(t, "numeric-size", got.SizeTier)

	_, err = m.Resolve(desc(t, "Uniform No 3", "PVC Shoes", ""), inventory)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}
