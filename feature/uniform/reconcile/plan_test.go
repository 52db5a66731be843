package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uniform-manager/feature/uniform/models"
)

func TestNormalize_DefaultsQuantity(t *testing.T) {
	lines, err := normalize([]Item{{Category: "Uniform No 3", Type: "Boot", Size: "7"}})
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].quantity)
	assert.Equal(t, models.ItemStatus(""), lines[0].status)
}

func TestDiff(t *testing.T) {
	old := sumStored(&models.UniformRecord{Items: []models.IssuedItem{
		{Category: "Uniform No 3", Type: "Boot", Size: "7", Quantity: 2, Status: models.ItemAvailable},
		{Category: "Accessories No 3", Type: "Apulet", Quantity: 2, Status: models.ItemAvailable},
		{Category: "Uniform No 3", Type: "Beret", Size: "7", Quantity: 1, Status: models.ItemMissing},
	}})

	lines, err := normalize([]Item{
		{Category: "Uniform No 3", Type: "boot", Size: "7"},
		{Category: "Uniform No 3", Type: "Boot", Size: "7"},
		{Category: "Uniform No 3", Type: "Beret", Size: "7", Quantity: 2, Status: "Missing"},
		{Category: "Uniform No 3", Type: "Nametag"},
		{Category: "Shirt", Type: "Digital Shirt", Size: "L", Quantity: 2, Status: "Missing"},
	})
	require.NoError(t, err)
	requested := sumRequested(lines)

	restores, deductions := diff(old, requested)
	assert.Empty(t, restores, "duplicate lines sum to the stored quantity")
	assert.Empty(t, deductions, "beret and shirt are both issued as Missing")

	lines, err = normalize([]Item{
		{Category: "Uniform No 3", Type: "Boot", Size: "7", Quantity: 2},
		{Category: "Uniform No 3", Type: "Beret", Size: "7", Quantity: 2},
	})
	require.NoError(t, err)
	_, deductions = diff(old, sumRequested(lines))
	require.Len(t, deductions, 1, "a status carried from the stored entry does not exempt new units")
	assert.Equal(t, "Beret", deductions[0].desc.Type)
	assert.Equal(t, 1, deductions[0].amount)

	lines, err = normalize([]Item{{Category: "Uniform No 3", Type: "Beret", Size: "7", Quantity: 3, Status: "Available"}})
	require.NoError(t, err)
	restores, deductions = diff(old, sumRequested(lines))
	require.Len(t, restores, 1)
	assert.Equal(t, "Boot", restores[0].desc.Type)
	assert.Equal(t, 2, restores[0].amount)
	require.Len(t, deductions, 1)
	assert.Equal(t, 2, deductions[0].amount)
	assert.Equal(t, 0, deductions[0].index)
}
