// Package store persists stock records and member uniform records with gorm.
//
// Stock quantities only change through Tx.AdjustQuantity, which issues a
// conditional update keyed on the quantity it read:
//
//	UPDATE stock_records SET quantity = ?, status = ? WHERE id = ? AND quantity = ?
//
// so two concurrent deductions can never both succeed against the same units.
package store
