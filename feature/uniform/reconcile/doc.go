// Package reconcile implements the uniform reconciliation engine.
//
// A request carries the complete desired item set for one member. The engine
// validates every item, sums old and new sets per descriptor, and moves stock
// by the net difference: units no longer issued are restored, new units are
// deducted. Accessories and custom-ordered items never touch stock.
//
// Every restore and deduction is resolved to a stock record and checked
// against fresh quantities before anything is written. The writes then run in
// a single transaction, restores first, each one a conditional update, so a
// request either lands completely or not at all.
package reconcile
