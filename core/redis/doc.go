// Package redis configures the optional Redis connection.
//
// When an address is configured, the reconciliation idempotency guard keeps its
// entries in Redis so several service instances share one dedup window. Without
// it the guard falls back to an in-process cache.
package redis
