// Package idempotency implements a best-effort duplicate-submission guard.
//
// A request key maps to an entry that is in progress while the guarded call
// runs and completed afterwards. Repeats within the dedup window short-circuit
// with the prior result. Failed calls release their key. Two caches are
// provided: MemoryCache for a single instance and RedisCache, which uses an
// atomic Lua script so several instances share one window.
package idempotency
