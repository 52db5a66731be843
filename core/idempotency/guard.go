package idempotency

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Guard suppresses near-simultaneous duplicate submissions.
type Guard struct {
	cache   Cache
	window  time.Duration
	horizon time.Duration
	logger  *zap.Logger
	now     func() time.Time
}

// Option configures a Guard.
type Option func(*Guard)

// WithClock replaces the wall clock.
func WithClock(now func() time.Time) Option {
	return func(g *Guard) { g.now = now }
}

// NewGuard creates a Guard. Completed entries block repeats for window and are
// forgotten after horizon.
func NewGuard(cache Cache, window, horizon time.Duration, logger *zap.Logger, opts ...Option) *Guard {
	if horizon < window {
		horizon = window
	}
	g := &Guard{cache: cache, window: window, horizon: horizon, logger: logger, now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Key builds a request key from a subject and the distinct parts it touches.
// Part order and case do not matter.
func Key(subject string, parts []string) string {
	seen := make(map[string]struct{}, len(parts))
	uniq := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		uniq = append(uniq, p)
	}
	sort.Strings(uniq)
	sum := sha256.Sum256([]byte(strings.Join(uniq, "\n")))
	return subject + ":" + hex.EncodeToString(sum[:16])
}

// Do runs fn once per key within the dedup window. A repeat returns the prior
// result with a DuplicateRequestError; a repeat of a running call returns only
// the error. Failed calls are forgotten so they can be retried at once. Cache
// failures never block fn.
func Do[T any](ctx context.Context, g *Guard, key string, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	now := g.now()

	if n, err := g.cache.Purge(ctx, now.Add(-g.horizon)); err != nil {
		g.logger.Warn("Failed to purge idempotency cache", zap.Error(err))
	} else if n > 0 {
		g.logger.Debug("Purged idempotency entries", zap.Int("count", n))
	}

	prior, acquired, err := g.cache.Acquire(ctx, key, now, g.window, g.horizon)
	if err != nil {
		g.logger.Warn("Idempotency cache unavailable, running unguarded", zap.String("key", key), zap.Error(err))
		return fn(ctx)
	}
	if !acquired {
		dup := &DuplicateRequestError{Key: key, InProgress: prior.State == StateInProgress}
		if dup.InProgress || len(prior.Result) == 0 {
			return zero, dup
		}
		var out T
		if err := json.Unmarshal(prior.Result, &out); err != nil {
			g.logger.Warn("Failed to decode prior result", zap.String("key", key), zap.Error(err))
			return zero, dup
		}
		return out, dup
	}

	out, err := fn(ctx)
	if err != nil {
		if rerr := g.cache.Release(ctx, key); rerr != nil {
			g.logger.Warn("Failed to release idempotency key", zap.String("key", key), zap.Error(rerr))
		}
		return zero, err
	}

	data, merr := json.Marshal(out)
	if merr != nil {
		g.logger.Warn("Failed to encode result", zap.String("key", key), zap.Error(merr))
	}
	if cerr := g.cache.Complete(ctx, key, g.now(), data, g.horizon); cerr != nil {
		g.logger.Warn("Failed to complete idempotency key", zap.String("key", key), zap.Error(cerr))
	}
	return out, nil
}
