package idempotency

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// acquireScript sets the in-progress marker unless a blocking entry exists.
// KEYS[1]=key ARGV[1]=now(ms) ARGV[2]=window(ms) ARGV[3]=entry ARGV[4]=ttl(ms)
var acquireScript = redis.NewScript(`
local v = redis.call('GET', KEYS[1])
if v then
	local e = cjson.decode(v)
	if e.state == 'in_progress' then
		return v
	end
	if tonumber(ARGV[1]) - tonumber(e.at) < tonumber(ARGV[2]) then
		return v
	end
end
redis.call('SET', KEYS[1], ARGV[3], 'PX', ARGV[4])
return false
`)

type redisEntry struct {
	State  State  `json:"state"`
	At     int64  `json:"at"`
	Result []byte `json:"result,omitempty"`
}

// RedisCache shares entries between instances. Expiry is left to redis.
type RedisCache struct {
	client redis.Cmdable
	prefix string
}

// NewRedisCache creates a RedisCache storing keys under prefix.
func NewRedisCache(client redis.Cmdable, prefix string) *RedisCache {
	return &RedisCache{client: client, prefix: prefix}
}

func (r *RedisCache) key(k string) string {
	return r.prefix + k
}

func (r *RedisCache) Acquire(ctx context.Context, key string, now time.Time, window, ttl time.Duration) (*Entry, bool, error) {
	marker, err := json.Marshal(redisEntry{State: StateInProgress, At: now.UnixMilli()})
	if err != nil {
		return nil, false, err
	}

	raw, err := acquireScript.Run(ctx, r.client, []string{r.key(key)},
		now.UnixMilli(), window.Milliseconds(), string(marker), ttl.Milliseconds()).Text()
	if errors.Is(err, redis.Nil) {
		return nil, true, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to acquire %s: %w", key, err)
	}

	var e redisEntry
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		return nil, false, fmt.Errorf("failed to decode entry %s: %w", key, err)
	}
	return &Entry{State: e.State, UpdatedAt: time.UnixMilli(e.At), Result: e.Result}, false, nil
}

func (r *RedisCache) Complete(ctx context.Context, key string, now time.Time, result []byte, ttl time.Duration) error {
	data, err := json.Marshal(redisEntry{State: StateCompleted, At: now.UnixMilli(), Result: result})
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.key(key), data, ttl).Err()
}

func (r *RedisCache) Release(ctx context.Context, key string) error {
	return r.client.Del(ctx, r.key(key)).Err()
}

// Purge is a no-op; entries carry a redis TTL.
func (r *RedisCache) Purge(context.Context, time.Time) (int, error) {
	return 0, nil
}
