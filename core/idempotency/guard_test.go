package idempotency

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type result struct {
	Changed int `json:"changed"`
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newGuard(cache Cache, clock *fakeClock) *Guard {
	return NewGuard(cache, 10*time.Second, 20*time.Second, zap.NewNop(), WithClock(clock.Now))
}

func TestKey(t *testing.T) {
	a := Key("M-1", []string{"Accessories No 3|Apulet", "Uniform No 3|Boot"})
	b := Key("M-1", []string{"uniform no 3|boot", "Accessories No 3|Apulet", "Uniform No 3|Boot"})
	c := Key("M-2", []string{"Accessories No 3|Apulet", "Uniform No 3|Boot"})

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Contains(t, a, "M-1:")
}

func TestDo_DuplicateWithinWindow(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	g := newGuard(NewMemoryCache(), clock)
	calls := 0
	fn := func(context.Context) (result, error) {
		calls++
		return result{Changed: 1}, nil
	}

	out, err := Do(context.Background(), g, "M-1:apulet", fn)
	require.NoError(t, err)
	assert.Equal(t, 1, out.Changed)

	clock.Advance(2 * time.Second)
	out, err = Do(context.Background(), g, "M-1:apulet", fn)
	var dup *DuplicateRequestError
	require.ErrorAs(t, err, &dup)
	assert.False(t, dup.InProgress)
	assert.True(t, errors.Is(err, ErrDuplicateRequest))
	assert.Equal(t, 1, out.Changed, "prior result is returned")
	assert.Equal(t, 1, calls)

	clock.Advance(11 * time.Second)
	_, err = Do(context.Background(), g, "M-1:apulet", fn)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestDo_InProgress(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	g := newGuard(NewMemoryCache(), clock)

	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		_, err := Do(context.Background(), g, "k", func(context.Context) (result, error) {
			close(started)
			<-release
			return result{}, nil
		})
		done <- err
	}()

	<-started
	_, err := Do(context.Background(), g, "k", func(context.Context) (result, error) {
		t.Fatal("duplicate must not run")
		return result{}, nil
	})
	var dup *DuplicateRequestError
	require.ErrorAs(t, err, &dup)
	assert.True(t, dup.InProgress)

	close(release)
	require.NoError(t, <-done)
}

func TestDo_FailureReleasesKey(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	cache := NewMemoryCache()
	g := newGuard(cache, clock)

	boom := errors.New("boom")
	_, err := Do(context.Background(), g, "k", func(context.Context) (result, error) {
		return result{}, boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, cache.Len())

	out, err := Do(context.Background(), g, "k", func(context.Context) (result, error) {
		return result{Changed: 3}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, out.Changed)
}

func TestDo_PurgesOldEntries(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	cache := NewMemoryCache()
	g := newGuard(cache, clock)
	ok := func(context.Context) (result, error) { return result{}, nil }

	_, err := Do(context.Background(), g, "a", ok)
	require.NoError(t, err)
	clock.Advance(25 * time.Second)
	_, err = Do(context.Background(), g, "b", ok)
	require.NoError(t, err)

	assert.Equal(t, 1, cache.Len())
}

type failingCache struct{ *MemoryCache }

func (failingCache) Acquire(context.Context, string, time.Time, time.Duration, time.Duration) (*Entry, bool, error) {
	return nil, false, errors.New("cache down")
}

func TestDo_CacheFailureRunsUnguarded(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	g := newGuard(&failingCache{MemoryCache: NewMemoryCache()}, clock)

	out, err := Do(context.Background(), g, "k", func(context.Context) (result, error) {
		return result{Changed: 7}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 7, out.Changed)
}
