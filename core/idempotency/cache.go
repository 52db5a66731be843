package idempotency

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrDuplicateRequest is matched by every DuplicateRequestError.
var ErrDuplicateRequest = errors.New("duplicate request")

// State of a tracked request.
type State string

const (
	StateInProgress State = "in_progress"
	StateCompleted  State = "completed"
)

// Entry is what the cache remembers about a request key.
type Entry struct {
	State     State
	UpdatedAt time.Time
	Result    []byte
}

// Cache stores request entries. Implementations must make Acquire atomic.
type Cache interface {
	// Acquire marks key in progress unless an in-progress entry, or a
	// completed entry younger than window, already exists. The blocking
	// entry is returned when acquisition fails.
	Acquire(ctx context.Context, key string, now time.Time, window, ttl time.Duration) (*Entry, bool, error)
	// Complete stores the result of key, completed at now.
	Complete(ctx context.Context, key string, now time.Time, result []byte, ttl time.Duration) error
	// Release forgets key.
	Release(ctx context.Context, key string) error
	// Purge drops entries last touched before cutoff.
	Purge(ctx context.Context, cutoff time.Time) (int, error)
}

// DuplicateRequestError reports a request already seen within the dedup window.
type DuplicateRequestError struct {
	Key        string
	InProgress bool
}

func (e *DuplicateRequestError) Error() string {
	if e.InProgress {
		return fmt.Sprintf("request %s is already being processed", e.Key)
	}
	return fmt.Sprintf("request %s was already processed", e.Key)
}

func (e *DuplicateRequestError) Is(target error) bool {
	return target == ErrDuplicateRequest
}
